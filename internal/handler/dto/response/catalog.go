package response

import (
	"clubvenue/internal/domain/catalog"
	"clubvenue/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClubResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	GroupCategory string    `json:"groupCategory"`
}

type VenueResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

func FromClubs(clubs []catalog.Club) ([]ClubResponse, error) {
	out := make([]ClubResponse, 0, len(clubs))
	if err := copier.Copy(&out, &clubs); err != nil {
		return nil, errs.Wrap(err, "failed to map club list")
	}
	return out, nil
}

func FromVenues(venues []catalog.Venue) []VenueResponse {
	out := make([]VenueResponse, 0, len(venues))
	for _, v := range venues {
		out = append(out, VenueResponse{
			ID:       v.ID,
			Name:     v.Name,
			Category: v.Category.String(),
		})
	}
	return out
}
