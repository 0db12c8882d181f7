package catalog

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnknownCategory = errors.New("unknown venue category")
	ErrUnknownClub     = errors.New("club not found in catalog")
	ErrUnknownVenue    = errors.New("venue not found in catalog")
)

// VenueCategory is the canonical approval routing attribute of a venue.
type VenueCategory string

const (
	// CategoryDirect venues are bookable without extra approval.
	CategoryDirect VenueCategory = "A"
	// CategoryRestrictedApproval venues need the approval workflow before confirmation.
	CategoryRestrictedApproval VenueCategory = "B"
)

func (c VenueCategory) String() string {
	return string(c)
}

func (c VenueCategory) IsValid() bool {
	switch c {
	case CategoryDirect, CategoryRestrictedApproval:
		return true
	default:
		return false
	}
}

// ParseVenueCategory normalizes the two historical encodings the catalog service
// still emits. Canonical "A"/"B" pass through; the legacy spellings map onto them.
func ParseVenueCategory(raw string) (VenueCategory, error) {
	switch raw {
	case "A", "auto_approval":
		return CategoryDirect, nil
	case "B", "needs_approval":
		return CategoryRestrictedApproval, nil
	default:
		return "", ErrUnknownCategory
	}
}

type Club struct {
	ID            uuid.UUID
	Name          string
	GroupCategory string
}

type Venue struct {
	ID       uuid.UUID
	Name     string
	Category VenueCategory
}
