package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"clubvenue/internal/domain/catalog"
	"clubvenue/internal/infra"
	"clubvenue/internal/pkg/config"
	"clubvenue/internal/pkg/errs"

	"github.com/google/uuid"
)

// Client reads the club/venue catalog service. Legacy category spellings are
// normalized here, at the boundary, so nothing downstream ever sees them.
type Client struct {
	hc      *http.Client
	baseURL string
	logger  *slog.Logger
}

func New(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	return &Client{
		hc:      &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

type clubPayload struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	GroupCategory string    `json:"groupCategory"`
}

type venuePayload struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

func (c *Client) FetchClubs(ctx context.Context) ([]catalog.Club, error) {
	var payload []clubPayload
	if err := c.getJSON(ctx, "/clubs", &payload); err != nil {
		return nil, err
	}

	clubs := make([]catalog.Club, 0, len(payload))
	for _, p := range payload {
		clubs = append(clubs, catalog.Club{
			ID:            p.ID,
			Name:          p.Name,
			GroupCategory: p.GroupCategory,
		})
	}
	return clubs, nil
}

func (c *Client) FetchVenues(ctx context.Context) ([]catalog.Venue, error) {
	var payload []venuePayload
	if err := c.getJSON(ctx, "/venues", &payload); err != nil {
		return nil, err
	}

	venues := make([]catalog.Venue, 0, len(payload))
	for _, p := range payload {
		category, err := catalog.ParseVenueCategory(p.Category)
		if err != nil {
			return nil, infra.WrapClientErr(c.logger, infra.KindBadResponse,
				fmt.Sprintf("venue %s has unrecognized category %q", p.ID, p.Category), err)
		}
		venues = append(venues, catalog.Venue{
			ID:       p.ID,
			Name:     p.Name,
			Category: category,
		})
	}
	return venues, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build catalog request")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return infra.WrapClientErr(c.logger, infra.KindUnavailable, "catalog service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return infra.WrapClientErr(c.logger, infra.KindUnavailable,
			fmt.Sprintf("catalog service returned status %d for %s", resp.StatusCode, path), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapClientErr(c.logger, infra.KindBadResponse, "failed to decode catalog response", err)
	}
	return nil
}
