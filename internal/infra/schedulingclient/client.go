package schedulingclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clubvenue/internal/infra"
	"clubvenue/internal/pkg/config"
	"clubvenue/internal/pkg/errs"
	"clubvenue/internal/usecase"
)

// Client queries the scheduling authority that holds the ground truth of
// existing bookings. Any transport or availability failure is returned as an
// error so the caller can fail closed; a clean no-conflict result never
// carries an error.
type Client struct {
	hc      *http.Client
	baseURL string
	logger  *slog.Logger
}

func New(cfg config.SchedulingConfig, logger *slog.Logger) *Client {
	return &Client{
		hc:      &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

var _ usecase.ConflictChecker = (*Client)(nil)

type conflictPayload struct {
	HasConflict bool   `json:"hasConflict"`
	Message     string `json:"message,omitempty"`
}

func (c *Client) CheckConflict(ctx context.Context, q usecase.ConflictQuery) (usecase.ConflictResult, error) {
	params := url.Values{}
	params.Set("startTime", q.Start.Format(time.RFC3339))
	params.Set("endTime", q.End.Format(time.RFC3339))
	params.Set("clubId", q.ClubID.String())
	if len(q.VenueIDs) > 0 {
		ids := make([]string, 0, len(q.VenueIDs))
		for _, id := range q.VenueIDs {
			ids = append(ids, id.String())
		}
		params.Set("venueIds", strings.Join(ids, ","))
	}

	reqURL := c.baseURL + "/bookings/conflicts?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return usecase.ConflictResult{}, errs.Wrap(err, "failed to build conflict query")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return usecase.ConflictResult{}, infra.WrapClientErr(c.logger, infra.KindUnavailable, "scheduling authority unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return usecase.ConflictResult{}, infra.WrapClientErr(c.logger, infra.KindUnavailable,
			fmt.Sprintf("scheduling authority returned status %d", resp.StatusCode), nil)
	}

	var payload conflictPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return usecase.ConflictResult{}, infra.WrapClientErr(c.logger, infra.KindBadResponse, "failed to decode conflict response", err)
	}

	return usecase.ConflictResult{
		HasConflict: payload.HasConflict,
		Message:     payload.Message,
	}, nil
}
