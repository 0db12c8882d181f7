package submissionclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"clubvenue/internal/infra"
	"clubvenue/internal/pkg/config"
	"clubvenue/internal/pkg/errs"
	"clubvenue/internal/usecase"

	"github.com/google/uuid"
)

// Client posts finalized drafts to the booking submission sink.
type Client struct {
	hc      *http.Client
	baseURL string
	logger  *slog.Logger
}

func New(cfg config.SubmissionConfig, logger *slog.Logger) *Client {
	return &Client{
		hc:      &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

var _ usecase.SubmissionSink = (*Client)(nil)

type submissionPayload struct {
	EventName     string      `json:"eventName"`
	EventType     string      `json:"eventType"`
	ClubID        uuid.UUID   `json:"clubId"`
	StartTime     string      `json:"startTime"`
	EndTime       string      `json:"endTime"`
	AttendeeCount int         `json:"attendeeCount"`
	VenueIDs      []uuid.UUID `json:"venueIds"`
}

func (c *Client) Submit(ctx context.Context, sub usecase.BookingSubmission) error {
	payload := submissionPayload{
		EventName:     sub.EventName,
		EventType:     sub.EventType.String(),
		ClubID:        sub.ClubID,
		StartTime:     sub.Start.Format(time.RFC3339),
		EndTime:       sub.End.Format(time.RFC3339),
		AttendeeCount: sub.AttendeeCount,
		VenueIDs:      sub.VenueIDs,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode submission")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build submission request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return infra.WrapClientErr(c.logger, infra.KindUnavailable, "submission sink unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var rejection struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&rejection)
		msg := rejection.Message
		if msg == "" {
			msg = fmt.Sprintf("submission rejected with status %d", resp.StatusCode)
		}
		return infra.WrapClientErr(c.logger, infra.KindRejected, msg, nil)
	}

	return nil
}
