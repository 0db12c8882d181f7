package usecase

import (
	"context"
	"time"

	"clubvenue/internal/domain/booking"
	"clubvenue/internal/domain/catalog"

	"github.com/google/uuid"
)

// CatalogGateway loads the club/venue catalog from the external catalog
// service. Implementations normalize legacy category spellings before the
// data enters the engine.
type CatalogGateway interface {
	FetchClubs(ctx context.Context) ([]catalog.Club, error)
	FetchVenues(ctx context.Context) ([]catalog.Venue, error)
}

// ConflictQuery is the time-window filter sent to the scheduling authority.
// Start and End are absolute instants in the booking's local time zone.
type ConflictQuery struct {
	Start    time.Time
	End      time.Time
	ClubID   uuid.UUID
	VenueIDs []uuid.UUID
}

type ConflictResult struct {
	HasConflict bool
	Message     string
}

// ConflictChecker asks the scheduling authority for overlapping bookings.
// A returned error means the authority could not be reached, which is distinct
// from a clean no-conflict result.
type ConflictChecker interface {
	CheckConflict(ctx context.Context, q ConflictQuery) (ConflictResult, error)
}

// BookingSubmission is the finalized draft handed to the submission sink.
type BookingSubmission struct {
	EventName     string
	EventType     booking.EventType
	ClubID        uuid.UUID
	Start         time.Time
	End           time.Time
	AttendeeCount int
	VenueIDs      []uuid.UUID
}

// SubmissionSink accepts a finalized booking request. The engine never calls
// it while the verdict is not submittable or a submission is in flight.
type SubmissionSink interface {
	Submit(ctx context.Context, sub BookingSubmission) error
}
