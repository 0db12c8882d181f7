package booking

import (
	"errors"
	"sort"

	"github.com/google/uuid"
)

var (
	ErrInvalidEventType       = errors.New("invalid event type")
	ErrInvalidAttendeeBracket = errors.New("invalid attendee bracket")
	ErrMissingOrganizingClub  = errors.New("organizing club is required")
)

// Draft is an in-progress booking request. It has no identity until accepted
// by the scheduling authority; the caller mutates it field by field while the
// eligibility engine re-derives a verdict after every change.
type Draft struct {
	eventName string
	eventType EventType
	attendees AttendeeBracket
	clubID    uuid.UUID
	date      Date
	start     ClockTime
	end       ClockTime
	venueIDs  map[uuid.UUID]struct{}
}

// NewDraft fixes the event type and the organizing club up front. The club is
// prefilled from the caller's membership and locked; the event type determines
// the lead-time rule and cannot change once chosen.
func NewDraft(eventType EventType, clubID uuid.UUID) (*Draft, error) {
	if !eventType.IsValid() {
		return nil, ErrInvalidEventType
	}
	if clubID == uuid.Nil {
		return nil, ErrMissingOrganizingClub
	}
	return &Draft{
		eventType: eventType,
		clubID:    clubID,
		venueIDs:  make(map[uuid.UUID]struct{}),
	}, nil
}

func (d *Draft) SetEventName(name string) {
	d.eventName = name
}

func (d *Draft) SetAttendeeBracket(b AttendeeBracket) error {
	if !b.IsValid() {
		return ErrInvalidAttendeeBracket
	}
	d.attendees = b
	return nil
}

func (d *Draft) SetDate(date Date) {
	d.date = date
}

func (d *Draft) SetStartTime(ct ClockTime) {
	d.start = ct
}

func (d *Draft) SetEndTime(ct ClockTime) {
	d.end = ct
}

// SelectVenue adds a venue to the selection. The set semantics make duplicate
// selections impossible by construction.
func (d *Draft) SelectVenue(id uuid.UUID) {
	if id == uuid.Nil {
		return
	}
	d.venueIDs[id] = struct{}{}
}

func (d *Draft) DeselectVenue(id uuid.UUID) {
	delete(d.venueIDs, id)
}

func (d *Draft) EventName() string                { return d.eventName }
func (d *Draft) EventType() EventType             { return d.eventType }
func (d *Draft) AttendeeBracket() AttendeeBracket { return d.attendees }
func (d *Draft) ClubID() uuid.UUID                { return d.clubID }
func (d *Draft) Date() Date                       { return d.date }
func (d *Draft) StartTime() ClockTime             { return d.start }
func (d *Draft) EndTime() ClockTime               { return d.end }

func (d *Draft) HasVenues() bool {
	return len(d.venueIDs) > 0
}

// VenueIDs returns the selection in a stable order; the selection itself is
// order-irrelevant.
func (d *Draft) VenueIDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(d.venueIDs))
	for id := range d.venueIDs {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// HasCompleteWindow reports whether date, start and end are all chosen, i.e.
// whether a conflict query can be built.
func (d *Draft) HasCompleteWindow() bool {
	return !d.date.IsZero() && !d.start.IsZero() && !d.end.IsZero()
}

func (d *Draft) Clone() *Draft {
	venues := make(map[uuid.UUID]struct{}, len(d.venueIDs))
	for id := range d.venueIDs {
		venues[id] = struct{}{}
	}
	clone := *d
	clone.venueIDs = venues
	return &clone
}
