package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"clubvenue/internal/domain/booking"
	"clubvenue/internal/domain/catalog"
	"clubvenue/internal/pkg/clock"
	"clubvenue/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCatalogUnavailable = errs.New("catalog unavailable")
	ErrDraftNotFound      = errs.New("draft not found")
	ErrValidation         = errs.New("validation error")
)

// DraftState is the read model returned to the transport layer after every
// workflow operation.
type DraftState struct {
	ID              uuid.UUID
	EventName       string
	EventType       booking.EventType
	AttendeeBracket booking.AttendeeBracket
	ClubID          uuid.UUID
	Date            string
	StartTime       string
	EndTime         string
	VenueIDs        []uuid.UUID
	Verdict         booking.Verdict
	Submitted       bool
}

type CreateDraftParams struct {
	EventType string
	ClubID    uuid.UUID
}

// DraftChanges is a partial update; nil fields are untouched. Date and the
// time fields accept "" to clear a previous choice.
type DraftChanges struct {
	EventName       *string
	AttendeeBracket *string
	Date            *string
	StartTime       *string
	EndTime         *string
	AddVenues       []uuid.UUID
	RemoveVenues    []uuid.UUID
}

type DraftWorkflow interface {
	CreateDraft(ctx context.Context, params CreateDraftParams) (*DraftState, error)
	UpdateDraft(ctx context.Context, id uuid.UUID, changes DraftChanges) (*DraftState, error)
	GetDraft(ctx context.Context, id uuid.UUID) (*DraftState, error)
	SubmitDraft(ctx context.Context, id uuid.UUID) (*DraftState, error)
}

// SessionManager keeps the live draft sessions of one service instance. The
// sessions are editing state only; accepted bookings live with the scheduling
// authority, not here.
type SessionManager struct {
	gateway CatalogGateway
	checker ConflictChecker
	sink    SubmissionSink
	clock   clock.Clock
	loc     *time.Location
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewSessionManager(
	gateway CatalogGateway,
	checker ConflictChecker,
	sink SubmissionSink,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) *SessionManager {
	return &SessionManager{
		gateway:  gateway,
		checker:  checker,
		sink:     sink,
		clock:    clk,
		loc:      loc,
		logger:   logger,
		sessions: make(map[uuid.UUID]*Session),
	}
}

var _ DraftWorkflow = (*SessionManager)(nil)

// CreateDraft loads the catalog snapshot for the session and opens a draft
// with the event type and organizing club fixed. A catalog load failure is
// fatal to the session: without the snapshot neither venue routing nor club
// resolution can work, so no draft is created at all.
func (m *SessionManager) CreateDraft(ctx context.Context, params CreateDraftParams) (*DraftState, error) {
	eventType := booking.EventType(params.EventType)
	if !eventType.IsValid() {
		return nil, errs.Mark(booking.ErrInvalidEventType, ErrValidation)
	}

	snapshot, err := m.loadSnapshot(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}

	if _, ok := snapshot.Club(params.ClubID); !ok {
		return nil, errs.Mark(catalog.ErrUnknownClub, ErrValidation)
	}

	draft, err := booking.NewDraft(eventType, params.ClubID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	session := NewSession(uuid.New(), draft, snapshot, m.checker, m.sink, m.clock, m.loc, m.logger)

	m.mu.Lock()
	m.sessions[session.ID()] = session
	m.mu.Unlock()

	state := session.state()
	return &state, nil
}

// UpdateDraft applies a partial change set, recomputes the synchronous
// policies and re-issues the conflict check for the new draft snapshot.
func (m *SessionManager) UpdateDraft(ctx context.Context, id uuid.UUID, changes DraftChanges) (*DraftState, error) {
	session, err := m.session(id)
	if err != nil {
		return nil, err
	}

	mutate, err := buildMutation(session.snapshot, changes)
	if err != nil {
		return nil, err
	}

	if _, err := session.Apply(mutate); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	session.RefreshConflict(ctx)

	state := session.state()
	return &state, nil
}

func (m *SessionManager) GetDraft(_ context.Context, id uuid.UUID) (*DraftState, error) {
	session, err := m.session(id)
	if err != nil {
		return nil, err
	}
	state := session.state()
	return &state, nil
}

func (m *SessionManager) SubmitDraft(ctx context.Context, id uuid.UUID) (*DraftState, error) {
	session, err := m.session(id)
	if err != nil {
		return nil, err
	}
	if err := session.Submit(ctx); err != nil {
		return nil, err
	}
	state := session.state()
	return &state, nil
}

func (m *SessionManager) session(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return session, nil
}

func (m *SessionManager) loadSnapshot(ctx context.Context) (*catalog.Snapshot, error) {
	clubs, err := m.gateway.FetchClubs(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load clubs")
	}
	venues, err := m.gateway.FetchVenues(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load venues")
	}
	return catalog.NewSnapshot(clubs, venues), nil
}

func buildMutation(snapshot *catalog.Snapshot, changes DraftChanges) (func(*booking.Draft) error, error) {
	var date *booking.Date
	if changes.Date != nil {
		if *changes.Date == "" {
			date = &booking.Date{}
		} else {
			d, err := booking.ParseDate(*changes.Date)
			if err != nil {
				return nil, errs.Mark(err, ErrValidation)
			}
			date = &d
		}
	}

	var bracket *booking.AttendeeBracket
	if changes.AttendeeBracket != nil {
		b := booking.AttendeeBracket(*changes.AttendeeBracket)
		if !b.IsValid() {
			return nil, errs.Mark(booking.ErrInvalidAttendeeBracket, ErrValidation)
		}
		bracket = &b
	}

	start, err := parseClockChange(changes.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClockChange(changes.EndTime)
	if err != nil {
		return nil, err
	}

	for _, id := range changes.AddVenues {
		if _, ok := snapshot.Venue(id); !ok {
			return nil, errs.Mark(catalog.ErrUnknownVenue, ErrValidation)
		}
	}

	// All inputs were validated above: the closure cannot fail partway and
	// leave the draft half-mutated.
	return func(d *booking.Draft) error {
		if changes.EventName != nil {
			d.SetEventName(*changes.EventName)
		}
		if bracket != nil {
			if err := d.SetAttendeeBracket(*bracket); err != nil {
				return err
			}
		}
		if date != nil {
			d.SetDate(*date)
		}
		if start != nil {
			d.SetStartTime(*start)
		}
		if end != nil {
			d.SetEndTime(*end)
		}
		for _, id := range changes.AddVenues {
			d.SelectVenue(id)
		}
		for _, id := range changes.RemoveVenues {
			d.DeselectVenue(id)
		}
		return nil
	}, nil
}

func parseClockChange(raw *string) (*booking.ClockTime, error) {
	if raw == nil {
		return nil, nil
	}
	if *raw == "" {
		return &booking.ClockTime{}, nil
	}
	ct, err := booking.NewClockTime(*raw)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	return &ct, nil
}
