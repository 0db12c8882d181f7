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
	ErrNotSubmittable     = errs.New("draft is not submittable")
	ErrNoVenueSelected    = errs.New("no venue selected")
	ErrIncompleteDraft    = errs.New("draft is missing required fields")
	ErrSubmissionInFlight = errs.New("submission already in flight")
	ErrSubmissionRejected = errs.New("submission rejected")
	ErrAlreadySubmitted   = errs.New("draft already submitted")
)

// Session owns one draft and its latest verdict for the duration of editing.
// It is the single suspension point of the engine: the synchronous policies
// are re-run inline on every change, while the conflict check runs against the
// scheduling authority and is guarded against stale responses by a request
// sequence number. A session is never shared across users.
type Session struct {
	id       uuid.UUID
	snapshot *catalog.Snapshot
	checker  ConflictChecker
	sink     SubmissionSink
	clock    clock.Clock
	loc      *time.Location
	logger   *slog.Logger

	mu         sync.Mutex
	draft      *booking.Draft
	verdict    booking.Verdict
	seq        uint64
	submitting bool
	submitted  bool
}

func NewSession(
	id uuid.UUID,
	draft *booking.Draft,
	snapshot *catalog.Snapshot,
	checker ConflictChecker,
	sink SubmissionSink,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) *Session {
	s := &Session{
		id:       id,
		snapshot: snapshot,
		checker:  checker,
		sink:     sink,
		clock:    clk,
		loc:      loc,
		logger:   logger,
		draft:    draft,
	}
	s.verdict = Evaluate(draft, snapshot, s.today())
	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Apply mutates the draft and recomputes the synchronous policies from
// scratch. The conflict slot is cleared because its inputs may have changed;
// the sequence number is bumped so that any still-outstanding conflict check
// resolves as stale.
func (s *Session) Apply(mutate func(*booking.Draft) error) (booking.Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := mutate(s.draft); err != nil {
		return s.verdict.Clone(), err
	}

	s.seq++
	s.verdict = Evaluate(s.draft, s.snapshot, s.today())
	return s.verdict.Clone(), nil
}

// RefreshConflict issues a conflict check for the current draft snapshot and
// waits for the result. The outcome is merged into the verdict only if no
// newer Apply superseded the request while it was outstanding; a stale
// response is discarded so it can never overwrite a verdict derived from
// newer inputs.
func (s *Session) RefreshConflict(ctx context.Context) booking.Verdict {
	s.mu.Lock()
	issuedSeq := s.seq
	query, ok := BuildConflictQuery(s.draft, s.loc)
	if !ok {
		v := s.verdict.Clone()
		s.mu.Unlock()
		return v
	}
	s.mu.Unlock()

	res, err := s.checker.CheckConflict(ctx, query)
	if err != nil {
		// Infrastructure failure, not user error; keep the two distinguishable
		// for operators even though both land in the warning channel.
		s.logger.Error("conflict check transport failure",
			slog.String("kind", "conflict_check_transport"),
			slog.String("draft_id", s.id.String()),
			slog.String("error", err.Error()),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq != issuedSeq {
		return s.verdict.Clone()
	}
	mergeConflict(&s.verdict, res, err)
	return s.verdict.Clone()
}

func (s *Session) Verdict() booking.Verdict {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verdict.Clone()
}

// Submit hands the finalized draft to the submission sink. It refuses while
// the verdict is not submittable, while another submission is in flight, or
// when required fields are still missing. A rejected submission leaves the
// draft editable for retry.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.submitted {
		s.mu.Unlock()
		return ErrAlreadySubmitted
	}
	if s.submitting {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if !s.draft.HasVenues() {
		s.mu.Unlock()
		return ErrNoVenueSelected
	}
	if !s.draft.HasCompleteWindow() || s.draft.EventName() == "" || !s.draft.AttendeeBracket().IsValid() {
		s.mu.Unlock()
		return ErrIncompleteDraft
	}
	if !s.verdict.Submittable() {
		s.mu.Unlock()
		return ErrNotSubmittable
	}

	sub := BookingSubmission{
		EventName:     s.draft.EventName(),
		EventType:     s.draft.EventType(),
		ClubID:        s.draft.ClubID(),
		Start:         s.draft.Date().At(s.draft.StartTime(), s.loc),
		End:           s.draft.Date().At(s.draft.EndTime(), s.loc),
		AttendeeCount: s.draft.AttendeeBracket().Count(),
		VenueIDs:      s.draft.VenueIDs(),
	}
	s.submitting = true
	s.mu.Unlock()

	err := s.sink.Submit(ctx, sub)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		return errs.Mark(err, ErrSubmissionRejected)
	}
	s.submitted = true
	return nil
}

func (s *Session) today() booking.Date {
	return booking.DateOf(s.clock.Now().In(s.loc))
}

func (s *Session) state() DraftState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DraftState{
		ID:              s.id,
		EventName:       s.draft.EventName(),
		EventType:       s.draft.EventType(),
		AttendeeBracket: s.draft.AttendeeBracket(),
		ClubID:          s.draft.ClubID(),
		Date:            s.draft.Date().String(),
		StartTime:       s.draft.StartTime().String(),
		EndTime:         s.draft.EndTime().String(),
		VenueIDs:        s.draft.VenueIDs(),
		Verdict:         s.verdict.Clone(),
		Submitted:       s.submitted,
	}
}
