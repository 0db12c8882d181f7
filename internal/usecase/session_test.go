//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"clubvenue/internal/domain/booking"
	"clubvenue/internal/pkg/clock"
	"clubvenue/internal/usecase"
	"clubvenue/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkerFunc func(ctx context.Context, q usecase.ConflictQuery) (usecase.ConflictResult, error)

func (f checkerFunc) CheckConflict(ctx context.Context, q usecase.ConflictQuery) (usecase.ConflictResult, error) {
	return f(ctx, q)
}

type sinkFunc func(ctx context.Context, sub usecase.BookingSubmission) error

func (f sinkFunc) Submit(ctx context.Context, sub usecase.BookingSubmission) error {
	return f(ctx, sub)
}

// stubChecker hands each incoming check to the test over a channel so the
// test decides when, and in which order, checks resolve.
type stubChecker struct {
	calls chan conflictCall
}

type conflictCall struct {
	q     usecase.ConflictQuery
	reply chan conflictReply
}

type conflictReply struct {
	res usecase.ConflictResult
	err error
}

func newStubChecker() *stubChecker {
	return &stubChecker{calls: make(chan conflictCall, 4)}
}

func (s *stubChecker) CheckConflict(ctx context.Context, q usecase.ConflictQuery) (usecase.ConflictResult, error) {
	reply := make(chan conflictReply)
	s.calls <- conflictCall{q: q, reply: reply}
	r := <-reply
	return r.res, r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func noSink() usecase.SubmissionSink {
	return sinkFunc(func(ctx context.Context, sub usecase.BookingSubmission) error {
		return errors.New("unexpected submission")
	})
}

func newSessionWith(t *testing.T, b *builder.DraftBuilder, checker usecase.ConflictChecker, sink usecase.SubmissionSink) *usecase.Session {
	t.Helper()
	draft, err := b.BuildDomain()
	require.NoError(t, err)
	clk := clock.NewMockClock(time.Date(2025, time.June, 3, 10, 0, 0, 0, time.UTC))
	return usecase.NewSession(uuid.New(), draft, b.BuildSnapshot(), checker, sink, clk, time.UTC, discardLogger())
}

func TestSessionRefreshConflict(t *testing.T) {
	t.Run("conflict result carries the authority message and blocks", func(t *testing.T) {
		checker := checkerFunc(func(ctx context.Context, q usecase.ConflictQuery) (usecase.ConflictResult, error) {
			return usecase.ConflictResult{HasConflict: true, Message: "Auditorium already booked 17:00-19:00."}, nil
		})
		session := newSessionWith(t, builder.NewDraftBuilder(), checker, noSink())

		verdict := session.RefreshConflict(context.Background())

		msg, ok := verdict.Message(booking.WarnConflict)
		require.True(t, ok)
		assert.Equal(t, "Auditorium already booked 17:00-19:00.", msg.Text)
		assert.False(t, verdict.Submittable())
	})

	t.Run("transport failure fails closed with the fixed message", func(t *testing.T) {
		checker := checkerFunc(func(ctx context.Context, q usecase.ConflictQuery) (usecase.ConflictResult, error) {
			return usecase.ConflictResult{}, errors.New("connection refused")
		})
		session := newSessionWith(t, builder.NewDraftBuilder(), checker, noSink())

		verdict := session.RefreshConflict(context.Background())

		msg, ok := verdict.Message(booking.WarnConflict)
		require.True(t, ok)
		assert.Equal(t, usecase.MsgConflictCheckFailed, msg.Text)
		assert.False(t, verdict.Submittable())
	})

	t.Run("no check is issued while the window is incomplete", func(t *testing.T) {
		var called atomic.Bool
		checker := checkerFunc(func(ctx context.Context, q usecase.ConflictQuery) (usecase.ConflictResult, error) {
			called.Store(true)
			return usecase.ConflictResult{}, nil
		})
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.EndTime = ""
		})
		session := newSessionWith(t, b, checker, noSink())

		verdict := session.RefreshConflict(context.Background())

		assert.False(t, called.Load())
		assert.False(t, verdict.Has(booking.WarnConflict))
	})

	t.Run("clean result clears a previous conflict", func(t *testing.T) {
		var hasConflict atomic.Bool
		hasConflict.Store(true)
		checker := checkerFunc(func(ctx context.Context, q usecase.ConflictQuery) (usecase.ConflictResult, error) {
			return usecase.ConflictResult{HasConflict: hasConflict.Load(), Message: "overlap"}, nil
		})
		session := newSessionWith(t, builder.NewDraftBuilder(), checker, noSink())

		verdict := session.RefreshConflict(context.Background())
		require.True(t, verdict.Has(booking.WarnConflict))

		// Re-running the check after the overlap is gone must free the slot.
		hasConflict.Store(false)
		_, err := session.Apply(func(d *booking.Draft) error { return nil })
		require.NoError(t, err)
		verdict = session.RefreshConflict(context.Background())

		assert.False(t, verdict.Has(booking.WarnConflict))
		assert.True(t, verdict.Submittable())
	})

	t.Run("stale response never overwrites a newer verdict", func(t *testing.T) {
		checker := newStubChecker()
		session := newSessionWith(t, builder.NewDraftBuilder(), checker, noSink())

		firstDone := make(chan booking.Verdict, 1)
		go func() {
			firstDone <- session.RefreshConflict(context.Background())
		}()
		firstCall := <-checker.calls

		// The draft changes while the first check is still outstanding.
		later, err := booking.ParseDate("2025-06-06")
		require.NoError(t, err)
		_, err = session.Apply(func(d *booking.Draft) error {
			d.SetDate(later)
			return nil
		})
		require.NoError(t, err)

		secondDone := make(chan booking.Verdict, 1)
		go func() {
			secondDone <- session.RefreshConflict(context.Background())
		}()
		secondCall := <-checker.calls
		assert.NotEqual(t, firstCall.q.Start, secondCall.q.Start)

		// The newer check resolves clean first; the older one then reports a
		// conflict that belongs to a date the user already moved away from.
		secondCall.reply <- conflictReply{res: usecase.ConflictResult{}}
		<-secondDone
		firstCall.reply <- conflictReply{res: usecase.ConflictResult{HasConflict: true, Message: "stale overlap"}}
		<-firstDone

		verdict := session.Verdict()
		assert.False(t, verdict.Has(booking.WarnConflict))
		assert.True(t, verdict.Submittable())
	})
}

func TestSessionSubmit(t *testing.T) {
	noConflict := checkerFunc(func(ctx context.Context, q usecase.ConflictQuery) (usecase.ConflictResult, error) {
		return usecase.ConflictResult{}, nil
	})

	t.Run("submits the finalized draft once", func(t *testing.T) {
		var got usecase.BookingSubmission
		sink := sinkFunc(func(ctx context.Context, sub usecase.BookingSubmission) error {
			got = sub
			return nil
		})
		b := builder.NewDraftBuilder()
		session := newSessionWith(t, b, noConflict, sink)

		require.NoError(t, session.Submit(context.Background()))

		assert.Equal(t, "Robotics Workshop", got.EventName)
		assert.Equal(t, booking.EventClosedClub, got.EventType)
		assert.Equal(t, b.ClubID, got.ClubID)
		assert.Equal(t, time.Date(2025, time.June, 5, 17, 0, 0, 0, time.UTC), got.Start)
		assert.Equal(t, time.Date(2025, time.June, 5, 18, 0, 0, 0, time.UTC), got.End)
		assert.Equal(t, 50, got.AttendeeCount)
		assert.Equal(t, b.DirectVenues, got.VenueIDs)

		err := session.Submit(context.Background())
		assert.ErrorIs(t, err, usecase.ErrAlreadySubmitted)
	})

	t.Run("refuses without a venue", func(t *testing.T) {
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.DirectVenues = nil
		})
		session := newSessionWith(t, b, noConflict, noSink())

		err := session.Submit(context.Background())
		assert.ErrorIs(t, err, usecase.ErrNoVenueSelected)
	})

	t.Run("refuses while required fields are missing", func(t *testing.T) {
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.EventName = ""
		})
		session := newSessionWith(t, b, noConflict, noSink())

		err := session.Submit(context.Background())
		assert.ErrorIs(t, err, usecase.ErrIncompleteDraft)
	})

	t.Run("refuses while a blocking warning is active", func(t *testing.T) {
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.EventType = booking.EventOpenForAll // needs 20 days, date is 2 days out
		})
		session := newSessionWith(t, b, noConflict, noSink())

		err := session.Submit(context.Background())
		assert.ErrorIs(t, err, usecase.ErrNotSubmittable)
	})

	t.Run("refuses while a submission is in flight", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		sink := sinkFunc(func(ctx context.Context, sub usecase.BookingSubmission) error {
			close(entered)
			<-release
			return nil
		})
		session := newSessionWith(t, builder.NewDraftBuilder(), noConflict, sink)

		done := make(chan error, 1)
		go func() {
			done <- session.Submit(context.Background())
		}()
		<-entered

		err := session.Submit(context.Background())
		assert.ErrorIs(t, err, usecase.ErrSubmissionInFlight)

		close(release)
		require.NoError(t, <-done)
	})

	t.Run("rejection leaves the draft editable for retry", func(t *testing.T) {
		var attempts atomic.Int32
		sink := sinkFunc(func(ctx context.Context, sub usecase.BookingSubmission) error {
			if attempts.Add(1) == 1 {
				return errors.New("venue withdrawn")
			}
			return nil
		})
		session := newSessionWith(t, builder.NewDraftBuilder(), noConflict, sink)

		err := session.Submit(context.Background())
		require.ErrorIs(t, err, usecase.ErrSubmissionRejected)

		// The session is still live: edits apply and a retry goes through.
		_, err = session.Apply(func(d *booking.Draft) error {
			d.SetEventName("Robotics Workshop v2")
			return nil
		})
		require.NoError(t, err)
		require.NoError(t, session.Submit(context.Background()))
		assert.Equal(t, int32(2), attempts.Load())
	})
}
