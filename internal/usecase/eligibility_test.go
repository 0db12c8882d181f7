//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"clubvenue/internal/domain/booking"
	"clubvenue/internal/usecase"
	"clubvenue/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday; the builder default event date lands two days later on a weekday.
var today = booking.NewDate(2025, time.June, 3)

func TestEvaluate(t *testing.T) {
	t.Run("complete closed-club draft passes everything", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		draft, err := b.BuildDomain()
		require.NoError(t, err)

		verdict := usecase.Evaluate(draft, b.BuildSnapshot(), today)

		assert.False(t, verdict.Has(booking.WarnTimeline))
		assert.False(t, verdict.Has(booking.WarnHours))
		assert.False(t, verdict.Has(booking.WarnConflict))
		assert.True(t, verdict.Submittable())

		routing, ok := verdict.Message(booking.WarnVenueRouting)
		require.True(t, ok)
		assert.Equal(t, booking.MsgDirectVenues, routing.Text)
		assert.Equal(t, booking.LevelSuccess, routing.Level)
	})

	t.Run("co-curricular five days out blocks regardless of other fields", func(t *testing.T) {
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.EventType = booking.EventCoCurricular
			b.Date = "2025-06-08" // today+5
		})
		draft, err := b.BuildDomain()
		require.NoError(t, err)

		verdict := usecase.Evaluate(draft, b.BuildSnapshot(), today)

		msg, ok := verdict.Message(booking.WarnTimeline)
		require.True(t, ok)
		assert.Equal(t, booking.MsgLeadTimeCoCurricular, msg.Text)
		assert.False(t, verdict.Submittable())
	})

	t.Run("restricted venue adds advisory without blocking", func(t *testing.T) {
		restricted := builder.NewDraftBuilder()
		restricted.RestrVenues = append(restricted.RestrVenues, uuid.New())
		draft, err := restricted.BuildDomain()
		require.NoError(t, err)

		verdict := usecase.Evaluate(draft, restricted.BuildSnapshot(), today)

		routing, ok := verdict.Message(booking.WarnVenueRouting)
		require.True(t, ok)
		assert.Equal(t, booking.MsgRestrictedVenues, routing.Text)
		assert.Equal(t, booking.LevelWarning, routing.Level)
		assert.True(t, verdict.Submittable())
	})

	t.Run("empty draft has no messages at all", func(t *testing.T) {
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.Date = ""
			b.StartTime = ""
			b.EndTime = ""
			b.DirectVenues = nil
		})
		draft, err := b.BuildDomain()
		require.NoError(t, err)

		verdict := usecase.Evaluate(draft, b.BuildSnapshot(), today)

		assert.Empty(t, verdict.Messages())
		assert.True(t, verdict.Submittable())
	})

	t.Run("evaluation is idempotent", func(t *testing.T) {
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.EventType = booking.EventOpenForAll
			b.Date = "2025-06-10"
			b.StartTime = "07:00"
		})
		draft, err := b.BuildDomain()
		require.NoError(t, err)
		snap := b.BuildSnapshot()

		first := usecase.Evaluate(draft, snap, today)
		second := usecase.Evaluate(draft, snap, today)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Verdict mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestVerdictSubmittable(t *testing.T) {
	blocking := []booking.WarningKind{booking.WarnTimeline, booking.WarnHours, booking.WarnConflict}

	for _, kind := range blocking {
		t.Run(string(kind)+" blocks submission", func(t *testing.T) {
			v := booking.NewVerdict()
			v.Set(kind, booking.Message{Text: "blocked", Level: booking.LevelWarning})
			assert.False(t, v.Submittable())
		})
	}

	t.Run("venue routing alone never blocks", func(t *testing.T) {
		v := booking.NewVerdict()
		v.Set(booking.WarnVenueRouting, booking.Message{Text: booking.MsgRestrictedVenues, Level: booking.LevelWarning})
		assert.True(t, v.Submittable())
	})
}

func TestBuildConflictQuery(t *testing.T) {
	loc := time.UTC

	t.Run("combines date and wall-clock times into instants", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		draft, err := b.BuildDomain()
		require.NoError(t, err)

		q, ok := usecase.BuildConflictQuery(draft, loc)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.June, 5, 17, 0, 0, 0, loc), q.Start)
		assert.Equal(t, time.Date(2025, time.June, 5, 18, 0, 0, 0, loc), q.End)
		assert.Equal(t, b.ClubID, q.ClubID)
		assert.Equal(t, draft.VenueIDs(), q.VenueIDs)
	})

	t.Run("incomplete window yields no query", func(t *testing.T) {
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.EndTime = ""
		})
		draft, err := b.BuildDomain()
		require.NoError(t, err)

		_, ok := usecase.BuildConflictQuery(draft, loc)
		assert.False(t, ok)
	})
}
