package usecase

import (
	"time"

	"clubvenue/internal/domain/booking"
	"clubvenue/internal/domain/catalog"
)

// MsgConflictCheckFailed is surfaced when the scheduling authority cannot be
// reached. It rides the same warning channel as rule violations but blocks
// submission out of caution rather than because a rule was broken.
const MsgConflictCheckFailed = "Could not verify conflicts. Please check your connection and try again."

// Evaluate runs the three synchronous policies against the draft and merges
// their messages into one verdict. It is pure: identical draft, snapshot and
// today always produce an identical verdict, and nothing is retained between
// calls. The conflict slot stays empty here; see Session for the async check.
func Evaluate(d *booking.Draft, snap *catalog.Snapshot, today booking.Date) booking.Verdict {
	v := booking.NewVerdict()

	if msg := booking.LeadTimeMessage(d.EventType(), d.Date(), today); msg != "" {
		v.Set(booking.WarnTimeline, booking.Message{Text: msg, Level: booking.LevelWarning})
	}
	if msg := booking.OperatingHoursMessage(d.Date(), d.StartTime(), d.EndTime()); msg != "" {
		v.Set(booking.WarnHours, booking.Message{Text: msg, Level: booking.LevelWarning})
	}
	if msg, ok := booking.ClassifyVenueRouting(snap.VenueCategories(d.VenueIDs())); ok {
		v.Set(booking.WarnVenueRouting, msg)
	}

	return v
}

// BuildConflictQuery derives the scheduling-authority query from the draft.
// ok is false while date, start or end is still unset, in which case there is
// nothing to check.
func BuildConflictQuery(d *booking.Draft, loc *time.Location) (ConflictQuery, bool) {
	if !d.HasCompleteWindow() {
		return ConflictQuery{}, false
	}
	return ConflictQuery{
		Start:    d.Date().At(d.StartTime(), loc),
		End:      d.Date().At(d.EndTime(), loc),
		ClubID:   d.ClubID(),
		VenueIDs: d.VenueIDs(),
	}, true
}

// mergeConflict writes the outcome of one conflict check into the verdict.
// A transport error maps to the fail-closed transport message; a clean
// no-conflict result leaves the slot empty.
func mergeConflict(v *booking.Verdict, res ConflictResult, err error) {
	switch {
	case err != nil:
		v.Set(booking.WarnConflict, booking.Message{Text: MsgConflictCheckFailed, Level: booking.LevelWarning})
	case res.HasConflict:
		v.Set(booking.WarnConflict, booking.Message{Text: res.Message, Level: booking.LevelWarning})
	default:
		v.Clear(booking.WarnConflict)
	}
}
