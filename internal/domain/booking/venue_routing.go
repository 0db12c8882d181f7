package booking

import (
	"clubvenue/internal/domain/catalog"
)

const (
	MsgRestrictedVenues = "Includes Category B Venue(s): Requires Sleazzy Convener & Faculty Approval."
	MsgDirectVenues     = "Category A Venues: Direct booking available (Subject to vacancy)."
)

// ClassifyVenueRouting derives the approval-routing advisory for a venue
// selection. A single restricted venue pulls the whole request into the
// approval workflow. The message is informational only and never blocks
// submission. Returns ok=false for an empty selection.
func ClassifyVenueRouting(categories []catalog.VenueCategory) (Message, bool) {
	if len(categories) == 0 {
		return Message{}, false
	}
	for _, c := range categories {
		if c == catalog.CategoryRestrictedApproval {
			return Message{Text: MsgRestrictedVenues, Level: LevelWarning}, true
		}
	}
	return Message{Text: MsgDirectVenues, Level: LevelSuccess}, true
}
