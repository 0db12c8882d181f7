package booking

const (
	MsgLeadTimeCoCurricular = "Co-curricular events must be booked at least 30 days in advance."
	MsgLeadTimeOpenForAll   = "Open-for-All events must be booked at least 20 days in advance."
	MsgLeadTimeClosedClub   = "Closed club events must be booked at least 1 day in advance."
)

// LeadTimeMessage applies the advance-notice rule for the event type. "today"
// is injected by the caller so the rule carries no wall-clock dependence.
// Returns the empty string when the rule passes or when no date is chosen yet.
func LeadTimeMessage(eventType EventType, date Date, today Date) string {
	if date.IsZero() {
		return ""
	}
	if today.DaysUntil(date) >= eventType.MinLeadDays() {
		return ""
	}
	switch eventType {
	case EventCoCurricular:
		return MsgLeadTimeCoCurricular
	case EventOpenForAll:
		return MsgLeadTimeOpenForAll
	default:
		return MsgLeadTimeClosedClub
	}
}
