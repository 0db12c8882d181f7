package booking

// EventType determines the lead-time rule for a draft. It is fixed at draft
// creation and never changes afterwards.
type EventType string

const (
	EventClosedClub   EventType = "closed_club"
	EventOpenForAll   EventType = "open_for_all"
	EventCoCurricular EventType = "co_curricular"
)

func (t EventType) String() string {
	return string(t)
}

func (t EventType) IsValid() bool {
	switch t {
	case EventClosedClub, EventOpenForAll, EventCoCurricular:
		return true
	default:
		return false
	}
}

// MinLeadDays is the minimum number of calendar days between evaluation and
// the event date.
func (t EventType) MinLeadDays() int {
	switch t {
	case EventCoCurricular:
		return 30
	case EventOpenForAll:
		return 20
	default:
		return 1
	}
}

// AttendeeBracket is the expected-attendance range picked by the organizer.
type AttendeeBracket string

const (
	BracketUpTo50   AttendeeBracket = "up_to_50"
	BracketUpTo100  AttendeeBracket = "up_to_100"
	BracketUpTo250  AttendeeBracket = "up_to_250"
	BracketAbove250 AttendeeBracket = "above_250"
)

func (b AttendeeBracket) String() string {
	return string(b)
}

func (b AttendeeBracket) IsValid() bool {
	switch b {
	case BracketUpTo50, BracketUpTo100, BracketUpTo250, BracketAbove250:
		return true
	default:
		return false
	}
}

// Count is the representative attendance figure reported to the submission sink.
func (b AttendeeBracket) Count() int {
	switch b {
	case BracketUpTo50:
		return 50
	case BracketUpTo100:
		return 100
	case BracketUpTo250:
		return 250
	case BracketAbove250:
		return 500
	default:
		return 0
	}
}

// WarningKind identifies one slot of the eligibility verdict.
type WarningKind string

const (
	WarnTimeline     WarningKind = "timeline"
	WarnHours        WarningKind = "hours"
	WarnConflict     WarningKind = "conflict"
	WarnVenueRouting WarningKind = "venue_routing"
)

type MessageLevel string

const (
	LevelWarning MessageLevel = "warning"
	LevelSuccess MessageLevel = "success"
)

// Message is one advisory or blocking entry of a verdict.
type Message struct {
	Text  string
	Level MessageLevel
}
