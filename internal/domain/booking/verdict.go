package booking

// Verdict is the aggregated output of one eligibility evaluation: at most one
// message per warning kind plus the derived submission gate.
type Verdict struct {
	messages map[WarningKind]Message
}

func NewVerdict() Verdict {
	return Verdict{messages: make(map[WarningKind]Message)}
}

func (v *Verdict) Set(kind WarningKind, msg Message) {
	if v.messages == nil {
		v.messages = make(map[WarningKind]Message)
	}
	v.messages[kind] = msg
}

func (v *Verdict) Clear(kind WarningKind) {
	delete(v.messages, kind)
}

func (v Verdict) Message(kind WarningKind) (Message, bool) {
	msg, ok := v.messages[kind]
	return msg, ok
}

func (v Verdict) Has(kind WarningKind) bool {
	_, ok := v.messages[kind]
	return ok
}

// Submittable is false while any of the blocking kinds carries a message.
// Venue routing is advisory and never participates in the gate.
func (v Verdict) Submittable() bool {
	return !v.Has(WarnTimeline) && !v.Has(WarnHours) && !v.Has(WarnConflict)
}

func (v Verdict) Messages() map[WarningKind]Message {
	out := make(map[WarningKind]Message, len(v.messages))
	for k, m := range v.messages {
		out[k] = m
	}
	return out
}

func (v Verdict) Clone() Verdict {
	return Verdict{messages: v.Messages()}
}

// Equal makes verdicts comparable with go-cmp.
func (v Verdict) Equal(other Verdict) bool {
	if len(v.messages) != len(other.messages) {
		return false
	}
	for k, m := range v.messages {
		if om, ok := other.messages[k]; !ok || om != m {
			return false
		}
	}
	return true
}
