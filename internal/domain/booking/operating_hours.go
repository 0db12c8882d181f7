package booking

const (
	MsgEndBeforeStart = "End time must be after start time."
	MsgWeekendHours   = "On weekends, bookings are allowed from 8:00 AM to 12:00 AM."
	MsgWeekdayHours   = "On weekdays, bookings are only allowed from 4:00 PM to 12:00 AM."
)

var (
	weekendOpening = ClockTime{value: "08:00"}
	weekdayOpening = ClockTime{value: "16:00"}
)

// OperatingHoursMessage validates the proposed same-day window against the
// allowed hours for the day of week. Only the start lower bound is checked;
// the implicit upper bound is end of day. Returns the empty string when the
// rule passes or when date, start or end is still unset.
func OperatingHoursMessage(date Date, start, end ClockTime) string {
	if date.IsZero() || start.IsZero() || end.IsZero() {
		return ""
	}
	if !start.Before(end) {
		return MsgEndBeforeStart
	}
	if date.IsWeekend() {
		if start.Before(weekendOpening) {
			return MsgWeekendHours
		}
		return ""
	}
	if start.Before(weekdayOpening) {
		return MsgWeekdayHours
	}
	return ""
}
