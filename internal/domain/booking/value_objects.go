package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid calendar date")
	ErrInvalidClockTime = errors.New("invalid wall-clock time")
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Date is a pure calendar date with no sub-day precision and no time zone.
// The zero value means "not selected yet".
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// DateOf truncates an instant to its calendar date in the instant's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Weekday() time.Weekday {
	return d.atUTC().Weekday()
}

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysUntil is the whole-day calendar distance from d to other. Calendar dates
// make ceil((other − d) / 1 day) an exact integer division.
func (d Date) DaysUntil(other Date) int {
	return int(other.atUTC().Sub(d.atUTC()) / (24 * time.Hour))
}

// At combines the date with a wall-clock time in loc, yielding an absolute instant.
func (d Date) At(ct ClockTime, loc *time.Location) time.Time {
	h, m := ct.hourMinute()
	return time.Date(d.year, d.month, d.day, h, m, 0, 0, loc)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.atUTC().Format(dateLayout)
}

func (d Date) atUTC() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// ClockTime is a same-day "HH:MM" wall-clock time. Zero-padded encoding makes
// lexicographic comparison equivalent to temporal comparison. The zero value
// means "not selected yet".
type ClockTime struct {
	value string
}

func NewClockTime(s string) (ClockTime, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	// Re-format rather than store the input: time.Parse tolerates a
	// single-digit hour, which would break lexicographic ordering.
	return ClockTime{value: t.Format(clockLayout)}, nil
}

func (ct ClockTime) IsZero() bool {
	return ct.value == ""
}

func (ct ClockTime) Before(other ClockTime) bool {
	return ct.value < other.value
}

func (ct ClockTime) String() string {
	return ct.value
}

func (ct ClockTime) hourMinute() (int, int) {
	t, err := time.Parse(clockLayout, ct.value)
	if err != nil {
		return 0, 0
	}
	return t.Hour(), t.Minute()
}
