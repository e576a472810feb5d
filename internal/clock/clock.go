// Package clock supplies the current instant and calendar-day keys.
//
// Ledger, rollover and aggregation code never calls time.Now directly;
// they take a Clock so tests can pin the day.
package clock

import "time"

// DayLayout is the calendar-day key format.
const DayLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fixed always returns T.
type Fixed struct {
	T time.Time
}

func (c Fixed) Now() time.Time { return c.T }

// Func adapts a function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// DayKey returns the calendar-day key of t in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// Today returns the calendar-day key of c.Now().
func Today(c Clock) string {
	return DayKey(c.Now())
}

// ParseDay validates a calendar-day key.
func ParseDay(day string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, day, time.Local)
}
