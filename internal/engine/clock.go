package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The ledger uses it to know "today" when resetting the form.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the current calendar date of c.
func Today(c Clock) time.Time {
	return CalendarDate(c.Now())
}
