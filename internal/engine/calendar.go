package engine

import (
	"time"

	"github.com/tartampluch/go-experience/internal/config"
)

// CalendarCalculator subtracts dates field by field using real month lengths.
// Compute expects p.Start <= p.End; the ledger rejects reversed pairs before
// they get here.
type CalendarCalculator struct{}

// Name implements Calculator.
func (CalendarCalculator) Name() string { return config.AlgorithmCalendar }

// Compute returns the calendar difference between p.Start and p.End.
//
// When the day of month goes negative one month is borrowed, and the day
// count is measured from the month anniversary of Start. The anniversary is
// clamped to the end of short months, so Jan 31 -> Mar 1 is one month
// (anniversary Feb 28) and one day. Whenever Start's day exists in the month
// preceding End, this is the same as adding that month's length.
func (CalendarCalculator) Compute(p DatePair) Duration {
	start, end := CalendarDate(p.Start), CalendarDate(p.End)

	months := (end.Year()-start.Year())*config.MonthsPerYear + int(end.Month()-start.Month())
	days := end.Day() - start.Day()

	if days < 0 {
		months--
		days = int(end.Sub(anniversary(start, months)) / config.DayLength)
	}

	return Duration{
		Years:  months / config.MonthsPerYear,
		Months: months % config.MonthsPerYear,
		Days:   days,
	}
}

// Aggregate sums the cached per-entry durations field by field, then folds
// days >= 30 into months and months >= 12 into years.
func (CalendarCalculator) Aggregate(entries []Entry) Duration {
	var total Duration
	for _, e := range entries {
		total.Years += e.Duration.Years
		total.Months += e.Duration.Months
		total.Days += e.Duration.Days
	}
	return total.normalized()
}

// anniversary returns start shifted by n months, clamping the day to the
// length of the target month.
func anniversary(start time.Time, n int) time.Time {
	first := time.Date(start.Year(), start.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	day := min(start.Day(), daysIn(first.Year(), first.Month()))
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
