package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/rickb777/period"
	"github.com/tartampluch/go-experience/internal/config"
)

// Duration is an elapsed time expressed as a years/months/days triple.
// Values are immutable: every computation returns a fresh Duration.
type Duration struct {
	Years  int
	Months int
	Days   int
}

// String renders the duration as "<N> years, <N> months, <N> days".
func (d Duration) String() string {
	return fmt.Sprintf(config.FormatDuration, d.Years, d.Months, d.Days)
}

// ISO renders the duration as an ISO-8601 period (e.g. "P1Y2M3D", "P0D").
func (d Duration) ISO() string {
	return period.NewYMD(d.Years, d.Months, d.Days).String()
}

// IsZero reports whether all three fields are zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// Compare orders durations by years, then months, then days.
// It returns -1, 0 or +1.
func (d Duration) Compare(o Duration) int {
	switch {
	case d.Years != o.Years:
		return sign(d.Years - o.Years)
	case d.Months != o.Months:
		return sign(d.Months - o.Months)
	default:
		return sign(d.Days - o.Days)
	}
}

// normalized folds days into months and months into years using the
// 30-day month and 12-month year constants.
func (d Duration) normalized() Duration {
	for d.Days >= config.DaysPerMonth {
		d.Days -= config.DaysPerMonth
		d.Months++
	}
	for d.Months >= config.MonthsPerYear {
		d.Months -= config.MonthsPerYear
		d.Years++
	}
	return d
}

// fromDays splits a day count into fixed 365-day years and 30-day months.
func fromDays(totalDays int) Duration {
	rest := totalDays % config.DaysPerYear
	return Duration{
		Years:  totalDays / config.DaysPerYear,
		Months: rest / config.DaysPerMonth,
		Days:   rest % config.DaysPerMonth,
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// DatePair is a start/end calendar date combination.
type DatePair struct {
	Start time.Time
	End   time.Time
}

// NewDatePair builds a pair from two instants, keeping only their calendar dates.
func NewDatePair(start, end time.Time) DatePair {
	return DatePair{Start: CalendarDate(start), End: CalendarDate(end)}
}

// Ordered reports whether Start is not after End.
func (p DatePair) Ordered() bool {
	return !p.Start.After(p.End)
}

// ElapsedDays returns ceil(|End - Start| / 24h).
func (p DatePair) ElapsedDays() int {
	d := p.End.Sub(p.Start)
	if d < 0 {
		d = -d
	}
	days := d / config.DayLength
	if d%config.DayLength != 0 {
		days++
	}
	return int(days)
}

// CalendarDate strips the clock and zone from t, keeping the calendar date
// as seen in t's own location. The result is midnight UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(config.DateFormatISO, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", config.ErrDateParse, err)
	}
	return t, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(config.DateFormatISO)
}

// daysIn returns the number of days of month m in year y.
// time.Date normalises day 0 to the last day of the previous month.
func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
