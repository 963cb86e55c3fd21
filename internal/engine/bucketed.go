package engine

import "github.com/tartampluch/go-experience/internal/config"

// BucketedCalculator measures elapsed days and splits them into fixed
// 365-day years and 30-day months. It is order independent and drifts from
// the calendar for most intervals.
type BucketedCalculator struct{}

// Name implements Calculator.
func (BucketedCalculator) Name() string { return config.AlgorithmBucketed }

// Compute returns the bucketed duration of |p.End - p.Start|.
func (BucketedCalculator) Compute(p DatePair) Duration {
	return fromDays(p.ElapsedDays())
}

// Aggregate sums the raw elapsed days of every entry before splitting once.
func (BucketedCalculator) Aggregate(entries []Entry) Duration {
	total := 0
	for _, e := range entries {
		total += e.Period.ElapsedDays()
	}
	return fromDays(total)
}
