package engine

import (
	"fmt"

	"github.com/tartampluch/go-experience/internal/config"
)

// Calculator converts date pairs into durations and sums entries.
// Implementations are stateless and safe to share.
type Calculator interface {
	// Name returns the algorithm identifier (config.AlgorithmCalendar, config.AlgorithmBucketed).
	Name() string

	// Compute returns the duration between the two dates of p.
	Compute(p DatePair) Duration

	// Aggregate combines the durations of all entries into one total.
	Aggregate(entries []Entry) Duration
}

// NewCalculator returns the calculator registered under name.
func NewCalculator(name string) (Calculator, error) {
	switch name {
	case config.AlgorithmCalendar:
		return CalendarCalculator{}, nil
	case config.AlgorithmBucketed:
		return BucketedCalculator{}, nil
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrAlgorithmUnknown, name)
	}
}
