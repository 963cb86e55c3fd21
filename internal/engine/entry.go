package engine

// Entry is one recorded employment period.
// It decouples the UI table from the duration arithmetic.
type Entry struct {
	// CompanyName is the employer as typed by the user (trimmed, never empty).
	CompanyName string

	// Period holds the start and end calendar dates.
	Period DatePair

	// Duration is computed once when the entry is added and never recomputed,
	// even if the calculator changes later.
	Duration Duration
}

// NewEntry builds an entry and computes its duration with calc.
func NewEntry(company string, p DatePair, calc Calculator) Entry {
	return Entry{
		CompanyName: company,
		Period:      p,
		Duration:    calc.Compute(p),
	}
}
