// Package ledger holds the employment-period form and its ordered list of
// entries as an explicit state value. Every user action is a Command; Reduce
// applies one to a State and returns a new State without mutating the input.
package ledger

import (
	"errors"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/tartampluch/go-experience/internal/config"
	"github.com/tartampluch/go-experience/internal/engine"
)

// Validation failures. They are never returned across the UI boundary;
// they are stored per field in State.Errors.
var (
	ErrMissingCompanyName = errors.New(config.ErrCompanyRequired)
	ErrStartAfterEnd      = errors.New(config.ErrStartAfterEnd)
)

// Field names a form input that can carry a validation message.
type Field string

const (
	FieldCompanyName Field = "companyName"
	FieldDate        Field = "date"
)

// FieldErrors maps a form field to its validation failure.
type FieldErrors map[Field]error

// Error joins the messages in field order so FieldErrors can be used as an error.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fe[Field(f)].Error())
	}
	return strings.Join(msgs, "; ")
}

// Form is the data currently typed into the input fields.
type Form struct {
	CompanyName string
	StartDate   time.Time
	EndDate     time.Time
}

// NewForm returns the default form: no company, today for both dates.
func NewForm(today time.Time) Form {
	d := engine.CalendarDate(today)
	return Form{StartDate: d, EndDate: d}
}

// Validate checks the form and returns nil when it can become an entry.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.CompanyName) == "" {
		errs[FieldCompanyName] = ErrMissingCompanyName
	}
	if !engine.NewDatePair(f.StartDate, f.EndDate).Ordered() {
		errs[FieldDate] = ErrStartAfterEnd
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// State is the complete form/list model.
type State struct {
	Form    Form
	Entries []engine.Entry
	Errors  FieldErrors
}

// NewState returns an empty ledger with a default form.
func NewState(today time.Time) State {
	return State{Form: NewForm(today)}
}

// Len returns the number of recorded entries.
func (s State) Len() int {
	return len(s.Entries)
}

// Total aggregates every entry with calc.
func (s State) Total(calc engine.Calculator) engine.Duration {
	return calc.Aggregate(s.Entries)
}

// clone copies the slices and maps so a reducer never aliases its input.
func (s State) clone() State {
	s.Entries = slices.Clone(s.Entries)
	if s.Errors != nil {
		errs := make(FieldErrors, len(s.Errors))
		for k, v := range s.Errors {
			errs[k] = v
		}
		s.Errors = errs
	}
	return s
}
