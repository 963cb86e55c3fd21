package ledger

import (
	"slices"
	"strings"
	"time"

	"github.com/tartampluch/go-experience/internal/engine"
)

// Env carries the collaborators a reducer may need.
type Env struct {
	Calculator engine.Calculator
	Clock      engine.Clock
}

func (e Env) today() time.Time {
	return engine.Today(e.Clock)
}

// Command is a user action applied to a State.
type Command interface {
	apply(s State, env Env) State
}

// Reduce applies cmd to s and returns the resulting state.
// s is left untouched.
func Reduce(s State, env Env, cmd Command) State {
	return cmd.apply(s.clone(), env)
}

// SetCompany updates the company name input.
type SetCompany struct{ Name string }

func (c SetCompany) apply(s State, _ Env) State {
	s.Form.CompanyName = c.Name
	return s
}

// SetStartDate updates the start date input.
type SetStartDate struct{ Date time.Time }

func (c SetStartDate) apply(s State, _ Env) State {
	s.Form.StartDate = engine.CalendarDate(c.Date)
	return s
}

// SetEndDate updates the end date input.
type SetEndDate struct{ Date time.Time }

func (c SetEndDate) apply(s State, _ Env) State {
	s.Form.EndDate = engine.CalendarDate(c.Date)
	return s
}

// AddEntry validates the form and, when valid, appends a new entry whose
// duration is computed now and then resets the form. On failure the form
// keeps the user's input and Errors describes each invalid field.
type AddEntry struct{}

func (AddEntry) apply(s State, env Env) State {
	if errs := s.Form.Validate(); errs != nil {
		s.Errors = errs
		return s
	}

	p := engine.NewDatePair(s.Form.StartDate, s.Form.EndDate)
	s.Entries = append(s.Entries, engine.NewEntry(strings.TrimSpace(s.Form.CompanyName), p, env.Calculator))
	s.Form = NewForm(env.today())
	s.Errors = nil
	return s
}

// ResetForm restores the default form and clears validation messages.
type ResetForm struct{}

func (ResetForm) apply(s State, env Env) State {
	s.Form = NewForm(env.today())
	s.Errors = nil
	return s
}

// ClearEntries removes every entry and resets the form.
type ClearEntries struct{}

func (ClearEntries) apply(s State, env Env) State {
	s.Entries = nil
	return ResetForm{}.apply(s, env)
}

// RemoveEntry deletes the entry at Index, keeping the others in order.
// An out-of-range index leaves the state unchanged.
type RemoveEntry struct{ Index int }

func (c RemoveEntry) apply(s State, _ Env) State {
	if c.Index < 0 || c.Index >= len(s.Entries) {
		return s
	}
	s.Entries = slices.Delete(s.Entries, c.Index, c.Index+1)
	return s
}
