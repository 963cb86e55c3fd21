package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-experience/internal/engine"
	"github.com/tartampluch/go-experience/internal/ledger"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var today = date(2025, 6, 15)

func newEnv() ledger.Env {
	return ledger.Env{
		Calculator: engine.CalendarCalculator{},
		Clock:      MockClock{CurrentTime: today.Add(14 * time.Hour)},
	}
}

// fill dispatches the three form fields.
func fill(s ledger.State, env ledger.Env, company string, start, end time.Time) ledger.State {
	s = ledger.Reduce(s, env, ledger.SetCompany{Name: company})
	s = ledger.Reduce(s, env, ledger.SetStartDate{Date: start})
	return ledger.Reduce(s, env, ledger.SetEndDate{Date: end})
}

func TestNewState_Defaults(t *testing.T) {
	s := ledger.NewState(today)

	assert.Empty(t, s.Form.CompanyName)
	assert.Equal(t, today, s.Form.StartDate)
	assert.Equal(t, today, s.Form.EndDate)
	assert.Zero(t, s.Len())
	assert.Nil(t, s.Errors)
}

func TestAddEntry_Valid(t *testing.T) {
	env := newEnv()
	s := fill(ledger.NewState(today), env, "  Initech ", date(2023, 1, 15), date(2023, 2, 15))

	s = ledger.Reduce(s, env, ledger.AddEntry{})

	require.Equal(t, 1, s.Len())
	e := s.Entries[0]
	assert.Equal(t, "Initech", e.CompanyName)
	assert.Equal(t, engine.Duration{Months: 1}, e.Duration)
	assert.Nil(t, s.Errors)

	// The form goes back to its defaults after a successful add.
	assert.Equal(t, ledger.NewForm(today), s.Form)
}

func TestAddEntry_Validation(t *testing.T) {
	env := newEnv()

	tests := []struct {
		name    string
		company string
		start   time.Time
		end     time.Time
		want    ledger.FieldErrors
	}{
		{
			name:    "Empty company with valid dates",
			company: "",
			start:   date(2020, 1, 1),
			end:     date(2021, 1, 1),
			want:    ledger.FieldErrors{ledger.FieldCompanyName: ledger.ErrMissingCompanyName},
		},
		{
			name:    "Whitespace company",
			company: " \t ",
			start:   date(2020, 1, 1),
			end:     date(2020, 1, 1),
			want:    ledger.FieldErrors{ledger.FieldCompanyName: ledger.ErrMissingCompanyName},
		},
		{
			name:    "Start after end with a company",
			company: "Globex",
			start:   date(2021, 1, 2),
			end:     date(2021, 1, 1),
			want:    ledger.FieldErrors{ledger.FieldDate: ledger.ErrStartAfterEnd},
		},
		{
			name:    "Both invalid",
			company: "",
			start:   date(2022, 5, 1),
			end:     date(2021, 5, 1),
			want: ledger.FieldErrors{
				ledger.FieldCompanyName: ledger.ErrMissingCompanyName,
				ledger.FieldDate:        ledger.ErrStartAfterEnd,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fill(ledger.NewState(today), env, tt.company, tt.start, tt.end)
			before := s.Form

			s = ledger.Reduce(s, env, ledger.AddEntry{})

			assert.Zero(t, s.Len(), "invalid form must not add an entry")
			assert.Equal(t, tt.want, s.Errors)
			assert.Equal(t, before, s.Form, "form keeps the user's input")
		})
	}
}

func TestAddEntry_ErrorsClearedOnSuccess(t *testing.T) {
	env := newEnv()
	s := ledger.Reduce(ledger.NewState(today), env, ledger.AddEntry{})
	require.NotNil(t, s.Errors)

	s = fill(s, env, "Hooli", date(2024, 1, 1), date(2024, 12, 31))
	s = ledger.Reduce(s, env, ledger.AddEntry{})

	assert.Nil(t, s.Errors)
	assert.Equal(t, 1, s.Len())
}

func TestRemoveEntry_PreservesOrder(t *testing.T) {
	env := newEnv()
	s := ledger.NewState(today)
	for i, name := range []string{"A", "B", "C", "D"} {
		s = fill(s, env, name, date(2010+i, 1, 1), date(2011+i, 1, 1))
		s = ledger.Reduce(s, env, ledger.AddEntry{})
	}

	s = ledger.Reduce(s, env, ledger.RemoveEntry{Index: 1})

	names := make([]string, 0, s.Len())
	for _, e := range s.Entries {
		names = append(names, e.CompanyName)
	}
	assert.Equal(t, []string{"A", "C", "D"}, names)

	for _, idx := range []int{-1, 3, 42} {
		after := ledger.Reduce(s, env, ledger.RemoveEntry{Index: idx})
		assert.Equal(t, s.Entries, after.Entries, "index %d is out of range", idx)
	}
}

func TestResetForm(t *testing.T) {
	env := newEnv()
	s := fill(ledger.NewState(date(2000, 1, 1)), env, "", date(2024, 3, 1), date(2023, 3, 1))
	s = ledger.Reduce(s, env, ledger.AddEntry{})
	require.NotNil(t, s.Errors)

	s = ledger.Reduce(s, env, ledger.ResetForm{})

	assert.Nil(t, s.Errors)
	assert.Equal(t, ledger.NewForm(today), s.Form, "reset uses the clock's today")
}

func TestClearEntries(t *testing.T) {
	env := newEnv()
	s := fill(ledger.NewState(today), env, "Umbrella", date(2015, 1, 1), date(2016, 1, 1))
	s = ledger.Reduce(s, env, ledger.AddEntry{})
	s = ledger.Reduce(s, env, ledger.SetCompany{Name: "half typed"})

	s = ledger.Reduce(s, env, ledger.ClearEntries{})

	assert.Zero(t, s.Len())
	assert.Equal(t, ledger.NewForm(today), s.Form)
	assert.Equal(t, engine.Duration{}, s.Total(env.Calculator))
}

// TestReduce_DoesNotMutateInput guards the value semantics of State.
func TestReduce_DoesNotMutateInput(t *testing.T) {
	env := newEnv()
	s := ledger.NewState(today)
	for _, name := range []string{"A", "B"} {
		s = fill(s, env, name, date(2020, 1, 1), date(2021, 1, 1))
		s = ledger.Reduce(s, env, ledger.AddEntry{})
	}
	invalid := ledger.Reduce(s, env, ledger.AddEntry{})
	require.NotNil(t, invalid.Errors)

	_ = ledger.Reduce(s, env, ledger.RemoveEntry{Index: 0})
	_ = ledger.Reduce(invalid, env, ledger.ResetForm{})

	assert.Equal(t, "A", s.Entries[0].CompanyName)
	assert.Equal(t, 2, s.Len())
	assert.NotNil(t, invalid.Errors)
}

func TestTotal(t *testing.T) {
	env := newEnv()
	s := ledger.NewState(today)
	s = fill(s, env, "A", date(2018, 1, 10), date(2019, 3, 30)) // 1y 2m 20d
	s = ledger.Reduce(s, env, ledger.AddEntry{})
	s = fill(s, env, "B", date(2020, 5, 1), date(2020, 10, 16)) // 0y 5m 15d
	s = ledger.Reduce(s, env, ledger.AddEntry{})

	assert.Equal(t, engine.Duration{Years: 1, Months: 8, Days: 5}, s.Total(env.Calculator))
}

func TestFieldErrors_Error(t *testing.T) {
	fe := ledger.FieldErrors{
		ledger.FieldDate:        ledger.ErrStartAfterEnd,
		ledger.FieldCompanyName: ledger.ErrMissingCompanyName,
	}
	assert.Equal(t, ledger.ErrMissingCompanyName.Error()+"; "+ledger.ErrStartAfterEnd.Error(), fe.Error())
}

func TestLedger_DispatchNotifies(t *testing.T) {
	env := newEnv()
	l := ledger.New(env.Calculator, env.Clock)

	var seen []int
	l.OnChange(func(s ledger.State) { seen = append(seen, s.Len()) })

	l.Dispatch(ledger.SetCompany{Name: "Soylent"})
	l.Dispatch(ledger.SetStartDate{Date: date(2022, 1, 1)})
	l.Dispatch(ledger.SetEndDate{Date: date(2022, 2, 1)})
	st := l.Dispatch(ledger.AddEntry{})

	assert.Equal(t, []int{0, 0, 0, 1}, seen)
	assert.Equal(t, st, l.State())
	assert.Equal(t, engine.Duration{Months: 1}, l.Total())
	assert.Equal(t, "calendar", l.Calculator().Name())

	l.Dispatch(ledger.RemoveEntry{Index: 0})
	assert.Zero(t, l.State().Len())
}
