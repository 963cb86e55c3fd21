package ledger

import (
	"log/slog"

	"github.com/tartampluch/go-experience/internal/config"
	"github.com/tartampluch/go-experience/internal/engine"
)

// Ledger owns the current State for a UI and applies commands to it.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Ledger struct {
	state     State
	env       Env
	listeners []func(State)
}

// New creates a ledger bound to one calculator for its whole lifetime,
// so cached entry durations are never mixed across algorithms.
func New(calc engine.Calculator, clock engine.Clock) *Ledger {
	env := Env{Calculator: calc, Clock: clock}
	slog.Info(config.MsgCalculator,
		config.LogKeyComponent, config.CompLedger,
		config.LogKeyAlgorithm, calc.Name())

	return &Ledger{
		state: NewState(env.today()),
		env:   env,
	}
}

// State returns the current state.
func (l *Ledger) State() State {
	return l.state
}

// Calculator returns the calculator used for every entry.
func (l *Ledger) Calculator() engine.Calculator {
	return l.env.Calculator
}

// Total aggregates the current entries.
func (l *Ledger) Total() engine.Duration {
	return l.state.Total(l.env.Calculator)
}

// OnChange registers fn to be called with the new state after every dispatch.
func (l *Ledger) OnChange(fn func(State)) {
	l.listeners = append(l.listeners, fn)
}

// Dispatch applies cmd, logs the outcome and notifies listeners.
func (l *Ledger) Dispatch(cmd Command) State {
	before := l.state
	l.state = Reduce(before, l.env, cmd)
	l.logOutcome(cmd, before, l.state)

	for _, fn := range l.listeners {
		fn(l.state)
	}
	return l.state
}

func (l *Ledger) logOutcome(cmd Command, before, after State) {
	log := slog.With(config.LogKeyComponent, config.CompLedger)

	switch c := cmd.(type) {
	case AddEntry:
		if after.Errors != nil {
			log.Debug(config.MsgEntryRejected, config.LogKeyFields, after.Errors.Error())
			return
		}
		e := after.Entries[len(after.Entries)-1]
		log.Info(config.MsgEntryAdded,
			config.LogKeyCompany, e.CompanyName,
			config.LogKeyStart, engine.FormatDate(e.Period.Start),
			config.LogKeyEnd, engine.FormatDate(e.Period.End),
			config.LogKeyDuration, e.Duration.String(),
			config.LogKeyCount, after.Len())
	case RemoveEntry:
		if after.Len() < before.Len() {
			log.Info(config.MsgEntryRemoved, config.LogKeyIndex, c.Index, config.LogKeyCount, after.Len())
		}
	case ClearEntries:
		log.Info(config.MsgEntriesCleared, config.LogKeyCount, before.Len())
	case ResetForm:
		log.Debug(config.MsgFormReset)
	}
}
