package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-experience/internal/config"
	"github.com/tartampluch/go-experience/internal/engine"
)

// DateEntry is an Entry that only accepts ISO dates (YYYY-MM-DD).
// A dropdown action opens a calendar picker.
type DateEntry struct {
	widget.Entry

	// OnDateChanged fires whenever the text parses to a valid date.
	OnDateChanged func(time.Time)

	popUp    *widget.PopUp
	reported time.Time // last valid date shown or typed
}

// NewDateEntry creates a new instance of DateEntry.
func NewDateEntry() *DateEntry {
	entry := &DateEntry{}
	entry.ExtendBaseWidget(entry)
	entry.PlaceHolder = config.DateEntryPlaceholder
	entry.Validator = func(s string) error {
		_, err := engine.ParseDate(s)
		return err
	}
	entry.OnChanged = func(s string) {
		d, err := engine.ParseDate(s)
		if err != nil {
			return
		}
		entry.reported = d
		if entry.OnDateChanged != nil {
			entry.OnDateChanged(d)
		}
	}
	entry.ActionItem = widget.NewButtonWithIcon("", theme.MenuDropDownIcon(), entry.showPicker)
	return entry
}

// TypedRune filters characters to digits and the date separator, and stops
// at the length of a full date unless a selection is being overwritten.
// Pasted text bypasses this; the Validator catches it.
func (e *DateEntry) TypedRune(r rune) {
	if (r >= '0' && r <= '9') || r == config.DateSeparator {
		if len([]rune(e.Text)) >= config.DateEntryMaxLen && e.SelectedText() == "" {
			return
		}
		e.Entry.TypedRune(r)
	}
}

// Keyboard shows a numeric keypad on mobile devices.
func (e *DateEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// SetDate replaces the text with the ISO rendering of d.
func (e *DateEntry) SetDate(d time.Time) {
	e.reported = engine.CalendarDate(d)
	e.SetText(engine.FormatDate(d))
}

// Date parses the current text.
func (e *DateEntry) Date() (time.Time, error) {
	return engine.ParseDate(e.Text)
}

func (e *DateEntry) showPicker() {
	c := fyne.CurrentApp().Driver().CanvasForObject(e)
	if c == nil {
		return
	}

	current, err := e.Date()
	if err != nil {
		current = time.Now()
	}

	cal := widget.NewCalendar(current, func(picked time.Time) {
		e.SetDate(picked)
		if e.popUp != nil {
			e.popUp.Hide()
		}
	})

	e.popUp = widget.NewPopUp(cal, c)
	e.popUp.ShowAtRelativePosition(fyne.NewPos(0, e.Size().Height), e)
}
