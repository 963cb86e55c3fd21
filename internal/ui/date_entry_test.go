package ui_test

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-experience/internal/ui"
)

func TestDateEntry_TypedRune(t *testing.T) {
	entry := ui.NewDateEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name     string
		input    rune
		accepted bool
	}{
		{"Digit_Zero", '0', true},
		{"Digit_Nine", '9', true},
		{"Symbol_Dash", '-', true},
		{"Letter_a", 'a', false},
		{"Symbol_Slash", '/', false},
		{"Symbol_Space", ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry.SetText("")
			test.Type(entry, string(tt.input))

			if tt.accepted {
				assert.Equal(t, string(tt.input), entry.Text)
			} else {
				assert.Empty(t, entry.Text)
			}
		})
	}
}

func TestDateEntry_MaxLength(t *testing.T) {
	entry := ui.NewDateEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	entry.SetText("")
	test.Type(entry, "2024-01-0199")

	assert.Equal(t, "2024-01-01", entry.Text)
}

func TestDateEntry_MaxLengthOverwritesSelection(t *testing.T) {
	entry := ui.NewDateEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	entry.SetText("2024-01-01")
	window.Canvas().Focus(entry)
	entry.TypedShortcut(&fyne.ShortcutSelectAll{})
	test.Type(entry, "2")

	assert.Equal(t, "2", entry.Text)
}

func TestDateEntry_Keyboard(t *testing.T) {
	entry := ui.NewDateEntry()
	assert.Equal(t, mobile.NumberKeyboard, entry.Keyboard())
}

func TestDateEntry_SetDateAndValidate(t *testing.T) {
	entry := ui.NewDateEntry()

	entry.SetDate(time.Date(2021, 11, 5, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, "2021-11-05", entry.Text)
	assert.NoError(t, entry.Validate())

	d, err := entry.Date()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 11, 5, 0, 0, 0, 0, time.UTC), d)

	// Direct setting bypasses TypedRune; the validator catches it
	entry.SetText("05/11/2021")
	assert.Error(t, entry.Validate())
	_, err = entry.Date()
	assert.Error(t, err)
}

func TestDateEntry_OnDateChanged(t *testing.T) {
	entry := ui.NewDateEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	var got []time.Time
	entry.OnDateChanged = func(d time.Time) { got = append(got, d) }

	entry.SetText("")
	test.Type(entry, "2020-02-29")

	require.Len(t, got, 1, "only the complete date is reported")
	assert.Equal(t, time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC), got[0])
}
