package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-experience/internal/config"
	"github.com/tartampluch/go-experience/internal/engine"
	"github.com/tartampluch/go-experience/internal/ledger"
)

// ExperienceApp encapsulates the UI state, preferences and the ledger it renders.
type ExperienceApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Clock  engine.Clock // Injected clock for testability
	Ledger *ledger.Ledger

	SupportedLanguages []string

	form           *formWidgets
	table          *widget.Table
	totalLabel     *widget.Label
	settingsWindow fyne.Window

	// syncing is set while widgets are refreshed from the ledger state, so
	// their change callbacks do not dispatch the values back.
	syncing bool

	// resyncInputs forces render to rewrite half-typed date text.
	resyncInputs bool

	// dateFormatErr is set when Add found unparsable date text. It lives
	// outside the ledger, which only holds parsed dates.
	dateFormatErr bool
}

// NewExperienceApp constructs the application and wires dependencies.
// The calculator is fixed for the lifetime of the app.
func NewExperienceApp(a fyne.App, ctx context.Context, calc engine.Calculator, clock engine.Clock) *ExperienceApp {
	a.SetIcon(theme.AccountIcon())

	app := &ExperienceApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Clock:              clock,
		Ledger:             ledger.New(calc, clock),
		SupportedLanguages: config.SupportedLanguages,
	}
	app.Ledger.OnChange(app.render)
	return app
}

// Run launches the main window and blocks in the UI loop.
func (app *ExperienceApp) Run() {
	app.SetupI18n()
	app.ShowMainWindow()
	app.App.Run()
}

// ShowMainWindow creates the form/table window, or focuses it if already open.
func (app *ExperienceApp) ShowMainWindow() {
	if app.Window != nil {
		app.Window.RequestFocus()
		return
	}

	slog.Info(config.LogMsgOpenWin,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyAlgorithm, app.Ledger.Calculator().Name())

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	w.SetMaster()
	w.Resize(fyne.NewSize(config.MainWinWidth, config.MainWinHeight))
	w.SetContent(app.buildMainContent())
	w.SetOnClosed(func() { app.Window = nil })
	app.Window = w
	w.Show()
}

// refreshMainWindow rebuilds the window content, e.g. after a language change.
func (app *ExperienceApp) refreshMainWindow() {
	if app.Window == nil {
		return
	}
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetContent(app.buildMainContent())
}

// FormatDuration renders d with the localized "years, months, days" pattern.
func (app *ExperienceApp) FormatDuration(d engine.Duration) string {
	msg := app.localize(config.TKeyFmtDuration, map[string]interface{}{
		"Years":  d.Years,
		"Months": d.Months,
		"Days":   d.Days,
	})
	if msg == "" {
		return d.String()
	}
	return msg
}

// overallText renders the aggregate label.
func (app *ExperienceApp) overallText(total engine.Duration) string {
	formatted := app.FormatDuration(total)
	msg := app.localize(config.TKeyLblOverall, map[string]interface{}{"Total": formatted})
	if msg == "" {
		return fmt.Sprintf(config.FallbackOverall, formatted)
	}
	return msg
}

// validationMessage maps a ledger validation error to its localized text.
func (app *ExperienceApp) validationMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ledger.ErrMissingCompanyName):
		return app.msgOr(config.TKeyErrCompanyReq, err.Error())
	case errors.Is(err, ledger.ErrStartAfterEnd):
		return app.msgOr(config.TKeyErrStartAfter, err.Error())
	default:
		return err.Error()
	}
}

// msgOr translates key, falling back when the key is missing.
func (app *ExperienceApp) msgOr(key, fallback string) string {
	if msg := app.GetMsg(key); msg != key {
		return msg
	}
	return fallback
}

// localize renders a templated message. It returns "" when unavailable so
// callers can apply their own fallback.
func (app *ExperienceApp) localize(key string, data map[string]interface{}) string {
	if app.Localizer == nil {
		slog.Debug(config.ErrLocNotInit,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key)
		return ""
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err)
		return ""
	}
	return msg
}
