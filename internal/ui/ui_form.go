package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-experience/internal/config"
	"github.com/tartampluch/go-experience/internal/ledger"
)

// formWidgets holds references to the input row so render can sync them.
type formWidgets struct {
	company    *widget.Entry
	start      *DateEntry
	end        *DateEntry
	companyErr *widget.Label
	dateErr    *widget.Label
}

// buildMainContent assembles form, entries table and totals.
func (app *ExperienceApp) buildMainContent() fyne.CanvasObject {
	fw := &formWidgets{}

	fw.company = widget.NewEntry()
	fw.company.OnChanged = func(s string) {
		if app.syncing {
			return
		}
		app.Ledger.Dispatch(ledger.SetCompany{Name: s})
	}

	fw.start = NewDateEntry()
	fw.start.OnDateChanged = func(d time.Time) {
		if !app.syncing {
			app.Ledger.Dispatch(ledger.SetStartDate{Date: d})
		}
	}

	fw.end = NewDateEntry()
	fw.end.OnDateChanged = func(d time.Time) {
		if !app.syncing {
			app.Ledger.Dispatch(ledger.SetEndDate{Date: d})
		}
	}

	fw.companyErr = newErrorLabel()
	fw.dateErr = newErrorLabel()
	app.form = fw

	itemCompany := widget.NewFormItem(app.GetMsg(config.TKeyLblCompany), container.NewVBox(fw.company, fw.companyErr))
	itemStart := widget.NewFormItem(app.GetMsg(config.TKeyLblStart), fw.start)
	itemStart.HintText = app.GetMsg(config.TKeyHintDate)
	itemEnd := widget.NewFormItem(app.GetMsg(config.TKeyLblEnd), container.NewVBox(fw.end, fw.dateErr))
	itemEnd.HintText = app.GetMsg(config.TKeyHintDate)
	form := widget.NewForm(itemCompany, itemStart, itemEnd)

	btnAdd := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnAdd), theme.ContentAddIcon(), app.onAdd)
	btnAdd.Importance = widget.HighImportance
	btnReset := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnReset), theme.ContentUndoIcon(), func() {
		app.dispatchReset(ledger.ResetForm{})
	})
	btnClear := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnClearAll), theme.DeleteIcon(), func() {
		app.dispatchReset(ledger.ClearEntries{})
	})
	actions := container.NewGridWithColumns(config.LayoutColumnsTriple, btnAdd, btnReset, btnClear)

	app.table = app.buildEntriesTable()
	tableArea := container.NewGridWrap(fyne.NewSize(app.tableWidth(), config.TableMinHeight), app.table)

	app.totalLabel = widget.NewLabel("")
	app.totalLabel.TextStyle = fyne.TextStyle{Bold: true}

	btnExport := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExport), theme.DocumentSaveIcon(), app.showExportDialog)
	btnSettings := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSettings), theme.SettingsIcon(), app.ShowSettingsWindow)
	footer := container.NewBorder(nil, nil, nil, container.NewHBox(btnExport, btnSettings), app.totalLabel)

	content := container.NewBorder(
		container.NewVBox(widget.NewCard("", "", form), actions),
		footer,
		nil, nil,
		container.NewCenter(tableArea),
	)

	app.render(app.Ledger.State())
	return container.NewPadded(content)
}

func newErrorLabel() *widget.Label {
	lbl := widget.NewLabel("")
	lbl.Importance = widget.DangerImportance
	lbl.Wrapping = fyne.TextWrapWord
	lbl.Hide()
	return lbl
}

// onAdd rejects malformed date text before handing the form to the ledger.
func (app *ExperienceApp) onAdd() {
	if _, err := app.form.start.Date(); err != nil {
		app.showDateFormatError()
		return
	}
	if _, err := app.form.end.Date(); err != nil {
		app.showDateFormatError()
		return
	}
	app.Ledger.Dispatch(ledger.AddEntry{})
}

func (app *ExperienceApp) showDateFormatError() {
	app.dateFormatErr = true
	setError(app.form.dateErr, app.dateFormatMessage())
}

func (app *ExperienceApp) dateFormatMessage() string {
	return app.msgOr(config.TKeyErrDateFormat, config.ErrDateParse)
}

// dispatchReset applies a command that restores the form, discarding any
// half-typed date text along with it.
func (app *ExperienceApp) dispatchReset(cmd ledger.Command) {
	app.resyncInputs = true
	defer func() { app.resyncInputs = false }()
	app.Ledger.Dispatch(cmd)
}

// dateMessage keeps the format error visible until both date entries parse,
// then falls back to the ledger's validation result.
func (app *ExperienceApp) dateMessage(s ledger.State) string {
	if app.dateFormatErr {
		_, errStart := app.form.start.Date()
		_, errEnd := app.form.end.Date()
		if errStart != nil || errEnd != nil {
			return app.dateFormatMessage()
		}
		app.dateFormatErr = false
	}
	return app.validationMessage(s.Errors[ledger.FieldDate])
}

// render syncs every widget with s. It is the ledger's change listener.
func (app *ExperienceApp) render(s ledger.State) {
	if app.form == nil {
		return
	}

	app.syncing = true
	defer func() { app.syncing = false }()

	fw := app.form
	if fw.company.Text != s.Form.CompanyName {
		fw.company.SetText(s.Form.CompanyName)
	}
	syncDate(fw.start, s.Form.StartDate, app.resyncInputs)
	syncDate(fw.end, s.Form.EndDate, app.resyncInputs)

	setError(fw.companyErr, app.validationMessage(s.Errors[ledger.FieldCompanyName]))
	setError(fw.dateErr, app.dateMessage(s))

	if app.table != nil {
		app.table.Refresh()
	}

	if s.Len() == 0 {
		app.totalLabel.SetText("")
		app.totalLabel.Hide()
		return
	}
	app.totalLabel.SetText(app.overallText(app.Ledger.Total()))
	app.totalLabel.Show()
}

// syncDate rewrites the entry only when the ledger holds a date the entry has
// not already shown. Matching text and half-typed text over an unchanged date
// are left alone unless force is set.
func syncDate(e *DateEntry, d time.Time, force bool) {
	if !force {
		cur, err := e.Date()
		if err == nil && cur.Equal(d) {
			return
		}
		if err != nil && d.Equal(e.reported) {
			return
		}
	}
	e.SetDate(d)
}

func setError(lbl *widget.Label, msg string) {
	lbl.SetText(msg)
	if msg == "" {
		lbl.Hide()
		return
	}
	lbl.Show()
}
