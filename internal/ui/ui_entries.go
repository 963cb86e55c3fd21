package ui

import (
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-experience/internal/config"
	"github.com/tartampluch/go-experience/internal/engine"
	"github.com/tartampluch/go-experience/internal/ledger"
)

// buildEntriesTable renders the recorded entries, one row each, with a
// delete action in the last column.
func (app *ExperienceApp) buildEntriesTable() *widget.Table {
	table := widget.NewTableWithHeaders(
		func() (int, int) {
			return app.Ledger.State().Len(), config.ColumnCount
		},
		func() fyne.CanvasObject {
			lbl := widget.NewLabel(config.TablePlaceholder)
			lbl.Truncation = fyne.TextTruncateEllipsis
			btn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnDelete), theme.DeleteIcon(), nil)
			btn.Importance = widget.DangerImportance
			return container.NewStack(lbl, btn)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			entries := app.Ledger.State().Entries
			if id.Row < 0 || id.Row >= len(entries) {
				return
			}
			stack := o.(*fyne.Container)
			lbl := stack.Objects[0].(*widget.Label)
			btn := stack.Objects[1].(*widget.Button)

			if id.Col == config.ColIDAction {
				lbl.Hide()
				idx := id.Row
				btn.OnTapped = func() { app.removeEntry(idx) }
				btn.Show()
				return
			}
			btn.Hide()
			lbl.SetText(app.cellText(entries[id.Row], id.Col))
			lbl.Show()
		},
	)

	table.ShowHeaderColumn = false
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle(config.HeaderPlaceholder, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		if id.Row != -1 {
			return
		}
		o.(*widget.Label).SetText(app.headerText(id.Col))
	}

	table.SetColumnWidth(config.ColIDCompany, config.ColWidthCompany)
	table.SetColumnWidth(config.ColIDStart, config.ColWidthDate)
	table.SetColumnWidth(config.ColIDEnd, config.ColWidthDate)
	table.SetColumnWidth(config.ColIDDuration, config.ColWidthDuration)
	table.SetColumnWidth(config.ColIDAction, config.ColWidthAction)
	return table
}

// tableWidth is the sum of the configured column widths.
func (app *ExperienceApp) tableWidth() float32 {
	return config.ColWidthCompany + 2*config.ColWidthDate + config.ColWidthDuration + config.ColWidthAction
}

func (app *ExperienceApp) headerText(col int) string {
	switch col {
	case config.ColIDCompany:
		return app.GetMsg(config.TKeyColCompany)
	case config.ColIDStart:
		return app.GetMsg(config.TKeyColStart)
	case config.ColIDEnd:
		return app.GetMsg(config.TKeyColEnd)
	case config.ColIDDuration:
		return app.GetMsg(config.TKeyColDuration)
	case config.ColIDAction:
		return app.GetMsg(config.TKeyColActions)
	}
	return ""
}

func (app *ExperienceApp) cellText(e engine.Entry, col int) string {
	switch col {
	case config.ColIDCompany:
		return e.CompanyName
	case config.ColIDStart:
		return engine.FormatDate(e.Period.Start)
	case config.ColIDEnd:
		return engine.FormatDate(e.Period.End)
	case config.ColIDDuration:
		return app.FormatDuration(e.Duration)
	}
	return ""
}

func (app *ExperienceApp) removeEntry(index int) {
	app.Ledger.Dispatch(ledger.RemoveEntry{Index: index})
}

// showExportDialog asks for a destination and writes the entries as iCalendar.
func (app *ExperienceApp) showExportDialog() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if wc == nil {
			return // cancelled
		}

		if err := app.exportTo(wc); err != nil {
			slog.Error(config.MsgExportFailed,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
			app.App.SendNotification(fyne.NewNotification(config.TitleExportError, app.GetMsg(config.TKeyNotifExportErr)))
			dialog.ShowError(err, app.Window)
			return
		}
		slog.Info(config.MsgExportDone,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyPath, wc.URI().Path())
		app.App.SendNotification(fyne.NewNotification(app.GetMsg(config.TKeyWinTitle), app.GetMsg(config.TKeyNotifExported)))
	}, app.Window)

	d.SetFileName(config.DefaultExportName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtICS}))
	d.Show()
}

// exportTo writes the export and closes wc.
func (app *ExperienceApp) exportTo(wc io.WriteCloser) error {
	writeErr := app.writeExport(wc)
	closeErr := wc.Close()
	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("%s: %w", config.ErrExportWrite, closeErr)
	}
	return nil
}

// writeExport encodes the current entries with the ledger's calculator.
// Nothing is written once the application is shutting down.
func (app *ExperienceApp) writeExport(w io.Writer) error {
	if err := app.Ctx.Err(); err != nil {
		return err
	}
	st := app.Ledger.State()
	return engine.ExportCalendar(w, st.Entries, app.Ledger.Calculator(), app.Clock.Now())
}
