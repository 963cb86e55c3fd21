package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-experience/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect *widget.Select
	algoSelect *widget.Select
}

// ShowSettingsWindow displays the preferences dialog.
func (app *ExperienceApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug("Settings window already open, requesting focus", config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info("Opening settings window", config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	sw.algoSelect = widget.NewSelect(app.algorithmLabels(), nil)
	current := app.Preferences.StringWithFallback(config.PrefAlgorithm, config.DefaultAlgorithm)
	sw.algoSelect.SetSelected(app.algorithmLabel(current))

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	// The running ledger keeps its calculator; the choice applies on next start.
	itemAlgo := widget.NewFormItem(app.GetMsg(config.TKeyLblAlgorithm), sw.algoSelect)
	itemAlgo.HintText = app.GetMsg(config.TKeyHelpAlgorithm)

	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", widget.NewForm(itemLang, itemAlgo))

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		app.saveSettings(sw, w)
	})
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		generalCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, content.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// algorithmLabels returns the translated algorithm names in display order.
func (app *ExperienceApp) algorithmLabels() []string {
	labels := make([]string, 0, len(config.SupportedAlgorithms))
	for _, name := range config.SupportedAlgorithms {
		labels = append(labels, app.algorithmLabel(name))
	}
	return labels
}

func (app *ExperienceApp) algorithmLabel(name string) string {
	if name == config.AlgorithmBucketed {
		return app.GetMsg(config.TKeyAlgoBucketed)
	}
	return app.GetMsg(config.TKeyAlgoCalendar)
}

// algorithmFromLabel maps a translated label back to its algorithm name.
func (app *ExperienceApp) algorithmFromLabel(label string) string {
	for _, name := range config.SupportedAlgorithms {
		if app.algorithmLabel(name) == label {
			return name
		}
	}
	return config.DefaultAlgorithm
}

// saveSettings persists the preferences and re-renders the main window.
func (app *ExperienceApp) saveSettings(sw *settingsWidgets, w fyne.Window) {
	algo := app.algorithmFromLabel(sw.algoSelect.Selected)
	slog.Info(config.MsgSettingsSaved,
		config.LogKeyComponent, config.CompUISet,
		config.LogKeyLang, sw.langSelect.Selected,
		config.LogKeyAlgorithm, algo)

	if sw.langSelect.Selected != "" {
		app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	}
	app.Preferences.SetString(config.PrefAlgorithm, algo)

	app.UpdateLocalizer()
	app.refreshMainWindow()

	w.Close()
}
