package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shopgrid/catalog-browser/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	catalogURLEntry *widget.Entry
	timeoutEntry    *widget.Entry
	columnsEntry    *widget.Entry
	currencyEntry   *widget.Entry
	languageSelect  *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved is
// called after a confirmed save so the caller can re-apply configuration.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.catalogURLEntry = widget.NewEntry()
	sd.catalogURLEntry.SetPlaceHolder(config.DefaultCatalogURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.DefaultFetchTimeoutSec))

	sd.columnsEntry = widget.NewEntry()
	sd.columnsEntry.SetPlaceHolder(strconv.Itoa(config.DefaultGridColumns))

	sd.currencyEntry = widget.NewEntry()
	sd.currencyEntry.SetPlaceHolder(config.DefaultCurrencySymbol)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyCatalogURL)+":"),
		sd.catalogURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyFetchTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(sd.localization.GetText(KeyGridColumns)+":"),
		sd.columnsEntry,

		widget.NewLabel(sd.localization.GetText(KeyCurrencySymbol)+":"),
		sd.currencyEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.catalogURLEntry.SetText(sd.settings.GetCatalogURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetFetchTimeoutSec()))
	sd.columnsEntry.SetText(strconv.Itoa(sd.settings.GetGridColumns()))
	sd.currencyEntry.SetText(sd.settings.GetCurrencySymbol())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.catalogURLEntry.Text != "" {
		sd.settings.SetCatalogURL(sd.catalogURLEntry.Text)
	}

	if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetFetchTimeoutSec(seconds)
	}

	if columns, err := strconv.Atoi(sd.columnsEntry.Text); err == nil {
		sd.settings.SetGridColumns(columns)
	}

	if sd.currencyEntry.Text != "" {
		sd.settings.SetCurrencySymbol(sd.currencyEntry.Text)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
