package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shopgrid/catalog-browser/internal/browse"
	"github.com/shopgrid/catalog-browser/internal/config"
	"github.com/shopgrid/catalog-browser/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	browser      browse.Browser
	settings     *config.Settings
	localization *Localization

	// UI components
	searchEntry *widget.Entry
	refreshBtn  *widget.Button
	content     *fyne.Container // swapped on every view-state change

	// Last rendered snapshot, owned by the UI thread
	lastState model.ViewState

	// Callback invoked after settings are saved, so the owner can re-apply
	// transport configuration before the next fetch
	onConfigChanged func()
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, browser browse.Browser) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		browser:      browser,
		settings:     settings,
		localization: localization,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for view-state updates
	ui.browser.SetUpdateCallback(ui.onStateUpdate)

	// The Error state carries a stable localized message, never raw detail
	ui.browser.SetFailureMessage(localization.GetText(KeyLoadError))

	ui.setupUI()
	return ui
}

// SetConfigChangedCallback sets the callback invoked after settings are saved
func (ui *RootUI) SetConfigChangedCallback(callback func()) {
	ui.onConfigChanged = callback
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create search entry; the filter is applied synchronously on every
	// keystroke, no debounce
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.onSearchChanged

	// Create refresh button
	ui.refreshBtn = widget.NewButton(ui.localization.GetText(KeyRefresh), ui.onRefreshClick)

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create top panel (search row)
	topPanel := container.NewBorder(nil, nil, container.NewHBox(settingsBtn), ui.refreshBtn, ui.searchEntry)

	// Content area swapped per phase
	ui.content = container.NewStack()

	mainLayout := container.NewBorder(
		topPanel,   // top
		nil,        // bottom
		nil,        // left
		nil,        // right
		ui.content, // center
	)

	ui.window.SetContent(mainLayout)

	// Render whatever the browser holds right now (Loading before the first
	// fetch resolves)
	ui.renderState(ui.browser.State())
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	// The failure message travels inside the view-state, keep it in sync
	ui.browser.SetFailureMessage(ui.localization.GetText(KeyLoadError))

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.refreshBtn.SetText(ui.localization.GetText(KeyRefresh))

	// Re-render the current phase with the new texts
	ui.renderState(ui.lastState)
}

// onSearchChanged applies the local filter; no fetch is issued
func (ui *RootUI) onSearchChanged(query string) {
	ui.browser.Search(query)
}

// onRefreshClick handles the refresh/retry button click
func (ui *RootUI) onRefreshClick() {
	log.Printf("Refresh requested from UI")
	ui.browser.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.browser.SetFailureMessage(ui.localization.GetText(KeyLoadError))
		ui.refreshUITexts()
		ui.createMenu()

		if ui.onConfigChanged != nil {
			ui.onConfigChanged()
		}

		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// onProductSelected opens the detail view for the selected product ID
func (ui *RootUI) onProductSelected(productID string) {
	log.Printf("Product selected: id=%s", productID)

	for _, product := range ui.lastState.All {
		if product.ID == productID {
			ShowProductDetail(ui.window, ui.localization, product, ui.settings.GetCurrencySymbol())
			return
		}
	}

	log.Printf("Selected product %s not found in current state", productID)
}

// onStateUpdate handles view-state updates from the browse service
func (ui *RootUI) onStateUpdate(state model.ViewState) {
	log.Printf("View-state update: phase=%s query=%q visible=%d total=%d",
		state.Phase, state.Query, len(state.Visible), len(state.All))

	// Re-render in the UI thread
	fyne.Do(func() {
		ui.renderState(state)
	})
}

// renderState swaps the content area to match the view-state phase
func (ui *RootUI) renderState(state model.ViewState) {
	ui.lastState = state

	if ui.content == nil {
		return
	}

	var view fyne.CanvasObject
	switch state.Phase {
	case model.PhaseLoading:
		view = ui.loadingView()
	case model.PhaseError:
		view = ui.errorView(state.Message)
	case model.PhaseEmpty:
		view = ui.emptyView()
	case model.PhaseLoaded:
		if state.NoMatches() {
			view = ui.noMatchesView()
		} else {
			view = ui.gridView(state.Visible)
		}
	default:
		log.Printf("Unknown phase %q, rendering loading view", state.Phase)
		view = ui.loadingView()
	}

	ui.content.Objects = []fyne.CanvasObject{view}
	ui.content.Refresh()
}

// loadingView shows skeleton placeholders while the fetch is in flight
func (ui *RootUI) loadingView() fyne.CanvasObject {
	columns := ui.settings.GetGridColumns()

	skeletons := make([]fyne.CanvasObject, 0, columns*SkeletonRows)
	for i := 0; i < columns*SkeletonRows; i++ {
		skeletons = append(skeletons, skeletonCard())
	}

	statusLabel := widget.NewLabel(ui.localization.GetText(KeyLoading))
	statusLabel.Alignment = fyne.TextAlignCenter

	return container.NewBorder(
		container.NewVBox(widget.NewProgressBarInfinite(), statusLabel),
		nil, nil, nil,
		container.NewGridWithColumns(columns, skeletons...),
	)
}

// skeletonCard builds one placeholder cell for the loading grid
func skeletonCard() fyne.CanvasObject {
	title := widget.NewLabel(DashPlaceholder)
	title.TextStyle = fyne.TextStyle{Bold: true}
	body := widget.NewLabel(DashPlaceholder + DashPlaceholder + DashPlaceholder)
	return container.NewPadded(widget.NewCard("", "", container.NewVBox(title, body)))
}

// errorView shows the failure panel with a retry affordance
func (ui *RootUI) errorView(message string) fyne.CanvasObject {
	if message == "" {
		message = ui.localization.GetText(KeyLoadError)
	}

	iconLabel := widget.NewLabel(IconError)
	iconLabel.Alignment = fyne.TextAlignCenter

	messageLabel := widget.NewLabel(message)
	messageLabel.Alignment = fyne.TextAlignCenter
	messageLabel.Wrapping = fyne.TextWrapWord

	retryBtn := widget.NewButton(ui.localization.GetText(KeyRetry), ui.onRefreshClick)
	retryBtn.Importance = widget.HighImportance

	return container.NewCenter(container.NewVBox(
		iconLabel,
		messageLabel,
		container.NewCenter(retryBtn),
	))
}

// emptyView shows the "catalog has no products" message
func (ui *RootUI) emptyView() fyne.CanvasObject {
	iconLabel := widget.NewLabel(IconEmptyBox)
	iconLabel.Alignment = fyne.TextAlignCenter

	messageLabel := widget.NewLabel(ui.localization.GetText(KeyNoProducts))
	messageLabel.Alignment = fyne.TextAlignCenter

	return container.NewCenter(container.NewVBox(iconLabel, messageLabel))
}

// noMatchesView shows the "search filtered everything out" message,
// distinct from an empty catalog: the authoritative set is still loaded
// and clearing the search restores it without a fetch
func (ui *RootUI) noMatchesView() fyne.CanvasObject {
	iconLabel := widget.NewLabel(IconSearch)
	iconLabel.Alignment = fyne.TextAlignCenter

	messageLabel := widget.NewLabel(ui.localization.GetText(KeyNoMatches))
	messageLabel.Alignment = fyne.TextAlignCenter

	hintLabel := widget.NewLabel(ui.localization.GetText(KeyClearSearch))
	hintLabel.Alignment = fyne.TextAlignCenter
	hintLabel.TextStyle = fyne.TextStyle{Italic: true}

	return container.NewCenter(container.NewVBox(iconLabel, messageLabel, hintLabel))
}

// gridView shows the visible products as a scrollable grid of cards
func (ui *RootUI) gridView(products []model.Product) fyne.CanvasObject {
	columns := ui.settings.GetGridColumns()
	currency := ui.settings.GetCurrencySymbol()

	cards := make([]fyne.CanvasObject, 0, len(products))
	for _, product := range products {
		cards = append(cards, NewProductCard(product, currency, ui.onProductSelected))
	}

	countLabel := widget.NewLabel(fmt.Sprintf("%d / %d", len(ui.lastState.Visible), len(ui.lastState.All)))
	countLabel.Alignment = fyne.TextAlignTrailing

	return container.NewBorder(
		nil,
		countLabel,
		nil, nil,
		container.NewVScroll(container.NewGridWithColumns(columns, cards...)),
	)
}
