package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyCatalogURL      = "catalog_base_url"
	KeyFetchTimeoutSec = "fetch_timeout_seconds"
	KeyGridColumns     = "grid_columns"
	KeyCurrencySymbol  = "currency_symbol"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultCatalogURL      = "https://fakestoreapi.com"
	DefaultFetchTimeoutSec = 30
	DefaultGridColumns     = 3
	DefaultCurrencySymbol  = "$"
	DefaultLanguage        = "system"
)

// Clamping bounds
const (
	MinFetchTimeoutSec = 5
	MaxFetchTimeoutSec = 120
	MinGridColumns     = 1
	MaxGridColumns     = 6
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCatalogURL returns the configured catalog service base URL
func (s *Settings) GetCatalogURL() string {
	url := s.app.Preferences().String(KeyCatalogURL)
	if url == "" {
		s.SetCatalogURL(DefaultCatalogURL)
		return DefaultCatalogURL
	}
	return url
}

// SetCatalogURL sets the catalog service base URL
func (s *Settings) SetCatalogURL(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		url = DefaultCatalogURL
	}
	s.app.Preferences().SetString(KeyCatalogURL, url)
}

// GetFetchTimeoutSec returns the catalog fetch timeout in seconds
func (s *Settings) GetFetchTimeoutSec() int {
	value := s.app.Preferences().Int(KeyFetchTimeoutSec)
	if value <= 0 {
		s.SetFetchTimeoutSec(DefaultFetchTimeoutSec)
		return DefaultFetchTimeoutSec
	}
	return value
}

// SetFetchTimeoutSec sets the catalog fetch timeout in seconds
func (s *Settings) SetFetchTimeoutSec(seconds int) {
	if seconds < MinFetchTimeoutSec {
		seconds = MinFetchTimeoutSec
	}
	if seconds > MaxFetchTimeoutSec {
		seconds = MaxFetchTimeoutSec
	}
	s.app.Preferences().SetInt(KeyFetchTimeoutSec, seconds)
}

// GetGridColumns returns the number of columns in the product grid
func (s *Settings) GetGridColumns() int {
	value := s.app.Preferences().Int(KeyGridColumns)
	if value <= 0 {
		s.SetGridColumns(DefaultGridColumns)
		return DefaultGridColumns
	}
	return value
}

// SetGridColumns sets the number of columns in the product grid
func (s *Settings) SetGridColumns(columns int) {
	if columns < MinGridColumns {
		columns = MinGridColumns
	}
	if columns > MaxGridColumns {
		columns = MaxGridColumns
	}
	s.app.Preferences().SetInt(KeyGridColumns, columns)
}

// GetCurrencySymbol returns the symbol used when displaying prices
func (s *Settings) GetCurrencySymbol() string {
	symbol := s.app.Preferences().String(KeyCurrencySymbol)
	if symbol == "" {
		s.SetCurrencySymbol(DefaultCurrencySymbol)
		return DefaultCurrencySymbol
	}
	return symbol
}

// SetCurrencySymbol sets the symbol used when displaying prices
func (s *Settings) SetCurrencySymbol(symbol string) {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	s.app.Preferences().SetString(KeyCurrencySymbol, symbol)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns map of available languages with their display names
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
