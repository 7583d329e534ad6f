package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestCatalogURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetCatalogURL()
	if url != DefaultCatalogURL {
		t.Errorf("Expected default catalog URL %s, got %s", DefaultCatalogURL, url)
	}

	// Test setting custom value
	customURL := "https://catalog.internal.example.com/api"
	settings.SetCatalogURL(customURL)

	retrievedURL := settings.GetCatalogURL()
	if retrievedURL != customURL {
		t.Errorf("Expected catalog URL %s, got %s", customURL, retrievedURL)
	}

	// Blank URL falls back to the default
	settings.SetCatalogURL("   ")
	if settings.GetCatalogURL() != DefaultCatalogURL {
		t.Error("Blank catalog URL should reset to default")
	}
}

func TestFetchTimeoutSec(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	timeout := settings.GetFetchTimeoutSec()
	if timeout != DefaultFetchTimeoutSec {
		t.Errorf("Expected default timeout %d, got %d", DefaultFetchTimeoutSec, timeout)
	}

	// Test setting custom value
	settings.SetFetchTimeoutSec(60)
	if settings.GetFetchTimeoutSec() != 60 {
		t.Errorf("Expected timeout 60, got %d", settings.GetFetchTimeoutSec())
	}

	// Test boundary values
	settings.SetFetchTimeoutSec(1) // Should be clamped to minimum
	if settings.GetFetchTimeoutSec() != MinFetchTimeoutSec {
		t.Errorf("Timeout should be clamped to minimum %d", MinFetchTimeoutSec)
	}

	settings.SetFetchTimeoutSec(999) // Should be clamped to maximum
	if settings.GetFetchTimeoutSec() != MaxFetchTimeoutSec {
		t.Errorf("Timeout should be clamped to maximum %d", MaxFetchTimeoutSec)
	}
}

func TestGridColumns(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	columns := settings.GetGridColumns()
	if columns != DefaultGridColumns {
		t.Errorf("Expected default columns %d, got %d", DefaultGridColumns, columns)
	}

	// Test setting custom value
	settings.SetGridColumns(4)
	if settings.GetGridColumns() != 4 {
		t.Errorf("Expected 4 columns, got %d", settings.GetGridColumns())
	}

	// Test boundary values
	settings.SetGridColumns(0)
	if settings.GetGridColumns() != MinGridColumns {
		t.Errorf("Columns should be clamped to minimum %d", MinGridColumns)
	}

	settings.SetGridColumns(12)
	if settings.GetGridColumns() != MaxGridColumns {
		t.Errorf("Columns should be clamped to maximum %d", MaxGridColumns)
	}
}

func TestCurrencySymbol(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	symbol := settings.GetCurrencySymbol()
	if symbol != DefaultCurrencySymbol {
		t.Errorf("Expected default currency symbol %s, got %s", DefaultCurrencySymbol, symbol)
	}

	// Test setting custom value
	settings.SetCurrencySymbol("€")
	if settings.GetCurrencySymbol() != "€" {
		t.Errorf("Expected currency symbol €, got %s", settings.GetCurrencySymbol())
	}

	// Empty symbol defaults back
	settings.SetCurrencySymbol("")
	if settings.GetCurrencySymbol() != DefaultCurrencySymbol {
		t.Error("Empty currency symbol should reset to default")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")
	if settings.GetLanguage() != "en" {
		t.Errorf("Expected language 'en', got %s", settings.GetLanguage())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
