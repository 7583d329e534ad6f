package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/shopgrid/catalog-browser/internal/browse"
	"github.com/shopgrid/catalog-browser/internal/config"
	"github.com/shopgrid/catalog-browser/internal/platform"
	"github.com/shopgrid/catalog-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.shopgrid.catalog-browser"
	AppName = "Catalog Browser"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("Catalog Browser v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply shop theme
	myApp.Settings().SetTheme(ui.NewShopTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	fetchTimeout := time.Duration(settings.GetFetchTimeoutSec()) * time.Second

	catalog := platform.NewCatalogClient(settings.GetCatalogURL())
	catalog.SetTimeout(fetchTimeout)

	browseSvc := browse.NewService(catalog)
	browseSvc.SetFetchTimeout(fetchTimeout)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, browseSvc)
	rootUI.SetConfigChangedCallback(func() {
		timeout := time.Duration(settings.GetFetchTimeoutSec()) * time.Second
		catalog.SetBaseURL(settings.GetCatalogURL())
		catalog.SetTimeout(timeout)
		browseSvc.SetFetchTimeout(timeout)
		browseSvc.Refresh()
	})

	// Initial load
	browseSvc.Refresh()

	// Show and run
	myWindow.ShowAndRun()
}
