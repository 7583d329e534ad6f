package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/shopgrid/catalog-browser/internal/browse"
	"github.com/shopgrid/catalog-browser/internal/config"
	"github.com/shopgrid/catalog-browser/internal/platform"
	"github.com/shopgrid/catalog-browser/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.shopgrid.catalog-browser")
	myWindow := myApp.NewWindow("Catalog Browser")
	myWindow.Resize(fyne.NewSize(900, 640))

	// Initialize services
	settings := config.NewSettings(myApp)
	catalog := platform.NewCatalogClient(settings.GetCatalogURL())
	browseSvc := browse.NewService(catalog)

	// Create and setup UI, then load the catalog
	ui.NewRootUI(myWindow, myApp, browseSvc)
	browseSvc.Refresh()

	// Show and run
	myWindow.ShowAndRun()
}
