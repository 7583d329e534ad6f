package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shopgrid/catalog-browser/internal/model"
)

// ShowProductDetail opens the detail view for a selected product
func ShowProductDetail(window fyne.Window, localization *Localization, product model.Product, currencySymbol string) {
	nameLabel := widget.NewLabel(product.Name)
	nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	nameLabel.Wrapping = fyne.TextWrapWord

	priceLabel := widget.NewLabel(localization.GetText(KeyPrice) + ": " + product.FormatPrice(currencySymbol))

	descLabel := widget.NewLabel(product.Description)
	descLabel.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		nameLabel,
		priceLabel,
		widget.NewSeparator(),
		container.NewVScroll(descLabel),
	)

	detail := dialog.NewCustom(
		localization.GetText(KeyProductDetails),
		localization.GetText(KeyClose),
		content,
		window,
	)
	detail.Resize(fyne.NewSize(DetailDialogWidth, DetailDialogHeight))
	detail.Show()
}
