package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shopgrid/catalog-browser/internal/model"
)

// ProductCard is a tappable grid cell showing one product. Selecting the
// card fires the onSelect callback with the product ID.
type ProductCard struct {
	widget.BaseWidget

	product        model.Product
	currencySymbol string

	// UI components
	nameLabel  *widget.Label
	priceLabel *widget.Label
	descLabel  *widget.Label

	// Callbacks
	onSelect func(productID string)
}

// NewProductCard creates a new product card widget
func NewProductCard(product model.Product, currencySymbol string, onSelect func(productID string)) *ProductCard {
	pc := &ProductCard{
		product:        product,
		currencySymbol: currencySymbol,
		onSelect:       onSelect,
	}
	pc.ExtendBaseWidget(pc)
	pc.createUI()
	pc.updateFromProduct()
	return pc
}

// UpdateProduct updates the card with new product data
func (pc *ProductCard) UpdateProduct(product model.Product) {
	pc.product = product
	pc.updateFromProduct()
	pc.Refresh()
}

// Tapped handles selection; navigation to the detail view is a
// fire-and-forget side effect
func (pc *ProductCard) Tapped(_ *fyne.PointEvent) {
	if pc.onSelect != nil {
		pc.onSelect(pc.product.ID)
	}
}

// createUI creates the UI components
func (pc *ProductCard) createUI() {
	pc.nameLabel = widget.NewLabel("")
	pc.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	pc.nameLabel.Truncation = fyne.TextTruncateEllipsis

	pc.priceLabel = widget.NewLabel("")
	pc.priceLabel.Alignment = fyne.TextAlignTrailing

	pc.descLabel = widget.NewLabel("")
	pc.descLabel.Wrapping = fyne.TextWrapWord
	pc.descLabel.Truncation = fyne.TextTruncateEllipsis
}

// updateFromProduct fills the labels from the current product
func (pc *ProductCard) updateFromProduct() {
	pc.nameLabel.SetText(pc.product.Name)
	pc.priceLabel.SetText(pc.product.FormatPrice(pc.currencySymbol))
	pc.descLabel.SetText(pc.product.ShortDescription(CardDescriptionLength))
}

// CreateRenderer creates the widget renderer
func (pc *ProductCard) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, pc.priceLabel, pc.nameLabel)
	content := container.NewVBox(header, pc.descLabel)
	card := container.NewPadded(widget.NewCard("", "", content))
	return widget.NewSimpleRenderer(card)
}

// MinSize keeps cards readable in dense grids
func (pc *ProductCard) MinSize() fyne.Size {
	min := pc.BaseWidget.MinSize()
	if min.Width < CardMinWidth {
		min.Width = CardMinWidth
	}
	if min.Height < CardMinHeight {
		min.Height = CardMinHeight
	}
	return min
}
