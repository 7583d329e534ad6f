package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ShopTheme defines the storefront look: a warmer primary, stronger error
// red for the failure panel, and slightly tightened spacing so more cards
// fit in the grid
type ShopTheme struct{}

// NewShopTheme creates a new shop theme
func NewShopTheme() fyne.Theme {
	return &ShopTheme{}
}

// Color returns theme colors
func (t *ShopTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 230, G: 126, B: 34, A: 255} // Orange for shop actions
	case theme.ColorNameError:
		return color.RGBA{R: 192, G: 43, B: 43, A: 255} // Red for the error panel
	case theme.ColorNameSuccess:
		return color.RGBA{R: 39, G: 144, B: 80, A: 255} // Green for prices
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 22, G: 22, B: 24, A: 255}
		}
		return color.RGBA{R: 252, G: 251, B: 248, A: 255} // Warm off-white
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ShopTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ShopTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments for the product grid
func (t *ShopTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 17
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 11
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
