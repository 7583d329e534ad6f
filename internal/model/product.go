package model

import (
	"fmt"
	"strings"
)

// Product represents a single catalog item as returned by the catalog
// service. Values are never mutated after a fetch completes; a new fetch
// replaces the whole set.
type Product struct {
	ID          string  // unique within a fetched batch, used as list key and detail parameter
	Name        string  // display name, also the search key
	Price       float64 // unit price in the configured currency
	Description string  // free-text description
}

// MatchesQuery reports whether the product name contains query as a
// case-insensitive substring. An empty query matches every product.
func (p Product) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(query))
}

// FormatPrice returns the price formatted for display with the given
// currency symbol, e.g. "$49.90".
func (p Product) FormatPrice(symbol string) string {
	return fmt.Sprintf("%s%.2f", symbol, p.Price)
}

// ShortDescription returns the description truncated to maxLen runes with an
// ellipsis, for compact grid cells.
func (p Product) ShortDescription(maxLen int) string {
	desc := strings.TrimSpace(p.Description)
	runes := []rune(desc)
	if maxLen <= 0 || len(runes) <= maxLen {
		return desc
	}
	return strings.TrimSpace(string(runes[:maxLen])) + "…"
}
