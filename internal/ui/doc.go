// Package ui contains the Fyne-based desktop user interface for the
// application. It renders the catalog view-state (loading skeletons, error
// panel, empty message, product grid), wires the search entry and retry
// affordances to the browse service, and shows product details and
// settings. All UI strings are localized via Localization.
package ui
