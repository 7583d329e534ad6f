// Package model defines domain data structures used across the app: catalog
// products and the view-state snapshot rendered by the UI. Structures are
// designed for direct binding in the UI and explicit state transitions.
package model
