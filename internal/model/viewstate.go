package model

// Phase represents which screen state the catalog view is in
type Phase string

const (
	// PhaseLoading means a fetch is in flight and no data is shown yet
	PhaseLoading Phase = "Loading"

	// PhaseError means the last fetch failed
	PhaseError Phase = "Error"

	// PhaseEmpty means the last fetch succeeded with zero products
	PhaseEmpty Phase = "Empty"

	// PhaseLoaded means the last fetch succeeded with at least one product
	PhaseLoaded Phase = "Loaded"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsSettled returns true if a fetch has resolved, successfully or not
func (p Phase) IsSettled() bool {
	return p == PhaseError || p == PhaseEmpty || p == PhaseLoaded
}

// ViewState is a snapshot of what the catalog screen should render.
// Exactly one Phase is active; the remaining fields are only meaningful for
// the phases noted below.
type ViewState struct {
	Phase   Phase
	Message string    // Error: stable user-presentable cause (localization key)
	Query   string    // active search text, kept across all phases
	All     []Product // Loaded: authoritative set from the last successful fetch
	Visible []Product // Loaded: subset of All matching Query
}

// NoMatches reports whether the view is loaded with products but the active
// search filtered all of them out. Distinct from PhaseEmpty, where the
// catalog itself had nothing.
func (vs ViewState) NoMatches() bool {
	return vs.Phase == PhaseLoaded && len(vs.All) > 0 && len(vs.Visible) == 0 && vs.Query != ""
}
