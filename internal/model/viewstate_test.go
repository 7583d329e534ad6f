package model

import "testing"

func TestPhase_IsSettled(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected bool
	}{
		{PhaseLoading, false},
		{PhaseError, true},
		{PhaseEmpty, true},
		{PhaseLoaded, true},
	}

	for _, test := range tests {
		result := test.phase.IsSettled()
		if result != test.expected {
			t.Errorf("Phase(%s).IsSettled() = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestPhase_String(t *testing.T) {
	phase := PhaseLoaded
	expected := "Loaded"
	result := phase.String()

	if result != expected {
		t.Errorf("Phase.String() = %s, expected %s", result, expected)
	}
}

func TestViewState_NoMatches(t *testing.T) {
	products := []Product{{ID: "1", Name: "Chair"}}

	tests := []struct {
		name     string
		state    ViewState
		expected bool
	}{
		{
			"filtered to nothing",
			ViewState{Phase: PhaseLoaded, Query: "zzz", All: products, Visible: nil},
			true,
		},
		{
			"loaded with matches",
			ViewState{Phase: PhaseLoaded, Query: "cha", All: products, Visible: products},
			false,
		},
		{
			"loaded without query",
			ViewState{Phase: PhaseLoaded, Query: "", All: products, Visible: products},
			false,
		},
		{
			"empty catalog is not a filter miss",
			ViewState{Phase: PhaseEmpty, Query: "zzz"},
			false,
		},
		{
			"loading",
			ViewState{Phase: PhaseLoading, Query: "zzz"},
			false,
		},
	}

	for _, test := range tests {
		result := test.state.NoMatches()
		if result != test.expected {
			t.Errorf("%s: NoMatches() = %v, expected %v", test.name, result, test.expected)
		}
	}
}
