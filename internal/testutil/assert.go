package testutil

import "testing"

// AssertAgentStatesEqual compares two final-snapshot slices element by
// element, reporting every mismatching agent rather than stopping at the
// first one — useful when a determinism regression only affects a handful
// of agents out of many.
func AssertAgentStatesEqual(t *testing.T, want, got []AgentState) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("snapshot length mismatch: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("agent %d: want %+v, got %+v", want[i].Agent, want[i], got[i])
		}
	}
}
