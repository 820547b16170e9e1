// Package testutil provides shared test infrastructure for the twin engine.
// It mirrors the teacher's golden-dataset harness: a JSON fixture loaded
// once per test run, compared against simulation output with exact
// assertions.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenScenario is one fixture entry: a scenario's inputs plus the exact
// final per-agent state a conforming implementation must reproduce.
type GoldenScenario struct {
	Name          string       `json:"name"`
	AgentCount    int          `json:"agent_count"`
	Seed          uint64       `json:"seed"`
	TotalTicks    uint64       `json:"total_ticks"`
	FinalSnapshot []AgentState `json:"final_snapshot"`
}

// AgentState is one agent's expected terminal state.
type AgentState struct {
	Agent           uint32 `json:"agent"`
	DepartureNode   uint32 `json:"departure_node"`
	InTransit       bool   `json:"in_transit"`
	DestinationNode uint32 `json:"destination_node"`
}

// GoldenDataset is the structure of testdata/goldenscenarios.json.
type GoldenDataset struct {
	Scenarios []GoldenScenario `json:"scenarios"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory,
// resolved relative to this source file the way the teacher's
// LoadGoldenDataset does (internal/testutil/ -> repo root testdata/).
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata", "goldenscenarios.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("failed to parse golden dataset: %v", err)
	}
	return &dataset
}
