package twincfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadParsesScenario(t *testing.T) {
	path := writeScenario(t, `
sim:
  start_unix_secs: 1000
  tick_duration_secs: 60
  total_ticks: 100
  seed: 42
  output_interval_ticks: 10
schedule_csv: schedule.csv
agent_count: 5
default_speed_mps: 1.4
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.AgentCount)
	assert.Equal(t, uint64(42), cfg.Sim.ToSimConfig().Seed)
	assert.Equal(t, 0, cfg.Sim.ToSimConfig().NumThreads)
}

func TestLoadHonorsExplicitNumThreads(t *testing.T) {
	path := writeScenario(t, `
sim:
  start_unix_secs: 0
  tick_duration_secs: 60
  total_ticks: 1
  seed: 1
  num_threads: 4
  output_interval_ticks: 0
schedule_csv: schedule.csv
agent_count: 1
default_speed_mps: 1.0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Sim.ToSimConfig().NumThreads)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	path := writeScenario(t, `
sim:
  tick_duration_secs: 60
  totally_unknown_field: 1
agent_count: 1
default_speed_mps: 1.0
schedule_csv: schedule.csv
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidScenario(t *testing.T) {
	path := writeScenario(t, `
sim:
  tick_duration_secs: 0
agent_count: 1
default_speed_mps: 1.0
schedule_csv: schedule.csv
`)

	_, err := Load(path)
	assert.Error(t, err)
}
