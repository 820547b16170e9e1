// Package twincfg loads scenario configuration from YAML, in the style of
// the teacher's cmd/default_config.go: strict field checking via
// yaml.v3's KnownFields(true), so a typo'd key is a load-time error
// instead of a silently-ignored default.
package twincfg

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/twinsim/twin"
)

// ScenarioConfig is the full contents of a scenario YAML file: the run
// parameters plus the file paths of its inputs. All top-level sections
// must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioConfig struct {
	Sim            SimSection `yaml:"sim"`
	ScheduleCSV    string     `yaml:"schedule_csv"`
	AgentCount     int        `yaml:"agent_count"`
	DefaultSpeedMPS float64   `yaml:"default_speed_mps"`
}

// SimSection mirrors twin.SimConfig with YAML tags; num_threads is a
// pointer so its YAML absence is distinguishable from an explicit 0.
type SimSection struct {
	StartUnixSecs       int64  `yaml:"start_unix_secs"`
	TickDurationSecs    uint32 `yaml:"tick_duration_secs"`
	TotalTicks          uint64 `yaml:"total_ticks"`
	Seed                uint64 `yaml:"seed"`
	NumThreads          *int   `yaml:"num_threads"`
	OutputIntervalTicks uint64 `yaml:"output_interval_ticks"`
}

// ToSimConfig converts the YAML section into a twin.SimConfig, resolving
// an absent num_threads to 0 (the scheduler's "use GOMAXPROCS" sentinel).
func (s SimSection) ToSimConfig() twin.SimConfig {
	numThreads := 0
	if s.NumThreads != nil {
		numThreads = *s.NumThreads
	}
	return twin.SimConfig{
		StartUnixSecs:       s.StartUnixSecs,
		TickDurationSecs:    s.TickDurationSecs,
		TotalTicks:          s.TotalTicks,
		Seed:                s.Seed,
		NumThreads:          numThreads,
		OutputIntervalTicks: s.OutputIntervalTicks,
	}
}

// Load parses a scenario YAML file at path with strict field checking: an
// unrecognized key is a load-time error, not a silently-ignored default.
func Load(path string) (ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, fmt.Errorf("twincfg: failed to read %s: %w", path, err)
	}

	var cfg ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return ScenarioConfig{}, fmt.Errorf("twincfg: failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return ScenarioConfig{}, fmt.Errorf("twincfg: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the scenario for the load-time-fatal conditions
// spec.md §7 assigns to configuration: a non-positive tick_duration_secs
// or agent_count is a malformed scenario, not a degraded run.
func (cfg ScenarioConfig) Validate() error {
	if cfg.Sim.TickDurationSecs == 0 {
		return fmt.Errorf("sim.tick_duration_secs must be > 0")
	}
	if cfg.AgentCount <= 0 {
		return fmt.Errorf("agent_count must be > 0")
	}
	if cfg.DefaultSpeedMPS <= 0 {
		return fmt.Errorf("default_speed_mps must be > 0")
	}
	return nil
}
