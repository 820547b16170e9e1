package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/twinsim/twin"
	"github.com/twinsim/twin/behaviors"
	"github.com/twinsim/twin/mobility"
	"github.com/twinsim/twin/routing"
	"github.com/twinsim/twin/schedule"
	"github.com/twinsim/twin/snapshot"
	"github.com/twinsim/twin/twincfg"
)

var (
	scenarioPath   string
	edgesCSVPath   string
	agentSnapshotOut string
	summaryOut     string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario to completion",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := twincfg.Load(scenarioPath)
		if err != nil {
			logrus.Fatalf("failed to load scenario: %v", err)
		}

		graph := routing.NewGraph(cfg.DefaultSpeedMPS)
		if edgesCSVPath != "" {
			f, err := os.Open(edgesCSVPath)
			if err != nil {
				logrus.Fatalf("failed to open edges csv: %v", err)
			}
			defer f.Close() //nolint:errcheck // read-only file; close error is not actionable
			if err := routing.LoadEdgesCSV(f, graph); err != nil {
				logrus.Fatalf("failed to load edges csv: %v", err)
			}
		}
		router := routing.NewRouter(graph)

		scheduleFile, err := os.Open(cfg.ScheduleCSV)
		if err != nil {
			logrus.Fatalf("failed to open schedule csv: %v", err)
		}
		loaded, err := schedule.Load(scheduleFile)
		scheduleFile.Close() //nolint:errcheck // read-only file; close error is not actionable
		if err != nil {
			logrus.Fatalf("failed to load schedule: %v", err)
		}
		plans := schedule.BuildPlans(cfg.AgentCount, loaded)

		store := twin.NewAgentStore(cfg.AgentCount)
		store.Close()
		rngs := twin.NewAgentRngs(cfg.Sim.Seed, cfg.AgentCount)

		engine := mobility.NewEngine(router, store)
		for i := 0; i < cfg.AgentCount; i++ {
			engine.Place(twin.AgentId(i), 0, 0)
		}

		simCfg := cfg.Sim.ToSimConfig()
		clock := twin.NewClock(simCfg.StartUnixSecs, simCfg.TickDurationSecs)

		agentFile, err := os.Create(agentSnapshotOut)
		if err != nil {
			logrus.Fatalf("failed to create agent snapshot file: %v", err)
		}
		defer agentFile.Close() //nolint:errcheck // flushed explicitly by observer; close error not actionable

		summaryFile, err := os.Create(summaryOut)
		if err != nil {
			logrus.Fatalf("failed to create summary file: %v", err)
		}
		defer summaryFile.Close() //nolint:errcheck // flushed explicitly by observer; close error not actionable

		observer := snapshot.NewCSVObserver(agentFile, summaryFile, clock)

		behavior := behaviors.NewCommuterBehavior(twin.TransportModeCar, nil, nil)
		sched, err := twin.NewScheduler(simCfg, store, rngs, plans, engine, behavior, observer)
		if err != nil {
			logrus.Fatalf("failed to build scheduler: %v", err)
		}

		logrus.Infof("running %d agents for %d ticks (seed=%d)", cfg.AgentCount, simCfg.TotalTicks, simCfg.Seed)
		sched.Run()
		if err := observer.TakeError(); err != nil {
			logrus.Fatalf("snapshot write error: %v", err)
		}
		logrus.Info("run complete")
	},
}

func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to scenario YAML")
	runCmd.Flags().StringVar(&edgesCSVPath, "edges", "", "Path to road-graph edges CSV (optional)")
	runCmd.Flags().StringVar(&agentSnapshotOut, "agent-snapshot-out", "agents.csv", "Path to write agent-snapshot rows")
	runCmd.Flags().StringVar(&summaryOut, "summary-out", "summary.csv", "Path to write tick-summary rows")
	runCmd.MarkFlagRequired("scenario") //nolint:errcheck // cobra records the requirement; failure only occurs on a typo'd flag name
}
