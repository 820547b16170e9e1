// Package snapshot provides reference twin.Observer implementations: a
// streaming CSV writer and an in-memory accumulator for tests. Output
// backends are explicitly out of scope for the core (spec.md §1); these
// exist so the module runs end to end, grounded on the teacher's own
// encoding/csv usage (sim/workload_config.go).
package snapshot

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/twinsim/twin"
)

const stationaryDestination = uint32(math.MaxUint32)

// CSVObserver streams agent-snapshot and tick-summary rows to two
// io.Writers as described in spec.md §6. Write errors are not returned
// from the twin.Observer callbacks (the interface has no error return);
// they are latched and retrievable via TakeError, matching spec.md §7's
// "Observer write errors... surfaced by an explicit take_error".
type CSVObserver struct {
	twin.BaseObserver
	agents  *csv.Writer
	summary *csv.Writer
	clock   twin.Clock
	err     error
}

// NewCSVObserver wraps agentRows (one row per snapshotted agent) and
// summaryRows (one row per tick) writers. clock resolves tick to
// unix_time_secs for the summary row.
func NewCSVObserver(agentRows, summaryRows io.Writer, clock twin.Clock) *CSVObserver {
	return &CSVObserver{
		agents:  csv.NewWriter(agentRows),
		summary: csv.NewWriter(summaryRows),
		clock:   clock,
	}
}

// OnTickEnd writes the tick-summary row: tick, unix_time_secs, woken_agents.
func (o *CSVObserver) OnTickEnd(t twin.Tick, woken int) {
	if o.err != nil {
		return
	}
	record := []string{
		strconv.FormatUint(uint64(t), 10),
		strconv.FormatInt(o.clock.UnixSecs(t), 10),
		strconv.FormatUint(uint64(woken), 10),
	}
	if err := o.summary.Write(record); err != nil {
		o.err = err
		return
	}
	o.summary.Flush()
	o.err = o.summary.Error()
}

// OnSnapshot writes one agent-snapshot row per agent in store: agent_id,
// tick, departure_node, in_transit, destination_node (u32::MAX when
// stationary).
func (o *CSVObserver) OnSnapshot(t twin.Tick, mobility twin.Mobility, store *twin.AgentStore) {
	if o.err != nil {
		return
	}
	for i := 0; i < store.Count(); i++ {
		agent := twin.AgentId(i)
		departure := mobility.DepartureNode(agent)
		inTransit := mobility.InTransit(agent)
		destination := stationaryDestination
		if inTransit {
			destination = uint32(mobility.DestinationNode(agent))
		}
		record := []string{
			strconv.FormatUint(uint64(agent), 10),
			strconv.FormatUint(uint64(t), 10),
			strconv.FormatUint(uint64(departure), 10),
			strconv.FormatBool(inTransit),
			strconv.FormatUint(uint64(destination), 10),
		}
		if err := o.agents.Write(record); err != nil {
			o.err = err
			return
		}
	}
	o.agents.Flush()
	o.err = o.agents.Error()
}

// OnSimEnd flushes both writers.
func (o *CSVObserver) OnSimEnd(twin.Tick) {
	o.agents.Flush()
	o.summary.Flush()
	if o.err == nil {
		o.err = o.agents.Error()
	}
	if o.err == nil {
		o.err = o.summary.Error()
	}
}

// TakeError returns and clears the first write error encountered, if any.
func (o *CSVObserver) TakeError() error {
	err := o.err
	o.err = nil
	return err
}
