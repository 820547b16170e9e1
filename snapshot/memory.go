package snapshot

import "github.com/twinsim/twin"

// AgentSnapshot is one row of a MemoryObserver's accumulated snapshot,
// mirroring the CSV agent-snapshot row of spec.md §6.
type AgentSnapshot struct {
	Agent           twin.AgentId
	Tick            twin.Tick
	DepartureNode   twin.NodeId
	InTransit       bool
	DestinationNode uint32 // math.MaxUint32 when stationary
}

// TickSummary is one row of a MemoryObserver's accumulated tick summary.
type TickSummary struct {
	Tick         twin.Tick
	UnixTimeSecs int64
	WokenAgents  uint64
}

// MemoryObserver accumulates snapshots and tick summaries in memory for
// test assertions, instead of streaming them to CSV. It implements the
// same take_error contract as CSVObserver even though nothing in it can
// actually fail, for interface parity between the two observers.
type MemoryObserver struct {
	twin.BaseObserver
	clock     twin.Clock
	Snapshots []AgentSnapshot
	Summaries []TickSummary
	SimEnded  bool
	err       error
}

// NewMemoryObserver constructs an empty MemoryObserver using clock to
// resolve tick to unix_time_secs for tick summaries.
func NewMemoryObserver(clock twin.Clock) *MemoryObserver {
	return &MemoryObserver{clock: clock}
}

// OnTickEnd appends a TickSummary.
func (o *MemoryObserver) OnTickEnd(t twin.Tick, woken int) {
	o.Summaries = append(o.Summaries, TickSummary{
		Tick:         t,
		UnixTimeSecs: o.clock.UnixSecs(t),
		WokenAgents:  uint64(woken),
	})
}

// OnSnapshot appends one AgentSnapshot per agent in store.
func (o *MemoryObserver) OnSnapshot(t twin.Tick, mobility twin.Mobility, store *twin.AgentStore) {
	for i := 0; i < store.Count(); i++ {
		agent := twin.AgentId(i)
		inTransit := mobility.InTransit(agent)
		destination := stationaryDestination
		if inTransit {
			destination = uint32(mobility.DestinationNode(agent))
		}
		o.Snapshots = append(o.Snapshots, AgentSnapshot{
			Agent:           agent,
			Tick:            t,
			DepartureNode:   mobility.DepartureNode(agent),
			InTransit:       inTransit,
			DestinationNode: destination,
		})
	}
}

// OnSimEnd marks the run complete.
func (o *MemoryObserver) OnSimEnd(twin.Tick) {
	o.SimEnded = true
}

// TakeError returns and clears the latched error, always nil for
// MemoryObserver.
func (o *MemoryObserver) TakeError() error {
	err := o.err
	o.err = nil
	return err
}
