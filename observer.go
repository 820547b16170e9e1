package twin

// Observer receives tick-boundary and snapshot callbacks from the
// scheduler. Callbacks run synchronously in the scheduler's own goroutine
// and must not block; they are invoked at tick cadence (potentially
// millions of times) and must not allocate per call in their no-op path.
//
// Call order per tick (spec.md §6): OnTickStart, OnTickEnd, optionally
// OnSnapshot, then OnSimEnd exactly once after the final tick.
type Observer interface {
	OnTickStart(now Tick)
	OnTickEnd(now Tick, woken int)
	OnSnapshot(now Tick, mobility Mobility, agents *AgentStore)
	OnSimEnd(finalTick Tick)
}

// BaseObserver implements Observer with no-op bodies for every method.
// Embed it to implement only the callbacks a concrete observer cares about.
type BaseObserver struct{}

func (BaseObserver) OnTickStart(Tick)                          {}
func (BaseObserver) OnTickEnd(Tick, int)                        {}
func (BaseObserver) OnSnapshot(Tick, Mobility, *AgentStore)     {}
func (BaseObserver) OnSimEnd(Tick)                              {}
