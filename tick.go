package twin

import "fmt"

// Tick is a discrete unit of simulated time. The scheduler advances it by
// exactly one per loop iteration; nothing else in the core constructs ticks
// out of thin air except by addition of non-negative offsets.
type Tick uint64

// Add returns t + offset. offset must be non-negative; callers never have a
// reason to add a negative amount since Tick has no signed counterpart.
func (t Tick) Add(offset uint64) Tick {
	return Tick(uint64(t) + offset)
}

// Sub returns the non-negative distance from other to t (t - other).
// Panics if other > t: arithmetic underflow here is a programming error,
// not a runtime condition callers should recover from.
func (t Tick) Sub(other Tick) uint64 {
	if other > t {
		panic(fmt.Sprintf("twin: Tick.Sub underflow: %d - %d", t, other))
	}
	return uint64(t) - uint64(other)
}

// Clock converts ticks to wall-clock Unix seconds given a run configuration.
type Clock struct {
	startUnixSecs    int64
	tickDurationSecs uint32
}

// NewClock constructs a Clock from the run's start time and tick duration.
func NewClock(startUnixSecs int64, tickDurationSecs uint32) Clock {
	return Clock{startUnixSecs: startUnixSecs, tickDurationSecs: tickDurationSecs}
}

// UnixSecs returns the wall-clock time of tick t:
// start_unix_secs + t * tick_duration_secs.
func (c Clock) UnixSecs(t Tick) int64 {
	return c.startUnixSecs + int64(uint64(t)*uint64(c.tickDurationSecs))
}

// TickDurationSecs returns the configured duration of one tick, in seconds.
func (c Clock) TickDurationSecs() uint32 {
	return c.tickDurationSecs
}

// SimConfig is the run configuration passed to NewScheduler.
type SimConfig struct {
	StartUnixSecs       int64
	TickDurationSecs    uint32
	TotalTicks          uint64
	Seed                uint64
	NumThreads          int // 0 means runtime.GOMAXPROCS(0)
	OutputIntervalTicks uint64
}
