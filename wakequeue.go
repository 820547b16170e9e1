package twin

import "sort"

// WakeQueue is a sparse mapping from future Tick to the ordered list of
// agents that must be woken (run replan) at that tick. The same agent may
// appear at multiple ticks, and multiple times at the same tick across
// distinct pushes; there is no deduplication (spec.md §3, §9 Open
// Questions: duplicates are tolerated, each produces an independent wake).
type WakeQueue struct {
	byTick map[Tick][]AgentId
	ticks  []Tick // kept sorted ascending; acts as the priority index
	count  int
}

// NewWakeQueue returns an empty wake queue.
func NewWakeQueue() *WakeQueue {
	return &WakeQueue{byTick: make(map[Tick][]AgentId)}
}

// Push inserts agent a to be woken at tick t, keeping t's list sorted
// ascending by AgentId. A tick's wake list is assembled from pushes made at
// many different earlier ticks (construction, Phase A arrivals, Phase E
// WakeAt/TravelTo) with no ordering relationship to each other, so Phase E's
// ascending-AgentId apply order (spec.md §4.6, §5, §9) has to be restored
// here rather than assumed from insertion order.
func (q *WakeQueue) Push(t Tick, a AgentId) {
	list, exists := q.byTick[t]
	if !exists {
		q.insertTick(t)
	}
	i := sort.Search(len(list), func(i int) bool { return list[i] >= a })
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = a
	q.byTick[t] = list
	q.count++
}

func (q *WakeQueue) insertTick(t Tick) {
	i := sort.Search(len(q.ticks), func(i int) bool { return q.ticks[i] >= t })
	q.ticks = append(q.ticks, 0)
	copy(q.ticks[i+1:], q.ticks[i:])
	q.ticks[i] = t
}

// DrainTick removes and returns the entire agent list scheduled at t, or
// (nil, false) if no agents are scheduled at t. No allocation occurs in the
// empty case.
func (q *WakeQueue) DrainTick(t Tick) ([]AgentId, bool) {
	list, exists := q.byTick[t]
	if !exists {
		return nil, false
	}
	delete(q.byTick, t)
	q.count -= len(list)
	i := sort.Search(len(q.ticks), func(i int) bool { return q.ticks[i] >= t })
	if i < len(q.ticks) && q.ticks[i] == t {
		q.ticks = append(q.ticks[:i], q.ticks[i+1:]...)
	}
	return list, true
}

// NextTick returns the smallest tick with a non-empty agent list, or
// (0, false) if the queue is empty.
func (q *WakeQueue) NextTick() (Tick, bool) {
	if len(q.ticks) == 0 {
		return 0, false
	}
	return q.ticks[0], true
}

// Len returns the total number of (tick, agent) entries currently queued.
func (q *WakeQueue) Len() int { return q.count }

// BuildFromPlans seeds the queue at construction time: for each agent index
// i, if plans[i].NextWakeTick(t0) yields a tick, that agent is pushed there.
// plans[i] may be nil, meaning an empty plan (agent never auto-wakes).
func (q *WakeQueue) BuildFromPlans(plans []*ActivityPlan, t0 Tick) {
	for i, p := range plans {
		if p == nil {
			continue
		}
		if wake, ok := p.NextWakeTick(t0); ok {
			q.Push(wake, AgentId(i))
		}
	}
}
