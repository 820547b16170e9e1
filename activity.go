package twin

// ActivityDestinationKind distinguishes a resolved node destination from the
// unresolved Home/Work sentinels the behavior layer must resolve against
// application components.
type ActivityDestinationKind uint8

const (
	// DestinationNode targets a concrete, already-resolved NodeId.
	DestinationNode ActivityDestinationKind = iota
	// DestinationHome targets the agent's home node, resolved by the
	// behavior layer against an application component.
	DestinationHome
	// DestinationWork targets the agent's work node, resolved by the
	// behavior layer against an application component.
	DestinationWork
)

// ActivityDestination is a closed variant over the three destination kinds.
// Node is only meaningful when Kind == DestinationNode.
type ActivityDestination struct {
	Kind ActivityDestinationKind
	Node NodeId
}

// NodeDestination builds a resolved-node destination.
func NodeDestination(n NodeId) ActivityDestination {
	return ActivityDestination{Kind: DestinationNode, Node: n}
}

// HomeDestination builds the unresolved Home sentinel destination.
func HomeDestination() ActivityDestination {
	return ActivityDestination{Kind: DestinationHome}
}

// WorkDestination builds the unresolved Work sentinel destination.
func WorkDestination() ActivityDestination {
	return ActivityDestination{Kind: DestinationWork}
}

// ScheduledActivity is one entry of a cyclic activity plan.
type ScheduledActivity struct {
	StartOffsetTicks uint64 // in [0, cycle_ticks)
	DurationTicks    uint64 // informational only
	ActivityID       ActivityId
	Destination      ActivityDestination
}

// ActivityPlan is an agent's ordered, cyclic schedule. Activities must be
// sorted ascending by StartOffsetTicks; duplicate offsets are permitted
// (next_wake_tick guards against the resulting zero-length gaps).
type ActivityPlan struct {
	activities []ScheduledActivity
	cycleTicks uint64
}

// NewActivityPlan builds a plan from activities already sorted ascending by
// StartOffsetTicks, over a cycle of cycleTicks. An empty activities slice is
// permitted (cycleTicks is forced to 1 in that case, matching spec.md §3:
// "empty plans are allowed (cycle_ticks = 1, no activities)"). Panics if any
// offset is >= cycleTicks, or if activities are not sorted ascending: both
// are malformed-input programming errors the caller must fix before
// construction, not degraded conditions to tolerate at runtime.
func NewActivityPlan(activities []ScheduledActivity, cycleTicks uint64) *ActivityPlan {
	if len(activities) == 0 {
		return &ActivityPlan{cycleTicks: 1}
	}
	if cycleTicks == 0 {
		panic("twin: ActivityPlan cycleTicks must be > 0 for a non-empty plan")
	}
	prev := uint64(0)
	for i, a := range activities {
		if a.StartOffsetTicks >= cycleTicks {
			panic("twin: ActivityPlan activity start_offset_ticks must be < cycle_ticks")
		}
		if i > 0 && a.StartOffsetTicks < prev {
			panic("twin: ActivityPlan activities must be sorted ascending by start_offset_ticks")
		}
		prev = a.StartOffsetTicks
	}
	cp := make([]ScheduledActivity, len(activities))
	copy(cp, activities)
	return &ActivityPlan{activities: cp, cycleTicks: cycleTicks}
}

// EmptyActivityPlan returns a plan with no activities and cycle_ticks = 1.
func EmptyActivityPlan() *ActivityPlan {
	return &ActivityPlan{cycleTicks: 1}
}

// CycleTicks returns the plan's cycle length.
func (p *ActivityPlan) CycleTicks() uint64 { return p.cycleTicks }

// IsEmpty reports whether the plan has no scheduled activities.
func (p *ActivityPlan) IsEmpty() bool { return len(p.activities) == 0 }

// CyclePos returns t mod cycle_ticks.
func (p *ActivityPlan) CyclePos(t Tick) uint64 {
	return uint64(t) % p.cycleTicks
}

// currentIndex returns the index of the activity in effect at cyclePos,
// wrapping to the last activity if none starts at or before cyclePos.
// Only valid when the plan is non-empty.
func (p *ActivityPlan) currentIndex(cyclePos uint64) int {
	idx := -1
	for i, a := range p.activities {
		if a.StartOffsetTicks <= cyclePos {
			idx = i
		} else {
			break
		}
	}
	if idx == -1 {
		return len(p.activities) - 1
	}
	return idx
}

// CurrentActivity returns the activity in effect at t, and false if the
// plan is empty.
func (p *ActivityPlan) CurrentActivity(t Tick) (ScheduledActivity, bool) {
	if p.IsEmpty() {
		return ScheduledActivity{}, false
	}
	idx := p.currentIndex(p.CyclePos(t))
	return p.activities[idx], true
}

// NextWakeTick returns the next tick after t at which this agent's activity
// changes, or false for an empty plan. The result is always strictly
// greater than t (spec.md §8 invariant), even for single-activity plans
// consulted exactly at their cycle boundary, and even with duplicate start
// offsets: the current index is the last activity at or before the cycle
// position, so both cases take the wrap branch and wake one cycle later.
// ticks_until is additionally clamped to at least 1.
func (p *ActivityPlan) NextWakeTick(t Tick) (Tick, bool) {
	if p.IsEmpty() {
		return 0, false
	}
	cyclePos := p.CyclePos(t)
	curIdx := p.currentIndex(cyclePos)
	n := len(p.activities)
	nextIdx := (curIdx + 1) % n

	var ticksUntil uint64
	if nextIdx > curIdx {
		ticksUntil = p.activities[nextIdx].StartOffsetTicks - cyclePos
	} else {
		ticksUntil = p.cycleTicks - cyclePos + p.activities[nextIdx].StartOffsetTicks
	}
	if ticksUntil < 1 {
		ticksUntil = 1
	}
	return t.Add(ticksUntil), true
}
