package twin

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pingPongMobility is a trivial twin.Mobility: two nodes, fixed 2-tick
// journeys either direction, no routing failures.
type pingPongMobility struct {
	states []pingPongState
}

type pingPongState struct {
	node      NodeId
	inTransit bool
	dest      NodeId
	arrival   Tick
}

func newPingPongMobility(count int, startNode NodeId) *pingPongMobility {
	states := make([]pingPongState, count)
	for i := range states {
		states[i] = pingPongState{node: startNode}
	}
	return &pingPongMobility{states: states}
}

func (m *pingPongMobility) Place(agent AgentId, node NodeId, now Tick) {
	m.states[agent] = pingPongState{node: node}
}

func (m *pingPongMobility) BeginTravel(agent AgentId, destination NodeId, mode TransportMode, now Tick, tickDurationSecs uint32) (Tick, error) {
	arrival := now.Add(2)
	m.states[agent] = pingPongState{node: m.states[agent].node, inTransit: true, dest: destination, arrival: arrival}
	return arrival, nil
}

func (m *pingPongMobility) TickArrivals(now Tick) []Arrival {
	var arrivals []Arrival
	for i, st := range m.states {
		if st.inTransit && st.arrival <= now {
			arrivals = append(arrivals, Arrival{Agent: AgentId(i), Destination: st.dest})
			m.states[i] = pingPongState{node: st.dest}
		}
	}
	return arrivals
}

func (m *pingPongMobility) VisualPosition(agent AgentId, now Tick) (NodeId, NodeId, float64) {
	st := m.states[agent]
	if !st.inTransit {
		return st.node, st.node, 1.0
	}
	return st.node, st.dest, 0.5
}

func (m *pingPongMobility) InTransit(agent AgentId) bool { return m.states[agent].inTransit }
func (m *pingPongMobility) DepartureNode(agent AgentId) NodeId {
	return m.states[agent].node
}
func (m *pingPongMobility) DestinationNode(agent AgentId) NodeId {
	if m.states[agent].inTransit {
		return m.states[agent].dest
	}
	return m.states[agent].node
}
func (m *pingPongMobility) EachStationary(fn func(agent AgentId, node NodeId)) {
	for i, st := range m.states {
		if !st.inTransit {
			fn(AgentId(i), st.node)
		}
	}
}

// noopBehavior satisfies BehaviorModel with Replan returning no intents,
// for tests that only care about the scheduler's tick-loop mechanics.
type noopBehavior struct{ BaseBehaviorModel }

func (noopBehavior) Replan(AgentId, *TickContext, *rand.Rand) []Intent { return nil }

// travelOnceBehavior sends one agent on a single journey the first time it
// wakes, then stays put.
type travelOnceBehavior struct {
	BaseBehaviorModel
	traveled map[AgentId]bool
}

func newTravelOnceBehavior() *travelOnceBehavior {
	return &travelOnceBehavior{traveled: make(map[AgentId]bool)}
}

func (b *travelOnceBehavior) Replan(agent AgentId, ctx *TickContext, rng *rand.Rand) []Intent {
	if b.traveled[agent] {
		return nil
	}
	b.traveled[agent] = true
	return []Intent{TravelTo(99, TransportModeWalk)}
}

func TestSchedulerRejectsMismatchedPlansLength(t *testing.T) {
	store := NewAgentStore(2)
	store.Close()
	rngs := NewAgentRngs(1, 2)
	_, err := NewScheduler(SimConfig{TotalTicks: 10, TickDurationSecs: 1}, store, rngs,
		[]*ActivityPlan{EmptyActivityPlan()}, newPingPongMobility(2, 0), noopBehavior{}, BaseObserver{})
	var builderErr *BuilderError
	require.ErrorAs(t, err, &builderErr)
}

type countingObserver struct {
	BaseObserver
	tickEnds int
	simEnds  int
}

func (o *countingObserver) OnTickEnd(Tick, int) { o.tickEnds++ }
func (o *countingObserver) OnSimEnd(Tick)        { o.simEnds++ }

func TestSchedulerRunsExactlyTotalTicksAndEndsOnce(t *testing.T) {
	store := NewAgentStore(1)
	store.Close()
	rngs := NewAgentRngs(1, 1)
	plans := []*ActivityPlan{EmptyActivityPlan()}
	obs := &countingObserver{}

	sched, err := NewScheduler(SimConfig{TotalTicks: 5, TickDurationSecs: 1, NumThreads: 1}, store, rngs, plans,
		newPingPongMobility(1, 0), noopBehavior{}, obs)
	require.NoError(t, err)

	sched.Run()
	assert.Equal(t, Tick(5), sched.Now())
	assert.Equal(t, 5, obs.tickEnds)
	assert.Equal(t, 1, obs.simEnds)

	// Calling finish-equivalent twice (via a second Run with no remaining
	// ticks) must not double-invoke OnSimEnd.
	sched.Run()
	assert.Equal(t, 1, obs.simEnds)
}

func TestSchedulerDrivesAgentThroughTravelAndArrival(t *testing.T) {
	store := NewAgentStore(1)
	store.Close()
	rngs := NewAgentRngs(1, 1)
	plan := NewActivityPlan([]ScheduledActivity{{StartOffsetTicks: 0, ActivityID: 1}}, 1)
	plans := []*ActivityPlan{plan}
	mob := newPingPongMobility(1, 0)
	behavior := newTravelOnceBehavior()

	sched, err := NewScheduler(SimConfig{TotalTicks: 10, TickDurationSecs: 1, NumThreads: 1}, store, rngs, plans,
		mob, behavior, BaseObserver{})
	require.NoError(t, err)

	sched.Run()
	assert.Equal(t, NodeId(99), mob.DepartureNode(0))
	assert.False(t, mob.InTransit(0))
}

func TestSchedulerMessageDeliveryIsVisibleOnlyAtNextWake(t *testing.T) {
	store := NewAgentStore(2)
	store.Close()
	rngs := NewAgentRngs(1, 2)

	senderPlan := NewActivityPlan([]ScheduledActivity{
		{StartOffsetTicks: 0, ActivityID: 1},
		{StartOffsetTicks: 2, ActivityID: 2},
	}, 1000)
	recipientPlan := NewActivityPlan([]ScheduledActivity{
		{StartOffsetTicks: 0, ActivityID: 1},
		{StartOffsetTicks: 5, ActivityID: 2},
	}, 1000)
	plans := []*ActivityPlan{senderPlan, recipientPlan}

	mob := newPingPongMobility(2, 0)
	received := make(map[AgentId][]Message)
	behavior := &recordingBehavior{received: received}

	sched, err := NewScheduler(SimConfig{TotalTicks: 10, TickDurationSecs: 1, NumThreads: 1}, store, rngs, plans,
		mob, behavior, BaseObserver{})
	require.NoError(t, err)

	behavior.sendOnFirstWake = 1

	sched.Run()
	require.Contains(t, behavior.received, AgentId(1))
	assert.Equal(t, []byte("hello"), behavior.received[AgentId(1)][0].Payload)
}

type recordingBehavior struct {
	BaseBehaviorModel
	sendOnFirstWake AgentId
	sent            bool
	received        map[AgentId][]Message
}

func (b *recordingBehavior) Replan(agent AgentId, ctx *TickContext, rng *rand.Rand) []Intent {
	if agent == 0 && !b.sent {
		b.sent = true
		return []Intent{SendMessage(b.sendOnFirstWake, []byte("hello"))}
	}
	return nil
}

func (b *recordingBehavior) OnMessage(agent, from AgentId, payload []byte, ctx *TickContext, rng *rand.Rand) []Intent {
	b.received[agent] = append(b.received[agent], Message{From: from, Payload: payload})
	return nil
}
