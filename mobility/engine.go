package mobility

import (
	"math"
	"sort"

	"github.com/twinsim/twin"
)

// Engine is the teleport-at-arrival mobility engine of spec.md §4.3: it
// owns a Store and a reference to a Router, translates TravelTo intents
// into journeys, sweeps arrivals once per tick, and answers visual
// interpolation queries. It implements twin.Mobility.
//
// Engine also keeps AgentStore's spatial cache fields (node_id, edge_id,
// edge_progress) in sync as a side effect of Place, BeginTravel, and
// TickArrivals, so code that only has an *twin.AgentStore (not a
// twin.Mobility) can still read an agent's last-known position. edge_id
// holds the first edge of the current route (INVALID when stationary);
// edge_progress is reset to 0.0 at every state transition and is not
// continuously updated tick-by-tick while in transit — continuously
// updated progress is available on demand via VisualPosition, which is a
// pull query rather than a per-tick write into AgentStore.
type Engine struct {
	store  *Store
	router Router
	agents *twin.AgentStore
}

// NewEngine constructs an Engine whose Store is sized to agents.Count(),
// using router for journey path-finding.
func NewEngine(router Router, agents *twin.AgentStore) *Engine {
	return &Engine{
		store:  NewStore(agents.Count()),
		router: router,
		agents: agents,
	}
}

// Place marks agent stationary at node as of tick now.
func (e *Engine) Place(agent twin.AgentId, node twin.NodeId, now twin.Tick) {
	e.store.SetState(agent, stationaryAt(node, now))
	e.store.ClearRoute(agent)
	e.syncAgentStore(agent, node, twin.InvalidEdgeId, 0.0)
}

// BeginTravel starts a journey. Fails with twin.ErrAlreadyInTransit if the
// agent is already traveling, twin.ErrNotPlaced if it has never been
// placed, or a *twin.RoutingError wrapping the router's failure. On
// success, ArrivalTick is always at least now+1 — no agent ever arrives in
// the tick it departed, even for a zero-cost from==to route.
func (e *Engine) BeginTravel(agent twin.AgentId, destination twin.NodeId, mode twin.TransportMode, now twin.Tick, tickDurationSecs uint32) (twin.Tick, error) {
	st := e.store.State(agent)
	if st.InTransit {
		return 0, twin.ErrAlreadyInTransit
	}
	if !st.DepartureNode.Valid() {
		return 0, twin.ErrNotPlaced
	}

	route, err := e.router.Route(st.DepartureNode, destination, mode)
	if err != nil {
		return 0, &twin.RoutingError{Err: err}
	}

	travelTicks := uint64(math.Ceil(route.TotalTravelSeconds / float64(tickDurationSecs)))
	if travelTicks < 1 {
		travelTicks = 1
	}
	arrival := now.Add(travelTicks)

	e.store.SetState(agent, MovementState{
		InTransit:       true,
		DepartureNode:   st.DepartureNode,
		DestinationNode: destination,
		DepartureTick:   now,
		ArrivalTick:     arrival,
	})
	e.store.SetRoute(agent, route)

	firstEdge := twin.InvalidEdgeId
	if len(route.Edges) > 0 {
		firstEdge = route.Edges[0]
	}
	e.syncAgentStore(agent, st.DepartureNode, firstEdge, 0.0)

	return arrival, nil
}

// TickArrivals sweeps every in-transit agent with ArrivalTick <= now,
// places each at its destination, drops its cached route, and returns the
// arrivals in ascending AgentId order.
func (e *Engine) TickArrivals(now twin.Tick) []twin.Arrival {
	var arrivals []twin.Arrival
	for i := 0; i < e.store.Count(); i++ {
		a := twin.AgentId(i)
		st := e.store.State(a)
		if st.InTransit && st.ArrivalTick <= now {
			arrivals = append(arrivals, twin.Arrival{Agent: a, Destination: st.DestinationNode})
		}
	}
	sort.Slice(arrivals, func(i, j int) bool { return arrivals[i].Agent < arrivals[j].Agent })
	for _, arr := range arrivals {
		e.Place(arr.Agent, arr.Destination, now)
	}
	return arrivals
}

// VisualPosition returns the interpolated position for visualization.
func (e *Engine) VisualPosition(agent twin.AgentId, now twin.Tick) (departure, destination twin.NodeId, progress float64) {
	st := e.store.State(agent)
	if !st.InTransit {
		return st.DepartureNode, st.DestinationNode, 1.0
	}
	span := st.ArrivalTick.Sub(st.DepartureTick)
	elapsed := now.Sub(st.DepartureTick)
	p := float64(elapsed) / float64(span)
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	return st.DepartureNode, st.DestinationNode, p
}

// InTransit reports whether the agent is currently traveling.
func (e *Engine) InTransit(agent twin.AgentId) bool {
	return e.store.State(agent).InTransit
}

// DepartureNode returns the agent's departure node.
func (e *Engine) DepartureNode(agent twin.AgentId) twin.NodeId {
	return e.store.State(agent).DepartureNode
}

// DestinationNode returns the agent's travel destination.
func (e *Engine) DestinationNode(agent twin.AgentId) twin.NodeId {
	return e.store.State(agent).DestinationNode
}

// EachStationary scans the Store once, in ascending AgentId order,
// invoking fn for every agent that is stationary with a valid departure
// node. This is the single O(count) scan the contact index is built from.
func (e *Engine) EachStationary(fn func(agent twin.AgentId, node twin.NodeId)) {
	for i := 0; i < e.store.Count(); i++ {
		a := twin.AgentId(i)
		st := e.store.State(a)
		if !st.InTransit && st.DepartureNode.Valid() {
			fn(a, st.DepartureNode)
		}
	}
}

// RouteCacheSize exposes the Store's route cache size for resource-bound
// tests.
func (e *Engine) RouteCacheSize() int { return e.store.RouteCacheSize() }

func (e *Engine) syncAgentStore(agent twin.AgentId, node twin.NodeId, edge twin.EdgeId, progress float64) {
	if e.agents == nil {
		return
	}
	e.agents.SetNodeID(agent, node)
	e.agents.SetEdgeID(agent, edge)
	e.agents.SetEdgeProgress(agent, progress)
}
