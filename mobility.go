package twin

// Arrival is one (agent, destination) pair reported by Mobility.TickArrivals
// for an agent whose journey has just completed.
type Arrival struct {
	Agent       AgentId
	Destination NodeId
}

// Mobility is the scheduler's view onto per-agent travel state: the
// teleport-at-arrival engine described in spec.md §4.3. The concrete
// implementation (twin/mobility.Engine) owns the MobilityStore and a
// Router; twin itself only depends on this interface, so the core never
// imports the mobility package (which imports twin for its types) — that
// would be an import cycle.
type Mobility interface {
	// Place marks agent stationary at node as of tick now.
	Place(agent AgentId, node NodeId, now Tick)

	// BeginTravel starts a journey to destination by mode. Returns the
	// computed arrival tick on success. Returns ErrAlreadyInTransit,
	// ErrNotPlaced, or a *RoutingError on failure; all are recoverable —
	// callers treat any error identically (agent stays put).
	BeginTravel(agent AgentId, destination NodeId, mode TransportMode, now Tick, tickDurationSecs uint32) (Tick, error)

	// TickArrivals sweeps every in-transit agent with ArrivalTick <= now,
	// places each at its destination, drops its cached route, and returns
	// the arrivals in ascending AgentId order.
	TickArrivals(now Tick) []Arrival

	// VisualPosition returns the agent's interpolated position: the
	// departure and destination nodes, and progress in [0, 1]. Stationary
	// agents report progress 1 and departure == destination.
	VisualPosition(agent AgentId, now Tick) (departure, destination NodeId, progress float64)

	// InTransit reports whether the agent is currently traveling.
	InTransit(agent AgentId) bool

	// DepartureNode returns the agent's departure node: its current
	// stationary node if not traveling, or the node it left from if it is.
	// INVALID if the agent has never been placed.
	DepartureNode(agent AgentId) NodeId

	// DestinationNode returns the agent's travel destination, or its
	// current node (== DepartureNode) if stationary.
	DestinationNode(agent AgentId) NodeId

	// EachStationary calls fn once for every agent that is stationary and
	// has a valid (placed) departure node, in ascending AgentId order. This
	// is the single O(count) scan the contact index is built from
	// (spec.md §4.5).
	EachStationary(fn func(agent AgentId, node NodeId))
}
