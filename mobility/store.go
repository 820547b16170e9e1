package mobility

import "github.com/twinsim/twin"

// Store is the dense per-agent MovementState array plus the sparse
// in-transit route cache described in spec.md §3. Its size is fixed at
// construction; the route cache shrinks as agents arrive and has no
// eviction policy because it is bounded by the number of currently
// in-transit agents (spec.md §9).
type Store struct {
	states []MovementState
	routes map[twin.AgentId]Route
}

// NewStore allocates a Store for exactly count agents, all unplaced
// (departure/destination INVALID) until Place is called.
func NewStore(count int) *Store {
	states := make([]MovementState, count)
	for i := range states {
		states[i] = MovementState{DepartureNode: twin.InvalidNodeId, DestinationNode: twin.InvalidNodeId}
	}
	return &Store{states: states, routes: make(map[twin.AgentId]Route)}
}

// Count returns the number of agents this store tracks.
func (s *Store) Count() int { return len(s.states) }

// State returns agent a's current MovementState.
func (s *Store) State(a twin.AgentId) MovementState { return s.states[a] }

// SetState overwrites agent a's MovementState.
func (s *Store) SetState(a twin.AgentId, st MovementState) { s.states[a] = st }

// Route returns agent a's cached route, if it has one (only populated
// while in transit).
func (s *Store) Route(a twin.AgentId) (Route, bool) {
	r, ok := s.routes[a]
	return r, ok
}

// SetRoute caches agent a's route for the duration of its journey.
func (s *Store) SetRoute(a twin.AgentId, r Route) {
	s.routes[a] = r
}

// ClearRoute drops agent a's cached route, called on arrival.
func (s *Store) ClearRoute(a twin.AgentId) {
	delete(s.routes, a)
}

// RouteCacheSize returns the number of currently-cached routes, i.e. the
// number of in-transit agents with a route. Exposed for resource-bound
// tests (spec.md §9: "Route cache growth bound").
func (s *Store) RouteCacheSize() int { return len(s.routes) }
