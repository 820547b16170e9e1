// Package mobility implements the teleport-at-arrival movement engine and
// route cache described in spec.md §4.3: Engine implements twin.Mobility,
// translating TravelTo intents into journeys and sweeping arrivals once per
// tick. Road-graph construction and shortest-path routing are out of scope
// for the core (spec.md §1); Router is the interface the engine consumes,
// and twin/routing provides one concrete reference implementation.
package mobility

import (
	"errors"

	"github.com/twinsim/twin"
)

// ErrNoRoute means the router found no path between the requested nodes.
var ErrNoRoute = errors.New("mobility: no route")

// ErrNodeNotFound means a requested node does not exist in the router's
// network.
var ErrNodeNotFound = errors.New("mobility: node not found")

// Route is an ordered sequence of edges plus the total travel time they
// represent, in seconds.
type Route struct {
	Edges              []twin.EdgeId
	TotalTravelSeconds float64
}

// Router yields a Route between two nodes for a given transport mode. It
// must be safe to call concurrently from multiple goroutines. The scheduler
// itself only reaches the Router through Engine.BeginTravel, which runs in
// the sequential apply phase E, never in the parallel phase D.
//
// When from == to, Route must return a trivial route: an empty edge list
// and zero seconds.
type Router interface {
	Route(from, to twin.NodeId, mode twin.TransportMode) (Route, error)
}
