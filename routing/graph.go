// Package routing provides a reference twin/mobility.Router implementation:
// an in-memory directed graph with Dijkstra's shortest-path algorithm, using
// container/heap the way the teacher's event-priority queue does
// (sim/cluster/event_heap.go). Road-graph construction itself is explicitly
// out of scope for the core (spec.md §1); this package exists only so the
// module runs end to end without an external routing service.
package routing

import "github.com/twinsim/twin"

// edge is one directed connection in the Graph.
type edge struct {
	to           twin.NodeId
	id           twin.EdgeId
	lengthMeters float64
	speedMPS     map[twin.TransportMode]float64
}

// Graph is a directed, mode-aware adjacency-list road graph.
type Graph struct {
	adjacency  map[twin.NodeId][]edge
	nodeExists map[twin.NodeId]bool
	defaultMPS float64
}

// NewGraph returns an empty graph. defaultSpeedMPS is used for any
// transport mode not given an explicit speed via AddEdge's modeSpeeds.
func NewGraph(defaultSpeedMPS float64) *Graph {
	return &Graph{
		adjacency:  make(map[twin.NodeId][]edge),
		nodeExists: make(map[twin.NodeId]bool),
		defaultMPS: defaultSpeedMPS,
	}
}

// AddNode registers a node with no outgoing edges, so that isolated nodes
// (valid routing endpoints with no routes out) are still known to the
// graph.
func (g *Graph) AddNode(n twin.NodeId) {
	g.nodeExists[n] = true
	if _, ok := g.adjacency[n]; !ok {
		g.adjacency[n] = nil
	}
}

// AddEdge adds a directed edge from -> to of the given length, with
// optional per-mode speed overrides (m/s). Modes absent from modeSpeeds
// fall back to the graph's default speed.
func (g *Graph) AddEdge(id twin.EdgeId, from, to twin.NodeId, lengthMeters float64, modeSpeeds map[twin.TransportMode]float64) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], edge{to: to, id: id, lengthMeters: lengthMeters, speedMPS: modeSpeeds})
}

func (g *Graph) speedFor(e edge, mode twin.TransportMode) float64 {
	if e.speedMPS != nil {
		if v, ok := e.speedMPS[mode]; ok && v > 0 {
			return v
		}
	}
	return g.defaultMPS
}

// HasNode reports whether n has been registered (via AddNode or as an
// endpoint of AddEdge).
func (g *Graph) HasNode(n twin.NodeId) bool {
	return g.nodeExists[n]
}
