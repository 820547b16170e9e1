package routing

import (
	"container/heap"
	"fmt"

	"github.com/twinsim/twin"
	"github.com/twinsim/twin/mobility"
)

// Router is a reference twin/mobility.Router backed by a Graph. It computes
// shortest paths on demand with Dijkstra's algorithm; call Precompute to
// build all-pairs shortest-path tables up front and eliminate per-call
// cost, matching spec.md §4.7's note that implementations are free to
// precompute. Route only reads the Graph and the precomputed table, so
// concurrent Route calls are safe; Precompute replaces the table and is not
// safe to run concurrently with Route.
type Router struct {
	graph       *Graph
	precomputed map[twin.NodeId]map[twin.TransportMode]shortestPaths
}

// NewRouter wraps graph for on-demand routing.
func NewRouter(graph *Graph) *Router {
	return &Router{graph: graph}
}

// Precompute builds shortest-path trees from every node, for every mode
// present in modes. Subsequent Route calls for a precomputed (from, mode)
// pair are served from the table instead of running Dijkstra again.
func (r *Router) Precompute(modes []twin.TransportMode) {
	r.precomputed = make(map[twin.NodeId]map[twin.TransportMode]shortestPaths)
	for from := range r.graph.adjacency {
		r.precomputed[from] = make(map[twin.TransportMode]shortestPaths)
		for _, mode := range modes {
			r.precomputed[from][mode] = dijkstra(r.graph, from, mode)
		}
	}
}

// Route implements mobility.Router.
func (r *Router) Route(from, to twin.NodeId, mode twin.TransportMode) (mobility.Route, error) {
	if from == to {
		return mobility.Route{}, nil
	}
	if !r.graph.HasNode(from) || !r.graph.HasNode(to) {
		return mobility.Route{}, fmt.Errorf("%w: %v -> %v", mobility.ErrNodeNotFound, from, to)
	}

	var sp shortestPaths
	if byMode, ok := r.precomputed[from]; ok {
		if cached, ok := byMode[mode]; ok {
			sp = cached
		} else {
			sp = dijkstra(r.graph, from, mode)
		}
	} else {
		sp = dijkstra(r.graph, from, mode)
	}

	edges, seconds, ok := sp.pathTo(to)
	if !ok {
		return mobility.Route{}, fmt.Errorf("%w: %v -> %v", mobility.ErrNoRoute, from, to)
	}
	return mobility.Route{Edges: edges, TotalTravelSeconds: seconds}, nil
}

// shortestPaths is one node's single-source shortest-path tree for one
// transport mode.
type shortestPaths struct {
	distSeconds map[twin.NodeId]float64
	prevEdge    map[twin.NodeId]twin.EdgeId
	prevNode    map[twin.NodeId]twin.NodeId
}

func (sp shortestPaths) pathTo(to twin.NodeId) ([]twin.EdgeId, float64, bool) {
	dist, ok := sp.distSeconds[to]
	if !ok {
		return nil, 0, false
	}
	var edges []twin.EdgeId
	for n := to; ; {
		e, hasEdge := sp.prevEdge[n]
		if !hasEdge {
			break
		}
		edges = append(edges, e)
		n = sp.prevNode[n]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges, dist, true
}

// heapItem is one entry of the Dijkstra priority queue.
type heapItem struct {
	node twin.NodeId
	dist float64
}

type itemHeap []heapItem

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func dijkstra(g *Graph, source twin.NodeId, mode twin.TransportMode) shortestPaths {
	sp := shortestPaths{
		distSeconds: map[twin.NodeId]float64{source: 0},
		prevEdge:    make(map[twin.NodeId]twin.EdgeId),
		prevNode:    make(map[twin.NodeId]twin.NodeId),
	}

	pq := &itemHeap{{node: source, dist: 0}}
	heap.Init(pq)
	visited := make(map[twin.NodeId]bool)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(heapItem)
		if visited[cur.node] {
			continue
		}
		visited[cur.node] = true

		for _, e := range g.adjacency[cur.node] {
			speed := g.speedFor(e, mode)
			if speed <= 0 {
				continue
			}
			travelSeconds := e.lengthMeters / speed
			alt := cur.dist + travelSeconds
			if best, ok := sp.distSeconds[e.to]; !ok || alt < best {
				sp.distSeconds[e.to] = alt
				sp.prevEdge[e.to] = e.id
				sp.prevNode[e.to] = cur.node
				heap.Push(pq, heapItem{node: e.to, dist: alt})
			}
		}
	}

	return sp
}
