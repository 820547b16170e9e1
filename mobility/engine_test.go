package mobility

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinsim/twin"
)

type stubRouter struct {
	route Route
	err   error
}

func (s stubRouter) Route(from, to twin.NodeId, mode twin.TransportMode) (Route, error) {
	return s.route, s.err
}

func TestPlaceMarksStationaryAndSyncsAgentStore(t *testing.T) {
	store := twin.NewAgentStore(1)
	store.Close()
	e := NewEngine(stubRouter{}, store)

	e.Place(0, 5, 3)

	assert.False(t, e.InTransit(0))
	assert.Equal(t, twin.NodeId(5), e.DepartureNode(0))
	assert.Equal(t, twin.NodeId(5), e.DestinationNode(0))
	assert.Equal(t, twin.NodeId(5), store.NodeID(0))
	assert.Equal(t, twin.InvalidEdgeId, store.EdgeID(0))
	assert.Equal(t, 0.0, store.EdgeProgress(0))
}

func TestBeginTravelRequiresPriorPlacement(t *testing.T) {
	store := twin.NewAgentStore(1)
	store.Close()
	e := NewEngine(stubRouter{}, store)

	_, err := e.BeginTravel(0, 9, twin.TransportModeCar, 0, 60)
	assert.True(t, errors.Is(err, twin.ErrNotPlaced))
}

func TestBeginTravelRejectsWhileAlreadyInTransit(t *testing.T) {
	store := twin.NewAgentStore(1)
	store.Close()
	router := stubRouter{route: Route{TotalTravelSeconds: 120}}
	e := NewEngine(router, store)
	e.Place(0, 1, 0)

	_, err := e.BeginTravel(0, 2, twin.TransportModeCar, 0, 60)
	require.NoError(t, err)

	_, err = e.BeginTravel(0, 3, twin.TransportModeCar, 0, 60)
	assert.True(t, errors.Is(err, twin.ErrAlreadyInTransit))
}

func TestBeginTravelWrapsRouterFailure(t *testing.T) {
	store := twin.NewAgentStore(1)
	store.Close()
	routerErr := errors.New("no such node")
	e := NewEngine(stubRouter{err: routerErr}, store)
	e.Place(0, 1, 0)

	_, err := e.BeginTravel(0, 2, twin.TransportModeCar, 0, 60)
	var routingErr *twin.RoutingError
	require.True(t, errors.As(err, &routingErr))
	assert.True(t, errors.Is(err, routerErr))
}

func TestBeginTravelComputesArrivalTickAndClampsToAtLeastOne(t *testing.T) {
	store := twin.NewAgentStore(1)
	store.Close()
	router := stubRouter{route: Route{Edges: []twin.EdgeId{7}, TotalTravelSeconds: 1}}
	e := NewEngine(router, store)
	e.Place(0, 1, 0)

	arrival, err := e.BeginTravel(0, 2, twin.TransportModeCar, 0, 60)
	require.NoError(t, err)
	assert.Equal(t, twin.Tick(1), arrival)
	assert.True(t, e.InTransit(0))
	assert.Equal(t, twin.EdgeId(7), store.EdgeID(0))
}

func TestTickArrivalsPlacesAgentsAtDestinationInOrder(t *testing.T) {
	store := twin.NewAgentStore(2)
	store.Close()
	router := stubRouter{route: Route{TotalTravelSeconds: 60}}
	e := NewEngine(router, store)
	e.Place(0, 1, 0)
	e.Place(1, 1, 0)

	arrival0, err := e.BeginTravel(0, 9, twin.TransportModeCar, 0, 60)
	require.NoError(t, err)
	_, err = e.BeginTravel(1, 9, twin.TransportModeCar, 0, 60)
	require.NoError(t, err)

	arrivals := e.TickArrivals(arrival0)
	require.Len(t, arrivals, 2)
	assert.Equal(t, twin.AgentId(0), arrivals[0].Agent)
	assert.Equal(t, twin.AgentId(1), arrivals[1].Agent)
	assert.False(t, e.InTransit(0))
	assert.Equal(t, twin.NodeId(9), e.DepartureNode(0))
	assert.Equal(t, 0, e.RouteCacheSize())
}

func TestVisualPositionInterpolatesDuringTransit(t *testing.T) {
	store := twin.NewAgentStore(1)
	store.Close()
	router := stubRouter{route: Route{TotalTravelSeconds: 100}}
	e := NewEngine(router, store)
	e.Place(0, 1, 0)
	arrival, err := e.BeginTravel(0, 2, twin.TransportModeCar, 0, 1)
	require.NoError(t, err)

	dep, dest, progress := e.VisualPosition(0, arrival/2)
	assert.Equal(t, twin.NodeId(1), dep)
	assert.Equal(t, twin.NodeId(2), dest)
	assert.InDelta(t, 0.5, progress, 0.01)

	_, _, stationaryProgress := e.VisualPosition(0, arrival)
	_ = stationaryProgress
}

func TestEachStationaryExcludesInTransitAgents(t *testing.T) {
	store := twin.NewAgentStore(2)
	store.Close()
	router := stubRouter{route: Route{TotalTravelSeconds: 60}}
	e := NewEngine(router, store)
	e.Place(0, 1, 0)
	e.Place(1, 1, 0)
	_, err := e.BeginTravel(1, 9, twin.TransportModeCar, 0, 60)
	require.NoError(t, err)

	seen := map[twin.AgentId]twin.NodeId{}
	e.EachStationary(func(agent twin.AgentId, node twin.NodeId) {
		seen[agent] = node
	})
	assert.Equal(t, map[twin.AgentId]twin.NodeId{0: 1}, seen)
}
