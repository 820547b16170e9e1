package mobility

import "github.com/twinsim/twin"

// MovementState is one agent's travel state. When !InTransit, Destination
// equals Departure and ArrivalTick equals DepartureTick. When InTransit,
// ArrivalTick is always strictly greater than DepartureTick (spec.md §3).
type MovementState struct {
	InTransit       bool
	DepartureNode   twin.NodeId
	DestinationNode twin.NodeId
	DepartureTick   twin.Tick
	ArrivalTick     twin.Tick
}

// stationaryAt returns the MovementState for an agent placed at node as of
// tick now.
func stationaryAt(node twin.NodeId, now twin.Tick) MovementState {
	return MovementState{
		InTransit:       false,
		DepartureNode:   node,
		DestinationNode: node,
		DepartureTick:   now,
		ArrivalTick:     now,
	}
}
