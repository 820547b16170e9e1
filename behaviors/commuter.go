// Package behaviors provides reference twin.BehaviorModel implementations.
// Application-specific behavior is explicitly the integrator's concern
// (spec.md §4.5: "pure functions of local state"); these exist as worked
// examples and as fixtures for the scheduler's own tests.
package behaviors

import (
	"math/rand"

	"github.com/twinsim/twin"
)

// HomeNode and WorkNode are the distinct component types CommuterBehavior
// registers on an AgentStore to resolve twin.DestinationHome and
// twin.DestinationWork. They are named types (not bare twin.NodeId) so
// their reflect.Type keys never collide with any other NodeId-valued
// component an integrator registers.
type HomeNode twin.NodeId
type WorkNode twin.NodeId

// CommuterBehavior drives an agent through its ActivityPlan: on every
// wake it looks up the activity now in effect and, if that activity's
// destination differs from the agent's current node, emits a single
// TravelTo intent. Home/Work destinations are resolved against the
// HomeNode/WorkNode components registered on the AgentStore; when Homes
// or Works is nil, Home or Work respectively resolves to node 0.
type CommuterBehavior struct {
	twin.BaseBehaviorModel
	Mode  twin.TransportMode
	Homes *twin.Component[HomeNode]
	Works *twin.Component[WorkNode]
}

// NewCommuterBehavior constructs a CommuterBehavior that travels by mode,
// resolving Home/Work destinations from the given components.
func NewCommuterBehavior(mode twin.TransportMode, homes *twin.Component[HomeNode], works *twin.Component[WorkNode]) *CommuterBehavior {
	return &CommuterBehavior{Mode: mode, Homes: homes, Works: works}
}

// Replan resolves the agent's current scheduled activity and travels
// there if not already present. Agents with no activity plan produce no
// intent. Replan does not check whether the agent is in transit: it
// compares against AgentStore's node_id (the departure node while
// traveling), and a TravelTo emitted for an in-transit agent is rejected by
// BeginTravel with ErrAlreadyInTransit.
func (b *CommuterBehavior) Replan(agent twin.AgentId, ctx *twin.TickContext, rng *rand.Rand) []twin.Intent {
	plan := ctx.PlanFor(agent)
	if plan == nil || plan.IsEmpty() {
		return nil
	}
	activity, ok := plan.CurrentActivity(ctx.Now)
	if !ok {
		return nil
	}

	dest := b.resolve(agent, activity.Destination)
	if dest == ctx.Store.NodeID(agent) {
		return nil
	}
	return []twin.Intent{twin.TravelTo(dest, b.Mode)}
}

func (b *CommuterBehavior) resolve(agent twin.AgentId, dest twin.ActivityDestination) twin.NodeId {
	switch dest.Kind {
	case twin.DestinationHome:
		if b.Homes == nil {
			return 0
		}
		return twin.NodeId(b.Homes.Get(agent))
	case twin.DestinationWork:
		if b.Works == nil {
			return 0
		}
		return twin.NodeId(b.Works.Get(agent))
	default:
		return dest.Node
	}
}
