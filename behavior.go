package twin

import "math/rand"

// TickContext is the shared, read-only view into simulation state that
// phase D gives every behavior callback: the current tick, the tick
// duration, and shared (never mutated by phase D) references to AgentStore
// and the per-agent activity plans.
type TickContext struct {
	Now              Tick
	TickDurationSecs uint32
	Store            *AgentStore
	Plans            []*ActivityPlan // Plans[i] is agent i's plan; nil means empty plan.
}

// PlanFor returns agent a's activity plan, or nil if it has none.
func (c *TickContext) PlanFor(a AgentId) *ActivityPlan {
	if int(a) >= len(c.Plans) {
		return nil
	}
	return c.Plans[a]
}

// IntentKind discriminates the closed Intent variant.
type IntentKind uint8

const (
	IntentKindWakeAt IntentKind = iota
	IntentKindTravelTo
	IntentKindSendMessage
)

// Intent is a closed tagged union of the three requests a BehaviorModel may
// make of the scheduler. Only the fields relevant to Kind are meaningful.
type Intent struct {
	Kind IntentKind

	WakeAtTick Tick

	TravelDestination NodeId
	TravelMode        TransportMode

	MessageTo      AgentId
	MessagePayload []byte
}

// WakeAt requests the scheduler re-wake this agent at tick t.
func WakeAt(t Tick) Intent {
	return Intent{Kind: IntentKindWakeAt, WakeAtTick: t}
}

// TravelTo requests the scheduler begin a journey to destination by mode.
func TravelTo(destination NodeId, mode TransportMode) Intent {
	return Intent{Kind: IntentKindTravelTo, TravelDestination: destination, TravelMode: mode}
}

// SendMessage requests the scheduler deliver payload to recipient to, no
// earlier than to's next wake.
func SendMessage(to AgentId, payload []byte) Intent {
	return Intent{Kind: IntentKindSendMessage, MessageTo: to, MessagePayload: payload}
}

// ContactKind discriminates the reason a ContactEvent was produced. Today
// the contact index only ever reports co-location; the field exists so
// future contact-detection strategies (e.g. proximity-without-co-location)
// can be distinguished without changing on_contacts' signature.
type ContactKind uint8

const (
	// ContactKindColocated means both agents are stationary at the same node.
	ContactKindColocated ContactKind = iota
)

// ContactEvent describes one other agent the woken agent shares a location
// with at this tick. This is the structured form of on_contacts chosen per
// spec.md §9's Open Question resolution: it carries strictly more
// information (location, tick, kind) than a bare (node, agents) pair.
type ContactEvent struct {
	Agent AgentId
	Node  NodeId
	Tick  Tick
	Kind  ContactKind
}

// Message is one pending (sender, payload) entry delivered to an agent on
// wake.
type Message struct {
	From    AgentId
	Payload []byte
}

// BehaviorModel is the application's pure intent-producing callback set.
// All three methods are pure with respect to global state: given the same
// TickContext contents, they always return the same intents for the same
// RNG draws. Implementations must never hold per-agent mutable state inside
// the behavior object itself — that state belongs in AgentStore's
// registered components, so it is visible to (and survives alongside) the
// rest of an agent's state.
type BehaviorModel interface {
	// Replan is called exactly once per wake, always, before OnMessage and
	// OnContacts.
	Replan(agent AgentId, ctx *TickContext, rng *rand.Rand) []Intent

	// OnMessage is called once per pending message, in the order the
	// messages were sent, after Replan.
	OnMessage(agent AgentId, from AgentId, payload []byte, ctx *TickContext, rng *rand.Rand) []Intent

	// OnContacts is called at most once per wake, only if the contact list
	// is non-empty, after OnMessage.
	OnContacts(agent AgentId, contacts []ContactEvent, ctx *TickContext, rng *rand.Rand) []Intent
}

// BaseBehaviorModel implements BehaviorModel with the spec's default
// no-op bodies for OnMessage and OnContacts. Embed it in a concrete
// behavior to avoid writing out empty-slice boilerplate for callbacks the
// behavior doesn't use; override Replan (BehaviorModel requires it) and
// whichever of the other two the behavior actually needs.
type BaseBehaviorModel struct{}

func (BaseBehaviorModel) OnMessage(AgentId, AgentId, []byte, *TickContext, *rand.Rand) []Intent {
	return nil
}

func (BaseBehaviorModel) OnContacts(AgentId, []ContactEvent, *TickContext, *rand.Rand) []Intent {
	return nil
}
