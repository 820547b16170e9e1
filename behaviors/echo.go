package behaviors

import (
	"math/rand"

	"github.com/twinsim/twin"
)

// EchoBehavior is a minimal fixture for exercising the scheduler's message
// and contact pipelines in tests: Replan is a no-op, OnMessage echoes
// every payload straight back to its sender, and OnContacts sends a
// fixed Ping payload to every co-located agent.
type EchoBehavior struct{}

// Ping is the fixed payload EchoBehavior.OnContacts sends.
var Ping = []byte("ping")

func (EchoBehavior) Replan(twin.AgentId, *twin.TickContext, *rand.Rand) []twin.Intent {
	return nil
}

func (EchoBehavior) OnMessage(agent, from twin.AgentId, payload []byte, _ *twin.TickContext, _ *rand.Rand) []twin.Intent {
	return []twin.Intent{twin.SendMessage(from, payload)}
}

func (EchoBehavior) OnContacts(agent twin.AgentId, contacts []twin.ContactEvent, _ *twin.TickContext, _ *rand.Rand) []twin.Intent {
	intents := make([]twin.Intent, len(contacts))
	for i, c := range contacts {
		intents[i] = twin.SendMessage(c.Agent, Ping)
	}
	return intents
}
