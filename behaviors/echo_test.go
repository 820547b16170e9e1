package behaviors

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinsim/twin"
)

func TestEchoBehaviorEchoesMessages(t *testing.T) {
	var b EchoBehavior
	rng := rand.New(rand.NewSource(1))

	intents := b.OnMessage(1, 2, []byte("hi"), nil, rng)
	require.Len(t, intents, 1)
	assert.Equal(t, twin.IntentKindSendMessage, intents[0].Kind)
	assert.Equal(t, twin.AgentId(2), intents[0].MessageTo)
	assert.Equal(t, []byte("hi"), intents[0].MessagePayload)
}

func TestEchoBehaviorPingsEveryContact(t *testing.T) {
	var b EchoBehavior
	rng := rand.New(rand.NewSource(1))

	contacts := []twin.ContactEvent{
		{Agent: 3, Node: 1, Tick: 0, Kind: twin.ContactKindColocated},
		{Agent: 4, Node: 1, Tick: 0, Kind: twin.ContactKindColocated},
	}
	intents := b.OnContacts(1, contacts, nil, rng)
	require.Len(t, intents, 2)
	assert.Equal(t, twin.AgentId(3), intents[0].MessageTo)
	assert.Equal(t, Ping, intents[0].MessagePayload)
	assert.Equal(t, twin.AgentId(4), intents[1].MessageTo)
}
