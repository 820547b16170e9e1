package twin

import "testing"

import "github.com/stretchr/testify/assert"

func TestInvalidSentinelsAreNotValid(t *testing.T) {
	assert.False(t, InvalidAgentId.Valid())
	assert.False(t, InvalidNodeId.Valid())
	assert.False(t, InvalidEdgeId.Valid())
	assert.False(t, InvalidActivityId.Valid())
}

func TestOrdinaryIdsAreValid(t *testing.T) {
	assert.True(t, AgentId(0).Valid())
	assert.True(t, NodeId(0).Valid())
	assert.True(t, EdgeId(0).Valid())
	assert.True(t, ActivityId(0).Valid())
}

func TestStringFormatsDistinguishInvalid(t *testing.T) {
	assert.Equal(t, "Agent(INVALID)", InvalidAgentId.String())
	assert.Equal(t, "Agent(3)", AgentId(3).String())
	assert.Equal(t, "Node(INVALID)", InvalidNodeId.String())
	assert.Equal(t, "Edge(INVALID)", InvalidEdgeId.String())
}
