package twin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentRngsAreDeterministicForSameSeed(t *testing.T) {
	a := NewAgentRngs(42, 8)
	b := NewAgentRngs(42, 8)
	require.Equal(t, a.Len(), b.Len())
	for i := 0; i < a.Len(); i++ {
		agent := AgentId(i)
		assert.Equal(t, a.For(agent).Int63(), b.For(agent).Int63())
	}
}

func TestAgentRngsAreIndependentAcrossAgents(t *testing.T) {
	rngs := NewAgentRngs(42, 2)
	v0 := rngs.For(0).Int63()
	v1 := rngs.For(1).Int63()
	assert.NotEqual(t, v0, v1)
}

func TestAgentRngsStableUnderAppendedAgents(t *testing.T) {
	small := NewAgentRngs(7, 3)
	large := NewAgentRngs(7, 10)
	for i := 0; i < 3; i++ {
		agent := AgentId(i)
		assert.Equal(t, small.For(agent).Int63(), large.For(agent).Int63())
	}
}

func TestPartitionedRNGCachesPerSubsystem(t *testing.T) {
	p := NewPartitionedRNG(99)
	first := p.ForSubsystem(SubsystemRouter)
	second := p.ForSubsystem(SubsystemRouter)
	assert.Same(t, first, second)
}

func TestPartitionedRNGDiffersAcrossSubsystems(t *testing.T) {
	p := NewPartitionedRNG(99)
	routerVal := p.ForSubsystem(SubsystemRouter).Int63()
	schedulerVal := p.ForSubsystem(SubsystemScheduler).Int63()
	assert.NotEqual(t, routerVal, schedulerVal)
}
