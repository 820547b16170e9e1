package twin

import (
	"hash/fnv"
	"math/rand"
)

// goldenConstant is the per-agent seed-mixing constant from the 64-bit
// golden ratio, chosen so that XOR-mixing it against successive agent
// indices spreads seeds well across the 64-bit space. Appending or omitting
// trailing agents never perturbs the streams of the agents that remain,
// because each agent's seed depends only on its own index.
const goldenConstant uint64 = 0x9e3779b97f4a7c15

// AgentRngs holds one independent deterministic RNG per agent, indexed by
// AgentId. It is kept as a sibling of AgentStore, never a field nested
// inside it, precisely so the scheduler can hold a shared read borrow of
// AgentStore and a disjoint exclusive borrow of AgentRngs at the same time
// during phase D (see scheduler.go and SPEC_FULL.md §5).
type AgentRngs struct {
	streams []*rand.Rand
}

// NewAgentRngs seeds count independent RNGs from globalSeed.
// stream[i] is seeded from globalSeed XOR (i * goldenConstant).
func NewAgentRngs(globalSeed uint64, count int) *AgentRngs {
	streams := make([]*rand.Rand, count)
	for i := range streams {
		seed := globalSeed ^ (uint64(i) * goldenConstant)
		streams[i] = rand.New(rand.NewSource(int64(seed)))
	}
	return &AgentRngs{streams: streams}
}

// For returns the RNG for agent a. Callers in phase D must only ever hold
// concurrent references to disjoint agents' RNGs; For itself does no
// locking because the scheduler guarantees that partition.
func (r *AgentRngs) For(a AgentId) *rand.Rand {
	return r.streams[a]
}

// Len returns the number of agent RNG streams.
func (r *AgentRngs) Len() int {
	return len(r.streams)
}

// Subsystem name constants for PartitionedRNG.
const (
	SubsystemWorkload  = "workload"
	SubsystemRouter    = "router"
	SubsystemScheduler = "scheduler"
)

// PartitionedRNG provides deterministic, isolated RNG instances for global
// (non-per-agent) subsystems, such as workload generation or routing
// tie-breaks. Derivation: masterSeed XOR fnv1a64(subsystemName). Distinct
// from AgentRngs, which is indexed by agent rather than by name.
//
// Thread-safety: NOT thread-safe. Construct one ForSubsystem RNG per
// subsystem up front, before any concurrent phase begins.
type PartitionedRNG struct {
	masterSeed uint64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(masterSeed uint64) *PartitionedRNG {
	return &PartitionedRNG{
		masterSeed: masterSeed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem, caching it so repeated calls with the same name return the
// same instance.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	seed := p.masterSeed ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(int64(seed)))
	p.subsystems[name] = rng
	return rng
}

func fnv1a64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
