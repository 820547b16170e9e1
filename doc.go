// Package twin provides the core discrete-tick agent digital-twin engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - ids.go, tick.go: typed integer handles (AgentId, NodeId, EdgeId, ActivityId) and Tick
//   - agentstore.go: fixed-capacity structure-of-arrays agent state
//   - activity.go: cyclic activity plans and next-wake-tick queries
//   - wakequeue.go: the sparse tick->agents priority structure
//   - behavior.go: the BehaviorModel interface and Intent types
//   - scheduler.go: the six-phase tick loop
//
// # Architecture
//
// twin defines the core engine and the extension-point interfaces
// (BehaviorModel, Observer, mobility.Router). Concrete, swappable
// implementations of those interfaces live in sibling packages:
//   - twin/mobility: teleport-at-arrival movement engine and route cache
//   - twin/routing: a reference Router using Dijkstra's algorithm
//   - twin/schedule: CSV schedule-file ingestion into ActivityPlans
//   - twin/snapshot: CSV and in-memory Observer implementations
//   - twin/behaviors: small reference BehaviorModel implementations
//   - twin/twincfg: YAML scenario configuration loading
//
// # Determinism
//
// Every run with identical (seed, agent count, plans, network,
// behavior) produces bit-identical tick-by-tick state regardless of
// how many goroutines phase D uses. See rng.go and scheduler.go.
package twin
