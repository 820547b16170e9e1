package twin

import "fmt"

// AgentId is a typed handle into AgentStore's arrays. Its numeric value is
// usable directly as an index into any fixed array of length count.
type AgentId uint32

// NodeId identifies a location on the road graph.
type NodeId uint32

// EdgeId identifies a directed edge on the road graph.
type EdgeId uint32

// ActivityId identifies a kind of scheduled activity (e.g. "shop", "shift").
type ActivityId uint16

// InvalidAgentId is the sentinel AgentId; the zero value of AgentId is 0,
// a valid index, so INVALID must be explicit rather than the zero value.
const InvalidAgentId AgentId = ^AgentId(0)

// InvalidNodeId is the sentinel NodeId.
const InvalidNodeId NodeId = ^NodeId(0)

// InvalidEdgeId is the sentinel EdgeId.
const InvalidEdgeId EdgeId = ^EdgeId(0)

// InvalidActivityId is the sentinel ActivityId.
const InvalidActivityId ActivityId = ^ActivityId(0)

// Valid reports whether the id is not the INVALID sentinel.
func (a AgentId) Valid() bool { return a != InvalidAgentId }

// Valid reports whether the id is not the INVALID sentinel.
func (n NodeId) Valid() bool { return n != InvalidNodeId }

// Valid reports whether the id is not the INVALID sentinel.
func (e EdgeId) Valid() bool { return e != InvalidEdgeId }

// Valid reports whether the id is not the INVALID sentinel.
func (a ActivityId) Valid() bool { return a != InvalidActivityId }

func (a AgentId) String() string {
	if a == InvalidAgentId {
		return "Agent(INVALID)"
	}
	return fmt.Sprintf("Agent(%d)", uint32(a))
}

func (n NodeId) String() string {
	if n == InvalidNodeId {
		return "Node(INVALID)"
	}
	return fmt.Sprintf("Node(%d)", uint32(n))
}

func (e EdgeId) String() string {
	if e == InvalidEdgeId {
		return "Edge(INVALID)"
	}
	return fmt.Sprintf("Edge(%d)", uint32(e))
}
