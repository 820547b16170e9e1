package twin

import (
	"errors"
	"fmt"
)

// ErrAlreadyInTransit is returned by a Mobility implementation's BeginTravel
// when the agent is already traveling. Recoverable: the scheduler absorbs
// it and leaves the agent on its current journey.
var ErrAlreadyInTransit = errors.New("twin: agent already in transit")

// ErrNotPlaced is returned by BeginTravel when the agent has never been
// placed (its departure node is INVALID). Recoverable.
var ErrNotPlaced = errors.New("twin: agent not placed")

// RoutingError wraps a routing-layer failure (e.g. no path, unknown node)
// surfaced through a Mobility implementation. Recoverable: the scheduler
// treats any non-nil BeginTravel error identically (agent stays put).
type RoutingError struct {
	Err error
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("twin: routing failed: %v", e.Err)
}

func (e *RoutingError) Unwrap() error { return e.Err }

// BuilderError reports a fatal construction-time validation failure: an
// agent-count mismatch between the plans or RNGs and the AgentStore. Unlike
// the mobility errors above, BuilderError is never absorbed: construction
// fails outright.
type BuilderError struct {
	Reason string
}

func (e *BuilderError) Error() string {
	return fmt.Sprintf("twin: builder validation failed: %s", e.Reason)
}
