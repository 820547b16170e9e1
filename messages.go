package twin

// messageBuffer accumulates pending (sender, payload) messages per
// recipient from the apply phase until the recipient's next wake, when
// phase C (input pre-collection) drains them.
type messageBuffer struct {
	pending map[AgentId][]Message
}

func newMessageBuffer() *messageBuffer {
	return &messageBuffer{pending: make(map[AgentId][]Message)}
}

// append adds one message to recipient to's pending list, preserving
// append order across senders.
func (b *messageBuffer) append(to AgentId, from AgentId, payload []byte) {
	b.pending[to] = append(b.pending[to], Message{From: from, Payload: payload})
}

// drain removes and returns recipient to's entire pending list, or nil if
// none is pending. No allocation occurs in the empty case.
func (b *messageBuffer) drain(to AgentId) []Message {
	list, ok := b.pending[to]
	if !ok {
		return nil
	}
	delete(b.pending, to)
	return list
}
