package twin

// ContactIndex is the per-tick ephemeral map from node to the ordered list
// of agents currently stationary there. It is rebuilt on every tick that
// wakes at least one agent, from a single O(count) scan of Mobility
// (spec.md §4.5), and discarded at the end of the tick — it is never
// retained across ticks.
type ContactIndex struct {
	byNode map[NodeId][]AgentId
}

// BuildContactIndex scans mobility once and groups every stationary,
// validly-placed agent by its departure node. In-transit agents are
// excluded even though their departure node remains meaningful.
func BuildContactIndex(m Mobility) *ContactIndex {
	idx := &ContactIndex{byNode: make(map[NodeId][]AgentId)}
	m.EachStationary(func(agent AgentId, node NodeId) {
		idx.byNode[node] = append(idx.byNode[node], agent)
	})
	return idx
}

// ContactsFor returns the co-located agents for self at node n, excluding
// self, wrapped as structured ContactEvents for tick t.
func (idx *ContactIndex) ContactsFor(self AgentId, n NodeId, t Tick) []ContactEvent {
	agents := idx.byNode[n]
	if len(agents) == 0 {
		return nil
	}
	contacts := make([]ContactEvent, 0, len(agents))
	for _, a := range agents {
		if a == self {
			continue
		}
		contacts = append(contacts, ContactEvent{Agent: a, Node: n, Tick: t, Kind: ContactKindColocated})
	}
	return contacts
}
