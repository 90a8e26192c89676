package table

import "sort"

// Entry is one destination → next-hop mapping.
type Entry struct {
	Destination string
	NextHop     string
}

// ForwardingTable is the routing table owned by a single node.
// It is not safe for concurrent mutation; Tables serialises access.
type ForwardingTable struct {
	owner   string
	entries map[string]string
}

// NewForwardingTable returns an empty table for owner.
func NewForwardingTable(owner string) *ForwardingTable {
	return &ForwardingTable{owner: owner, entries: make(map[string]string)}
}

// Owner returns the node the table belongs to.
func (t *ForwardingTable) Owner() string { return t.owner }

// Set installs or replaces the next hop for dst.
func (t *ForwardingTable) Set(dst, next string) { t.entries[dst] = next }

// Get returns the next hop for dst.
func (t *ForwardingTable) Get(dst string) (string, bool) {
	next, ok := t.entries[dst]
	return next, ok
}

// Clear removes every entry.
func (t *ForwardingTable) Clear() {
	for k := range t.entries {
		delete(t.entries, k)
	}
}

// Len returns the number of entries.
func (t *ForwardingTable) Len() int { return len(t.entries) }

// Entries returns a snapshot sorted by destination.
func (t *ForwardingTable) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for dst, next := range t.entries {
		out = append(out, Entry{Destination: dst, NextHop: next})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Destination < out[j].Destination })

	return out
}

func (t *ForwardingTable) clone() *ForwardingTable {
	cp := NewForwardingTable(t.owner)
	for k, v := range t.entries {
		cp.entries[k] = v
	}
	return cp
}
