package table

import (
	"sort"
	"sync"
)

// Port is the write interface the builder uses to mutate node tables.
// A Port that also implements Owners has stale tables reset as well.
type Port interface {
	// ClearRoutes drops every entry of node's table.
	ClearRoutes(node string) error

	// SetRoute installs dst → next in node's table, replacing any prior entry.
	SetRoute(node, dst, next string) error
}

// Owners is optionally implemented by a Port that can list the nodes it
// holds tables for. The builder then also resets owners that are no longer
// in the graph, such as routers skipped by this pass.
type Owners interface {
	Nodes() []string
}

// Lookup answers next-hop queries; it is what a hop-by-hop walk needs.
type Lookup interface {
	NextHop(node, dst string) (string, bool)
}

// Tables is an in-memory Port holding one ForwardingTable per node.
// Safe for concurrent use.
type Tables struct {
	mu     sync.RWMutex
	tables map[string]*ForwardingTable
}

// NewTables returns an empty set of tables.
func NewTables() *Tables {
	return &Tables{tables: make(map[string]*ForwardingTable)}
}

// ClearRoutes implements Port.
func (ts *Tables) ClearRoutes(node string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if t, ok := ts.tables[node]; ok {
		t.Clear()
		return nil
	}
	ts.tables[node] = NewForwardingTable(node)

	return nil
}

// SetRoute implements Port.
func (ts *Tables) SetRoute(node, dst, next string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	t, ok := ts.tables[node]
	if !ok {
		t = NewForwardingTable(node)
		ts.tables[node] = t
	}
	t.Set(dst, next)

	return nil
}

// NextHop implements Lookup.
func (ts *Tables) NextHop(node, dst string) (string, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	t, ok := ts.tables[node]
	if !ok {
		return "", false
	}

	return t.Get(dst)
}

// Table returns a copy of node's table, or nil if the node has none.
func (ts *Tables) Table(node string) *ForwardingTable {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	t, ok := ts.tables[node]
	if !ok {
		return nil
	}

	return t.clone()
}

// Nodes returns the owners of all tables, sorted.
func (ts *Tables) Nodes() []string {
	ts.mu.RLock()
	out := make([]string, 0, len(ts.tables))
	for id := range ts.tables {
		out = append(out, id)
	}
	ts.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Len returns the total number of entries across all tables.
func (ts *Tables) Len() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	n := 0
	for _, t := range ts.tables {
		n += t.Len()
	}

	return n
}
