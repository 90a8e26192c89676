// Package core defines the central Graph, Node, and Link types,
// and provides thread-safe primitives for building and querying repeater graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for nodes,
// muLinkAdj for links and adjacency), so graphs can be read from many
// goroutines while a table-construction pass runs.
package core

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLinkNotFound indicates an operation referenced a non-existent link.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrDuplicateNode indicates a node ID was registered twice.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrDuplicateLink indicates a second link between the same pair of nodes.
	ErrDuplicateLink = errors.New("core: duplicate link")

	// ErrLoopNotAllowed indicates a link from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadCost indicates a negative, NaN or infinite link cost.
	ErrBadCost = errors.New("core: bad link cost")

	// ErrBadQuality indicates an efficiency or raw fidelity outside [0,1].
	ErrBadQuality = errors.New("core: quality attribute out of range")
)

// Priority is the service class of a node acting as a destination.
type Priority int

const (
	// PriorityLow is the default class.
	PriorityLow Priority = iota

	// PriorityHigh marks destinations that receive the resource-conservative
	// QoS selection rule.
	PriorityHigh
)

// String returns "low" or "high".
func (p Priority) String() string {
	if p == PriorityHigh {
		return "high"
	}

	return "low"
}

// ParsePriority maps a tag ("high", "low", "") onto a Priority.
// The empty tag means PriorityLow.
func ParsePriority(tag string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "", "low":
		return PriorityLow, nil
	case "high":
		return PriorityHigh, nil
	default:
		return PriorityLow, fmt.Errorf("core: unknown priority tag %q", tag)
	}
}

// Node is a quantum router in the graph.
//
// Efficiency and RawFidelity describe the node's memory; they are only
// consulted when the node is an intermediate repeater on a path.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Efficiency of the node's memory, in [0,1] (nominal [0.8, 0.999]).
	Efficiency float64

	// RawFidelity of pairs stored in the node's memory, in [0,1] (nominal ≈0.975).
	RawFidelity float64

	// Priority class used when the node is a destination.
	Priority Priority
}

// Link is an undirected connection between two nodes.
//
// A and B are stored with A < B lexicographically so that the same pair
// always maps onto the same Link regardless of insertion order.
type Link struct {
	// ID uniquely identifies this link in the Graph ("l1", "l2", ...).
	ID string

	// A is the lexicographically smaller endpoint.
	A string

	// B is the lexicographically larger endpoint.
	B string

	// Cost is the non-negative cost of traversing the link.
	Cost float64
}

// Other returns the endpoint of l opposite to id, or "" if id is not an endpoint.
func (l *Link) Other(id string) string {
	switch id {
	case l.A:
		return l.B
	case l.B:
		return l.A
	default:
		return ""
	}
}

// Graph is the core in-memory repeater graph.
//
// muNode protects the nodes map; muLinkAdj protects links and adjacency.
// Lock order is always muNode -> muLinkAdj.
type Graph struct {
	muNode    sync.RWMutex // guards nodes
	muLinkAdj sync.RWMutex // guards links and adjacency

	// Storage
	nextLinkID uint64           // atomic link ID generator
	nodes      map[string]*Node // node ID → Node
	links      map[string]*Link // link ID → Link

	// adjacency[a][b] = link ID; mirrored for b→a.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		links:     make(map[string]*Link),
		adjacency: make(map[string]map[string]string),
	}
}
