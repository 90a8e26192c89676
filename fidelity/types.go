package fidelity

import (
	"errors"

	"github.com/katalvlaran/qroute/core"
)

const (
	// InitialFidelity is the fidelity of a freshly generated pair.
	InitialFidelity = 0.975

	// Floor is the fidelity of the maximally mixed state.
	Floor = 0.25

	// DefaultThreshold is the minimum acceptable end-to-end fidelity (exclusive).
	DefaultThreshold = 0.53
)

var (
	// ErrMissingQuality indicates an intermediate node has no quality data.
	ErrMissingQuality = errors.New("fidelity: missing node quality")

	// ErrShortPath indicates a path with fewer than two nodes.
	ErrShortPath = errors.New("fidelity: path needs at least two nodes")
)

// Quality is the pair of memory attributes consumed by the model.
type Quality struct {
	Efficiency  float64
	RawFidelity float64
}

// QualityFunc looks up the quality of a node; ok is false when unknown.
type QualityFunc func(id string) (q Quality, ok bool)

// FromGraph reads node qualities straight from g.
func FromGraph(g *core.Graph) QualityFunc {
	return func(id string) (Quality, bool) {
		n, err := g.Node(id)
		if err != nil {
			return Quality{}, false
		}
		return Quality{Efficiency: n.Efficiency, RawFidelity: n.RawFidelity}, true
	}
}

// FromMap serves qualities from a fixed table.
func FromMap(m map[string]Quality) QualityFunc {
	return func(id string) (Quality, bool) {
		q, ok := m[id]
		return q, ok
	}
}
