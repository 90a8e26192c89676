package fidelity

import (
	"fmt"

	"github.com/katalvlaran/qroute/core"
)

// Fidelity returns the end-to-end fidelity of p.
//
// Errors:
//   - ErrShortPath if len(p) < 2.
//   - ErrMissingQuality if any intermediate node is unknown to qualityOf.
//
// Complexity: O(len(p))
func Fidelity(p core.Path, qualityOf QualityFunc) (float64, error) {
	if len(p) < 2 {
		return 0, ErrShortPath
	}
	f := InitialFidelity
	for _, id := range p.Intermediates() {
		q, ok := qualityOf(id)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingQuality, id)
		}
		f = Step(f, q)
	}

	return f, nil
}

// Step applies the degradation of one repeater with quality q to f.
func Step(f float64, q Quality) float64 {
	swap := (4*q.Efficiency*q.Efficiency - 1) / 3
	memory := (4*q.RawFidelity - 1) / 3

	return (f-Floor)*swap*memory + Floor
}

// Accept reports whether f clears the threshold tau (strictly).
func Accept(f, tau float64) bool {
	return f > tau
}
