package assign

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/qroute/topology"
)

type bimodal struct{ xi float64 }

// Bimodal returns EMax with probability xi and EMin otherwise.
func Bimodal(xi float64) (Distribution, error) {
	if math.IsNaN(xi) || xi < 0 || xi > 1 {
		return nil, fmt.Errorf("%w: xi=%v not in [0,1]", ErrBadParameter, xi)
	}
	return bimodal{xi}, nil
}

func (b bimodal) Draw(r *rand.Rand) float64 {
	if r.Float64() < b.xi {
		return EMax
	}
	return EMin
}

func (b bimodal) String() string { return "bimodal:" + strconv.FormatFloat(b.xi, 'g', -1, 64) }

type logUniform struct {
	alpha, lo, hi float64
}

// LogUniform draws ln(U(e^(EMin·α), e^(EMax·α))) / α.
func LogUniform(alpha float64) (Distribution, error) {
	if alpha == 0 || math.IsNaN(alpha) {
		return nil, fmt.Errorf("%w: alpha=%v", ErrBadParameter, alpha)
	}
	lo, hi := math.Exp(EMin*alpha), math.Exp(EMax*alpha)
	if math.IsInf(hi, 0) || lo == 0 || hi == 0 {
		return nil, fmt.Errorf("%w: alpha=%v overflows", ErrBadParameter, alpha)
	}
	return logUniform{alpha: alpha, lo: lo, hi: hi}, nil
}

func (l logUniform) Draw(r *rand.Rand) float64 {
	u := l.lo + r.Float64()*(l.hi-l.lo)
	e := math.Log(u) / l.alpha
	// rounding can step just outside the bounds
	return math.Min(EMax, math.Max(EMin, e))
}

func (l logUniform) String() string {
	return "loguniform:" + strconv.FormatFloat(l.alpha, 'g', -1, 64)
}

type constant struct{ v float64 }

// Constant returns v for every draw.
func Constant(v float64) (Distribution, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return nil, fmt.Errorf("%w: constant=%v not in [0,1]", ErrBadParameter, v)
	}
	return constant{v}, nil
}

func (c constant) Draw(*rand.Rand) float64 { return c.v }

func (c constant) String() string { return "constant:" + strconv.FormatFloat(c.v, 'g', -1, 64) }

// Parse reads "bimodal:<xi>", "loguniform:<alpha>" or "constant:<v>".
func Parse(s string) (Distribution, error) {
	name, arg, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q needs the form name:value", ErrBadParameter, s)
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadParameter, s, err)
	}
	switch strings.ToLower(name) {
	case "bimodal", "xi":
		return Bimodal(v)
	case "loguniform", "alpha":
		return LogUniform(v)
	case "constant":
		return Constant(v)
	default:
		return nil, fmt.Errorf("%w: unknown distribution %q", ErrBadParameter, name)
	}
}

// Apply draws an efficiency for every router of s, in file order.
// Relay nodes are left untouched, and so are raw fidelities unless
// WithRawFidelity is given. It returns the number of routers written.
func Apply(s *topology.Snapshot, d Distribution, opts ...Option) (int, error) {
	if s == nil {
		return 0, ErrNilSnapshot
	}
	if d == nil {
		return 0, fmt.Errorf("%w: nil distribution", ErrBadParameter)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.SetRaw && (math.IsNaN(o.RawFidelity) || o.RawFidelity < 0 || o.RawFidelity > 1) {
		return 0, fmt.Errorf("%w: raw fidelity=%v not in [0,1]", ErrBadParameter, o.RawFidelity)
	}

	r := rngFromSeed(o.Seed)
	n := 0
	for i := range s.Nodes {
		node := &s.Nodes[i]
		if !node.IsRouter() {
			continue
		}
		e := d.Draw(r)
		if node.Efficiency == nil || !o.KeepExisting {
			node.Efficiency = &e
			n++
		}
		if o.SetRaw {
			raw := o.RawFidelity
			node.RawFidelity = &raw
		}
	}

	return n, nil
}
