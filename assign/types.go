package assign

import (
	"errors"
	"math/rand"
)

const (
	// EMin and EMax bound the drawn efficiencies.
	EMin = 0.8
	EMax = 0.999

	// DefaultRawFidelity is the conventional raw fidelity for WithRawFidelity.
	DefaultRawFidelity = 0.975

	// defaultSeed is used when callers pass seed == 0.
	defaultSeed int64 = 1
)

var (
	// ErrBadParameter reports an out-of-range distribution parameter.
	ErrBadParameter = errors.New("assign: bad distribution parameter")

	// ErrNilSnapshot is returned by Apply for a nil snapshot.
	ErrNilSnapshot = errors.New("assign: snapshot is nil")
)

// Distribution draws one efficiency value.
type Distribution interface {
	Draw(r *rand.Rand) float64
	String() string
}

// Options configures Apply. RawFidelity is written only when SetRaw is true.
type Options struct {
	Seed         int64
	RawFidelity  float64
	SetRaw       bool
	KeepExisting bool
}

// Option is a functional option for Apply.
type Option func(*Options)

// DefaultOptions returns seed 0 (→ 1) and leaves raw fidelities as they are.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed fixes the random stream. Seed 0 selects the package default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRawFidelity writes v to every router, replacing existing values.
func WithRawFidelity(v float64) Option {
	return func(o *Options) {
		o.RawFidelity = v
		o.SetRaw = true
	}
}

// WithKeepExisting leaves routers that already have an efficiency untouched.
// A value is still drawn for them so the stream stays aligned with file order.
func WithKeepExisting() Option {
	return func(o *Options) { o.KeepExisting = true }
}

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
