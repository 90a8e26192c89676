package policy

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/fidelity"
)

// Sentinel errors.
var (
	// ErrNoGraphPath means the destination is unreachable from the source.
	ErrNoGraphPath = errors.New("policy: no graph path")

	// ErrNoAcceptablePath means every examined candidate failed the threshold.
	ErrNoAcceptablePath = errors.New("policy: no acceptable path")

	// ErrMissingNodeAttributes means a node on a candidate lacks quality data.
	ErrMissingNodeAttributes = errors.New("policy: missing node attributes")

	// ErrUnknownKind is returned by ParseKind and New for unsupported kinds.
	ErrUnknownKind = errors.New("policy: unknown kind")

	// ErrBadOption reports an out-of-range option value.
	ErrBadOption = errors.New("policy: invalid option")

	// ErrSameEndpoints is returned when source equals destination.
	ErrSameEndpoints = errors.New("policy: source equals destination")
)

// Kind names a path-selection variant.
type Kind string

const (
	KindShortest      Kind = "shortest"
	KindEfficiency    Kind = "efficiency"
	KindKShortest     Kind = "kshortest"
	KindKXShortest    Kind = "kxshortest"
	KindKShortestQoS  Kind = "kshortest-qos"
	KindKXShortestQoS Kind = "kxshortest-qos"
)

// Kinds lists every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindShortest, KindEfficiency, KindKShortest, KindKXShortest, KindKShortestQoS, KindKXShortestQoS}
}

// ParseKind accepts a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Scope tells the table builder how a policy is normally driven.
type Scope int

const (
	// ScopeWholeTable policies are run over every ordered pair.
	ScopeWholeTable Scope = iota

	// ScopePerPair policies are invoked for explicitly requested pairs.
	ScopePerPair
)

func (s Scope) String() string {
	if s == ScopePerPair {
		return "per-pair"
	}
	return "whole-table"
}

// Route is an accepted path together with its fidelity.
type Route struct {
	Path     core.Path
	Fidelity float64
}

// NextHop is the neighbour of the source the route starts with.
func (r Route) NextHop() string { return r.Path.NextHop() }

// Options configures a Policy.
type Options struct {
	Threshold float64
	K         int
	X         int
	EMin      float64
	EMax      float64
	Quality   fidelity.QualityFunc
	Logger    *zap.Logger

	err error
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns τ=0.53, K=10, X=1, e∈[0.8, 0.999] and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Threshold: fidelity.DefaultThreshold,
		K:         10,
		X:         1,
		EMin:      0.8,
		EMax:      0.999,
		Logger:    zap.NewNop(),
	}
}

// WithThreshold sets the acceptance threshold τ; must lie in [0, 1].
func WithThreshold(tau float64) Option {
	return func(o *Options) {
		if math.IsNaN(tau) || tau < 0 || tau > 1 {
			o.err = fmt.Errorf("%w: threshold %v outside [0,1]", ErrBadOption, tau)
			return
		}
		o.Threshold = tau
	}
}

// WithK sets the number of candidates the K-shortest variants examine.
func WithK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: K must be positive, got %d", ErrBadOption, k)
			return
		}
		o.K = k
	}
}

// WithX sets the extra hops allowed over the shortest length by the KX variants.
func WithX(x int) Option {
	return func(o *Options) {
		if x < 0 {
			o.err = fmt.Errorf("%w: X must be non-negative, got %d", ErrBadOption, x)
			return
		}
		o.X = x
	}
}

// WithEfficiencyBounds sets the clamp range of the efficiency cost.
func WithEfficiencyBounds(emin, emax float64) Option {
	return func(o *Options) {
		if !(emin < emax) {
			o.err = fmt.Errorf("%w: efficiency bounds need emin < emax, got [%v, %v]", ErrBadOption, emin, emax)
			return
		}
		o.EMin, o.EMax = emin, emax
	}
}

// WithQuality overrides the node-quality lookup (default: read from the graph).
func WithQuality(q fidelity.QualityFunc) Option {
	return func(o *Options) {
		o.Quality = q
	}
}

// WithLogger sets the logger used for per-pair decisions at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
