package topology

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/core"
)

var (
	// ErrMissingNodeAttributes reports a router lacking efficiency or raw fidelity.
	ErrMissingNodeAttributes = errors.New("topology: router is missing quality attributes")

	// ErrBadRelay reports a relay that does not join exactly two routers.
	ErrBadRelay = errors.New("topology: relay must join exactly two routers")

	// ErrNilSource is returned by Build when no source is given.
	ErrNilSource = errors.New("topology: source is nil")

	// ErrInvalidSnapshot wraps validation failures of a Snapshot.
	ErrInvalidSnapshot = errors.New("topology: invalid snapshot")
)

// RouterInfo describes one router of the external snapshot.
// Nil Efficiency or RawFidelity means the attribute is absent.
type RouterInfo struct {
	Name        string
	Efficiency  *float64
	RawFidelity *float64
	Priority    string // "high", "low" or ""
}

// ChannelInfo is one quantum channel. Either end may be a router or a relay.
type ChannelInfo struct {
	From, To string
	Distance float64
}

// Source is the narrow view of a topology the builder needs.
type Source interface {
	RouterInfos() []RouterInfo
	ChannelInfos() []ChannelInfo
}

// Result is the outcome of Build.
type Result struct {
	Graph   *core.Graph
	Skipped []string // routers left out of Graph, in source order
}

// Options configures Build.
type Options struct {
	Logger *zap.Logger
}

// Option is a functional option for Build.
type Option func(*Options)

// WithLogger logs the build summary and each skipped router.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
