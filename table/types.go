package table

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sentinel errors.
var (
	// ErrNotNeighbor is returned when a next hop is not adjacent to the table owner.
	ErrNotNeighbor = errors.New("table: next hop is not a neighbor")

	// ErrUnknownNode reports a source or destination absent from the graph.
	ErrUnknownNode = errors.New("table: unknown node")

	// ErrNilPort is returned by NewBuilder when no write port is given.
	ErrNilPort = errors.New("table: port is nil")

	// ErrOptionViolation reports an invalid builder option.
	ErrOptionViolation = errors.New("table: invalid option supplied")
)

// InstallMode selects which tables an accepted route is written to.
type InstallMode int

const (
	// InstallFirstHop writes only source: dst → path[1].
	InstallFirstHop InstallMode = iota

	// InstallAlongPath writes dst → path[i+1] on every node path[i] of the route.
	InstallAlongPath
)

func (m InstallMode) String() string {
	if m == InstallAlongPath {
		return "along-path"
	}
	return "first-hop"
}

// ParseInstallMode maps "first-hop" / "along-path" onto an InstallMode.
func ParseInstallMode(s string) (InstallMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first-hop", "firsthop":
		return InstallFirstHop, nil
	case "along-path", "alongpath", "path":
		return InstallAlongPath, nil
	default:
		return InstallFirstHop, fmt.Errorf("%w: install mode %q", ErrOptionViolation, s)
	}
}

// Recorder receives pass statistics. *metrics.Registry implements it.
type Recorder interface {
	RecordPair(policy, outcome string)
	RecordInstalls(policy string, n int)
	RecordBuild(policy string, d time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordPair(string, string)                {}
func (nopRecorder) RecordInstalls(string, int)               {}
func (nopRecorder) RecordBuild(string, time.Duration, error) {}

// Options configures a Builder.
type Options struct {
	Sources      []string
	Destinations []string
	Mode         InstallMode
	Workers      int
	Logger       *zap.Logger
	Recorder     Recorder

	err error
}

// Option is a functional option for NewBuilder.
type Option func(*Options)

// DefaultOptions: all nodes as sources and destinations, first-hop install,
// one worker, no-op logger and recorder.
func DefaultOptions() Options {
	return Options{
		Mode:     InstallFirstHop,
		Workers:  1,
		Logger:   zap.NewNop(),
		Recorder: nopRecorder{},
	}
}

// WithSources restricts the pass to the given sources (nil = all nodes).
func WithSources(ids ...string) Option {
	return func(o *Options) { o.Sources = append([]string(nil), ids...) }
}

// WithDestinations restricts the pass to the given destinations (nil = all nodes).
func WithDestinations(ids ...string) Option {
	return func(o *Options) { o.Destinations = append([]string(nil), ids...) }
}

// WithInstallMode selects first-hop or along-path installation.
func WithInstallMode(m InstallMode) Option {
	return func(o *Options) {
		if m != InstallFirstHop && m != InstallAlongPath {
			o.err = fmt.Errorf("%w: install mode %d", ErrOptionViolation, m)
			return
		}
		o.Mode = m
	}
}

// WithWorkers sets the number of sources selected concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the pass logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder sets the metrics sink.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// Report summarises one pass.
type Report struct {
	PassID       uuid.UUID
	Policy       string
	Pairs        int
	Installed    int // routes accepted
	Entries      int // table writes (> Installed in along-path mode)
	NoGraphPath  int
	NoAcceptable int
	Failed       int
	Duration     time.Duration
}
