package table

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/metrics"
	"github.com/katalvlaran/qroute/policy"
)

// Builder runs table-construction passes against a Port.
type Builder struct {
	port Port
	opts Options
}

// NewBuilder returns a Builder writing through port.
func NewBuilder(port Port, opts ...Option) (*Builder, error) {
	if port == nil {
		return nil, ErrNilPort
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Builder{port: port, opts: o}, nil
}

// decision is the selection result for one pair.
type decision struct {
	src, dst string
	route    policy.Route
	err      error
}

// pass holds the state of one Build call.
type pass struct {
	b      *Builder
	g      *core.Graph
	pol    *policy.Policy
	log    *zap.Logger
	report Report
	errs   error
}

// Build runs one pass of pol over g.
//
// Implementation:
//   - Stage 1: Resolve sources and destinations; unknown IDs are configuration errors.
//   - Stage 2: Select a route for every ordered pair (src != dst), on Workers goroutines.
//   - Stage 3: Reset every node's table through the port, including owners
//     the port reports via Owners that are absent from g.
//   - Stage 4: Install accepted routes in source order, then destination order.
//
// The returned error aggregates configuration errors and port failures; the
// Report is complete even when the error is non-nil. A context error during
// Stage 2 aborts the pass before any table is touched.
func (b *Builder) Build(ctx context.Context, g *core.Graph, pol *policy.Policy) (Report, error) {
	start := time.Now()
	p := &pass{
		b:      b,
		g:      g,
		pol:    pol,
		report: Report{PassID: uuid.New(), Policy: pol.String()},
	}
	p.log = b.opts.Logger.With(zap.String("pass", p.report.PassID.String()), zap.String("policy", pol.String()))

	sources := p.resolve("source", b.opts.Sources)
	dests := p.resolve("destination", b.opts.Destinations)

	decisions, err := p.selectAll(ctx, sources, dests)
	if err != nil {
		p.report.Duration = time.Since(start)
		b.opts.Recorder.RecordBuild(pol.String(), p.report.Duration, err)
		p.log.Warn("pass aborted", zap.Error(err))
		return p.report, err
	}

	p.commit(decisions)
	p.report.Duration = time.Since(start)
	b.opts.Recorder.RecordInstalls(pol.String(), p.report.Entries)
	b.opts.Recorder.RecordBuild(pol.String(), p.report.Duration, p.errs)

	p.log.Info("pass complete",
		zap.Int("pairs", p.report.Pairs),
		zap.Int("installed", p.report.Installed),
		zap.Int("entries", p.report.Entries),
		zap.Int("no_graph_path", p.report.NoGraphPath),
		zap.Int("no_acceptable", p.report.NoAcceptable),
		zap.Int("failed", p.report.Failed),
		zap.Duration("duration", p.report.Duration),
	)

	return p.report, p.errs
}

// resolve defaults ids to every node and drops unknown ones.
func (p *pass) resolve(role string, ids []string) []string {
	if ids == nil {
		return p.g.Nodes()
	}
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !p.g.HasNode(id) {
			p.errs = multierr.Append(p.errs, fmt.Errorf("%w: %s %q", ErrUnknownNode, role, id))
			continue
		}
		out = append(out, id)
	}

	return out
}

// selectAll runs the policy for every pair. Each worker owns one source's
// slice of results, so no locking is needed beyond the errgroup.
func (p *pass) selectAll(ctx context.Context, sources, dests []string) ([][]decision, error) {
	bound := p.pol.Bind(p.g)
	out := make([][]decision, len(sources))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.b.opts.Workers)
	for i, src := range sources {
		i, src := i, src
		eg.Go(func() error {
			row := make([]decision, 0, len(dests))
			for _, dst := range dests {
				if dst == src {
					continue
				}
				if err := egCtx.Err(); err != nil {
					return err
				}
				r, err := bound.Select(egCtx, src, dst)
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				row = append(row, decision{src: src, dst: dst, route: r, err: err})
			}
			out[i] = row
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// owners lists every table the pass resets: the graph's nodes plus any
// owner the port still knows about.
func (p *pass) owners() []string {
	ids := p.g.Nodes()
	known, ok := p.b.port.(Owners)
	if !ok {
		return ids
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range known.Nodes() {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// commit resets every table and installs the accepted routes.
func (p *pass) commit(decisions [][]decision) {
	for _, id := range p.owners() {
		if err := p.b.port.ClearRoutes(id); err != nil {
			p.errs = multierr.Append(p.errs, fmt.Errorf("table: clear %q: %w", id, err))
		}
	}

	rec := p.b.opts.Recorder
	name := p.pol.String()
	for _, row := range decisions {
		for _, d := range row {
			p.report.Pairs++
			switch {
			case d.err == nil:
				if err := p.install(d); err != nil {
					p.report.Failed++
					rec.RecordPair(name, metrics.OutcomeFailed)
					p.errs = multierr.Append(p.errs, err)
					continue
				}
				p.report.Installed++
				rec.RecordPair(name, metrics.OutcomeInstalled)
			case errors.Is(d.err, policy.ErrNoGraphPath):
				p.report.NoGraphPath++
				rec.RecordPair(name, metrics.OutcomeNoGraphPath)
			case errors.Is(d.err, policy.ErrNoAcceptablePath):
				p.report.NoAcceptable++
				rec.RecordPair(name, metrics.OutcomeNoAcceptable)
			default:
				p.report.Failed++
				rec.RecordPair(name, metrics.OutcomeFailed)
				p.log.Warn("pair failed", zap.String("src", d.src), zap.String("dst", d.dst), zap.Error(d.err))
				p.errs = multierr.Append(p.errs, d.err)
			}
		}
	}
}

// install writes one accepted route according to the install mode.
func (p *pass) install(d decision) error {
	path := d.route.Path
	last := 1
	if p.b.opts.Mode == InstallAlongPath {
		last = len(path) - 1
	}
	for i := 0; i < last && i+1 < len(path); i++ {
		owner, next := path[i], path[i+1]
		if !p.g.HasLink(owner, next) {
			return fmt.Errorf("%w: %s→%s via %q", ErrNotNeighbor, owner, d.dst, next)
		}
		if err := p.b.port.SetRoute(owner, d.dst, next); err != nil {
			return fmt.Errorf("table: set %s→%s: %w", owner, d.dst, err)
		}
		p.report.Entries++
	}

	return nil
}
