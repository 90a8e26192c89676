package policy

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/fidelity"
)

// Policy is one configured path-selection variant. It is immutable and safe
// to share; bind it to a graph snapshot with Bind.
type Policy struct {
	kind Kind
	opts Options
}

// New builds a Policy of the given kind.
func New(kind Kind, opts ...Option) (*Policy, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Policy{kind: kind, opts: o}, nil
}

// Kind returns the variant.
func (p *Policy) Kind() Kind { return p.kind }

// Threshold returns τ.
func (p *Policy) Threshold() float64 { return p.opts.Threshold }

// Options returns a copy of the effective options.
func (p *Policy) Options() Options { return p.opts }

// Symmetric reports whether a path found for (a, b) may be reversed and used
// for (b, a). Only the efficiency variant is directional.
func (p *Policy) Symmetric() bool {
	return p.kind != KindEfficiency
}

// Scope reports how the policy is normally driven.
func (p *Policy) Scope() Scope {
	switch p.kind {
	case KindShortest, KindEfficiency:
		return ScopeWholeTable
	default:
		return ScopePerPair
	}
}

// String returns the kind name.
func (p *Policy) String() string { return string(p.kind) }

// Bind attaches the policy to a graph snapshot.
func (p *Policy) Bind(g *core.Graph) *Bound {
	q := p.opts.Quality
	if q == nil {
		q = fidelity.FromGraph(g)
	}

	return &Bound{
		p:       p,
		g:       g,
		quality: q,
		log:     p.opts.Logger.With(zap.String("policy", string(p.kind))),
		memo:    newMemo(),
	}
}

// Select is a convenience for p.Bind(g).Select(ctx, src, dst).
func (p *Policy) Select(ctx context.Context, g *core.Graph, src, dst string) (Route, error) {
	return p.Bind(g).Select(ctx, src, dst)
}

// Bound is a Policy bound to one graph snapshot. Candidate enumeration for
// symmetric policies is memoised per unordered pair. Safe for concurrent use.
type Bound struct {
	p       *Policy
	g       *core.Graph
	quality fidelity.QualityFunc
	log     *zap.Logger
	memo    *memo
}

// Policy returns the underlying policy.
func (b *Bound) Policy() *Policy { return b.p }

// Select chooses the route for (src, dst).
//
// Errors:
//   - ErrSameEndpoints if src == dst.
//   - ErrNoGraphPath if dst is unreachable (or either node is unknown).
//   - ErrNoAcceptablePath if no examined candidate clears the threshold.
//   - ErrMissingNodeAttributes if a candidate crosses a node without quality.
//   - ctx.Err() on cancellation.
func (b *Bound) Select(ctx context.Context, src, dst string) (Route, error) {
	if src == dst {
		return Route{}, ErrSameEndpoints
	}
	cands, err := b.Candidates(ctx, src, dst)
	if err != nil {
		return Route{}, err
	}

	r, err := b.choose(src, dst, cands)
	if err != nil {
		b.log.Debug("no route",
			zap.String("src", src), zap.String("dst", dst),
			zap.Int("candidates", len(cands)), zap.Error(err))
		return Route{}, err
	}
	b.log.Debug("route selected",
		zap.String("src", src), zap.String("dst", dst),
		zap.Strings("path", r.Path), zap.Float64("fidelity", r.Fidelity))

	return r, nil
}

// Candidates returns the paths the policy examines for (src, dst), in
// examination order. The returned slice must not be modified.
func (b *Bound) Candidates(ctx context.Context, src, dst string) ([]core.Path, error) {
	if !b.g.HasNode(src) || !b.g.HasNode(dst) {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoGraphPath, src, dst)
	}
	if !b.p.Symmetric() {
		return b.enumerate(ctx, src, dst)
	}
	if src < dst {
		return b.memo.get(src, dst, func() ([]core.Path, error) {
			return b.enumerate(ctx, src, dst)
		})
	}

	fwd, err := b.memo.get(dst, src, func() ([]core.Path, error) {
		return b.enumerate(ctx, dst, src)
	})
	if err != nil {
		return nil, err
	}
	out := make([]core.Path, len(fwd))
	for i, p := range fwd {
		out[i] = p.Reverse()
	}

	return out, nil
}

// choose applies the variant's winner rule to cands.
func (b *Bound) choose(src, dst string, cands []core.Path) (Route, error) {
	tau := b.p.opts.Threshold
	pickMax := false
	firstWins := false
	switch b.p.kind {
	case KindShortest, KindEfficiency:
		firstWins = true
	case KindKShortestQoS, KindKXShortestQoS:
		n, err := b.g.Node(dst)
		if err != nil {
			return Route{}, fmt.Errorf("%w: %s→%s", ErrNoGraphPath, src, dst)
		}
		// High priority gets the just-sufficient route, Low the most robust.
		pickMax = n.Priority == core.PriorityLow
	}

	var best Route
	found := false
	for _, c := range cands {
		f, err := fidelity.Fidelity(c, b.quality)
		if err != nil {
			return Route{}, fmt.Errorf("%w: %s→%s: %w", ErrMissingNodeAttributes, src, dst, err)
		}
		if !fidelity.Accept(f, tau) {
			continue
		}
		if firstWins {
			return Route{Path: c, Fidelity: f}, nil
		}
		if !found || (pickMax && f > best.Fidelity) || (!pickMax && f < best.Fidelity) {
			best = Route{Path: c, Fidelity: f}
			found = true
		}
	}
	if !found {
		return Route{}, fmt.Errorf("%w: %s→%s (%d candidates, τ=%v)", ErrNoAcceptablePath, src, dst, len(cands), tau)
	}

	return best, nil
}
