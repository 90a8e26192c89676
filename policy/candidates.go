package policy

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/qroute/bfs"
	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/dijkstra"
	"github.com/katalvlaran/qroute/ksp"
)

// enumerate runs the variant's candidate search for the ordered pair.
func (b *Bound) enumerate(ctx context.Context, src, dst string) ([]core.Path, error) {
	var (
		paths []core.Path
		err   error
	)
	switch b.p.kind {
	case KindShortest:
		paths, err = bfs.AllShortestPaths(b.g, src, dst, bfs.WithContext(ctx))
	case KindEfficiency:
		paths, err = b.efficiencyPaths(ctx, src, dst)
	case KindKShortest, KindKShortestQoS:
		paths, err = ksp.KShortest(b.g, src, dst, b.p.opts.K, ksp.WithContext(ctx))
	case KindKXShortest, KindKXShortestQoS:
		paths, err = b.boundedPaths(ctx, src, dst)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, b.p.kind)
	}

	switch {
	case err == nil && len(paths) == 0:
		return nil, fmt.Errorf("%w: %s→%s", ErrNoGraphPath, src, dst)
	case errors.Is(err, bfs.ErrNoPath), errors.Is(err, ksp.ErrNoPath), errors.Is(err, dijkstra.ErrNoPath):
		return nil, fmt.Errorf("%w: %s→%s", ErrNoGraphPath, src, dst)
	case err != nil:
		return nil, err
	}

	return paths, nil
}

// boundedPaths enumerates the first K candidates and keeps those within
// minLen + X hops.
func (b *Bound) boundedPaths(ctx context.Context, src, dst string) ([]core.Path, error) {
	minLen, err := bfs.HopDistance(b.g, src, dst, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	all, err := ksp.KShortest(b.g, src, dst, b.p.opts.K, ksp.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	limit := minLen + b.p.opts.X
	out := all[:0:0]
	for _, p := range all {
		if p.Hops() > limit {
			break
		}
		out = append(out, p)
	}

	return out, nil
}

// efficiencyPaths returns every minimum-cost path under EfficiencyCost.
// Entering a node without quality data is impassable; if that leaves the
// destination unreachable the pair is reported as a configuration error.
func (b *Bound) efficiencyPaths(ctx context.Context, src, dst string) ([]core.Path, error) {
	var (
		mu      sync.Mutex
		missing []string
	)
	cost := func(_, to string) float64 {
		q, ok := b.quality(to)
		if !ok {
			mu.Lock()
			missing = append(missing, to)
			mu.Unlock()
			return math.Inf(1)
		}
		return EfficiencyCost(q.Efficiency, b.p.opts.EMin, b.p.opts.EMax)
	}

	paths, err := dijkstra.AllShortestPaths(b.g, src, dst, dijkstra.WithCost(cost), dijkstra.WithContext(ctx))
	if errors.Is(err, dijkstra.ErrNoPath) && len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s→%s blocked by %v", ErrMissingNodeAttributes, src, dst, missing)
	}

	return paths, err
}

// EfficiencyCost is the cost of stepping into a node of efficiency e:
// exp(10·(emax − clamp(e, emin, emax)) / (emax − emin)).
func EfficiencyCost(e, emin, emax float64) float64 {
	c := math.Min(math.Max(e, emin), emax)

	return math.Exp(10 * (emax - c) / (emax - emin))
}

// memo caches candidate lists per ordered key. Concurrent callers for the
// same key wait for the first computation.
type memo struct {
	mu      sync.Mutex
	entries map[[2]string]*memoEntry
}

type memoEntry struct {
	once  sync.Once
	paths []core.Path
	err   error
}

func newMemo() *memo {
	return &memo{entries: make(map[[2]string]*memoEntry)}
}

func (m *memo) get(a, b string, compute func() ([]core.Path, error)) ([]core.Path, error) {
	key := [2]string{a, b}
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &memoEntry{}
		m.entries[key] = e
	}
	m.mu.Unlock()

	e.once.Do(func() {
		e.paths, e.err = compute()
	})
	if errors.Is(e.err, context.Canceled) || errors.Is(e.err, context.DeadlineExceeded) {
		// Do not pin a cancellation into the cache.
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
	}

	return e.paths, e.err
}
