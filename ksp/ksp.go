package ksp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/qroute/bfs"
	"github.com/katalvlaran/qroute/core"
)

// candidate is a spur result waiting in Yen's B set.
type candidate struct {
	path core.Path
	seq  int
}

// yen holds the accepted (A) and pending (B) sets of one run.
type yen struct {
	g     *core.Graph
	dst   string
	opts  Options
	found []core.Path
	pend  []candidate
	known map[string]struct{}
	seq   int
}

// KShortest returns up to k loopless paths from src to dst in increasing hop
// order. Fewer than k paths are returned when the graph has fewer.
func KShortest(g *core.Graph, src, dst string, k int, opts ...Option) ([]core.Path, error) {
	if k < 1 {
		return nil, ErrBadK
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	first, err := bfs.ShortestPath(g, src, dst, bfs.WithContext(o.Ctx))
	if err != nil {
		if errors.Is(err, bfs.ErrNoPath) {
			return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, src, dst)
		}
		return nil, err
	}
	if o.MaxHops > 0 && first.Hops() > o.MaxHops {
		return nil, nil
	}
	if len(first) == 1 {
		return []core.Path{first}, nil
	}

	y := &yen{
		g:     g,
		dst:   dst,
		opts:  o,
		found: []core.Path{first},
		known: map[string]struct{}{key(first): {}},
	}
	for len(y.found) < k {
		if err := y.spur(y.found[len(y.found)-1]); err != nil {
			return nil, err
		}
		next, ok := y.pop()
		if !ok {
			break
		}
		y.found = append(y.found, next)
	}

	return y.found, nil
}

// spur generates every deviation of prev and adds new ones to the pending set.
func (y *yen) spur(prev core.Path) error {
	for j := 0; j < len(prev)-1; j++ {
		select {
		case <-y.opts.Ctx.Done():
			return y.opts.Ctx.Err()
		default:
		}

		root := prev[:j+1]
		spurNode := prev[j]

		// Links leaving the spur node along any accepted path sharing this root.
		cut := make(map[[2]string]struct{})
		for _, p := range y.found {
			if len(p) > j+1 && core.Path(p[:j+1]).Equal(root) {
				cut[[2]string{p[j], p[j+1]}] = struct{}{}
				cut[[2]string{p[j+1], p[j]}] = struct{}{}
			}
		}

		tail, err := bfs.ShortestPath(y.g, spurNode, y.dst,
			bfs.WithContext(y.opts.Ctx),
			bfs.WithoutNodes(root[:j]...),
			bfs.WithFilterNeighbor(func(u, v string) bool {
				_, blocked := cut[[2]string{u, v}]
				return !blocked
			}),
		)
		if errors.Is(err, bfs.ErrNoPath) {
			continue
		}
		if err != nil {
			return err
		}

		total := make(core.Path, 0, j+len(tail))
		total = append(total, root[:j]...)
		total = append(total, tail...)
		if y.opts.MaxHops > 0 && total.Hops() > y.opts.MaxHops {
			continue
		}
		k := key(total)
		if _, dup := y.known[k]; dup {
			continue
		}
		y.known[k] = struct{}{}
		y.pend = append(y.pend, candidate{path: total, seq: y.seq})
		y.seq++
	}

	return nil
}

// pop removes the shortest pending candidate, earliest discovery first.
func (y *yen) pop() (core.Path, bool) {
	if len(y.pend) == 0 {
		return nil, false
	}
	best := 0
	for i := 1; i < len(y.pend); i++ {
		c, b := y.pend[i], y.pend[best]
		if len(c.path) < len(b.path) || (len(c.path) == len(b.path) && c.seq < b.seq) {
			best = i
		}
	}
	p := y.pend[best].path
	y.pend = append(y.pend[:best], y.pend[best+1:]...)

	return p, true
}

func key(p core.Path) string {
	return strings.Join(p, "\x00")
}
