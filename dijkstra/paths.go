package dijkstra

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/qroute/core"
)

// AllShortestPaths returns every minimum-cost path from src to dst, ordered
// lexicographically by node sequence.
func AllShortestPaths(g *core.Graph, src, dst string, opts ...Option) ([]core.Path, error) {
	res, err := Dijkstra(g, withSource(opts, src)...)
	if err != nil {
		return nil, err
	}

	return res.PathsTo(dst, 0)
}

// ShortestPath returns the lexicographically first minimum-cost path.
func ShortestPath(g *core.Graph, src, dst string, opts ...Option) (core.Path, error) {
	res, err := Dijkstra(g, withSource(opts, src)...)
	if err != nil {
		return nil, err
	}
	paths, err := res.PathsTo(dst, 1)
	if err != nil {
		return nil, err
	}

	return paths[0], nil
}

// PathsTo enumerates up to limit (0 = all) minimum-cost paths to dst.
func (r *Result) PathsTo(dst string, limit int) ([]core.Path, error) {
	d, ok := r.Dist[dst]
	if !ok || math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dst)
	}
	if dst == r.Source {
		return []core.Path{{dst}}, nil
	}

	children := make(map[string][]string)
	seen := map[string]bool{dst: true}
	stack := []string{dst}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range r.Preds[v] {
			children[u] = append(children[u], v)
			if !seen[u] {
				seen[u] = true
				stack = append(stack, u)
			}
		}
	}
	for _, cs := range children {
		sort.Strings(cs)
	}

	var out []core.Path
	cur := core.Path{r.Source}
	var walk func(u string) bool
	walk = func(u string) bool {
		if u == dst {
			out = append(out, cur.Clone())
			return limit > 0 && len(out) >= limit
		}
		for _, v := range children[u] {
			cur = append(cur, v)
			stop := walk(v)
			cur = cur[:len(cur)-1]
			if stop {
				return true
			}
		}
		return false
	}
	walk(r.Source)

	return out, nil
}

func withSource(opts []Option, src string) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)

	return append(out, Source(src))
}
