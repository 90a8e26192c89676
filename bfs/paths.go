package bfs

import "github.com/katalvlaran/qroute/core"

// AllShortestPaths returns every minimum-hop path from src to dst, ordered
// lexicographically by node sequence. Options such as WithFilterNeighbor or
// WithoutNodes restrict the graph the search may use.
//
// Returns ErrNoPath if dst is unreachable under the given options.
//
// Complexity: O(V + E) for the search plus O(P·L) to emit P paths of length L.
func AllShortestPaths(g *core.Graph, src, dst string, opts ...Option) ([]core.Path, error) {
	res, err := search(g, src, dst, opts)
	if err != nil {
		return nil, err
	}

	return res.PathsTo(dst)
}

// ShortestPath returns the first path AllShortestPaths would return without
// enumerating the others.
func ShortestPath(g *core.Graph, src, dst string, opts ...Option) (core.Path, error) {
	res, err := search(g, src, dst, opts)
	if err != nil {
		return nil, err
	}

	return res.PathTo(dst)
}

// HopDistance returns the minimum number of hops between src and dst.
func HopDistance(g *core.Graph, src, dst string, opts ...Option) (int, error) {
	res, err := search(g, src, dst, opts)
	if err != nil {
		return 0, err
	}
	d, ok := res.Depth[dst]
	if !ok {
		return 0, ErrNoPath
	}

	return d, nil
}

func search(g *core.Graph, src, dst string, opts []Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(dst) {
		return nil, ErrNoPath
	}
	all := append(append([]Option(nil), opts...), func(o *BFSOptions) { o.target = dst })

	return BFS(g, src, all...)
}
