package evaluate

import (
	"fmt"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/table"
)

// Walk follows the tables from src until dst is reached.
// limit bounds the number of hops; limit <= 0 means no bound beyond loop
// detection.
func Walk(lookup table.Lookup, src, dst string, limit int) (core.Path, error) {
	path := core.Path{src}
	seen := map[string]bool{src: true}
	for cur := src; cur != dst; {
		if limit > 0 && path.Hops() >= limit {
			return nil, fmt.Errorf("%w: %s→%s exceeded %d hops", ErrRoutingLoop, src, dst, limit)
		}
		next, ok := lookup.NextHop(cur, dst)
		if !ok {
			return nil, fmt.Errorf("%w: %s→%s stops at %s", ErrNoRoute, src, dst, cur)
		}
		if seen[next] {
			return nil, fmt.Errorf("%w: %s→%s revisits %s", ErrRoutingLoop, src, dst, next)
		}
		seen[next] = true
		path = append(path, next)
		cur = next
	}

	return path, nil
}
