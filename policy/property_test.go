package policy_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/fidelity"
	"github.com/katalvlaran/qroute/policy"
)

// randomGraph builds a sparse graph of n nodes with nominal qualities.
func randomGraph(seed int64, n int) *core.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		pr := core.PriorityLow
		if rng.Intn(2) == 0 {
			pr = core.PriorityHigh
		}
		_ = g.AddNode(core.Node{
			ID:          fmt.Sprintf("n%02d", i),
			Efficiency:  0.8 + 0.199*rng.Float64(),
			RawFidelity: 0.9 + 0.1*rng.Float64(),
			Priority:    pr,
		})
	}
	for i := 0; i < 2*n; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		_, _ = g.AddLink(fmt.Sprintf("n%02d", a), fmt.Sprintf("n%02d", b), 1+rng.Float64()*10)
	}

	return g
}

func TestPolicy_RouteProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 40
	properties := gopter.NewProperties(params)

	kinds := make([]interface{}, 0, len(policy.Kinds()))
	for _, k := range policy.Kinds() {
		kinds = append(kinds, k)
	}

	properties.Property("selected routes are simple, adjacent and acceptable", prop.ForAll(
		func(seed int64, n int, kind policy.Kind) bool {
			g := randomGraph(seed, n)
			p, err := policy.New(kind, policy.WithK(4))
			if err != nil {
				return false
			}
			b := p.Bind(g)
			q := fidelity.FromGraph(g)
			for _, src := range g.Nodes() {
				for _, dst := range g.Nodes() {
					if src == dst {
						continue
					}
					r, err := b.Select(context.Background(), src, dst)
					if errors.Is(err, policy.ErrNoGraphPath) || errors.Is(err, policy.ErrNoAcceptablePath) {
						continue
					}
					if err != nil {
						return false
					}
					if r.Path.Source() != src || r.Path.Destination() != dst {
						return false
					}
					seen := map[string]bool{}
					for i, id := range r.Path {
						if seen[id] {
							return false
						}
						seen[id] = true
						if i > 0 && !g.HasLink(r.Path[i-1], id) {
							return false
						}
					}
					f, err := fidelity.Fidelity(r.Path, q)
					if err != nil || f != r.Fidelity || !fidelity.Accept(f, p.Threshold()) {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(2, 9),
		gen.OneConstOf(kinds...),
	))

	properties.TestingRun(t)
}
