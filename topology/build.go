package topology

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/core"
)

type leg struct {
	router   string
	distance float64
}

type pairKey struct{ a, b string }

func keyOf(u, v string) pairKey {
	if v < u {
		u, v = v, u
	}
	return pairKey{u, v}
}

// Build converts src into a graph.
//
// The returned Result is never nil when src is not nil; the error aggregates
// every skipped router, bad relay and rejected link.
func Build(src Source, opts ...Option) (*Result, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := Options{Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{Graph: core.NewGraph()}
	g := res.Graph
	var errs error

	// Nodes.
	routers := make(map[string]bool)
	for _, r := range src.RouterInfos() {
		routers[r.Name] = true
		if r.Efficiency == nil || r.RawFidelity == nil {
			res.Skipped = append(res.Skipped, r.Name)
			errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrMissingNodeAttributes, r.Name))
			o.Logger.Warn("router skipped", zap.String("router", r.Name))
			continue
		}
		prio, err := core.ParsePriority(r.Priority)
		if err == nil {
			err = g.AddNode(core.Node{
				ID:          r.Name,
				Efficiency:  *r.Efficiency,
				RawFidelity: *r.RawFidelity,
				Priority:    prio,
			})
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("topology: router %q: %w", r.Name, err))
			if !g.HasNode(r.Name) {
				res.Skipped = append(res.Skipped, r.Name)
			}
		}
	}

	// Channels: direct links are offered immediately, relay legs are grouped.
	best := make(map[pairKey]float64)
	offer := func(u, v string, cost float64) {
		k := keyOf(u, v)
		if cur, ok := best[k]; !ok || cost < cur {
			best[k] = cost
		}
	}
	relays := make(map[string][]leg)
	for _, c := range src.ChannelInfos() {
		fromR, toR := routers[c.From], routers[c.To]
		switch {
		case fromR && toR:
			offer(c.From, c.To, c.Distance)
		case fromR:
			relays[c.To] = append(relays[c.To], leg{c.From, c.Distance})
		case toR:
			relays[c.From] = append(relays[c.From], leg{c.To, c.Distance})
		default:
			errs = multierr.Append(errs, fmt.Errorf("%w: channel %s-%s has no router end", ErrBadRelay, c.From, c.To))
		}
	}

	names := make([]string, 0, len(relays))
	for name := range relays {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		legs := relays[name]
		if len(legs) != 2 || legs[0].router == legs[1].router {
			errs = multierr.Append(errs, fmt.Errorf("%w: relay %q has %d router legs", ErrBadRelay, name, len(legs)))
			continue
		}
		offer(legs[0].router, legs[1].router, legs[0].distance+legs[1].distance)
	}

	// Links, in deterministic order. Pairs touching a skipped router vanish.
	keys := make([]pairKey, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})
	for _, k := range keys {
		if !g.HasNode(k.a) || !g.HasNode(k.b) {
			continue
		}
		if _, err := g.AddLink(k.a, k.b, best[k]); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("topology: link %s-%s: %w", k.a, k.b, err))
		}
	}

	o.Logger.Info("topology built",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("links", g.LinkCount()),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("relays", len(relays)),
	)

	return res, errs
}
