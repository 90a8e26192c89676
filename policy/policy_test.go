package policy_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/fidelity"
	"github.com/katalvlaran/qroute/policy"
)

type PolicySuite struct {
	suite.Suite
	ctx context.Context
}

func TestPolicySuite(t *testing.T) {
	suite.Run(t, new(PolicySuite))
}

func (s *PolicySuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *PolicySuite) mustNew(kind policy.Kind, opts ...policy.Option) *policy.Policy {
	p, err := policy.New(kind, opts...)
	s.Require().NoError(err)
	return p
}

func (s *PolicySuite) TestWorkedExample() {
	f := newFixture(s.T()).
		raw(core.Node{ID: "S", Efficiency: 0.9, RawFidelity: 0.975}).
		raw(core.Node{ID: "M", Efficiency: 0.9, RawFidelity: 0.95}).
		raw(core.Node{ID: "D", Efficiency: 0.9, RawFidelity: 0.975}).
		chain("S", "M", "D")

	for _, k := range policy.Kinds() {
		r, err := s.mustNew(k).Select(s.ctx, f.g, "S", "D")
		s.Require().NoError(err, k)
		s.Equal("M", r.NextHop(), k)
		s.InDelta(0.755244, r.Fidelity, 1e-6, k)
	}
}

func (s *PolicySuite) TestUnreachablePair() {
	f := newFixture(s.T()).node("A", good).node("B", good).node("Z", good).chain("A", "B")

	for _, k := range policy.Kinds() {
		_, err := s.mustNew(k).Select(s.ctx, f.g, "A", "Z")
		s.ErrorIs(err, policy.ErrNoGraphPath, k)

		_, err = s.mustNew(k).Select(s.ctx, f.g, "A", "ghost")
		s.ErrorIs(err, policy.ErrNoGraphPath, k)
	}
}

func (s *PolicySuite) TestSameEndpoints() {
	f := newFixture(s.T()).node("A", good)
	_, err := s.mustNew(policy.KindShortest).Select(s.ctx, f.g, "A", "A")
	s.ErrorIs(err, policy.ErrSameEndpoints)
}

func (s *PolicySuite) TestShortestInstallsFirstAcceptable() {
	// Two 2-hop paths: via A (bad, rejected) then via B (good).
	f := newFixture(s.T()).node("S", good).node("D", good).node("A", bad).node("B", good).
		chain("S", "A", "D").chain("S", "B", "D")
	p := s.mustNew(policy.KindShortest)

	cands, err := p.Bind(f.g).Candidates(s.ctx, "S", "D")
	s.Require().NoError(err)
	s.Equal([]core.Path{{"S", "A", "D"}, {"S", "B", "D"}}, cands)

	r, err := p.Select(s.ctx, f.g, "S", "D")
	s.Require().NoError(err)
	s.Equal(core.Path{"S", "B", "D"}, r.Path)
}

func (s *PolicySuite) TestShortestNeverLooksPastMinimumHops() {
	// The only good route is longer than the minimum.
	f := newFixture(s.T()).node("S", good).node("D", good).node("A", bad).
		node("X", good).node("Y", good).
		chain("S", "A", "D").chain("S", "X", "Y", "D")

	_, err := s.mustNew(policy.KindShortest).Select(s.ctx, f.g, "S", "D")
	s.ErrorIs(err, policy.ErrNoAcceptablePath)
}

func (s *PolicySuite) TestThresholdIsStrict() {
	f := newFixture(s.T()).node("S", good).node("D", good).chain("S", "D")

	_, err := s.mustNew(policy.KindShortest, policy.WithThreshold(fidelity.InitialFidelity)).
		Select(s.ctx, f.g, "S", "D")
	s.ErrorIs(err, policy.ErrNoAcceptablePath)

	_, err = s.mustNew(policy.KindShortest, policy.WithThreshold(0.9749999)).
		Select(s.ctx, f.g, "S", "D")
	s.NoError(err)
}

func (s *PolicySuite) TestKShortestScope() {
	g := fiveBranches(s.T())

	_, err := s.mustNew(policy.KindKShortest, policy.WithK(2)).Select(s.ctx, g, "S", "D")
	s.ErrorIs(err, policy.ErrNoAcceptablePath)

	r, err := s.mustNew(policy.KindKShortest, policy.WithK(3)).Select(s.ctx, g, "S", "D")
	s.Require().NoError(err)
	s.Equal("c1", r.NextHop())
}

func (s *PolicySuite) TestKXLengthBound() {
	g := fiveBranches(s.T()) // minLen = 2

	cands, err := s.mustNew(policy.KindKXShortest).Bind(g).Candidates(s.ctx, "S", "D")
	s.Require().NoError(err)
	s.Len(cands, 2)
	for _, c := range cands {
		s.LessOrEqual(c.Hops(), 3)
	}
	_, err = s.mustNew(policy.KindKXShortest).Select(s.ctx, g, "S", "D")
	s.ErrorIs(err, policy.ErrNoAcceptablePath)

	r, err := s.mustNew(policy.KindKXShortest, policy.WithX(2)).Select(s.ctx, g, "S", "D")
	s.Require().NoError(err)
	s.Equal(4, r.Path.Hops())
}

func (s *PolicySuite) TestKShortestPicksMinimumPassing() {
	// Two acceptable 2-hop routes; the weaker one wins.
	f := newFixture(s.T()).node("S", good).node("D", good).
		raw(core.Node{ID: "A", Efficiency: 0.95, RawFidelity: 0.95}).
		node("B", good).
		chain("S", "A", "D").chain("S", "B", "D")

	r, err := s.mustNew(policy.KindKShortest).Select(s.ctx, f.g, "S", "D")
	s.Require().NoError(err)
	s.Equal("A", r.NextHop())
}

// qosGraph yields two acceptable routes to each destination with fidelities
// 0.6 (via A) and 0.9 (via B).
func qosGraph(t *testing.T) *core.Graph {
	rawFor := func(target float64) float64 {
		m := (target - fidelity.Floor) / (fidelity.InitialFidelity - fidelity.Floor)
		return (3*m + 1) / 4
	}
	f := newFixture(t).
		raw(core.Node{ID: "S", Efficiency: 1, RawFidelity: 1}).
		raw(core.Node{ID: "A", Efficiency: 1, RawFidelity: rawFor(0.6)}).
		raw(core.Node{ID: "B", Efficiency: 1, RawFidelity: rawFor(0.9)}).
		raw(core.Node{ID: "DH", Efficiency: 1, RawFidelity: 1, Priority: core.PriorityHigh}).
		raw(core.Node{ID: "DL", Efficiency: 1, RawFidelity: 1, Priority: core.PriorityLow}).
		chain("S", "A", "DH").chain("S", "B", "DH").
		chain("A", "DL").chain("B", "DL")

	return f.g
}

func (s *PolicySuite) TestQoSInversion() {
	g := qosGraph(s.T())
	for _, p := range []*policy.Policy{
		s.mustNew(policy.KindKShortestQoS, policy.WithK(2)),
		s.mustNew(policy.KindKXShortestQoS),
	} {
		high, err := p.Select(s.ctx, g, "S", "DH")
		s.Require().NoError(err, p.String())
		s.Equal("A", high.NextHop(), p.String())
		s.InDelta(0.6, high.Fidelity, 1e-9)

		low, err := p.Select(s.ctx, g, "S", "DL")
		s.Require().NoError(err, p.String())
		s.Equal("B", low.NextHop(), p.String())
		s.InDelta(0.9, low.Fidelity, 1e-9)
	}
}

func (s *PolicySuite) TestEfficiencyPrefersGoodRepeaters() {
	f := newFixture(s.T()).node("S", good).node("D", good).
		raw(core.Node{ID: "L", Efficiency: 0.8, RawFidelity: 0.975}).
		node("H1", good).node("H2", good).
		chain("S", "L", "D").chain("S", "H1", "H2", "D")

	short, err := s.mustNew(policy.KindShortest).Select(s.ctx, f.g, "S", "D")
	s.Require().NoError(err)
	s.Equal("L", short.NextHop())

	eff := s.mustNew(policy.KindEfficiency)
	s.False(eff.Symmetric())
	r, err := eff.Select(s.ctx, f.g, "S", "D")
	s.Require().NoError(err)
	s.Equal(core.Path{"S", "H1", "H2", "D"}, r.Path)

	back, err := eff.Select(s.ctx, f.g, "D", "S")
	s.Require().NoError(err)
	s.Equal(core.Path{"D", "H2", "H1", "S"}, back.Path)
}

func (s *PolicySuite) TestSymmetricReversal() {
	f := newFixture(s.T()).node("A", good).node("M", good).node("Z", good).chain("A", "M", "Z")
	b := s.mustNew(policy.KindShortest).Bind(f.g)

	fwd, err := b.Select(s.ctx, "A", "Z")
	s.Require().NoError(err)
	rev, err := b.Select(s.ctx, "Z", "A")
	s.Require().NoError(err)
	s.Equal(fwd.Path.Reverse(), rev.Path)
	s.Equal(fwd.Fidelity, rev.Fidelity)
}

func (s *PolicySuite) TestMissingAttributesSurface() {
	f := newFixture(s.T()).node("S", good).node("M", good).node("D", good).chain("S", "M", "D")
	only := fidelity.FromMap(map[string]fidelity.Quality{
		"S": {Efficiency: 1, RawFidelity: 1},
		"D": {Efficiency: 1, RawFidelity: 1},
	})

	_, err := s.mustNew(policy.KindShortest, policy.WithQuality(only)).Select(s.ctx, f.g, "S", "D")
	s.ErrorIs(err, policy.ErrMissingNodeAttributes)
	s.ErrorIs(err, fidelity.ErrMissingQuality)

	_, err = s.mustNew(policy.KindEfficiency, policy.WithQuality(only)).Select(s.ctx, f.g, "S", "D")
	s.ErrorIs(err, policy.ErrMissingNodeAttributes)
}

func TestNew_Options(t *testing.T) {
	_, err := policy.New("bogus")
	assert.ErrorIs(t, err, policy.ErrUnknownKind)

	for _, opt := range []policy.Option{
		policy.WithK(0),
		policy.WithX(-1),
		policy.WithThreshold(1.5),
		policy.WithEfficiencyBounds(0.9, 0.9),
	} {
		_, err = policy.New(policy.KindKShortest, opt)
		assert.ErrorIs(t, err, policy.ErrBadOption)
	}

	p, err := policy.New(policy.KindKXShortestQoS)
	require.NoError(t, err)
	assert.Equal(t, policy.ScopePerPair, p.Scope())
	assert.True(t, p.Symmetric())
	assert.Equal(t, 10, p.Options().K)
	assert.Equal(t, 1, p.Options().X)
	assert.Equal(t, 0.53, p.Threshold())

	p, err = policy.New(policy.KindShortest)
	require.NoError(t, err)
	assert.Equal(t, policy.ScopeWholeTable, p.Scope())
}

func TestParseKind(t *testing.T) {
	k, err := policy.ParseKind(" KShortest-QoS ")
	require.NoError(t, err)
	assert.Equal(t, policy.KindKShortestQoS, k)

	_, err = policy.ParseKind("dijkstra")
	assert.ErrorIs(t, err, policy.ErrUnknownKind)
}

func TestEfficiencyCost(t *testing.T) {
	assert.InDelta(t, 1, policy.EfficiencyCost(0.999, 0.8, 0.999), 1e-12)
	assert.InDelta(t, 1, policy.EfficiencyCost(1.0, 0.8, 0.999), 1e-12)
	assert.InDelta(t, 22026.4658, policy.EfficiencyCost(0.8, 0.8, 0.999), 1e-3)
	assert.Equal(t, policy.EfficiencyCost(0.1, 0.8, 0.999), policy.EfficiencyCost(0.8, 0.8, 0.999))
}

// TestBound_ConcurrentSelect shares one Bound across goroutines; run with -race.
func TestBound_ConcurrentSelect(t *testing.T) {
	g := fiveBranches(t)
	b, err := policy.New(policy.KindKShortest)
	require.NoError(t, err)
	bound := b.Bind(g)

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src, dst := "S", "D"
			if i%2 == 1 {
				src, dst = dst, src
			}
			r, err := bound.Select(context.Background(), src, dst)
			if err == nil && r.Path.Hops() != 4 {
				err = fmt.Errorf("unexpected path %v", r.Path)
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}
}
