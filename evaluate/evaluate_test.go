package evaluate_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/evaluate"
	"github.com/katalvlaran/qroute/fidelity"
	"github.com/katalvlaran/qroute/metrics"
	"github.com/katalvlaran/qroute/policy"
	"github.com/katalvlaran/qroute/table"
)

func rawFor(target float64) float64 {
	m := (target - fidelity.Floor) / (fidelity.InitialFidelity - fidelity.Floor)
	return (3*m + 1) / 4
}

// qos returns S with two repeaters A (→0.6) and B (→0.9) in front of a High
// destination DH and a Low destination DL, plus an isolated Low node Z.
func qos(t *testing.T) *core.Graph {
	g := core.NewGraph()
	for _, n := range []core.Node{
		{ID: "S", Efficiency: 1, RawFidelity: 1},
		{ID: "A", Efficiency: 1, RawFidelity: rawFor(0.6)},
		{ID: "B", Efficiency: 1, RawFidelity: rawFor(0.9)},
		{ID: "DH", Efficiency: 1, RawFidelity: 1, Priority: core.PriorityHigh},
		{ID: "DL", Efficiency: 1, RawFidelity: 1},
		{ID: "Z", Efficiency: 1, RawFidelity: 1},
	} {
		require.NoError(t, g.AddNode(n))
	}
	for _, l := range [][2]string{{"S", "A"}, {"S", "B"}, {"A", "DH"}, {"B", "DH"}, {"A", "DL"}, {"B", "DL"}} {
		_, err := g.AddLink(l[0], l[1], 1)
		require.NoError(t, err)
	}

	return g
}

func TestWalk(t *testing.T) {
	ts := table.NewTables()
	require.NoError(t, ts.SetRoute("S", "D", "M"))
	require.NoError(t, ts.SetRoute("M", "D", "D"))

	p, err := evaluate.Walk(ts, "S", "D", 0)
	require.NoError(t, err)
	assert.Equal(t, core.Path{"S", "M", "D"}, p)

	_, err = evaluate.Walk(ts, "S", "D", 1)
	assert.ErrorIs(t, err, evaluate.ErrRoutingLoop)

	_, err = evaluate.Walk(ts, "S", "X", 0)
	assert.ErrorIs(t, err, evaluate.ErrNoRoute)

	require.NoError(t, ts.SetRoute("S", "L", "M"))
	require.NoError(t, ts.SetRoute("M", "L", "S"))
	_, err = evaluate.Walk(ts, "S", "L", 0)
	assert.ErrorIs(t, err, evaluate.ErrRoutingLoop)
}

func TestEvaluate_QoSClasses(t *testing.T) {
	pol, err := policy.New(policy.KindKXShortestQoS)
	require.NoError(t, err)

	res, err := evaluate.Evaluate(context.Background(), qos(t), pol,
		evaluate.WithSources("S"), evaluate.WithDestinations("DH", "DL"))
	require.NoError(t, err)

	assert.Equal(t, 1, res.High.Routed)
	assert.InDelta(t, 0.6, res.High.Mean, 1e-9)
	assert.InDelta(t, 0.0, res.High.StdDev, 1e-12)
	assert.Equal(t, 1, res.Low.Routed)
	assert.InDelta(t, 0.9, res.Low.Mean, 1e-9)
	// every node but the isolated Z is built toward DH and DL
	assert.Equal(t, 8, res.Build.Installed)
	assert.Equal(t, 2, res.Build.NoGraphPath)
	require.Len(t, res.Pairs, 2)
	assert.Equal(t, core.Path{"S", "A", "DH"}, res.Pairs[0].Path)
}

func TestEvaluate_UnroutedScoredZero(t *testing.T) {
	pol, err := policy.New(policy.KindKXShortestQoS)
	require.NoError(t, err)

	res, err := evaluate.Evaluate(context.Background(), qos(t), pol,
		evaluate.WithSources("S"), evaluate.WithDestinations("DL", "Z"))
	require.NoError(t, err)

	assert.Equal(t, evaluate.Empty, res.High.Mean)
	assert.Equal(t, evaluate.Empty, res.High.StdDev)
	assert.Equal(t, 1, res.Low.Routed)
	assert.Equal(t, 1, res.Low.Unrouted)
	// samples {0.9, 0}
	assert.InDelta(t, 0.45, res.Low.Mean, 1e-9)
	assert.InDelta(t, 0.45, res.Low.StdDev, 1e-9)
	assert.ErrorIs(t, res.Pairs[1].Err, evaluate.ErrNoRoute)
}

func TestEvaluate_WholeTableFirstHop(t *testing.T) {
	// Every source has its own entry, so first-hop install is enough to walk.
	pol, err := policy.New(policy.KindShortest)
	require.NoError(t, err)

	res, err := evaluate.Evaluate(context.Background(), qos(t), pol)
	require.NoError(t, err)
	assert.Equal(t, 4, res.High.Routed)
	assert.Equal(t, 1, res.High.Unrouted) // Z is isolated
	assert.Equal(t, 0, res.Build.Failed)
}

func TestEvaluate_Recorder(t *testing.T) {
	reg := metrics.NewRegistry("test")
	pol, err := policy.New(policy.KindKXShortestQoS, policy.WithK(2))
	require.NoError(t, err)

	_, err = evaluate.Evaluate(context.Background(), qos(t), pol,
		evaluate.WithSources("S"), evaluate.WithDestinations("DH", "DL"),
		evaluate.WithRecorder(reg))
	require.NoError(t, err)

	assert.InDelta(t, 0.6, testutil.ToFloat64(reg.EvalMeanFidelity.WithLabelValues("kxshortest-qos", "high")), 1e-9)
	assert.InDelta(t, 0.9, testutil.ToFloat64(reg.EvalMeanFidelity.WithLabelValues("kxshortest-qos", "low")), 1e-9)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.EvalPairs.WithLabelValues("kxshortest-qos", "high", "true")))
	assert.Equal(t, 8.0, testutil.ToFloat64(reg.PairsTotal.WithLabelValues("kxshortest-qos", metrics.OutcomeInstalled)))
}

func TestScore_PrebuiltTables(t *testing.T) {
	g := qos(t)
	ts := table.NewTables()
	require.NoError(t, ts.SetRoute("S", "DL", "B"))
	require.NoError(t, ts.SetRoute("B", "DL", "DL"))

	res, err := evaluate.Score(g, ts, evaluate.WithSources("S"), evaluate.WithDestinations("DL", "ghost"))
	assert.Error(t, err)
	assert.InDelta(t, 0.9, res.Low.Mean, 1e-9)
	assert.Equal(t, evaluate.Empty, res.High.Mean)
}

func TestEvaluate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pol, err := policy.New(policy.KindShortest)
	require.NoError(t, err)

	res, err := evaluate.Evaluate(ctx, qos(t), pol)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

// star returns Z–S, S–M–D and S–X–D with raw fidelity 0.975 everywhere.
// M is a poor repeater (e=0.8), X a good one (e=0.999).
func star(t *testing.T) *core.Graph {
	g := core.NewGraph()
	for id, e := range map[string]float64{"Z": 0.9, "S": 0.9, "M": 0.8, "X": 0.999, "D": 0.9} {
		require.NoError(t, g.AddNode(core.Node{ID: id, Efficiency: e, RawFidelity: 0.975}))
	}
	for _, l := range [][2]string{{"Z", "S"}, {"S", "M"}, {"M", "D"}, {"S", "X"}, {"X", "D"}} {
		_, err := g.AddLink(l[0], l[1], 1)
		require.NoError(t, err)
	}

	return g
}

func TestEvaluate_SourceKeepsItsOwnChoice(t *testing.T) {
	g := star(t)
	// X=0 keeps every intermediate on its direct link, so walks cannot loop.
	pol, err := policy.New(policy.KindKXShortest, policy.WithX(0))
	require.NoError(t, err)

	want, err := pol.Select(context.Background(), g, "S", "D")
	require.NoError(t, err)
	require.Equal(t, core.Path{"S", "M", "D"}, want.Path)

	// Z's own route to D passes through S; it must not rewrite S's entry.
	res, err := evaluate.Evaluate(context.Background(), g, pol)
	require.NoError(t, err)
	var got *evaluate.PairResult
	for i := range res.Pairs {
		if res.Pairs[i].Src == "S" && res.Pairs[i].Dst == "D" {
			got = &res.Pairs[i]
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, want.NextHop(), got.Path.NextHop())
	assert.Equal(t, want.Path, got.Path)
	assert.InDelta(t, want.Fidelity, got.Fidelity, 1e-12)
	assert.Equal(t, res.Build.Installed, res.Build.Entries)
}

func TestEvaluate_AlongPathIsOptIn(t *testing.T) {
	pol, err := policy.New(policy.KindKXShortest, policy.WithX(0))
	require.NoError(t, err)

	res, err := evaluate.Evaluate(context.Background(), star(t), pol,
		evaluate.WithInstallMode(table.InstallAlongPath))
	require.NoError(t, err)
	assert.Greater(t, res.Build.Entries, res.Build.Installed)
}
