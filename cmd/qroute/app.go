package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/assign"
	"github.com/katalvlaran/qroute/config"
	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/logging"
	"github.com/katalvlaran/qroute/metrics"
	"github.com/katalvlaran/qroute/policy"
	"github.com/katalvlaran/qroute/table"
	"github.com/katalvlaran/qroute/topology"
)

// app carries state shared by every subcommand.
type app struct {
	configPath  string
	metricsFile string

	cfg *config.Config
	log *zap.Logger
	reg *metrics.Registry
}

// graphFlags are the topology inputs shared by build and evaluate.
type graphFlags struct {
	topology string
	assign   string
	seed     int64
	raw      float64
	rawSet   func() bool
	strict   bool
	policy   string
	sources  []string
	dests    []string
	workers  int
	mode     string
}

func (f *graphFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.topology, "topology", "t", "", "Topology snapshot (YAML or JSON)")
	cmd.Flags().StringVar(&f.assign, "assign", "", "Draw efficiencies first: bimodal:<xi>, loguniform:<alpha> or constant:<v>")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for --assign")
	cmd.Flags().Float64Var(&f.raw, "raw-fidelity", assign.DefaultRawFidelity, "With --assign, write this raw fidelity to every router (only when given)")
	f.rawSet = func() bool { return cmd.Flags().Changed("raw-fidelity") }
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Fail when routers are skipped for missing attributes")
	cmd.Flags().StringVarP(&f.policy, "policy", "p", "", "Policy kind (overrides config)")
	cmd.Flags().StringSliceVar(&f.sources, "sources", nil, "Restrict sources (default: all routers)")
	cmd.Flags().StringSliceVar(&f.dests, "destinations", nil, "Restrict destinations (default: all routers)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Selection workers (overrides config)")
	cmd.Flags().StringVar(&f.mode, "install-mode", "", "first-hop or along-path (overrides config)")
	_ = cmd.MarkFlagRequired("topology")
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "qroute",
		Short:         "Fidelity-aware forwarding tables for quantum-repeater networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.finish()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (QROUTE_* env vars also apply)")
	root.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")

	root.AddCommand(
		newBuildCmd(a),
		newEvaluateCmd(a),
		newFidelityCmd(a),
		newPoliciesCmd(a),
	)

	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logging.New(cfg.Log)
	if err != nil {
		return err
	}

	if a.metricsFile == "" {
		a.metricsFile = cfg.Metrics.Textfile
	}
	if cfg.Metrics.Enabled || a.metricsFile != "" {
		a.reg = metrics.NewRegistry(cfg.Metrics.Namespace)
	}

	return nil
}

func (a *app) finish() error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.reg == nil || a.metricsFile == "" {
		return nil
	}
	if err := a.reg.WriteTextfile(a.metricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.Info("metrics written", zap.String("path", a.metricsFile))

	return nil
}

// loadGraph reads the snapshot, optionally assigns efficiencies, and builds the graph.
func (a *app) loadGraph(f *graphFlags) (*core.Graph, error) {
	snap, err := topology.LoadFile(f.topology)
	if err != nil {
		return nil, err
	}
	if f.assign != "" {
		d, err := assign.Parse(f.assign)
		if err != nil {
			return nil, err
		}
		opts := []assign.Option{assign.WithSeed(f.seed)}
		if f.rawSet() {
			opts = append(opts, assign.WithRawFidelity(f.raw))
		}
		n, err := assign.Apply(snap, d, opts...)
		if err != nil {
			return nil, err
		}
		a.log.Debug("efficiencies assigned", zap.Stringer("distribution", d), zap.Int("routers", n))
	}

	res, err := topology.Build(snap, topology.WithLogger(a.log))
	if err != nil {
		if res == nil || f.strict {
			return nil, err
		}
		a.log.Warn("topology incomplete", zap.Strings("skipped", res.Skipped), zap.Error(err))
	}

	return res.Graph, nil
}

// newPolicy builds the configured policy, with --policy taking precedence.
func (a *app) newPolicy(f *graphFlags) (*policy.Policy, error) {
	if f.policy != "" {
		kind, err := policy.ParseKind(f.policy)
		if err != nil {
			return nil, err
		}
		return policy.New(kind, append(a.cfg.PolicyOptions(), policy.WithLogger(a.log))...)
	}

	return a.cfg.NewPolicy(policy.WithLogger(a.log))
}

func (a *app) workers(f *graphFlags) int {
	if f.workers > 0 {
		return f.workers
	}
	return a.cfg.Build.Workers
}

// installMode returns the mode from flag or config, defaulting to first-hop;
// the bool reports whether one was set explicitly.
func (a *app) installMode(f *graphFlags) (table.InstallMode, bool, error) {
	if f.mode != "" {
		m, err := table.ParseInstallMode(f.mode)
		return m, err == nil, err
	}

	return a.cfg.InstallMode()
}
