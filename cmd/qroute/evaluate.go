package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/katalvlaran/qroute/evaluate"
	"github.com/katalvlaran/qroute/policy"
)

func newEvaluateCmd(a *app) *cobra.Command {
	f := &graphFlags{}
	var all, pairs bool
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Build tables and score the fidelity of every routed pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEvaluate(cmd, f, all, pairs)
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "Evaluate every policy kind")
	cmd.Flags().BoolVar(&pairs, "pairs", false, "Also print per-pair paths and fidelities")

	return cmd
}

func (a *app) runEvaluate(cmd *cobra.Command, f *graphFlags, all, pairs bool) error {
	g, err := a.loadGraph(f)
	if err != nil {
		return err
	}

	var pols []*policy.Policy
	if all {
		for _, k := range policy.Kinds() {
			p, err := policy.New(k, append(a.cfg.PolicyOptions(), policy.WithLogger(a.log))...)
			if err != nil {
				return err
			}
			pols = append(pols, p)
		}
	} else {
		p, err := a.newPolicy(f)
		if err != nil {
			return err
		}
		pols = append(pols, p)
	}

	mode, explicit, err := a.installMode(f)
	if err != nil {
		return err
	}
	opts := []evaluate.Option{
		evaluate.WithWorkers(a.workers(f)),
		evaluate.WithLogger(a.log),
	}
	if explicit {
		opts = append(opts, evaluate.WithInstallMode(mode))
	}
	if f.sources != nil {
		opts = append(opts, evaluate.WithSources(f.sources...))
	}
	if f.dests != nil {
		opts = append(opts, evaluate.WithDestinations(f.dests...))
	}
	if a.reg != nil {
		opts = append(opts, evaluate.WithRecorder(a.reg))
	}

	var (
		results []*evaluate.Result
		names   []string
		errs    error
	)
	for _, p := range pols {
		res, err := evaluate.Evaluate(cmd.Context(), g, p, opts...)
		if res == nil {
			return err
		}
		errs = multierr.Append(errs, err)
		results = append(results, res)
		names = append(names, p.String())
	}

	out := cmd.OutOrStdout()
	if err := renderEvaluation(out, names, results); err != nil {
		return err
	}
	if pairs {
		for i, res := range results {
			if err := renderPairs(out, names[i], res); err != nil {
				return err
			}
		}
	}

	return errs
}
