package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qroute/table"
)

func newBuildCmd(a *app) *cobra.Command {
	f := &graphFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build forwarding tables for a topology and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd, f)
		},
	}
	f.register(cmd)

	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, f *graphFlags) error {
	g, err := a.loadGraph(f)
	if err != nil {
		return err
	}
	pol, err := a.newPolicy(f)
	if err != nil {
		return err
	}
	mode, _, err := a.installMode(f)
	if err != nil {
		return err
	}

	opts := []table.Option{
		table.WithInstallMode(mode),
		table.WithWorkers(a.workers(f)),
		table.WithLogger(a.log),
	}
	if f.sources != nil {
		opts = append(opts, table.WithSources(f.sources...))
	}
	if f.dests != nil {
		opts = append(opts, table.WithDestinations(f.dests...))
	}
	if a.reg != nil {
		opts = append(opts, table.WithRecorder(a.reg))
	}

	tables := table.NewTables()
	b, err := table.NewBuilder(tables, opts...)
	if err != nil {
		return err
	}
	rep, buildErr := b.Build(cmd.Context(), g, pol)
	if errors.Is(buildErr, context.Canceled) || errors.Is(buildErr, context.DeadlineExceeded) {
		return buildErr
	}

	out := cmd.OutOrStdout()
	if err := renderTables(out, g, tables); err != nil {
		return err
	}
	if err := renderReport(out, rep, mode); err != nil {
		return err
	}

	return buildErr
}
