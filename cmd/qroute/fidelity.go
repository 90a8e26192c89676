package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/fidelity"
)

func newFidelityCmd(a *app) *cobra.Command {
	var (
		topo      string
		path      []string
		eff, raw  float64
		repeaters int
	)
	cmd := &cobra.Command{
		Use:   "fidelity",
		Short: "Compute the end-to-end fidelity of a path",
		Long: `Compute the end-to-end fidelity of a path.

With --topology and --path the qualities of the intermediate routers are read
from the snapshot. Without --topology, a chain of --repeaters identical
repeaters with --efficiency and --raw-fidelity is scored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				p core.Path
				q fidelity.QualityFunc
			)
			if topo != "" {
				g, err := a.loadGraph(&graphFlags{topology: topo})
				if err != nil {
					return err
				}
				if len(path) < 2 {
					return fmt.Errorf("--path needs at least two nodes")
				}
				p, q = core.Path(path), fidelity.FromGraph(g)
			} else {
				if repeaters < 0 {
					return fmt.Errorf("--repeaters must be >= 0")
				}
				p = core.Path{"src"}
				for i := 1; i <= repeaters; i++ {
					p = append(p, "r"+strconv.Itoa(i))
				}
				p = append(p, "dst")
				uniform := fidelity.Quality{Efficiency: eff, RawFidelity: raw}
				q = func(string) (fidelity.Quality, bool) { return uniform, true }
			}

			f, err := fidelity.Fidelity(p, q)
			if err != nil {
				return err
			}

			return renderFidelity(cmd.OutOrStdout(), p, f, a.cfg.Policy.Threshold)
		},
	}
	cmd.Flags().StringVarP(&topo, "topology", "t", "", "Topology snapshot (YAML or JSON)")
	cmd.Flags().StringSliceVar(&path, "path", nil, "Comma-separated node sequence, source first")
	cmd.Flags().Float64Var(&eff, "efficiency", 0.9, "Repeater efficiency")
	cmd.Flags().Float64Var(&raw, "raw-fidelity", 0.95, "Repeater raw fidelity")
	cmd.Flags().IntVar(&repeaters, "repeaters", 1, "Number of intermediate repeaters")

	return cmd
}
