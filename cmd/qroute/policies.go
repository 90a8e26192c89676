package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qroute/policy"
)

func newPoliciesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the available path-selection policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := [][]string{{"Kind", "Scope", "Symmetric"}}
			for _, k := range policy.Kinds() {
				p, err := policy.New(k, a.cfg.PolicyOptions()...)
				if err != nil {
					return err
				}
				data = append(data, []string{string(k), p.Scope().String(), strconv.FormatBool(p.Symmetric())})
			}
			s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
}
