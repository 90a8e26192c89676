package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/evaluate"
	"github.com/katalvlaran/qroute/fidelity"
	"github.com/katalvlaran/qroute/table"
)

func printTable(w io.Writer, data [][]string) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func ffmt(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

func renderTables(w io.Writer, g *core.Graph, ts *table.Tables) error {
	data := [][]string{{"Node", "Destination", "Next hop"}}
	for _, id := range g.Nodes() {
		t := ts.Table(id)
		if t == nil {
			continue
		}
		for _, e := range t.Entries() {
			data = append(data, []string{id, e.Destination, e.NextHop})
		}
	}

	return printTable(w, data)
}

func renderReport(w io.Writer, rep table.Report, mode table.InstallMode) error {
	return printTable(w, [][]string{
		{"Pass", "Policy", "Install", "Pairs", "Installed", "Entries", "No path", "Rejected", "Failed", "Duration"},
		{
			rep.PassID.String(), rep.Policy, mode.String(),
			strconv.Itoa(rep.Pairs), strconv.Itoa(rep.Installed), strconv.Itoa(rep.Entries),
			strconv.Itoa(rep.NoGraphPath), strconv.Itoa(rep.NoAcceptable), strconv.Itoa(rep.Failed),
			rep.Duration.String(),
		},
	})
}

func renderEvaluation(w io.Writer, names []string, results []*evaluate.Result) error {
	data := [][]string{{"Policy", "Class", "Routed", "Unrouted", "Mean", "Stddev"}}
	for i, res := range results {
		for _, cs := range []evaluate.ClassStats{res.High, res.Low} {
			data = append(data, []string{
				names[i], cs.Class.String(),
				strconv.Itoa(cs.Routed), strconv.Itoa(cs.Unrouted),
				ffmt(cs.Mean), ffmt(cs.StdDev),
			})
		}
	}

	return printTable(w, data)
}

func renderPairs(w io.Writer, name string, res *evaluate.Result) error {
	data := [][]string{{"Policy", "Source", "Destination", "Path", "Fidelity"}}
	for _, pr := range res.Pairs {
		path := "-"
		if pr.Routed {
			path = strings.Join(pr.Path, " > ")
		}
		data = append(data, []string{name, pr.Src, pr.Dst, path, ffmt(pr.Fidelity)})
	}

	return printTable(w, data)
}

func renderFidelity(w io.Writer, p core.Path, f, tau float64) error {
	return printTable(w, [][]string{
		{"Path", "Repeaters", "Fidelity", "Threshold", "Accepted"},
		{
			strings.Join(p, " > "), strconv.Itoa(len(p.Intermediates())),
			ffmt(f), ffmt(tau), strconv.FormatBool(fidelity.Accept(f, tau)),
		},
	})
}
