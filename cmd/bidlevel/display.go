package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bidlevel/bidlevel/core"
)

func printReport(w io.Writer, report *core.EvaluationReport, cfg core.Config) {
	combos := core.TopCombinations(report.FilteredCombinations, cfg.TopN)

	fmt.Fprintf(w, "Combinations (%d of %d valid", len(combos), len(report.AllCombinations))
	if cfg.BudgetCap > 0 {
		fmt.Fprintf(w, ", budget %s", money(cfg.BudgetCap))
	}
	fmt.Fprintln(w, ")")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COMBINATION\tWINNER\tTOTAL")
	for _, r := range combos {
		if r.Winner != nil {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Label, r.Winner.Name, money(r.Winner.Total))
		} else {
			fmt.Fprintf(tw, "%s\t-\t-\n", r.Label)
		}
	}
	tw.Flush()

	fmt.Fprintln(w, "\nWin rates")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BIDDER\tWINS\tWIN %")
	for _, r := range report.WinRates {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", r.Name, r.Wins, r.Percent)
	}
	tw.Flush()

	fmt.Fprintln(w, "\nScope/cost frontier")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALTERNATES\tCOMBINATION\tWINNER\tTOTAL")
	for _, e := range report.Frontier {
		c := e.Combination
		if c.Winner == nil {
			fmt.Fprintf(tw, "%d\t%s\t-\t-\n", e.Size, c.Label)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Size, c.Label, c.Winner.Name, money(c.Winner.Total))
	}
	tw.Flush()
}

func printWonBy(w io.Writer, results []core.CombinationResult, name string) {
	fmt.Fprintf(w, "\nCombinations won by %s (%d)\n", name, len(results))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COMBINATION\tTOTAL")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\n", r.Label, money(r.Winner.Total))
	}
	tw.Flush()
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
