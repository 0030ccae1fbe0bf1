package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/staykit/stay/internal/analysis"
	"github.com/staykit/stay/internal/loader"
)

func kpisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Print the KPI report for a selection",
		Long: `KPIs prints the full metric report for the selected date window,
platforms and properties. With no flags the report covers the whole
dataset.`,
		RunE: runKPIs,
	}
	addFilterFlags(cmd)
	return cmd
}

func runKPIs(cmd *cobra.Command, _ []string) error {
	src, err := dataSources()
	if err != nil {
		return err
	}
	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	ds, err := loader.Load(src)
	if err != nil {
		return err
	}
	ds = analysis.Apply(ds, filter)

	formatter := analysis.NewCLIFormatter()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.FormatHeader("Rental KPIs", filterDescription(filter)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.FormatSummary(analysis.Summarize(ds)))

	if ds.Empty() {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.FormatPlatformTotals(
		"Revenue by platform", analysis.RevenueByPlatform(ds), analysis.FormatMoney))
	if shares := analysis.NightsShareByPlatform(ds); len(shares) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, formatter.FormatPlatformTotals(
			"Nights share", shares, func(v float64) string {
				return fmt.Sprintf("%.2f%%", v)
			}))
	}
	return nil
}
