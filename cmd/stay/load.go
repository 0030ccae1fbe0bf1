package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/staykit/stay/internal/loader"
)

func loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load and validate the bookings and reviews tables",
		Long: `Load reads both source tables, validates every row and reports what
the dataset contains. Use it to check a fresh export before opening
the dashboard.`,
		RunE: runLoad,
	}
}

func runLoad(cmd *cobra.Command, _ []string) error {
	src, err := dataSources()
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	stage := ""
	progress := func(s string, current, total int) {
		if bar == nil || s != stage {
			stage = s
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Parsing "+s),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(current)
	}

	ds, err := loader.Load(src, loader.WithProgress(progress))
	if err != nil {
		return err
	}

	reviewed := 0
	for i := range ds.Bookings {
		if ds.Bookings[i].Review != nil {
			reviewed++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded %d reservations (%d reviewed)\n", ds.Len(), reviewed)
	fmt.Fprintf(out, "Properties: %s\n", strings.Join(ds.Properties(), ", "))
	fmt.Fprintf(out, "Platforms:  %s\n", strings.Join(ds.Platforms(), ", "))
	if start, end, ok := ds.Span(); ok {
		fmt.Fprintf(out, "Check-ins:  %s to %s\n",
			start.Format(flagDateLayout), end.Format(flagDateLayout))
	}
	return nil
}
