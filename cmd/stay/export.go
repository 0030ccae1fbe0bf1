package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/staykit/stay/internal/analysis"
	"github.com/staykit/stay/internal/config"
	"github.com/staykit/stay/internal/export"
	"github.com/staykit/stay/internal/loader"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the report for a selection to an XLSX workbook",
		RunE:  runExport,
	}
	addFilterFlags(cmd)
	cmd.Flags().String("out", "report.xlsx", "output workbook path")
	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
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

	out, _ := cmd.Flags().GetString("out")
	path := config.ExpandPath(out)
	if err := export.WriteXLSX(path, export.BuildReport(ds)); err != nil {
		return err
	}

	slog.Info("report written", "path", path, "reservations", ds.Len())
	return nil
}
