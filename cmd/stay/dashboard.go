package main

import (
	"github.com/spf13/cobra"

	"github.com/staykit/stay/internal/loader"
	"github.com/staykit/stay/internal/tui"
	"github.com/staykit/stay/internal/tui/themes"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Dashboard opens the full-screen terminal dashboard: KPI tiles, the
platform and property charts and the monthly series, with live
filtering. Press r to reload after the source files change.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := dataSources()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), tui.Config{
				Cache: loader.NewCache(src),
				Theme: themes.Default,
			})
		},
	}
}
