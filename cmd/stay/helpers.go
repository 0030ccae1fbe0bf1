package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/staykit/stay/internal/analysis"
	"github.com/staykit/stay/internal/common"
	"github.com/staykit/stay/internal/config"
	"github.com/staykit/stay/internal/loader"
)

const flagDateLayout = "2006-01-02"

// dataSources resolves the two source tables from flags or config.
func dataSources() (loader.Source, error) {
	bookings := viper.GetString("data.bookings")
	reviews := viper.GetString("data.reviews")
	if bookings == "" || reviews == "" {
		return loader.Source{}, common.NewUserError(
			"bookings and reviews tables are required; pass --bookings/--reviews or set data.bookings and data.reviews in the config",
			common.ErrMissingConfig)
	}
	return loader.Source{
		Bookings: config.ExpandPath(bookings),
		Reviews:  config.ExpandPath(reviews),
	}, nil
}

// addFilterFlags registers the selection flags shared by the reporting
// commands.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "keep check-ins on or after this date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "keep check-ins on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringSlice("platform", nil, "keep only these platforms")
	cmd.Flags().StringSlice("property", nil, "keep only these properties")
}

// filterFromFlags builds the selection from the shared flags. Platform
// values are lowercased to match the normalization applied at load time.
func filterFromFlags(cmd *cobra.Command) (analysis.Filter, error) {
	var f analysis.Filter

	from, _ := cmd.Flags().GetString("from")
	if from != "" {
		t, err := time.Parse(flagDateLayout, from)
		if err != nil {
			return f, common.NewUserError(fmt.Sprintf("invalid --from date %q, use YYYY-MM-DD", from), err)
		}
		f.From = t
	}

	to, _ := cmd.Flags().GetString("to")
	if to != "" {
		t, err := time.Parse(flagDateLayout, to)
		if err != nil {
			return f, common.NewUserError(fmt.Sprintf("invalid --to date %q, use YYYY-MM-DD", to), err)
		}
		f.To = t
	}

	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return f, common.NewUserError(
			fmt.Sprintf("--from %s is after --to %s", from, to),
			common.ErrInvalidConfig)
	}

	platforms, _ := cmd.Flags().GetStringSlice("platform")
	for _, p := range platforms {
		f.Platforms = append(f.Platforms, strings.ToLower(strings.TrimSpace(p)))
	}
	f.Properties, _ = cmd.Flags().GetStringSlice("property")

	return f, nil
}

// filterDescription renders the selection for report headers; an
// unconstrained selection renders empty.
func filterDescription(f analysis.Filter) string {
	var parts []string
	if !f.From.IsZero() {
		parts = append(parts, "from "+f.From.Format(flagDateLayout))
	}
	if !f.To.IsZero() {
		parts = append(parts, "to "+f.To.Format(flagDateLayout))
	}
	if len(f.Platforms) > 0 {
		parts = append(parts, "platforms: "+strings.Join(f.Platforms, ", "))
	}
	if len(f.Properties) > 0 {
		parts = append(parts, "properties: "+strings.Join(f.Properties, ", "))
	}
	return strings.Join(parts, " · ")
}
