package components

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/staykit/stay/internal/analysis"
	"github.com/staykit/stay/internal/tui/themes"
)

// MonthlyViewModel renders a monthly series as a month × property
// table, one row per month in chronological order.
type MonthlyViewModel struct {
	theme themes.Theme
}

// NewMonthlyViewModel creates a monthly series renderer.
func NewMonthlyViewModel(theme themes.Theme) MonthlyViewModel {
	return MonthlyViewModel{theme: theme}
}

// View renders one series. unit formats defined point values; undefined
// points and month/property combinations without data render as a dash.
func (m MonthlyViewModel) View(title string, points []analysis.SeriesPoint, unit func(float64) string) string {
	if len(points) == 0 {
		return m.theme.NoData.Render("No data for this selection.")
	}

	monthSet := make(map[time.Time]bool)
	propSet := make(map[string]bool)
	cells := make(map[string]string)
	for _, p := range points {
		monthSet[p.Month] = true
		propSet[p.Property] = true
		if v, ok := p.Value.Float(); ok {
			cells[cellKey(p.Month, p.Property)] = unit(v)
		} else {
			cells[cellKey(p.Month, p.Property)] = analysis.NoDataDisplay
		}
	}

	months := make([]time.Time, 0, len(monthSet))
	for t := range monthSet {
		months = append(months, t)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	properties := make([]string, 0, len(propSet))
	for p := range propSet {
		properties = append(properties, p)
	}
	sort.Strings(properties)

	const colWidth = 14
	header := fmt.Sprintf("%-14s", "Month")
	for _, p := range properties {
		header += fmt.Sprintf("%*s", colWidth, truncate(p, colWidth-1))
	}

	lines := []string{
		m.theme.Subtitle.Render(title),
		"",
		m.theme.Bold.Render(header),
	}
	for _, month := range months {
		row := fmt.Sprintf("%-14s", month.Format("January 2006"))
		for _, p := range properties {
			cell, ok := cells[cellKey(month, p)]
			if !ok {
				cell = "–"
			}
			row += fmt.Sprintf("%*s", colWidth, cell)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func cellKey(month time.Time, property string) string {
	return month.Format("2006-01") + "|" + property
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
