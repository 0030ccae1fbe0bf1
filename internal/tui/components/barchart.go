package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/staykit/stay/internal/analysis"
	"github.com/staykit/stay/internal/tui/themes"
)

// BarChartModel renders horizontal bar and share charts for the
// per-platform and per-property aggregations.
type BarChartModel struct {
	theme themes.Theme
	width int
}

// NewBarChartModel creates a bar chart renderer.
func NewBarChartModel(theme themes.Theme) BarChartModel {
	return BarChartModel{theme: theme, width: 40}
}

// SetWidth sets the maximum bar width in cells.
func (m *BarChartModel) SetWidth(w int) {
	m.width = max(10, w)
}

// ViewTotals renders one bar per platform, scaled to the largest value.
func (m BarChartModel) ViewTotals(title string, totals []analysis.PlatformTotal, unit func(float64) string) string {
	if len(totals) == 0 {
		return m.theme.NoData.Render("No data for this selection.")
	}

	maxVal := 0.0
	labelWidth := 0
	for _, t := range totals {
		if t.Value > maxVal {
			maxVal = t.Value
		}
		if len(t.Platform) > labelWidth {
			labelWidth = len(t.Platform)
		}
	}

	lines := []string{m.theme.Subtitle.Render(title), ""}
	for _, t := range totals {
		lines = append(lines, m.renderBar(t.Platform, labelWidth, t.Value, maxVal, unit(t.Value)))
	}
	return strings.Join(lines, "\n")
}

// ViewShares renders a percentage-share chart; values are expected to
// sum to 100.
func (m BarChartModel) ViewShares(title string, shares []analysis.PlatformTotal) string {
	return m.ViewTotals(title, shares, func(v float64) string {
		return fmt.Sprintf("%.2f%%", v)
	})
}

// ViewStacked renders revenue per property as one bar per property,
// segmented by platform, annotated with the per-property total.
func (m BarChartModel) ViewStacked(title string, segments []analysis.PropertyPlatformRevenue, totals []analysis.PropertyTotal) string {
	if len(segments) == 0 {
		return m.theme.NoData.Render("No data for this selection.")
	}

	byProperty := make(map[string][]analysis.PropertyPlatformRevenue)
	for _, s := range segments {
		byProperty[s.Property] = append(byProperty[s.Property], s)
	}

	maxTotal := 0.0
	labelWidth := 0
	for _, t := range totals {
		if t.Revenue > maxTotal {
			maxTotal = t.Revenue
		}
		if len(t.Property) > labelWidth {
			labelWidth = len(t.Property)
		}
	}

	lines := []string{m.theme.Subtitle.Render(title), ""}
	// Totals arrive sorted by revenue descending; keep that order.
	for _, t := range totals {
		var bar strings.Builder
		for _, seg := range byProperty[t.Property] {
			n := m.scale(seg.Revenue, maxTotal)
			bar.WriteString(lipgloss.NewStyle().
				Foreground(analysis.PlatformColor(seg.Platform)).
				Render(strings.Repeat("█", n)))
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %s",
			labelWidth, t.Property, bar.String(),
			m.theme.Muted2.Render("Total: "+analysis.FormatMoney(t.Revenue))))
	}

	lines = append(lines, "", m.legend(segments))
	return strings.Join(lines, "\n")
}

func (m BarChartModel) renderBar(label string, labelWidth int, value, maxVal float64, display string) string {
	bar := lipgloss.NewStyle().
		Foreground(analysis.PlatformColor(label)).
		Render(strings.Repeat("█", m.scale(value, maxVal)))
	return fmt.Sprintf("%-*s %s %s", labelWidth, label, bar, display)
}

// scale maps a value to a bar length, keeping at least one cell for
// non-zero values so small slices stay visible.
func (m BarChartModel) scale(value, maxVal float64) int {
	if maxVal <= 0 || value <= 0 {
		return 0
	}
	n := int(value / maxVal * float64(m.width))
	if n < 1 {
		n = 1
	}
	return n
}

func (m BarChartModel) legend(segments []analysis.PropertyPlatformRevenue) string {
	seen := make(map[string]bool)
	var parts []string
	for _, s := range segments {
		if !seen[s.Platform] {
			seen[s.Platform] = true
			swatch := lipgloss.NewStyle().
				Foreground(analysis.PlatformColor(s.Platform)).
				Render("██")
			parts = append(parts, swatch+" "+s.Platform)
		}
	}
	return strings.Join(parts, "   ")
}
