package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/staykit/stay/internal/analysis"
	"github.com/staykit/stay/internal/tui/themes"
)

// KPIGridModel renders the KPI tiles. Rating tiles additionally carry a
// progress bar scaled to the 5-point rating ceiling, mirroring the
// metric/progress pairs of the original dashboard.
type KPIGridModel struct {
	theme themes.Theme
	bar   progress.Model
	width int
}

// NewKPIGridModel creates a KPI grid.
func NewKPIGridModel(theme themes.Theme) KPIGridModel {
	bar := progress.New(
		progress.WithSolidFill(string(theme.Primary)),
		progress.WithoutPercentage(),
	)
	bar.Width = 20
	return KPIGridModel{theme: theme, bar: bar}
}

// SetWidth sets the rendered width.
func (m *KPIGridModel) SetWidth(w int) {
	m.width = w
	m.bar.Width = min(24, max(10, w/4))
}

// View renders the tiles for the given summary. A nil summary or an
// empty selection renders the no-data message instead of zeroed tiles.
func (m KPIGridModel) View(s *analysis.Summary) string {
	if s == nil || s.NumberOfReservations == 0 {
		return m.theme.NoData.Render("No data for this selection.")
	}

	tiles := analysis.Tiles(s)
	labelWidth := 0
	for _, t := range tiles {
		if len(t.Label) > labelWidth {
			labelWidth = len(t.Label)
		}
	}

	valueStyle := m.theme.Bold
	lines := make([]string, 0, len(tiles))
	for _, t := range tiles {
		label := m.theme.Subtitle.Render(fmt.Sprintf("%-*s", labelWidth, t.Label))

		value := valueStyle.Render(fmt.Sprintf("%10s", t.Display))
		if t.Display == analysis.NoDataDisplay {
			value = m.theme.NoData.Render(fmt.Sprintf("%10s", t.Display))
		}

		line := lipgloss.JoinHorizontal(lipgloss.Top, label, "  ", value)
		if rating, ok := t.Rating.Float(); ok {
			bar := m.bar.ViewAs(rating / 5.0)
			line = lipgloss.JoinHorizontal(lipgloss.Top, line, "  ", bar)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
