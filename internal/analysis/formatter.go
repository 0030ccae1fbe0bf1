package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NoDataDisplay is the one sentinel shown wherever a KPI is undefined.
const NoDataDisplay = "N/A"

// Tile is one KPI ready for display: a label and a formatted value.
// Rating is valid only on the seven rating tiles, where it drives the
// x/5 progress bars in the dashboard.
type Tile struct {
	Label   string
	Display string
	Rating  Value
}

// Tiles flattens a summary into the fixed display order.
func Tiles(s *Summary) []Tile {
	tiles := []Tile{
		{Label: "Occupancy Rate (%)", Display: FormatPercent(s.OccupancyRate)},
		{Label: "Average Daily Rate (ADR)", Display: FormatMoneyValue(s.ADR)},
		{Label: "Revenue Per Available Room (RevPAR)", Display: FormatMoneyValue(s.RevPAR)},
		{Label: "Total Revenue", Display: FormatMoney(s.TotalRevenue)},
		{Label: "Average Lead Time (days)", Display: FormatNumber(s.LeadTime)},
		{Label: "Number of Reservations", Display: strconv.Itoa(s.NumberOfReservations)},
		{Label: "Average Length of Stay (nights)", Display: FormatNumber(s.AverageLengthOfStay)},
		{Label: "Cancellation Rate (%)", Display: FormatPercent(s.CancellationRate)},
	}

	ratings := []struct {
		label string
		value Value
	}{
		{"Average Rating", s.Rating},
		{"Value Rating", s.ValueRating},
		{"Communication Rating", s.CommunicationRating},
		{"Location Rating", s.LocationRating},
		{"Cleanliness Rating", s.CleanlinessRating},
		{"Accuracy Rating", s.AccuracyRating},
		{"Check-in Rating", s.CheckinRating},
	}
	for _, r := range ratings {
		tiles = append(tiles, Tile{
			Label:   r.label,
			Display: FormatNumber(r.value),
			Rating:  r.value,
		})
	}
	return tiles
}

// FormatMoney renders an amount as 1,234.56€.
func FormatMoney(v float64) string {
	return groupThousands(fmt.Sprintf("%.2f", v)) + "€"
}

// FormatMoneyValue renders a money Value, or the no-data sentinel.
func FormatMoneyValue(v Value) string {
	if !v.Valid {
		return NoDataDisplay
	}
	return FormatMoney(v.Val)
}

// FormatPercent renders a percentage Value, or the no-data sentinel.
func FormatPercent(v Value) string {
	if !v.Valid {
		return NoDataDisplay
	}
	return fmt.Sprintf("%.2f%%", v.Val)
}

// FormatNumber renders a plain numeric Value with two decimals, or the
// no-data sentinel.
func FormatNumber(v Value) string {
	if !v.Valid {
		return NoDataDisplay
	}
	return fmt.Sprintf("%.2f", v.Val)
}

// groupThousands inserts comma separators into the integer part of an
// already-formatted decimal string.
func groupThousands(s string) string {
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}

// CLIFormatter renders KPI reports for terminal display.
type CLIFormatter struct {
	styles *Styles
}

// NewCLIFormatter creates a CLI formatter with default styles.
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{styles: NewStyles()}
}

// FormatSummary renders the KPI tiles as an aligned two-column block.
func (f *CLIFormatter) FormatSummary(s *Summary) string {
	if s == nil || s.NumberOfReservations == 0 {
		return f.styles.NoData.Render("No data for this selection.")
	}

	tiles := Tiles(s)
	width := 0
	for _, t := range tiles {
		if len(t.Label) > width {
			width = len(t.Label)
		}
	}

	lines := make([]string, 0, len(tiles))
	for _, t := range tiles {
		label := f.styles.Label.Render(fmt.Sprintf("%-*s", width, t.Label))
		value := f.styles.Number.Render(t.Display)
		if t.Display == NoDataDisplay {
			value = f.styles.NoData.Render(t.Display)
		}
		lines = append(lines, fmt.Sprintf("%s  %s", label, value))
	}
	return strings.Join(lines, "\n")
}

// FormatPlatformTotals renders a per-platform aggregation as bars with
// the platform chart colors. unit formats each bar's value.
func (f *CLIFormatter) FormatPlatformTotals(title string, totals []PlatformTotal, unit func(float64) string) string {
	if len(totals) == 0 {
		return f.styles.NoData.Render("No data for this selection.")
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

	const barWidth = 30
	lines := []string{f.styles.Subtitle.Render(title)}
	for _, t := range totals {
		n := 0
		if maxVal > 0 {
			n = int(t.Value / maxVal * barWidth)
		}
		bar := lipgloss.NewStyle().
			Foreground(PlatformColor(t.Platform)).
			Render(strings.Repeat("█", n))
		lines = append(lines, fmt.Sprintf("%-*s %s %s",
			labelWidth, t.Platform, bar, unit(t.Value)))
	}
	return strings.Join(lines, "\n")
}

// FormatHeader renders the report title with the selection it covers.
func (f *CLIFormatter) FormatHeader(title, selection string) string {
	out := f.styles.Title.Render(title)
	if selection != "" {
		out += "\n" + f.styles.Subtle.Render(selection)
	}
	return out
}
