package analysis

import "github.com/charmbracelet/lipgloss"

// Platform colors follow the operator's house convention for the
// channel charts.
var platformColors = map[string]lipgloss.Color{
	"airbnb":      lipgloss.Color("#FF5A5F"),
	"booking.com": lipgloss.Color("#2D6CDF"),
	"vrbo":        lipgloss.Color("#8C5BD8"),
}

// fallbackColor is used for platforms outside the usual set.
var fallbackColor = lipgloss.Color("#4ECDC4")

// PlatformColor returns the chart color for a platform label.
func PlatformColor(platform string) lipgloss.Color {
	if c, ok := platformColors[platform]; ok {
		return c
	}
	return fallbackColor
}

// Styles contains the styling definitions for terminal report output.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Number   lipgloss.Style
	NoData   lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Subtle   lipgloss.Style
	Box      lipgloss.Style
}

// NewStyles creates a Styles instance with default styling.
func NewStyles() *Styles {
	subtle := lipgloss.Color("#666666")
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5A5F")).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(subtle).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1D3")),
		Number: lipgloss.NewStyle().
			Bold(true),
		NoData: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Subtle: lipgloss.NewStyle().
			Foreground(subtle),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1),
	}
}
