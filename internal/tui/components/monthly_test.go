package components

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staykit/stay/internal/analysis"
	"github.com/staykit/stay/internal/tui/themes"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyViewTable(t *testing.T) {
	view := NewMonthlyViewModel(themes.Default)

	points := []analysis.SeriesPoint{
		{Month: month(2024, time.February), Property: "A", Value: analysis.NewValue(680)},
		{Month: month(2024, time.January), Property: "A", Value: analysis.NewValue(660)},
		{Month: month(2024, time.January), Property: "B", Value: analysis.NewValue(120)},
	}

	out := view.View("Monthly revenue", points, analysis.FormatMoney)
	assert.Contains(t, out, "Monthly revenue")
	assert.Contains(t, out, "660.00€")
	assert.Contains(t, out, "680.00€")

	// Months render chronologically regardless of input order.
	assert.Less(t,
		strings.Index(out, "January 2024"),
		strings.Index(out, "February 2024"))

	// B has no February point.
	assert.Contains(t, out, "–")
}

func TestMonthlyViewUndefinedPoint(t *testing.T) {
	view := NewMonthlyViewModel(themes.Default)

	points := []analysis.SeriesPoint{
		{Month: month(2024, time.January), Property: "A", Value: analysis.NoData},
	}

	out := view.View("Monthly ADR", points, analysis.FormatMoney)
	assert.Contains(t, out, analysis.NoDataDisplay)
	assert.NotContains(t, out, "NaN")
}

func TestMonthlyViewEmpty(t *testing.T) {
	view := NewMonthlyViewModel(themes.Default)
	assert.Contains(t, view.View("Monthly revenue", nil, analysis.FormatMoney), "No data")
}

func TestMonthlyViewTruncatesLongProperty(t *testing.T) {
	view := NewMonthlyViewModel(themes.Default)

	long := "A Very Long Property Name Indeed"
	points := []analysis.SeriesPoint{
		{Month: month(2024, time.January), Property: long, Value: analysis.NewValue(0.5)},
	}

	out := view.View("Monthly occupancy", points, func(v float64) string {
		return fmt.Sprintf("%.0f%%", v*100)
	})
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "50%")
}
