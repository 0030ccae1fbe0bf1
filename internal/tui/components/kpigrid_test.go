package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staykit/stay/internal/analysis"
	"github.com/staykit/stay/internal/model"
	"github.com/staykit/stay/internal/tui/themes"
)

func TestKPIGridNoData(t *testing.T) {
	grid := NewKPIGridModel(themes.Default)

	assert.Contains(t, grid.View(nil), "No data")
	assert.Contains(t, grid.View(&analysis.Summary{}), "No data")
}

func TestKPIGridRendersTiles(t *testing.T) {
	grid := NewKPIGridModel(themes.Default)
	s := analysis.Summarize(panelDataset())

	out := grid.View(s)
	assert.Contains(t, out, "Occupancy Rate (%)")
	assert.Contains(t, out, "Total Revenue")
	assert.Contains(t, out, "500.00€")
	assert.Contains(t, out, "Check-in Rating")
	// No reviews in the fixture, so every rating shows the sentinel and
	// no rating bar is drawn.
	assert.Contains(t, out, analysis.NoDataDisplay)
	assert.NotContains(t, out, "█")
	assert.NotContains(t, out, "NaN")
}

func TestKPIGridDrawsRatingBars(t *testing.T) {
	grid := NewKPIGridModel(themes.Default)

	ds := panelDataset()
	review := model.Review{
		Rating:              4.5,
		ValueRating:         4.0,
		CommunicationRating: 5.0,
		LocationRating:      4.8,
		CleanlinessRating:   4.2,
		AccuracyRating:      4.6,
		CheckinRating:       4.9,
	}
	bookings := make([]model.Booking, ds.Len())
	copy(bookings, ds.Bookings)
	bookings[0].Review = &review

	out := grid.View(analysis.Summarize(model.NewDataset(bookings)))
	assert.Contains(t, out, "4.50")
	assert.Contains(t, out, "█")
}
