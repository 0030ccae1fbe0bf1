package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staykit/stay/internal/model"
	"github.com/staykit/stay/internal/tui/themes"
)

func dashboardDataset() model.Dataset {
	day := func(d int) time.Time {
		return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
	}
	return model.NewDataset([]model.Booking{
		{
			Code:         "BK-1",
			PropertyName: "Sea View Loft",
			Platform:     "airbnb",
			Status:       model.StatusConfirmed,
			BookingDate:  day(1),
			CheckinDate:  day(5),
			CheckoutDate: day(8),
			Month:        model.MonthOf(day(5)),
			Nights:       3,
			Revenue:      300,
		},
		{
			Code:         "BK-2",
			PropertyName: "Old Town Flat",
			Platform:     "vrbo",
			Status:       model.StatusConfirmed,
			BookingDate:  day(2),
			CheckinDate:  day(10),
			CheckoutDate: day(12),
			Month:        model.MonthOf(day(10)),
			Nights:       2,
			Revenue:      200,
		},
	})
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := newModel(Config{Theme: themes.Default})
	updated, _ := m.Update(dataLoadedMsg{dataset: dashboardDataset()})
	loaded, ok := updated.(Model)
	require.True(t, ok)
	return loaded
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func rune1(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelLoadRecomputes(t *testing.T) {
	m := loadedModel(t)

	require.NotNil(t, m.summary)
	assert.Equal(t, 2, m.summary.NumberOfReservations)
	assert.Equal(t, 500.0, m.summary.TotalRevenue)
	assert.Len(t, m.revenueByPlatform, 2)
	assert.Contains(t, m.View(), "Occupancy Rate")
}

func TestModelLoadFailureShowsError(t *testing.T) {
	m := newModel(Config{Theme: themes.Default})
	updated, _ := m.Update(loadFailedMsg{err: errors.New("bookings.csv: no such file")})
	failed, ok := updated.(Model)
	require.True(t, ok)

	assert.Contains(t, failed.View(), "bookings.csv")
}

func TestModelSwitchesViews(t *testing.T) {
	m := loadedModel(t)

	m, _ = pressKey(t, m, rune1('2'))
	assert.Equal(t, ViewPlatforms, m.view)
	assert.Contains(t, m.View(), "Revenue by platform")

	m, _ = pressKey(t, m, rune1('3'))
	assert.Equal(t, ViewProperties, m.view)
	assert.Contains(t, m.View(), "Revenue by property")

	m, _ = pressKey(t, m, rune1('4'))
	assert.Equal(t, ViewMonthly, m.view)
	assert.Contains(t, m.View(), "Monthly revenue")

	m, _ = pressKey(t, m, rune1('1'))
	assert.Equal(t, ViewKPIs, m.view)
}

func TestModelCyclesMonthlySeries(t *testing.T) {
	m := loadedModel(t)

	// 'm' only cycles inside the monthly view.
	m, _ = pressKey(t, m, rune1('m'))
	assert.Equal(t, seriesRevenue, m.series)

	m, _ = pressKey(t, m, rune1('4'))
	m, _ = pressKey(t, m, rune1('m'))
	assert.Equal(t, seriesOccupancy, m.series)
	assert.Contains(t, m.View(), "Monthly occupancy")

	m, _ = pressKey(t, m, rune1('m'))
	assert.Contains(t, m.View(), "Monthly ADR")

	m, _ = pressKey(t, m, rune1('m'))
	assert.Equal(t, seriesRevenue, m.series)
}

func TestModelTabTogglesFilterFocus(t *testing.T) {
	m := loadedModel(t)
	require.False(t, m.filterPanel.Focused())

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.filterPanel.Focused())

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.filterPanel.Focused())
}

func TestModelFilterChangeRecomputes(t *testing.T) {
	m := loadedModel(t)

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	// Down to the first platform toggle and select it.
	m, _ = pressKey(t, m, rune1('j'))
	m, _ = pressKey(t, m, rune1('j'))
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeySpace})

	require.NotNil(t, m.summary)
	assert.Equal(t, 1, m.summary.NumberOfReservations)
	assert.Equal(t, 300.0, m.summary.TotalRevenue)
	assert.Equal(t, 1, m.filtered.Len())
	assert.Equal(t, 2, m.dataset.Len())
}

func TestModelQuits(t *testing.T) {
	m := loadedModel(t)

	_, cmd := pressKey(t, m, rune1('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
