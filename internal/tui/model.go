// Package tui implements the interactive dashboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/staykit/stay/internal/analysis"
	"github.com/staykit/stay/internal/loader"
	"github.com/staykit/stay/internal/model"
	"github.com/staykit/stay/internal/tui/components"
	"github.com/staykit/stay/internal/tui/themes"
)

// view identifies the content pane.
type view int

const (
	ViewKPIs view = iota
	ViewPlatforms
	ViewProperties
	ViewMonthly
)

// monthlySeries identifies which monthly series the monthly view shows.
type monthlySeries int

const (
	seriesRevenue monthlySeries = iota
	seriesOccupancy
	seriesADR
	seriesCount
)

// Model is the dashboard. The sidebar holds the filters; the content
// pane shows one of the four views. Every filter change recomputes the
// derived numbers from the cached dataset.
type Model struct {
	cache *loader.Cache
	theme themes.Theme
	keys  KeyMap

	filterPanel components.FilterPanelModel
	kpiGrid     components.KPIGridModel
	barChart    components.BarChartModel
	monthly     components.MonthlyViewModel

	dataset  model.Dataset
	filtered model.Dataset
	summary  *analysis.Summary

	revenueByPlatform []analysis.PlatformTotal
	revenueShares     []analysis.PlatformTotal
	nightsShares      []analysis.PlatformTotal
	propertySegments  []analysis.PropertyPlatformRevenue
	propertyTotals    []analysis.PropertyTotal
	monthlyRevenue    []analysis.SeriesPoint
	monthlyOccupancy  []analysis.SeriesPoint
	monthlyADR        []analysis.SeriesPoint

	view    view
	series  monthlySeries
	loading bool
	err     error
	width   int
	height  int
}

func newModel(cfg Config) Model {
	theme := cfg.Theme
	return Model{
		cache:    cfg.Cache,
		theme:    theme,
		keys:     DefaultKeyMap(),
		kpiGrid:  components.NewKPIGridModel(theme),
		barChart: components.NewBarChartModel(theme),
		monthly:  components.NewMonthlyViewModel(theme),
		loading:  true,
	}
}

// Init kicks off the initial data load.
func (m Model) Init() tea.Cmd {
	return loadDataset(m.cache)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filterPanel.SetWidth(sidebarWidth)
		m.kpiGrid.SetWidth(m.contentWidth())
		m.barChart.SetWidth(max(10, m.contentWidth()-30))
		return m, nil

	case dataLoadedMsg:
		m.loading = false
		m.err = nil
		m.dataset = msg.dataset
		focused := m.filterPanel.Focused()
		m.filterPanel = components.NewFilterPanelModel(m.theme, m.dataset)
		m.filterPanel.SetWidth(sidebarWidth)
		if focused {
			m.filterPanel.Focus()
		}
		m.recompute()
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit and pane switching work everywhere, even while the sidebar
	// is capturing input.
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextPane):
		if m.filterPanel.Focused() {
			m.filterPanel.Blur()
		} else {
			m.filterPanel.Focus()
		}
		return m, nil
	}

	if m.filterPanel.Focused() {
		var changed bool
		m.filterPanel, changed = m.filterPanel.Update(msg)
		if changed {
			m.recompute()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ViewKPIs):
		m.view = ViewKPIs
	case key.Matches(msg, m.keys.ViewPlat):
		m.view = ViewPlatforms
	case key.Matches(msg, m.keys.ViewProp):
		m.view = ViewProperties
	case key.Matches(msg, m.keys.ViewMonth):
		m.view = ViewMonthly
	case key.Matches(msg, m.keys.CycleSeries):
		if m.view == ViewMonthly {
			m.series = (m.series + 1) % seriesCount
		}
	case key.Matches(msg, m.keys.Reload):
		m.cache.Invalidate()
		m.loading = true
		return m, loadDataset(m.cache)
	}
	return m, nil
}

// recompute derives every displayed number from the current filter.
func (m *Model) recompute() {
	m.filtered = analysis.Apply(m.dataset, m.filterPanel.Filter())
	m.summary = analysis.Summarize(m.filtered)
	m.revenueByPlatform = analysis.RevenueByPlatform(m.filtered)
	m.revenueShares = analysis.RevenueShareByPlatform(m.filtered)
	m.nightsShares = analysis.NightsShareByPlatform(m.filtered)
	m.propertySegments, m.propertyTotals = analysis.RevenueByPropertyPlatform(m.filtered)
	m.monthlyRevenue = analysis.MonthlyRevenueSeries(m.filtered)
	m.monthlyOccupancy = analysis.MonthlyOccupancySeries(m.filtered)
	m.monthlyADR = analysis.MonthlyADRSeries(m.filtered)
}

const sidebarWidth = 30

func (m Model) contentWidth() int {
	w := m.width - sidebarWidth - 6
	if w < 20 {
		w = 20
	}
	return w
}

// View renders the dashboard.
func (m Model) View() string {
	if m.loading {
		return m.theme.Subtitle.Render("Loading data...")
	}
	if m.err != nil {
		return m.theme.StatusError.Render("Error: " + m.err.Error())
	}

	sidebar := m.filterPanel.View()
	content := m.theme.Box.Render(m.contentView())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Rental Dashboard"),
		body,
		"",
		m.statusBar(),
	)
}

func (m Model) contentView() string {
	switch m.view {
	case ViewPlatforms:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.barChart.ViewTotals("Revenue by platform", m.revenueByPlatform, analysis.FormatMoney),
			"",
			m.barChart.ViewShares("Revenue share", m.revenueShares),
			"",
			m.barChart.ViewShares("Nights share", m.nightsShares),
		)
	case ViewProperties:
		return m.barChart.ViewStacked("Revenue by property", m.propertySegments, m.propertyTotals)
	case ViewMonthly:
		switch m.series {
		case seriesOccupancy:
			return m.monthly.View("Monthly occupancy", m.monthlyOccupancy, func(v float64) string {
				return fmt.Sprintf("%.0f%%", v*100)
			})
		case seriesADR:
			return m.monthly.View("Monthly ADR", m.monthlyADR, analysis.FormatMoney)
		default:
			return m.monthly.View("Monthly revenue", m.monthlyRevenue, analysis.FormatMoney)
		}
	default:
		return m.kpiGrid.View(m.summary)
	}
}

func (m Model) statusBar() string {
	parts := []string{
		fmt.Sprintf("%d of %d reservations", m.filtered.Len(), m.dataset.Len()),
		"1 KPIs",
		"2 platforms",
		"3 properties",
		"4 monthly",
	}
	if m.view == ViewMonthly {
		parts = append(parts, "m next series")
	}
	parts = append(parts, "tab filters", "r reload", "q quit")
	return m.theme.Muted2.Render(strings.Join(parts, " · "))
}
