// Package components contains the reusable pieces of the dashboard TUI.
package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/staykit/stay/internal/analysis"
	"github.com/staykit/stay/internal/model"
	"github.com/staykit/stay/internal/tui/themes"
)

const dateLayout = "2006-01-02"

// filterRow identifies what the cursor is on inside the panel.
type filterRow int

const (
	rowDateFrom filterRow = iota
	rowDateTo
	rowFirstOption // platforms, then properties
)

type toggle struct {
	label    string
	selected bool
}

// FilterPanelModel is the sidebar holding the check-in date window and
// the platform/property multi-selects. Toggling nothing means no
// filtering: an empty selection keeps every row.
type FilterPanelModel struct {
	theme      themes.Theme
	dateErr    string
	from       string
	to         string
	platforms  []toggle
	properties []toggle
	cursor     int
	width      int
	focused    bool
	editing    bool
}

// NewFilterPanelModel builds the panel from the dataset's distinct
// platform and property values, with the date window preset to the
// dataset's own check-in span.
func NewFilterPanelModel(theme themes.Theme, ds model.Dataset) FilterPanelModel {
	m := FilterPanelModel{theme: theme}
	for _, p := range ds.Platforms() {
		m.platforms = append(m.platforms, toggle{label: p})
	}
	for _, p := range ds.Properties() {
		m.properties = append(m.properties, toggle{label: p})
	}
	if start, end, ok := ds.Span(); ok {
		m.from = start.Format(dateLayout)
		m.to = end.Format(dateLayout)
	}
	return m
}

// Focus gives the panel keyboard focus.
func (m *FilterPanelModel) Focus() { m.focused = true }

// Blur removes keyboard focus and leaves edit mode.
func (m *FilterPanelModel) Blur() {
	m.focused = false
	m.editing = false
}

// Focused reports whether the panel has keyboard focus.
func (m FilterPanelModel) Focused() bool { return m.focused }

// SetWidth sets the rendered width.
func (m *FilterPanelModel) SetWidth(w int) { m.width = w }

func (m FilterPanelModel) rowCount() int {
	return int(rowFirstOption) + len(m.platforms) + len(m.properties)
}

// Update handles key messages. The second return value reports whether
// the effective filter changed, so the dashboard knows to recompute.
func (m FilterPanelModel) Update(msg tea.Msg) (FilterPanelModel, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, false
	}

	if m.editing {
		return m.updateDateEdit(key)
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case " ", "enter":
		return m.activate()
	case "x":
		return m.clearSelections()
	}
	return m, false
}

func (m FilterPanelModel) activate() (FilterPanelModel, bool) {
	switch filterRow(m.cursor) {
	case rowDateFrom, rowDateTo:
		m.editing = true
		m.dateErr = ""
		return m, false
	default:
		idx := m.cursor - int(rowFirstOption)
		if idx < len(m.platforms) {
			m.platforms[idx].selected = !m.platforms[idx].selected
		} else if idx-len(m.platforms) < len(m.properties) {
			i := idx - len(m.platforms)
			m.properties[i].selected = !m.properties[i].selected
		}
		return m, true
	}
}

func (m FilterPanelModel) clearSelections() (FilterPanelModel, bool) {
	changed := false
	for i := range m.platforms {
		if m.platforms[i].selected {
			m.platforms[i].selected = false
			changed = true
		}
	}
	for i := range m.properties {
		if m.properties[i].selected {
			m.properties[i].selected = false
			changed = true
		}
	}
	return m, changed
}

// updateDateEdit handles typing inside a date field. Enter commits the
// value; an unparsable date keeps edit mode with an inline error so a
// malformed date can never reach the filter.
func (m FilterPanelModel) updateDateEdit(key tea.KeyMsg) (FilterPanelModel, bool) {
	field := &m.from
	if filterRow(m.cursor) == rowDateTo {
		field = &m.to
	}

	switch key.String() {
	case "enter":
		if *field != "" {
			if _, err := time.Parse(dateLayout, *field); err != nil {
				m.dateErr = "use YYYY-MM-DD"
				return m, false
			}
		}
		m.editing = false
		m.dateErr = ""
		return m, true
	case "esc":
		m.editing = false
		m.dateErr = ""
		return m, false
	case "backspace":
		if len(*field) > 0 {
			*field = (*field)[:len(*field)-1]
		}
		return m, false
	}

	if len(key.Runes) == 1 {
		r := key.Runes[0]
		if (r >= '0' && r <= '9') || r == '-' {
			if len(*field) < len(dateLayout) {
				*field += string(r)
			}
		}
	}
	return m, false
}

// Filter converts the panel state into the analysis filter.
func (m FilterPanelModel) Filter() analysis.Filter {
	var f analysis.Filter
	if t, err := time.Parse(dateLayout, m.from); err == nil {
		f.From = t
	}
	if t, err := time.Parse(dateLayout, m.to); err == nil {
		f.To = t
	}
	for _, p := range m.platforms {
		if p.selected {
			f.Platforms = append(f.Platforms, p.label)
		}
	}
	for _, p := range m.properties {
		if p.selected {
			f.Properties = append(f.Properties, p.label)
		}
	}
	return f
}

// View renders the panel.
func (m FilterPanelModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render("Filters"))
	b.WriteString("\n\n")

	b.WriteString(m.renderDateRow("From", m.from, rowDateFrom))
	b.WriteString("\n")
	b.WriteString(m.renderDateRow("To", m.to, rowDateTo))
	b.WriteString("\n")
	if m.dateErr != "" {
		b.WriteString(m.theme.StatusError.Render(m.dateErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Platform"))
	b.WriteString("\n")
	for i, p := range m.platforms {
		b.WriteString(m.renderToggle(p, int(rowFirstOption)+i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Property"))
	b.WriteString("\n")
	for i, p := range m.properties {
		b.WriteString(m.renderToggle(p, int(rowFirstOption)+len(m.platforms)+i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Muted2.Render("space toggle · x clear · enter edit"))

	box := m.theme.BorderedBox
	if m.focused {
		box = m.theme.FocusedBox
	}
	if m.width > 0 {
		box = box.Width(m.width)
	}
	return box.Render(b.String())
}

func (m FilterPanelModel) renderDateRow(label, value string, row filterRow) string {
	cursor := " "
	if m.focused && m.cursor == int(row) {
		cursor = ">"
	}
	display := value
	if m.editing && m.cursor == int(row) {
		display = value + "▏"
	}
	line := fmt.Sprintf("%s %s: %s", cursor, label, display)
	if m.focused && m.cursor == int(row) {
		return m.theme.Highlighted.Render(line)
	}
	return m.theme.Normal.Render(line)
}

func (m FilterPanelModel) renderToggle(t toggle, row int) string {
	cursor := " "
	if m.focused && m.cursor == row {
		cursor = ">"
	}
	mark := "[ ]"
	if t.selected {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s %s", cursor, mark, t.label)
	switch {
	case m.focused && m.cursor == row:
		return m.theme.Highlighted.Render(line)
	case t.selected:
		return lipgloss.NewStyle().Foreground(m.theme.Primary).Render(line)
	default:
		return m.theme.Normal.Render(line)
	}
}
