package views

import (
	"fmt"
	"strings"

	"loadorder/internal/tui/keymap"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToggleActiveMsg is sent to flip a plugin's active flag.
type ToggleActiveMsg struct {
	Name string
}

// ReorderMsg is sent to move a plugin to a new position.
type ReorderMsg struct {
	FromIndex int
	ToIndex   int
}

// SaveMsg is sent to persist the current load order to disk.
type SaveMsg struct{}

// PluginRow is the subset of plugin state the view needs to render a line.
type PluginRow struct {
	Name     string
	Active   bool
	IsMaster bool
}

// LoadOrder is the load order reorder/activate view. selected indexes into
// the filtered view, not the underlying plugins slice; visibleIndices maps
// between the two.
type LoadOrder struct {
	gameSlug string
	plugins  []PluginRow
	selected int
	status   string
	keys     *keymap.KeyMap

	filter        textinput.Model
	filterFocused bool
}

// NewLoadOrder creates a new load order view for gameSlug, defaulting to
// vim keybindings until WithKeys overrides it.
func NewLoadOrder(gameSlug string, plugins []PluginRow) LoadOrder {
	filter := textinput.New()
	filter.Placeholder = "filter by name..."
	filter.CharLimit = 100
	filter.Width = 30

	return LoadOrder{gameSlug: gameSlug, plugins: plugins, filter: filter, keys: keymap.New("vim")}
}

// WithStatus returns a copy of m carrying a status line, e.g. an error.
func (m LoadOrder) WithStatus(status string) LoadOrder {
	m.status = status
	return m
}

// WithKeys returns a copy of m bound to the given keybinding mode.
func (m LoadOrder) WithKeys(keys *keymap.KeyMap) LoadOrder {
	m.keys = keys
	return m
}

// Selected returns the currently highlighted index into the filtered view.
func (m LoadOrder) Selected() int {
	return m.selected
}

// PluginCount returns the number of plugins in the view, unfiltered.
func (m LoadOrder) PluginCount() int {
	return len(m.plugins)
}

// visibleIndices returns the indices into m.plugins that match the current
// filter text, preserving load order.
func (m LoadOrder) visibleIndices() []int {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		indices := make([]int, len(m.plugins))
		for i := range m.plugins {
			indices[i] = i
		}
		return indices
	}

	var indices []int
	for i, p := range m.plugins {
		if strings.Contains(strings.ToLower(p.Name), query) {
			indices = append(indices, i)
		}
	}
	return indices
}

// SelectedPlugin returns the name of the highlighted plugin, or "" if empty.
func (m LoadOrder) SelectedPlugin() string {
	visible := m.visibleIndices()
	if len(visible) == 0 || m.selected >= len(visible) {
		return ""
	}
	return m.plugins[visible[m.selected]].Name
}

// Init implements tea.Model
func (m LoadOrder) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m LoadOrder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.filterFocused {
		return m.handleFilterKey(keyMsg)
	}
	return m.handleKeyPress(keyMsg)
}

func (m LoadOrder) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filterFocused = false
		m.filter.Blur()
		m.selected = 0
		return m, nil
	case tea.KeyEsc:
		m.filterFocused = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.selected = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.selected = 0
	return m, cmd
}

func (m LoadOrder) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleIndices()

	if m.keys.IsSearch(msg) {
		m.filterFocused = true
		m.filter.Focus()
		return m, nil
	}
	if msg.String() == "w" {
		return m, func() tea.Msg { return SaveMsg{} }
	}

	if len(visible) == 0 {
		return m, nil
	}

	switch {
	case m.keys.IsUp(msg):
		m.selected--
		if m.selected < 0 {
			m.selected = len(visible) - 1
		}
		return m, nil

	case m.keys.IsDown(msg):
		m.selected++
		if m.selected >= len(visible) {
			m.selected = 0
		}
		return m, nil

	case m.keys.IsConfirm(msg):
		name := m.SelectedPlugin()
		if name == "" {
			return m, nil
		}
		return m, func() tea.Msg { return ToggleActiveMsg{Name: name} }

	case m.keys.IsMoveUp(msg):
		if m.selected > 0 {
			from := visible[m.selected]
			to := visible[m.selected-1]
			return m, func() tea.Msg { return ReorderMsg{FromIndex: from, ToIndex: to} }
		}
		return m, nil

	case m.keys.IsMoveDown(msg):
		if m.selected < len(visible)-1 {
			from := visible[m.selected]
			to := visible[m.selected+1]
			return m, func() tea.Msg { return ReorderMsg{FromIndex: from, ToIndex: to} }
		}
		return m, nil

	case m.keys.IsHome(msg):
		m.selected = 0
		return m, nil

	case m.keys.IsEnd(msg):
		m.selected = len(visible) - 1
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m LoadOrder) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")).MarginBottom(1)
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	itemStyle := lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle := lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("205")).Bold(true)
	inactiveStyle := lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("241"))

	output := titleStyle.Render("Load Order") + "\n"
	output += infoStyle.Render(fmt.Sprintf("Game: %s", m.gameSlug)) + "\n\n"

	if m.filterFocused || m.filter.Value() != "" {
		output += "Filter: " + m.filter.View() + "\n\n"
	}

	statusLine := ""
	if m.status != "" {
		statusLine = "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) + "\n"
	}

	if len(m.plugins) == 0 {
		output += itemStyle.Render("No plugins found in the plugins directory.") + "\n"
		return output + statusLine
	}

	visible := m.visibleIndices()
	if len(visible) == 0 {
		output += itemStyle.Render("No plugins match the filter.") + "\n"
		return output + statusLine
	}

	output += infoStyle.Render(fmt.Sprintf("%d of %d plugins:", len(visible), len(m.plugins))) + "\n\n"

	for row, idx := range visible {
		p := m.plugins[idx]
		cursor := "  "
		style := itemStyle
		if row == m.selected {
			cursor = "▸ "
			style = selectedStyle
		} else if !p.Active {
			style = inactiveStyle
		}

		status := "[ ]"
		if p.Active {
			status = "[x]"
		}
		kind := " "
		if p.IsMaster {
			kind = "M"
		}

		line := fmt.Sprintf("%s%s %s %03d %s", cursor, status, kind, idx, p.Name)
		output += style.Render(line) + "\n"
	}

	output += statusLine

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	output += helpStyle.Render(m.keys.NavigationHelp() + "  space: toggle active  K/J: reorder  /: filter  w: save")

	return output
}
