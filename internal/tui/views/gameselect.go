package views

import (
	"fmt"

	"loadorder/internal/domain"
	"loadorder/internal/tui/keymap"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GameSelectedMsg is sent when the user confirms a game.
type GameSelectedMsg struct {
	Slug string
}

// GameSelect is the game roster view.
type GameSelect struct {
	games    []*domain.GameSettings
	selected int
	keys     *keymap.KeyMap
}

// NewGameSelect creates a new game selection view, defaulting to vim
// keybindings until WithKeys overrides it.
func NewGameSelect(games []*domain.GameSettings) GameSelect {
	return GameSelect{games: games, keys: keymap.New("vim")}
}

// WithKeys returns a copy of m bound to the given keybinding mode.
func (m GameSelect) WithKeys(keys *keymap.KeyMap) GameSelect {
	m.keys = keys
	return m
}

// Selected returns the currently highlighted index.
func (m GameSelect) Selected() int {
	return m.selected
}

// Init implements tea.Model
func (m GameSelect) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m GameSelect) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.games) == 0 {
		return m, nil
	}

	switch {
	case m.keys.IsUp(keyMsg):
		m.selected--
		if m.selected < 0 {
			m.selected = len(m.games) - 1
		}
	case m.keys.IsDown(keyMsg):
		m.selected++
		if m.selected >= len(m.games) {
			m.selected = 0
		}
	case m.keys.IsConfirm(keyMsg):
		slug := m.games[m.selected].Slug
		return m, func() tea.Msg { return GameSelectedMsg{Slug: slug} }
	}

	return m, nil
}

// View implements tea.Model
func (m GameSelect) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	selectedStyle := lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("205")).Bold(true)
	itemStyle := lipgloss.NewStyle().PaddingLeft(2)
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	output := titleStyle.Render("Select a game") + "\n\n"

	if len(m.games) == 0 {
		output += itemStyle.Render("No games configured.") + "\n\n"
		output += infoStyle.Render("Add one with: loadorder games add <slug> --game <id> --plugins-dir <path>") + "\n"
		return output
	}

	for i, g := range m.games {
		cursor := "  "
		style := itemStyle
		if i == m.selected {
			cursor = "▸ "
			style = selectedStyle
		}
		line := fmt.Sprintf("%s%s (%s)", cursor, g.Slug, g.ID)
		output += style.Render(line) + "\n"
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	output += helpStyle.Render(m.keys.NavigationHelp() + "  enter: select")

	return output
}
