package tui

import (
	"fmt"

	"loadorder/internal/core"
	"loadorder/internal/loadorder"
	"loadorder/internal/tui/keymap"
	"loadorder/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewType represents different screens in the TUI
type ViewType int

const (
	ViewGameSelect ViewType = iota
	ViewLoadOrder
	ViewSettings
)

// NavigateMsg is sent to change views
type NavigateMsg struct {
	View ViewType
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// App is the main TUI application model
type App struct {
	service     *core.Service
	currentView ViewType
	width       int
	height      int
	err         error
	keys        *keymap.KeyMap

	activeGame string
	set        *loadorder.OrderedSet

	gameSelect views.GameSelect
	loadOrder  views.LoadOrder
}

// NewApp creates a new TUI application. Keybindings are driven by
// service's configured mode ("vim" or "default"), falling back to vim
// when service is nil.
func NewApp(service *core.Service) App {
	mode := ""
	if service != nil {
		mode = service.Keybindings()
	}
	keys := keymap.New(mode)

	a := App{
		service:     service,
		currentView: ViewGameSelect,
		width:       80,
		height:      24,
		keys:        keys,
	}
	if service != nil {
		a.gameSelect = views.NewGameSelect(service.ListGames()).WithKeys(keys)
	}
	return a
}

// CurrentView returns the current view type
func (a App) CurrentView() ViewType {
	return a.currentView
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case NavigateMsg:
		a.currentView = msg.View
		return a, nil

	case ErrorMsg:
		a.err = msg.Err
		return a, nil

	case views.GameSelectedMsg:
		return a.openGame(msg.Slug)

	case views.ToggleActiveMsg:
		return a.toggleActive(msg.Name)

	case views.ReorderMsg:
		return a.reorder(msg.FromIndex, msg.ToIndex)

	case views.SaveMsg:
		return a.save()
	}

	return a.updateCurrentView(msg)
}

func (a App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.IsQuit(msg):
		return a, tea.Quit

	case a.keys.IsHelp(msg):
		return a, nil

	case a.keys.IsCancel(msg):
		if a.currentView != ViewGameSelect {
			a.currentView = ViewGameSelect
			return a, nil
		}
	}

	return a.updateCurrentView(msg)
}

func (a App) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case ViewGameSelect:
		model, c := a.gameSelect.Update(msg)
		a.gameSelect = model.(views.GameSelect)
		cmd = c
	case ViewLoadOrder:
		model, c := a.loadOrder.Update(msg)
		a.loadOrder = model.(views.LoadOrder)
		cmd = c
	}

	return a, cmd
}

func (a App) openGame(slug string) (tea.Model, tea.Cmd) {
	set, err := a.service.OpenOrderedSet(slug)
	if err != nil {
		a.err = err
		return a, nil
	}
	a.err = nil
	a.activeGame = slug
	a.set = set
	a.loadOrder = views.NewLoadOrder(slug, rowsFor(set)).WithKeys(a.keys)
	a.currentView = ViewLoadOrder
	return a, nil
}

func (a App) toggleActive(name string) (tea.Model, tea.Cmd) {
	if a.set == nil {
		return a, nil
	}
	var err error
	if a.set.IsActive(name) {
		err = a.set.Deactivate(name)
	} else {
		err = a.set.Activate(name)
	}
	if err != nil {
		a.loadOrder = a.loadOrder.WithStatus(err.Error())
		return a, nil
	}
	a.loadOrder = views.NewLoadOrder(a.activeGame, rowsFor(a.set)).WithKeys(a.keys)
	return a, nil
}

func (a App) reorder(from, to int) (tea.Model, tea.Cmd) {
	if a.set == nil {
		return a, nil
	}
	name, err := a.set.PluginAt(from)
	if err != nil {
		a.loadOrder = a.loadOrder.WithStatus(err.Error())
		return a, nil
	}
	if err := a.set.SetPosition(name, to); err != nil {
		a.loadOrder = a.loadOrder.WithStatus(err.Error())
		return a, nil
	}
	a.loadOrder = views.NewLoadOrder(a.activeGame, rowsFor(a.set)).WithKeys(a.keys)
	return a, nil
}

func (a App) save() (tea.Model, tea.Cmd) {
	if a.set == nil {
		return a, nil
	}
	if err := a.set.Save(); err != nil {
		a.loadOrder = a.loadOrder.WithStatus(err.Error())
		return a, nil
	}
	a.loadOrder = a.loadOrder.WithStatus("saved")
	return a, nil
}

func rowsFor(set *loadorder.OrderedSet) []views.PluginRow {
	plugins := set.Plugins()
	rows := make([]views.PluginRow, len(plugins))
	for i, p := range plugins {
		rows[i] = views.PluginRow{Name: p.Name, Active: p.Active, IsMaster: p.IsMaster}
	}
	return rows
}

// View implements tea.Model
func (a App) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	header := titleStyle.Render("loadorder")

	tabs := []string{"[1]Games", "[2]Load Order"}
	tabBar := ""
	for i, tab := range tabs {
		if ViewType(i) == a.currentView || (a.currentView == ViewSettings && i == 1) {
			tabBar += activeTabStyle.Render(tab) + "  "
		} else {
			tabBar += tabStyle.Render(tab) + "  "
		}
	}

	content := a.renderCurrentView()

	if a.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		content = errStyle.Render(fmt.Sprintf("Error: %v", a.err)) + "\n\n" + content
	}

	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	footer := footerStyle.Render("q: quit  esc: back")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, tabBar, content, footer)
}

func (a App) renderCurrentView() string {
	switch a.currentView {
	case ViewGameSelect:
		return a.gameSelect.View()
	case ViewLoadOrder:
		return a.loadOrder.View()
	case ViewSettings:
		return "Settings\n\nConfiguration options will appear here."
	default:
		return "Unknown view"
	}
}

// Run starts the TUI application
func Run(service *core.Service) error {
	app := NewApp(service)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
