package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadekit/marblestorm/internal/core"
	"github.com/arcadekit/marblestorm/internal/registry"
	"github.com/arcadekit/marblestorm/internal/storage"
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the mode picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// IsQuitting returns true if the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Selected returns the chosen mode, or nil if nothing was selected yet.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// WantsScoreboard returns true if the user opened the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// ClearSelection resets the selection state so the menu can be reused.
func (m *MenuModel) ClearSelection() {
	m.selected = nil
	m.openScoreboard = false
}

// Config returns the runtime config, updated by any resize events.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult describes how a standalone menu run ended.
type MenuResult struct {
	Config          core.RuntimeConfig
	GameID          string
	Quit            bool
	WantsScoreboard bool
}

// RunMenu runs the menu standalone and reports what the user chose.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config:          m.Config(),
		Quit:            m.IsQuitting(),
		WantsScoreboard: m.WantsScoreboard(),
	}
	if selected := m.Selected(); selected != nil {
		result.GameID = selected.GameID
	}
	return result, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213"))

	menuCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	menuDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("MARBLE STORM"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if m.store != nil {
			if hs, err := m.store.HighScore(item.GameID); err == nil && hs > 0 {
				line = fmt.Sprintf("%s  (best %d)", line, hs)
			}
		}
		if i == m.cursor {
			line = menuCursorStyle.Render("▸" + line[1:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.store != nil {
		if balance, err := m.store.Credits(); err == nil {
			b.WriteString("\n")
			b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("wallet: $%d", balance)), m.width))
		}
	}

	b.WriteString("\n\n")
	help := "↑/↓ move · enter play · tab scores · q quit"
	b.WriteString(centerText(menuDimStyle.Render(help), m.width))

	return b.String()
}

// centerText pads a line so it appears horizontally centered.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	pad := (width - visible) / 2
	return strings.Repeat(" ", pad) + text
}
