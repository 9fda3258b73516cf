package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/registry"
	"github.com/vovakirdan/gremm-arcade/internal/storage"
)

// blurbs are the one-line descriptions shown under the selected game.
var blurbs = map[string]string{
	"tunnel":    "Every traveler moves at once. Mirrors split them, walls bounce them.",
	"tiger":     "Three tigers hunt fifteen lambs. Two players, one keyboard.",
	"fishing":   "Keep the hook where the fish bites.",
	"footsteps": "Bid energy in secret to push the token home. Two players.",
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID  string
	Title   string
	Players int
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	store       *storage.Store // may be nil
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem
	openResults bool
}

// NewMenuModel creates a menu over every registered game.
// The store, when set, supplies the per-game session line.
func NewMenuModel(cfg core.RuntimeConfig, store *storage.Store) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Players: g.Players})
	}

	return MenuModel{
		items:     items,
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}

	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}

	case MenuActionSelect:
		if n > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}

	case MenuActionResults:
		m.openResults = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("  G R E M M   A R C A D E  ", w)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		label := item.Title
		if item.Players > 1 {
			label += fmt.Sprintf(" (%dP)", item.Players)
		}
		if i == m.cursor {
			b.WriteString(menuActiveStyle.Render(centerText("> "+label+" <", w)))
		} else {
			b.WriteString(centerText(label, w))
		}
		b.WriteString("\n")
	}

	if item := m.current(); item != nil {
		b.WriteString("\n")
		b.WriteString(menuDimStyle.Render(centerText(blurbs[item.GameID], w)))
		if line := m.sessionLine(item.GameID); line != "" {
			b.WriteString("\n")
			b.WriteString(menuDimStyle.Render(centerText(line, w)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("↑/↓ choose   enter play   tab results   q quit", w))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) current() *MenuItem {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.cursor]
}

// sessionLine summarizes the results recorded for gameID so far.
func (m MenuModel) sessionLine(gameID string) string {
	if m.store == nil {
		return ""
	}
	played := len(m.store.Recent(gameID, 0))
	if played == 0 {
		return ""
	}
	line := fmt.Sprintf("Played %d this session", played)
	if best, ok := m.store.Best(gameID); ok {
		line += fmt.Sprintf(", best score %d", best.Score)
	}
	return line
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if user requested the results board.
func (m MenuModel) WantsResults() bool {
	return m.openResults
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID       string
	Config       core.RuntimeConfig
	WantsResults bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, store *storage.Store) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, store), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsResults():
		result.WantsResults = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
