package tui

import (
	"fmt"
	"path"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/levels"
)

// TunnelSelection holds the user's choice from the layout picker.
type TunnelSelection struct {
	Layout string // path relative to the assets root; empty keeps the configured layout
}

// TunnelLayoutModel lets users pick which tunnel layout to play.
type TunnelLayoutModel struct {
	layouts      []string
	listErr      error
	cursor       int
	layoutCursor int
	inLayoutPick bool
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    TunnelSelection
	choosing     bool
	quitting     bool
	back         bool
}

// NewTunnelLayoutModel creates a layout picker over the layouts loader can see.
func NewTunnelLayoutModel(loader *levels.Loader, width, height int) TunnelLayoutModel {
	layouts, err := loader.List()
	return TunnelLayoutModel{
		layouts:   layouts,
		listErr:   err,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m TunnelLayoutModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TunnelLayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m TunnelLayoutModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLayoutPick {
		return m.handleLayoutKey(action)
	}
	return m.handleStartKey(action)
}

func (m TunnelLayoutModel) handleStartKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: Default, Choose layout
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Default layout
			m.choosing = false
			m.selection = TunnelSelection{}
			return m, tea.Quit
		case 1: // Choose layout
			if len(m.layouts) > 0 {
				m.inLayoutPick = true
				m.layoutCursor = 0
			}
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m TunnelLayoutModel) handleLayoutKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.layoutCursor > 0 {
			m.layoutCursor--
		}
	case MenuActionDown:
		if m.layoutCursor < len(m.layouts)-1 {
			m.layoutCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = TunnelSelection{Layout: m.layouts[m.layoutCursor]}
		return m, tea.Quit
	case MenuActionBack:
		m.inLayoutPick = false
	}

	return m, nil
}

// View renders the picker.
func (m TunnelLayoutModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLayoutPick {
		return m.viewLayouts()
	}
	return m.viewStart()
}

func (m TunnelLayoutModel) viewStart() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("G R E M M   T U N N E L", m.width))
	b.WriteString("\n\n")

	options := []string{
		"Play configured layout",
		fmt.Sprintf("Choose layout... (%d found)", len(m.layouts)),
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt, m.width))
		b.WriteString("\n")
	}

	if m.listErr != nil {
		b.WriteString("\n")
		b.WriteString(centerText("Could not list layouts: "+m.listErr.Error(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m TunnelLayoutModel) viewLayouts() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LAYOUT", m.width))
	b.WriteString("\n\n")

	for i, name := range m.layouts {
		cursor := "  "
		if i == m.layoutCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-24s %s", cursor, path.Base(name), path.Dir(name))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m TunnelLayoutModel) Selected() *TunnelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m TunnelLayoutModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m TunnelLayoutModel) WantsBack() bool {
	return m.back
}

// RunTunnelLayoutSelector runs the layout picker and returns the selection,
// or nil when the user backed out.
func RunTunnelLayoutSelector(loader *levels.Loader, cfg core.RuntimeConfig) (*TunnelSelection, error) {
	model := NewTunnelLayoutModel(loader, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(TunnelLayoutModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
