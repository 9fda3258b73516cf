// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/logging"
	"github.com/vovakirdan/gremm-arcade/internal/multiplayer"
	"github.com/vovakirdan/gremm-arcade/internal/registry"
	"github.com/vovakirdan/gremm-arcade/internal/storage"
)

// helpHeight is the number of rows kept below the game for the key help.
const helpHeight = 1

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at tickRate ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	match      *multiplayer.LocalMatch // set for hotseat games
	matches    int
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	paused     bool
	quitting   bool
	scoreSaved bool // Whether the result has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 1)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger.WithPrefix(game.ID()),
		keyMapper:  NewKeyMapper(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Mode reports whether the game takes per-player input.
func (m Model) Mode() multiplayer.MatchMode {
	if _, ok := m.game.(multiplayer.HotseatGame); ok {
		return multiplayer.MatchModeHotseat
	}
	return multiplayer.MatchModeSolo
}

// start resets the game and, for hotseat games, opens a new match.
func (m *Model) start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.paused = false
	m.inputFrame.Clear()

	if hg, ok := m.game.(multiplayer.HotseatGame); ok {
		m.matches++
		id := multiplayer.MatchID(fmt.Sprintf("%s-%d", m.game.ID(), m.matches))
		m.match = multiplayer.NewLocalMatch(id, hg)
	}
	m.logger.Info("game started", "seed", m.config.Seed, "mode", m.Mode())
}

// Init starts the tick loop. The game itself is reset in Run, before the
// program starts, since Init cannot keep changes to a value receiver.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Game
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Pause) && !m.gameState.GameOver:
		m.paused = !m.paused
		return m, nil
	case key.Matches(msg, keys.Restart) && m.gameState.GameOver:
		m.inputFrame.Set(core.ActionRestart)
		return m, nil
	}

	var isQuit bool
	if m.match != nil {
		var (
			player multiplayer.PlayerID
			action core.Action
		)
		player, action, isQuit = m.keyMapper.MapHotseatKey(msg)
		if !isQuit && !m.paused {
			if action != core.ActionNone {
				m.match.Press(player, action)
			}
			m.match.Press(player, core.ActionAnyKey)
		}
	} else {
		frame := core.NewInputFrame()
		isQuit = m.keyMapper.MapKeyToFrame(msg, &frame)
		if !m.paused {
			m.inputFrame.Merge(frame)
		}
	}

	if isQuit {
		m.recordResult()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}

	// Games that cannot follow a resize restart with the new dimensions.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.start()
		return m, tickCmd(m.config.TickRate)
	}

	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	if m.match != nil {
		result, done := m.match.Tick()
		m.gameState = result.State
		if done {
			res, _ := m.match.Result()
			m.logger.Info("match over", "match", res.MatchID, "winner", res.Winner, "ticks", res.Ticks)
		}
	} else {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
	}

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.recordResult()
	case !m.gameState.GameOver:
		m.scoreSaved = false // the game restarted itself
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordResult saves the current game to the session store, once per game.
func (m *Model) recordResult() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	finished := m.gameState.GameOver
	if m.match != nil && !finished {
		m.match.Cancel()
	}

	r := storage.Result{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Status:   m.gameState.Status,
		Finished: finished,
	}
	if m.match != nil {
		if res, ok := m.match.Result(); ok {
			r.Winner = res.Winner
		}
	}

	m.logger.Info("game ended", "score", r.Score, "status", r.Status, "finished", finished)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(r); err != nil {
		m.logger.Warn("could not record result", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		m.screen.DrawOverlay(m.screen.Width()/2, m.screen.Height()/2, "PAUSED", "P to resume")
	}

	return renderFrame(m.screen, m.helpLine())
}

// helpLine returns the game's own hints, or the generic key help.
func (m Model) helpLine() string {
	if c, ok := m.game.(interface{ Controls() string }); ok {
		return c.Controls()
	}
	if m.match != nil {
		return m.help.View(m.keyMapper.Hotseat)
	}
	return m.help.View(m.keyMapper.Game)
}

// Run starts the Bubble Tea program with the given model and returns
// once the player quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)
	model.start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
