package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// boardLocator is implemented by games that can report where their
// playfield is drawn, so mouse gestures only start on the board.
type boardLocator interface {
	BoardRect(w, h int) core.Rect
}

// Options configures a game session.
type Options struct {
	Runtime  core.RuntimeConfig
	Gestures GestureConfig
	Logger   *log.Logger
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	gestures   *GestureTracker
	help       help.Model
	logger     *log.Logger
	runLog     *log.Logger
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		gestures:   NewGestureTracker(opts.Gestures),
		help:       h,
		logger:     logger.With("game", game.ID()),
	}
	m.runLog = m.logger
	m.fitScreen()

	// Reset here rather than in Init so the first tick sees a ready game.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "lines", m.gameState.Lines)
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse maps left-button gestures on the board to actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if loc, ok := m.game.(boardLocator); ok {
			if !loc.BoardRect(m.screen.Width(), m.screen.Height()).Contains(msg.X, msg.Y) {
				return m, nil
			}
		}
		m.gestures.Press(msg.X, msg.Y, now)

	case tea.MouseActionMotion:
		for _, a := range m.gestures.Motion(msg.X, msg.Y) {
			m.inputFrame.Push(a)
		}

	case tea.MouseActionRelease:
		m.inputFrame.Push(m.gestures.Release(msg.X, msg.Y, now))
	}
	return m, nil
}

// handleResize processes window resize events.
// The game lays itself out from the screen size, so no reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	m.gestures.Cancel()
	return m, nil
}

// fitScreen sizes the game screen to the terminal minus the help footer.
func (m *Model) fitScreen() {
	footer := lipgloss.Height(m.help.View(m.keys.Keys()))
	m.screen.Resize(m.config.ScreenW, max(1, m.config.ScreenH-footer))
}

// handleTick runs one simulation step with the measured frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.inputFrame.Elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransitions(prev, m.gameState)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logTransitions records round starts, level ups and game overs.
// Each round gets its own run id.
func (m *Model) logTransitions(prev, cur core.GameState) {
	if cur.Round != prev.Round && cur.Started {
		m.runLog = m.logger.With("run", uuid.NewString())
		m.runLog.Info("round started", "level", cur.Level)
		return
	}
	if cur.Level > prev.Level && cur.Started {
		m.runLog.Info("level up", "level", cur.Level, "lines", cur.Lines, "score", cur.Score)
	}
	if cur.GameOver && !prev.GameOver {
		m.runLog.Info("game over", "score", cur.Score, "lines", cur.Lines, "level", cur.Level)
	}
	if cur.Paused != prev.Paused {
		m.runLog.Debug("pause toggled", "paused", cur.Paused)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	dir := filepath.Join(home, ".tui-tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(game registry.Game, opts Options) (core.GameState, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release events for gestures
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
