package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-cruncher/internal/core"
	"github.com/vovakirdan/term-cruncher/internal/registry"
	"github.com/vovakirdan/term-cruncher/internal/storage"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Recorder receives every simulated input frame and resize.
// *replay.Recorder satisfies it.
type Recorder interface {
	Record(in core.InputFrame) error
	Resize(w, h int) error
}

// Option configures a Model.
type Option func(*Model)

// WithRecorder forwards input to r.
func WithRecorder(r Recorder) Option {
	return func(m *Model) { m.recorder = r }
}

// WithLogger sets the logger used for non-fatal errors.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// withExitOnBack makes Back quit the program instead of only flagging it.
func withExitOnBack() Option {
	return func(m *Model) { m.exitOnBack = true }
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	recorder   Recorder
	logger     *log.Logger
	quitting   bool
	backToMenu bool
	exitOnBack bool
	recordErr  bool // a recorder error was already logged
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is Reset in Init with cfg.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     log.Default(),
	}
	m.config.ScreenH = GameHeight(cfg.ScreenH)
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = cfg.ScreenW

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// GameHeight is the screen height left to the game below a terminal of height h.
func GameHeight(h int) int {
	return max(h-helpHeight, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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

// handleKey accumulates key edges into the next input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		// Leaving mid-game is only allowed from a paused or finished session.
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
		}

	case core.ActionNone:

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the screen and game to a new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = GameHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		if m.recorder != nil {
			m.record(m.recorder.Resize(m.config.ScreenW, m.config.ScreenH))
		}
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.recorder != nil {
		m.record(m.recorder.Record(m.inputFrame))
	}

	if result.Ended {
		m.saveResult(result.State)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// record logs the first recorder failure and keeps the game running.
func (m *Model) record(err error) {
	if err == nil || m.recordErr {
		return
	}
	m.recordErr = true
	m.logger.Warn("replay recording failed", "game", m.game.ID(), "error", err)
}

// saveResult stores a finished session. Failures are logged, not fatal.
func (m *Model) saveResult(state core.GameState) {
	if m.store == nil {
		return
	}
	outcome := storage.OutcomeCaught
	if state.Won {
		outcome = storage.OutcomeWin
	}
	_, err := m.store.SaveResult(storage.Result{
		GameID:  m.game.ID(),
		Score:   state.Score,
		Streak:  state.Streak,
		Outcome: outcome,
	})
	if err != nil {
		m.logger.Warn("could not save result", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".cruncher", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// Back from a finished or paused game exits the program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, append(opts, withExitOnBack())...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
