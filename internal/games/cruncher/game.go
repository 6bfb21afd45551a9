// Package cruncher implements the Term Cruncher simulation: a board of
// labeled tiles, a player who crunches the ones matching a hidden category,
// and an adversary that wanders the board and ends the game on contact.
package cruncher

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/term-cruncher/internal/config"
	"github.com/vovakirdan/term-cruncher/internal/core"
	"github.com/vovakirdan/term-cruncher/internal/registry"
)

const defaultTickRate = 60

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset overrides the preset of the loaded config.
// An empty preset keeps whatever the config file selects.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game drives one cruncher session through its phases.
// All methods are safe for concurrent use; a single mutex covers the whole
// read-modify-write of each tick.
type Game struct {
	mu sync.Mutex

	category Category
	override *config.CruncherConfig
	cfg      config.CruncherConfig

	rng  *rand.Rand
	tick uint64

	session *Session
	machine *Machine
	policy  *AdversaryPolicy
	display display

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
	ended    bool
}

// New creates a game for the given category. Config is loaded on Reset.
func New(cat Category) *Game {
	return &Game{category: cat}
}

// NewWithConfig creates a game that uses cfg instead of loading a file.
func NewWithConfig(cat Category, cfg config.CruncherConfig) *Game {
	return &Game{category: cat, override: &cfg}
}

func init() {
	for _, cat := range Categories {
		registry.Register(cat.ID, func() registry.Game {
			return New(cat)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.category.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.category.Title
}

// Category returns the game's category.
func (g *Game) Category() Category {
	return g.category
}

// Config returns the effective configuration of the current session.
func (g *Game) Config() config.CruncherConfig {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cfg
}

// LoadConfig resolves the config selected by SetConfigPath, falling back to
// hardcoded defaults when it cannot be loaded. A non-empty preset takes
// precedence over the one set with SetDifficultyPreset.
func LoadConfig(preset config.DifficultyPreset) config.CruncherConfig {
	cfg, err := config.LoadCruncher(configPath)
	if err != nil {
		cfg = config.DefaultCruncherConfig()
	}
	if preset == "" {
		preset = difficultyPreset
	}
	config.ApplyPreset(&cfg, preset)
	return cfg
}

// loadConfig resolves the session config: explicit override first.
func (g *Game) loadConfig() config.CruncherConfig {
	if g.override != nil {
		return *g.override
	}
	return LoadConfig("")
}

// Reset starts a fresh session in the Playing phase.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}

	g.cfg = g.loadConfig()
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.paused = false
	g.ended = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.checkScreenSize()

	g.session = NewSession(RulesFromConfig(g.cfg, g.category))
	g.policy = NewAdversaryPolicy(g.cfg.AdversaryPeriodTicks(tickRate))
	g.display = display{}
	g.machine = NewMachine(g.hooks())
	g.machine.Start(PhasePlaying)
}

// hooks builds the per-phase dispatch table.
func (g *Game) hooks() map[Phase]PhaseHooks {
	endHooks := func(p Phase) PhaseHooks {
		return PhaseHooks{
			Enter: func() {
				g.display.buildBanner(p, g.session.Score())
				g.ended = true
			},
			Update: func(in core.InputFrame) Transition {
				if in.Has(core.ActionConfirm) {
					return Transition{To: PhasePlaying, OK: true}
				}
				return Transition{}
			},
			Exit: g.display.teardown,
		}
	}

	return map[Phase]PhaseHooks{
		PhasePlaying: {
			Enter: func() {
				g.session.Reset(g.rng)
				g.policy.Reset()
				g.display.buildPlaying(g.category.Prompt)
			},
			Update: g.updatePlaying,
			Exit:   g.display.teardown,
		},
		PhaseGameOver: endHooks(PhaseGameOver),
		PhaseGameWin:  endHooks(PhaseGameWin),
	}
}

// updatePlaying resolves the player's command, then advances the adversary.
// A transition requested by the player ends the tick's Playing effects.
func (g *Game) updatePlaying(in core.InputFrame) Transition {
	if tr := ResolvePlayerCommand(g.session, CommandFromInput(in)); tr.OK {
		return tr
	}
	g.policy.Tick(g.session, g.rng)
	return Transition{}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	w, h := minScreenSize(g.cfg.Board.Rows, g.cfg.Board.Cols)
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.tick++
	g.ended = false

	if g.tooSmall {
		return core.StepResult{State: g.state()}
	}

	// Pausing only makes sense while the board is live.
	if in.Has(core.ActionPause) && g.machine.Current() == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.state()}
	}

	g.machine.Update(in)
	return core.StepResult{State: g.state(), Ended: g.ended}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.machine.Current()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

func (g *Game) state() core.GameState {
	phase := g.machine.Current()
	return core.GameState{
		Score:    g.session.Score(),
		Streak:   g.session.Streak(),
		GameOver: phase != PhasePlaying,
		Won:      phase == PhaseGameWin,
		Paused:   g.paused || g.tooSmall,
	}
}
