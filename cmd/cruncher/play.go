package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term-cruncher/internal/core"
	"github.com/vovakirdan/term-cruncher/internal/games/cruncher"
	"github.com/vovakirdan/term-cruncher/internal/platform/tui"
	"github.com/vovakirdan/term-cruncher/internal/replay"
	"github.com/vovakirdan/term-cruncher/internal/storage"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play <category>",
	Short: "Play a category",
	Long: `Start playing the specified category.

Controls:
  Arrows/WASD  - Move (facing turns even when blocked)
  Space        - Crunch the tile you stand on
  Enter        - Play again after the game ends
  P            - Pause
  Esc/B        - Back (when paused or finished)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Adversary moves every 6 seconds
  normal - Adversary moves every 4 seconds
  hard   - Adversary moves every 2 seconds
  fixed  - Keep the config file's adversary_period

Examples:
  cruncher play cruncher
  cruncher play cruncher_wings --difficulty easy
  cruncher play cruncher --config ./my-cruncher.yaml
  cruncher play cruncher --seed 42 --record ./run.jsonl.zst`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the session to a zstd JSONL replay file")
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the scores database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	cat, ok := cruncher.CategoryByID(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cruncher list' to see available categories.")
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gameCfg := cruncher.LoadConfig("")
	game := cruncher.NewWithConfig(cat, gameCfg)

	opts := []tui.Option{tui.WithLogger(logger)}

	var rec *replay.Recorder
	if flagRecord != "" {
		var err error
		rec, err = replay.Create(flagRecord, replay.Header{
			GameID:   gameID,
			Seed:     cfg.Seed,
			TickRate: cfg.TickRate,
			ScreenW:  cfg.ScreenW,
			ScreenH:  tui.GameHeight(cfg.ScreenH),
			Preset:   string(gameCfg.Difficulty.Preset),
			Config:   gameCfg,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, tui.WithRecorder(rec))
	}

	store := openStore()

	runErr := tui.Run(game, store, cfg, opts...)

	if store != nil {
		store.Close()
	}
	if rec != nil {
		if err := rec.Close(); err != nil {
			logger.Error("could not finish replay", "path", flagRecord, "error", err)
		} else {
			logger.Info("replay saved", "path", flagRecord, "ticks", rec.Ticks())
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
