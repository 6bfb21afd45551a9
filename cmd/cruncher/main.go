// cruncher is a terminal word-crunching game: walk the grid, crunch the
// terms that belong to the category, and stay away from the adversary.
//
// Usage:
//
//	cruncher list                - List available categories
//	cruncher play <category>     - Play a category
//	cruncher menu                - Pick categories interactively
//	cruncher serve               - Start SSH server for remote play
//	cruncher scores <category>   - Show high scores and stats
//	cruncher replay <file>       - Re-run a recorded session headlessly
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.cruncher/scores.db)
//	--config <path>        - Custom cruncher.yaml
//	--difficulty <preset>  - easy, normal, hard or fixed
//
// CRUNCHER_DB and CRUNCHER_CONFIG, read from the environment or a .env
// file, provide defaults for --db and --config.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-cruncher/internal/config"
	"github.com/vovakirdan/term-cruncher/internal/games/cruncher"
)

const defaultDBPath = "~/.cruncher/scores.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "cruncher",
	Level:  log.InfoLevel,
})

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn(".env file not loaded", "error", err)
	}

	registerGlobalFlags()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cruncher",
	Short: "Term Cruncher - crunch the right words before the adversary gets you",
	Long: `Term Cruncher is a terminal grid game. Every tile holds a term; crunch
the ones that belong to the category and leave the rest alone. Crunch enough
in a row to win, but do not let the adversary reach you.

Available commands:
  list     - Show all categories
  play     - Play a category directly
  menu     - Interactive category picker
  serve    - Start SSH server for remote play
  scores   - View high scores and stats
  replay   - Re-run a recorded session

Examples:
  cruncher list
  cruncher play cruncher
  cruncher play cruncher_sea --difficulty hard --record ./run.jsonl.zst
  cruncher menu
  cruncher serve --ssh :2222
  cruncher replay ./run.jsonl.zst`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		cruncher.SetConfigPath(flagConfig)
		cruncher.SetDifficultyPreset(preset)
		return nil
	},
	SilenceUsage: true,
}

// registerGlobalFlags runs after godotenv so .env values become defaults.
func registerGlobalFlags() {
	dbPath := os.Getenv("CRUNCHER_DB")
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", dbPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv("CRUNCHER_CONFIG"), "Path to custom cruncher.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}
