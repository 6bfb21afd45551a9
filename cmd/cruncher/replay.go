package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-cruncher/internal/replay"
)

var flagReplayQuiet bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded session",
	Long: `Load a replay written by 'cruncher play --record' and run it headlessly
through the simulation. The final board and result are printed.

The recorded config and seed are used, so global --config, --difficulty
and --seed flags have no effect here.

Examples:
  cruncher replay ./run.jsonl.zst
  cruncher replay ./run.jsonl.zst --quiet`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayQuiet, "quiet", false, "Only log the summary")
}

func runReplay(_ *cobra.Command, args []string) {
	path := args[0]

	lg, err := replay.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := replay.Run(lg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap := game.Snapshot()
	if !flagReplayQuiet {
		fmt.Println(snap.String())
	}

	logger.Info("replay finished",
		"category", lg.Header.GameID,
		"seed", lg.Header.Seed,
		"ticks", lg.Ticks,
		"frames", len(lg.Frames),
		"phase", snap.Phase,
		"score", snap.Score,
	)
}
