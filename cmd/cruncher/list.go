package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-cruncher/internal/games/cruncher"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	Long:  `Shows every built-in category with the prompt players must satisfy.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cats := cruncher.Categories

	if len(cats) == 0 {
		fmt.Println("No categories available.")
		return
	}

	fmt.Println("Available categories:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, c := range cats {
		maxIDLen = max(maxIDLen, len(c.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Prompt")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "------")

	for _, c := range cats {
		fmt.Printf("  %-*s  %s\n", maxIDLen, c.ID, c.Prompt)
	}

	fmt.Println()
	fmt.Println("Run 'cruncher play <id>' to play a category.")
}
