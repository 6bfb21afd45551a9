package cruncher

import "fmt"

// display holds the presentation objects that belong to the current phase.
// It is discarded on every phase exit and rebuilt on entry.
type display struct {
	board  bool     // tile labels and actors
	hud    bool     // score and crunch meter
	prompt string   // category prompt
	banner []string // end-of-game text
}

// teardown drops every display object of the exited phase.
func (d *display) teardown() {
	*d = display{}
}

// buildPlaying creates the board, HUD and prompt objects.
func (d *display) buildPlaying(prompt string) {
	d.board = true
	d.hud = true
	d.prompt = prompt
}

// buildBanner creates the final-score banner for an end phase.
func (d *display) buildBanner(p Phase, score int) {
	d.banner = bannerLines(p, score)
}

// bannerLines returns the end-of-game text for a phase.
func bannerLines(p Phase, score int) []string {
	final := fmt.Sprintf("Final Score: %d", score)
	switch p {
	case PhaseGameWin:
		return []string{final, "You Won! Press Enter to Play Again"}
	case PhaseGameOver:
		return []string{final, "Press Enter to Try Again"}
	default:
		return nil
	}
}

// empty reports whether nothing is on display.
func (d *display) empty() bool {
	return !d.board && !d.hud && d.prompt == "" && len(d.banner) == 0
}
