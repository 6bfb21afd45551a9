// Package replay records the input of a cruncher session to a compressed
// JSONL file and plays it back through a fresh game.
//
// The first line is a Header. Every following line is a Frame: the actions
// triggered on one tick, a terminal resize applied before that tick, or the
// end marker carrying the total number of ticks.
package replay

import (
	"errors"

	"github.com/vovakirdan/term-cruncher/internal/config"
)

// Version is the current file format version.
const Version = 1

// ErrBadHeader is returned when a replay file does not start with a
// valid header of a supported version.
var ErrBadHeader = errors.New("replay: bad header")

// Header describes the session a replay was recorded from.
type Header struct {
	Version  int                   `json:"version"`
	GameID   string                `json:"game_id"`
	Seed     int64                 `json:"seed"`
	TickRate int                   `json:"tick_rate"`
	ScreenW  int                   `json:"screen_w"`
	ScreenH  int                   `json:"screen_h"`
	Preset   string                `json:"preset,omitempty"`
	Config   config.CruncherConfig `json:"config"`
}

// Frame is one recorded line after the header.
type Frame struct {
	Tick    uint64   `json:"tick"`
	Actions []string `json:"actions,omitempty"`
	Width   int      `json:"w,omitempty"`
	Height  int      `json:"h,omitempty"`
	End     bool     `json:"end,omitempty"`
}

// Log is a fully loaded replay.
type Log struct {
	Header Header
	Frames []Frame
	Ticks  uint64 // total ticks stepped while recording
}
