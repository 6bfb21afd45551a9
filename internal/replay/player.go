package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/term-cruncher/internal/core"
	"github.com/vovakirdan/term-cruncher/internal/games/cruncher"
)

// Load reads a replay file.
func Load(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a replay stream.
func Read(src io.Reader) (*Log, error) {
	dec, err := zstd.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot create decoder: %w", err)
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("replay: read header: %w", err)
		}
		return nil, fmt.Errorf("%w: empty file", ErrBadHeader)
	}

	lg := &Log{}
	if err := json.Unmarshal(sc.Bytes(), &lg.Header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if lg.Header.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadHeader, lg.Header.Version)
	}
	if lg.Header.GameID == "" {
		return nil, fmt.Errorf("%w: missing game id", ErrBadHeader)
	}

	for line := 2; sc.Scan(); line++ {
		var fr Frame
		if err := json.Unmarshal(sc.Bytes(), &fr); err != nil {
			return nil, fmt.Errorf("replay: line %d: %w", line, err)
		}
		if fr.End {
			lg.Ticks = fr.Tick
			continue
		}
		lg.Frames = append(lg.Frames, fr)
		// A stream cut short keeps every tick it reached.
		lg.Ticks = max(lg.Ticks, fr.Tick)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("replay: read frames: %w", err)
	}

	return lg, nil
}

// Run replays lg through a fresh game built from the recorded header and
// returns it in its final state.
func Run(lg *Log) (*cruncher.Game, error) {
	h := lg.Header
	cat, ok := cruncher.CategoryByID(h.GameID)
	if !ok {
		return nil, fmt.Errorf("replay: unknown game %q", h.GameID)
	}

	g := cruncher.NewWithConfig(cat, h.Config)
	g.Reset(core.RuntimeConfig{
		ScreenW:  h.ScreenW,
		ScreenH:  h.ScreenH,
		TickRate: h.TickRate,
		Seed:     h.Seed,
	})

	next := 0
	for tick := uint64(1); tick <= lg.Ticks; tick++ {
		in := core.NewInputFrame()
		for next < len(lg.Frames) && lg.Frames[next].Tick == tick {
			fr := lg.Frames[next]
			next++
			if fr.Width > 0 && fr.Height > 0 {
				g.Resize(fr.Width, fr.Height)
			}
			for _, name := range fr.Actions {
				a, ok := core.ParseAction(name)
				if !ok {
					return nil, fmt.Errorf("replay: tick %d: unknown action %q", tick, name)
				}
				in.Set(a)
			}
		}
		g.Step(in)
	}

	return g, nil
}
