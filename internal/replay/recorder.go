package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/term-cruncher/internal/core"
)

// Recorder writes a replay as zstd-compressed JSONL.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	f      io.Closer // nil when the caller owns the destination
	enc    *zstd.Encoder
	w      *bufio.Writer
	tick   uint64
	closed bool
}

// Create opens path for writing and records the header.
func Create(path string, h Header) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("replay: cannot create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot create %s: %w", path, err)
	}
	r, err := NewRecorder(f, h)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.f = f
	return r, nil
}

// NewRecorder starts a replay on dst and records the header.
func NewRecorder(dst io.Writer, h Header) (*Recorder, error) {
	enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("replay: cannot create encoder: %w", err)
	}
	r := &Recorder{
		enc: enc,
		w:   bufio.NewWriterSize(enc, 64*1024),
	}

	h.Version = Version
	if err := r.writeLocked(h); err != nil {
		_ = enc.Close()
		return nil, err
	}
	return r, nil
}

// Record counts one simulation tick and stores its actions.
// Ticks without actions only advance the counter.
func (r *Recorder) Record(in core.InputFrame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return fmt.Errorf("replay: recorder closed")
	}
	r.tick++
	if in.Empty() {
		return nil
	}

	actions := in.List()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return r.writeLocked(Frame{Tick: r.tick, Actions: names})
}

// Resize records a terminal resize applied before the next tick.
func (r *Recorder) Resize(w, h int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return fmt.Errorf("replay: recorder closed")
	}
	return r.writeLocked(Frame{Tick: r.tick + 1, Width: w, Height: h})
}

// Ticks returns the number of ticks recorded so far.
func (r *Recorder) Ticks() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tick
}

// Close writes the end marker and flushes the stream.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	errs := []error{r.writeLocked(Frame{Tick: r.tick, End: true})}
	errs = append(errs, r.w.Flush(), r.enc.Close())
	if r.f != nil {
		errs = append(errs, r.f.Close())
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("replay: close: %w", err)
	}
	return nil
}

func (r *Recorder) writeLocked(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("replay: cannot encode line: %w", err)
	}
	if _, err := r.w.Write(b); err != nil {
		return fmt.Errorf("replay: write: %w", err)
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("replay: write: %w", err)
	}
	return nil
}
