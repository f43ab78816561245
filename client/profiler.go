package client

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrCaptureCooldown is returned when a capture was taken too recently
	ErrCaptureCooldown = errors.New("capture on cooldown")

	// ErrAlreadyProfiling is returned while a capture is in progress
	ErrAlreadyProfiling = errors.New("already profiling")
)

// recorder is one runtime capture written to its own file
type recorder struct {
	ext   string
	start func(io.Writer) error
	stop  func()
}

var recorders = []recorder{
	{ext: ".pprof", start: pprof.StartCPUProfile, stop: pprof.StopCPUProfile},
	{ext: ".trace", start: trace.Start, stop: trace.Stop},
}

// Profiler records a CPU profile and an execution trace when the frame rate drops
type Profiler struct {
	dir      string
	cooldown time.Duration
	window   time.Duration
	logger   zerolog.Logger

	mu   sync.Mutex
	busy bool
	last time.Time
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, logger zerolog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	return &Profiler{
		dir:      dir,
		cooldown: 10 * time.Second,
		window:   5 * time.Second,
		logger:   logger.With().Str("component", "profiler").Logger(),
	}, nil
}

// Capture starts recording in the background. It refuses while a capture is
// running or the previous one started less than the cooldown ago.
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.busy {
		return ErrAlreadyProfiling
	}
	now := time.Now()
	if since := now.Sub(p.last); since < p.cooldown {
		return fmt.Errorf("%w: %v left", ErrCaptureCooldown, (p.cooldown - since).Round(time.Millisecond))
	}
	p.busy = true
	p.last = now

	go p.run(captureName(now, reason), recorders)
	return nil
}

// Busy returns whether a capture is in progress
func (p *Profiler) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// captureName is the shared file stem of one capture
func captureName(at time.Time, reason string) string {
	return "lowfps-" + at.Format("20060102T150405") + "-" + reason
}

func (p *Profiler) run(name string, recs []recorder) {
	defer func() {
		p.mu.Lock()
		p.busy = false
		p.mu.Unlock()
	}()

	var wg sync.WaitGroup
	paths := make([]string, len(recs))
	for i, rec := range recs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path, err := p.record(name, rec)
			if err != nil {
				p.logger.Error().Err(err).Str("kind", rec.ext).Msg("capture failed")
				return
			}
			paths[i] = path
		}()
	}
	wg.Wait()
	p.summarize(paths)
}

// record runs one recorder for the capture window
func (p *Profiler) record(name string, rec recorder) (string, error) {
	path := filepath.Join(p.dir, name+rec.ext)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := rec.start(f); err != nil {
		return "", fmt.Errorf("starting %s: %w", rec.ext, err)
	}
	time.Sleep(p.window)
	rec.stop()
	return path, nil
}

func (p *Profiler) summarize(paths []string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	ev := p.logger.Info().
		Uint64("heapKB", m.HeapAlloc/1024).
		Uint64("sysKB", m.Sys/1024).
		Uint32("gc", m.NumGC)
	for _, path := range paths {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil {
			ev = ev.Int64(strings.TrimPrefix(filepath.Ext(path), ".")+"KB", info.Size()/1024)
		}
	}
	ev.Strs("files", paths).Msg("capture written")
}
