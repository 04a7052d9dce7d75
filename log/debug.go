// Package log holds the application loggers. DOS_DEBUG=1 adds a debug log
// with input, layout and transition traces and a per-window render profile
// written when the program exits.
package log

import (
	"cmp"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

var (
	DebugEnabled bool
	DebugLog     = log.New(io.Discard, "", 0)
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "distortion-os-debug.log")

// A frame slower than frameBudget misses 60fps and is logged.
const frameBudget = 16 * time.Millisecond

// frameWindow is how many recent frames the rolling numbers cover.
const frameWindow = 120

// Topic tags a trace line.
type Topic string

const (
	TopicInput      Topic = "INPUT"
	TopicLayout     Topic = "LAYOUT"
	TopicTransition Topic = "TRANSITION"
)

// InitDebug opens the debug log when DOS_DEBUG=1.
func InitDebug() {
	DebugEnabled = false
	DebugLog = log.New(io.Discard, "", 0)
	if os.Getenv("DOS_DEBUG") != "1" {
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		return
	}
	DebugEnabled = true
	DebugLog = log.New(f, "DEBUG:", log.Ltime|log.Lmicroseconds)
	debugLogFile = f
	DebugLog.Printf("debug mode enabled, writing to %s", debugLogFileName)
}

// CloseDebug writes the render profile and closes the debug log.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	if DebugLog != nil {
		DebugLog.Print(profiler.Stats())
	}
	_ = debugLogFile.Close()
	debugLogFile = nil
	fmt.Println("wrote debug logs to " + debugLogFileName)
}

// Debug logs an untagged debug line.
func Debug(format string, v ...any) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// Tracef logs a debug line tagged with topic.
func Tracef(topic Topic, format string, v ...any) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("["+string(topic)+"] "+format, v...)
	}
}

// RenderProfiler times whole frames and the windows drawn in them.
type RenderProfiler struct {
	mu      sync.Mutex
	windows map[string]*WindowCost
	frames  int64
	total   time.Duration
	slow    int64
	recent  []time.Duration
}

// WindowCost is the accumulated render time of one window.
type WindowCost struct {
	ID      string
	Renders int64
	Total   time.Duration
	Max     time.Duration
}

var profiler = newProfiler()

func newProfiler() *RenderProfiler {
	return &RenderProfiler{
		windows: make(map[string]*WindowCost),
		recent:  make([]time.Duration, 0, frameWindow),
	}
}

// GetProfiler returns the process render profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender times the render of window id until the returned func runs.
func (p *RenderProfiler) StartRender(id string) func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() { p.recordWindow(id, time.Since(start)) }
}

// StartFrame times a full frame until the returned func runs.
func (p *RenderProfiler) StartFrame() func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() { p.RecordFrame(time.Since(start)) }
}

func (p *RenderProfiler) recordWindow(id string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.windows[id]
	if !ok {
		c = &WindowCost{ID: id}
		p.windows[id] = c
	}
	c.Renders++
	c.Total += elapsed
	c.Max = max(c.Max, elapsed)
}

// RecordFrame adds one frame of the given duration.
func (p *RenderProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frames++
	p.total += elapsed
	if len(p.recent) == frameWindow {
		p.recent = append(p.recent[:0], p.recent[1:]...)
	}
	p.recent = append(p.recent, elapsed)

	if elapsed > frameBudget {
		p.slow++
		if DebugLog != nil {
			DebugLog.Printf("slow frame: %v", elapsed)
		}
	}
}

// Stats summarizes the profile, costliest window first. It is empty when
// debug mode is off.
func (p *RenderProfiler) Stats() string {
	if !DebugEnabled {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "\nrender profile: %d frames, %d over %v\n", p.frames, p.slow, frameBudget)
	if p.frames > 0 {
		fmt.Fprintf(&b, "  mean frame %v\n", p.total/time.Duration(p.frames))
	}
	if n := len(p.recent); n > 0 {
		var sum, worst time.Duration
		for _, d := range p.recent {
			sum += d
			worst = max(worst, d)
		}
		fmt.Fprintf(&b, "  last %d frames: mean %v, worst %v\n", n, sum/time.Duration(n), worst)
	}

	costs := make([]*WindowCost, 0, len(p.windows))
	for _, c := range p.windows {
		costs = append(costs, c)
	}
	slices.SortFunc(costs, func(a, b *WindowCost) int {
		return cmp.Compare(b.Total, a.Total)
	})
	for _, c := range costs {
		fmt.Fprintf(&b, "  %-14s %5d renders  mean %v  worst %v\n",
			c.ID, c.Renders, c.Total/time.Duration(c.Renders), c.Max)
	}
	return b.String()
}

// Reset drops everything recorded so far.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fresh := newProfiler()
	p.windows, p.frames, p.total, p.slow, p.recent = fresh.windows, 0, 0, 0, fresh.recent
}
