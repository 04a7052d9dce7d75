// Package audio plays the desktop's short sound effects.
//
// Playback is fire-and-forget: Play never blocks on the terminal and never
// panics to the caller. When the environment cannot play anything (sound
// disabled, output is not a terminal) a silent player is used instead.
package audio

import (
	"io"
	"os"
	"sync"
	"time"

	"distortion-os/log"

	"golang.org/x/term"
)

// Effect names one of the fixed sound effects.
type Effect string

const (
	Click Effect = "click"
	Hover Effect = "hover"
	Login Effect = "login"
	Meow  Effect = "meow"
	Hiss  Effect = "hiss"
)

// Preset describes the tone an effect stands for. Terminals cannot synthesize
// tones, so only Bell matters when playing; the rest documents the effect.
type Preset struct {
	Wave     string
	StartHz  float64
	EndHz    float64
	Duration time.Duration
	// Bell rings the terminal bell for this effect.
	Bell bool
}

var presets = map[Effect]Preset{
	Click: {Wave: "sine", StartHz: 800, EndHz: 300, Duration: 100 * time.Millisecond},
	Hover: {Wave: "triangle", StartHz: 200, EndHz: 200, Duration: 50 * time.Millisecond},
	Login: {Wave: "square", StartHz: 200, EndHz: 800, Duration: time.Second, Bell: true},
	Meow:  {Wave: "triangle", StartHz: 800, EndHz: 600, Duration: 400 * time.Millisecond, Bell: true},
	Hiss:  {Wave: "sawtooth", StartHz: 800, EndHz: 100, Duration: 300 * time.Millisecond, Bell: true},
}

// PresetFor returns the preset of an effect and whether the effect exists.
func PresetFor(e Effect) (Preset, bool) {
	p, ok := presets[e]
	return p, ok
}

// Player plays sound effects.
type Player interface {
	Play(e Effect)
}

// Nop is a Player that plays nothing.
type Nop struct{}

func (Nop) Play(Effect) {}

// BellPlayer rings the terminal bell for effects whose preset asks for it.
type BellPlayer struct {
	mu  sync.Mutex
	out io.Writer
	// minGap keeps bursts of effects from turning into a continuous beep.
	minGap time.Duration
	last   time.Time
}

func NewBellPlayer(out io.Writer) *BellPlayer {
	return &BellPlayer{out: out, minGap: 150 * time.Millisecond}
}

var playErrors = log.NewEvery(30 * time.Second)

// Play rings the bell for the effect. Unknown effects and write errors are ignored.
func (b *BellPlayer) Play(e Effect) {
	defer func() {
		if r := recover(); r != nil {
			log.ErrorLog.Printf("audio: recovered while playing %s: %v", e, r)
		}
	}()

	p, ok := presets[e]
	if !ok || !p.Bell {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if time.Since(b.last) < b.minGap {
		return
	}
	b.last = time.Now()

	if _, err := io.WriteString(b.out, "\a"); err != nil && playErrors.ShouldLog() {
		log.WarningLog.Printf("audio: could not ring bell: %v", err)
	}
}

// New returns the player for the current environment. A silent player is
// returned when sound is disabled or out is not a terminal.
func New(enabled bool, out *os.File) Player {
	if !enabled {
		return Nop{}
	}
	if out == nil || !term.IsTerminal(int(out.Fd())) {
		log.WarningLog.Printf("audio unavailable: output is not a terminal, effects are muted")
		return Nop{}
	}
	return NewBellPlayer(out)
}
