package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tesseract/constants"
)

// Cue identifies a game sound
type Cue uint8

const (
	CueStep Cue = iota
	CueBump
	CueRotate
	CueWin
)

// Cues plays short sound effects for game events
// Every method is safe to call before Initialize or after it failed
type Cues struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewCues creates a cue player with master volume in [0, 1]
func NewCues(volume float64) *Cues {
	return &Cues{
		rate:   beep.SampleRate(constants.AudioSampleRate),
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the speaker
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(c.rate, c.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// ToggleMute flips the mute state and returns the new one
func (c *Cues) ToggleMute() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return c.muted
}

// Muted reports the current mute state
func (c *Cues) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Play queues a cue on the mixer
func (c *Cues) Play(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}

	s := c.stream(cue)
	if s == nil {
		return
	}

	speaker.Lock()
	c.mixer.Add(newVolume(s, c.volume))
	speaker.Unlock()
}

func (c *Cues) stream(cue Cue) beep.Streamer {
	switch cue {
	case CueStep:
		return StepSound(c.rate)
	case CueBump:
		return BumpSound(c.rate)
	case CueRotate:
		return RotateSound(c.rate)
	case CueWin:
		return WinSound(c.rate)
	default:
		return nil
	}
}
