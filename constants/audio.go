package constants

import "time"

// AudioSampleRate is the speaker rate in Hz
const AudioSampleRate = 44100

// DefaultVolume is the master gain applied to every cue
const DefaultVolume = 0.6

// Step Sound Timing
const (
	StepSoundDuration = 40 * time.Millisecond
	StepSoundFreq     = 880.0
)

// Bump Sound Timing
const (
	BumpSoundDuration = 150 * time.Millisecond
	BumpSoundFreq     = 120.0
)

// Rotate Sound Timing
const (
	RotateSoundDuration = 180 * time.Millisecond
	RotateSoundLowFreq  = 220.0
	RotateSoundHighFreq = 440.0
)

// Win Chime Timing
const (
	WinNoteDuration = 120 * time.Millisecond
	WinNoteRelease  = 60 * time.Millisecond
)

// WinChimeNotes is a rising C major arpeggio
var WinChimeNotes = []float64{523.25, 659.25, 783.99, 1046.50}
