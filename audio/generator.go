package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/tesseract/constants"
)

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd harmonics for a harsh edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Envelope to fade in
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.02, 1.0)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// SweepGenerator glides linearly from one frequency to another over a fixed duration
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a finite frequency sweep
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:    sr,
		from:  from,
		to:    to,
		total: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress

		// Fade the tail so the cut is not audible
		amp := 0.25 * (1 - progress)
		sample := amp * math.Sin(2*math.Pi*g.phase)

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// release fades the last samples of a finite stream to silence
type release struct {
	streamer beep.Streamer
	position int
	total    int
	tail     int
}

func newRelease(s beep.Streamer, total, tail int) beep.Streamer {
	return &release{streamer: s, total: total, tail: tail}
}

func (r *release) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		remaining := r.total - r.position
		if remaining < r.tail && r.tail > 0 {
			vol := float64(remaining) / float64(r.tail)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		r.position++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a finite sine note with a release tail
func tone(sr beep.SampleRate, freq float64, d, tail time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		// Only fails above the Nyquist frequency
		return beep.Silence(sr.N(d))
	}
	total := sr.N(d)
	return newRelease(beep.Take(total, sine), total, sr.N(tail))
}

// Sound effect streams

// StepSound is a short tick for a successful move
func StepSound(sr beep.SampleRate) beep.Streamer {
	return newVolume(tone(sr, constants.StepSoundFreq, constants.StepSoundDuration, constants.StepSoundDuration/2), 0.25)
}

// BumpSound is a short buzz for walking into a wall
func BumpSound(sr beep.SampleRate) beep.Streamer {
	return newVolume(beep.Take(sr.N(constants.BumpSoundDuration), NewBuzzGenerator(sr, constants.BumpSoundFreq)), 0.5)
}

// RotateSound is a rising glide for an axis change
func RotateSound(sr beep.SampleRate) beep.Streamer {
	return NewSweepGenerator(sr, constants.RotateSoundLowFreq, constants.RotateSoundHighFreq, constants.RotateSoundDuration)
}

// WinSound is a rising arpeggio for reaching the end
func WinSound(sr beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(constants.WinChimeNotes))
	for _, f := range constants.WinChimeNotes {
		notes = append(notes, tone(sr, f, constants.WinNoteDuration, constants.WinNoteRelease))
	}
	return newVolume(beep.Seq(notes...), 0.4)
}
