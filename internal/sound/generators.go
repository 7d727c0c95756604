package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	sampleRate       = beep.SampleRate(48000)
	speakerBufferMs  = 100
	fireDurationMs   = 120
	thudDurationMs   = 250
	crackDurationMs  = 300
	fanfareNoteMs    = 180
	fanfareNoteCount = 4

	fireFreqStartHz = 1100.0
	fireFreqEndHz   = 450.0
	fireAmplitude   = 0.25

	thudFreqHz    = 70.0
	thudAmplitude = 0.4

	crackRumbleFreqHz    = 90.0
	crackNoiseAmplitude  = 0.25
	crackRumbleAmplitude = 0.3

	fanfareAmplitude = 0.22
)

// FireGenerator produces a short falling 'pew' for a shot.
type FireGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewFireGenerator creates a shot sound generator.
func NewFireGenerator(sr beep.SampleRate) *FireGenerator {
	return &FireGenerator{sr: sr}
}

func (g *FireGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	dur := float64(fireDurationMs) / 1000
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Pitch falls over the lifetime of the blip
		sweep := math.Min(t/dur, 1.0)
		freq := fireFreqStartHz - (fireFreqStartHz-fireFreqEndHz)*sweep

		envelope := math.Exp(-t * 30)
		sample := fireAmplitude * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FireGenerator) Err() error {
	return nil
}

// ThudGenerator produces a low impact thud for a tank taking a hit.
type ThudGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewThudGenerator creates a tank hit sound generator.
func NewThudGenerator(sr beep.SampleRate) *ThudGenerator {
	return &ThudGenerator{sr: sr}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Low fundamental with two harmonics for body
		sample := 0.0
		sample += thudAmplitude * math.Sin(2*math.Pi*thudFreqHz*t)
		sample += thudAmplitude / 2 * math.Sin(2*math.Pi*thudFreqHz*2*t)
		sample += thudAmplitude / 4 * math.Sin(2*math.Pi*thudFreqHz*3*t)

		envelope := math.Exp(-t * 10)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}

// CrackGenerator produces a crackling break for a destroyed obstacle.
type CrackGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrackGenerator creates an obstacle break sound generator.
func NewCrackGenerator(sr beep.SampleRate) *CrackGenerator {
	return &CrackGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *CrackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 12)

		// Cheap LCG noise for the crackle
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := crackRumbleAmplitude * math.Sin(2*math.Pi*crackRumbleFreqHz*t)

		sample := envelope * (crackNoiseAmplitude*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackGenerator) Err() error {
	return nil
}

// FanfareGenerator produces a short rising arpeggio for the victory banner.
type FanfareGenerator struct {
	sr      beep.SampleRate
	pos     int
	noteLen int
}

// fanfareNotes is a rising C major arpeggio: C5, E5, G5, C6.
var fanfareNotes = [fanfareNoteCount]float64{523.25, 659.25, 783.99, 1046.50}

// NewFanfareGenerator creates a victory sound generator.
func NewFanfareGenerator(sr beep.SampleRate) *FanfareGenerator {
	return &FanfareGenerator{
		sr:      sr,
		noteLen: sr.N(time.Millisecond * fanfareNoteMs),
	}
}

func (g *FanfareGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := g.pos / g.noteLen
		if idx >= len(fanfareNotes) {
			idx = len(fanfareNotes) - 1
		}
		freq := fanfareNotes[idx]

		notePos := g.pos % g.noteLen
		t := float64(notePos) / float64(g.sr)

		// Each note decays on its own so the steps stay distinct
		envelope := math.Exp(-t * 6)
		sample := fanfareAmplitude * envelope *
			(math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(2*math.Pi*freq*2*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FanfareGenerator) Err() error {
	return nil
}
