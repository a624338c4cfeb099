package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// flapTone is a quick upward sine chirp.
type flapTone struct {
	sr  beep.SampleRate
	pos int
}

func newFlapTone(sr beep.SampleRate) *flapTone {
	return &flapTone{sr: sr}
}

func (g *flapTone) Stream(samples [][2]float64) (n int, ok bool) {
	dur := float64(g.sr.N(time.Millisecond * 90))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / dur

		// Sweep 350Hz -> 700Hz with a fade-out envelope
		freq := 350 + 350*progress
		envelope := 0.25 * (1 - progress)
		sample := envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *flapTone) Err() error {
	return nil
}

// scoreTone is a bright two-note ding.
type scoreTone struct {
	sr  beep.SampleRate
	pos int
}

func newScoreTone(sr beep.SampleRate) *scoreTone {
	return &scoreTone{sr: sr}
}

func (g *scoreTone) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.sr.N(time.Millisecond * 80)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 880.0 // A5, then up a fourth
		if g.pos >= half {
			freq = 1174.66
		}

		// Short attack, linear decay within each note
		notePos := float64(g.pos%half) / float64(half)
		envelope := 0.2 * (1 - notePos)
		sample := envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *scoreTone) Err() error {
	return nil
}

// hitTone is a harsh low buzz.
type hitTone struct {
	sr  beep.SampleRate
	pos int
}

func newHitTone(sr beep.SampleRate) *hitTone {
	return &hitTone{sr: sr}
}

func (g *hitTone) Stream(samples [][2]float64) (n int, ok bool) {
	dur := float64(g.sr.N(time.Millisecond * 300))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / dur

		// Square-ish buzz: fundamental plus odd harmonics, pitch falling
		freq := 140 - 60*progress
		sample := 0.0
		sample += 0.28 * math.Sin(2*math.Pi*freq*t)
		sample += 0.14 * math.Sin(2*math.Pi*freq*3*t)
		sample += 0.07 * math.Sin(2*math.Pi*freq*5*t)
		sample *= 1 - progress

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *hitTone) Err() error {
	return nil
}

// loopTrack is the background music: a soft four-note arpeggio cycling
// forever. Kept quiet so the cues stand out over it.
type loopTrack struct {
	sr  beep.SampleRate
	pos int
}

func newLoopTrack(sr beep.SampleRate) *loopTrack {
	return &loopTrack{sr: sr}
}

// Frequencies of the looped arpeggio (C major add9).
var loopNotes = []float64{261.63, 329.63, 392.00, 587.33}

func (g *loopTrack) Stream(samples [][2]float64) (n int, ok bool) {
	noteLen := g.sr.N(time.Millisecond * 280)
	cycle := noteLen * len(loopNotes)

	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		cyclePos := g.pos % cycle
		note := cyclePos / noteLen
		freq := loopNotes[note]

		// Gentle per-note envelope to avoid clicks between notes
		notePos := float64(cyclePos%noteLen) / float64(noteLen)
		envelope := 0.06 * math.Sin(notePos*math.Pi)
		sample := envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *loopTrack) Err() error {
	return nil
}
