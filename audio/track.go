package audio

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/parameter"
)

// pattern is a looping one-voice step sequence; 0 is a rest
type pattern struct {
	notes []float64
	bass  []float64
	wave  WaveType
	steps int // step length multiplier, 1 is a sixteenth
}

// Note frequencies used by the patterns
const (
	a2 = 110.00
	c3 = 130.81
	d3 = 146.83
	e3 = 164.81
	f3 = 174.61
	g3 = 196.00
	a3 = 220.00
	c4 = 261.63
	d4 = 293.66
	e4 = 329.63
	f4 = 349.23
	g4 = 392.00
	a4 = 440.00
	b4 = 493.88
	c5 = 523.25
	e5 = 659.25
)

var trackPatterns = map[core.Track]pattern{
	core.TrackTitle: {
		notes: []float64{a3, c4, e4, a4, e4, c4, a3, 0, f3, a3, c4, f4, c4, a3, f3, 0},
		bass:  []float64{a2, a2, a2, a2, f3 / 2, f3 / 2, f3 / 2, f3 / 2},
		wave:  WaveSine,
		steps: 2,
	},
	core.TrackGame: {
		notes: []float64{e4, 0, e4, g4, a4, 0, g4, e4, d4, 0, d4, e4, c4, 0, d4, 0},
		bass:  []float64{a2, a2, c3, c3, d3, d3, e3, e3},
		wave:  WaveSquare,
		steps: 1,
	},
	core.TrackBoss: {
		notes: []float64{a3, b4 / 2, c4, 0, a3, b4 / 2, d4, 0, a3, b4 / 2, e4, f4, e4, d4, c4, 0},
		bass:  []float64{a2, a2, a2, a2, f3 / 2, f3 / 2, g3 / 2, g3 / 2},
		wave:  WaveSaw,
		steps: 1,
	},
	core.TrackGameOver: {
		notes: []float64{e4, d4, c4, a3, 0, 0, 0, 0},
		bass:  []float64{a2, 0, 0, 0},
		wave:  WaveSine,
		steps: 3,
	},
	core.TrackEpilogue: {
		notes: []float64{c4, e4, g4, c5, g4, e4, c4, 0, f3 * 2, a4, c5, e5, c5, a4, f3 * 2, 0},
		bass:  []float64{c3, c3, c3, c3, f3, f3, f3, f3},
		wave:  WaveSine,
		steps: 2,
	},
}

// sequencer plays a pattern forever with a plucked decay per step
type sequencer struct {
	p       pattern
	rate    beep.SampleRate
	step    int
	release int
	pos     int
}

func (s *sequencer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := s.pos / s.step
		inStep := s.pos % s.step
		t := float64(inStep) / float64(s.rate)

		decay := 1.0
		if tail := s.step - inStep; tail < s.release {
			decay = float64(tail) / float64(s.release)
		}
		pluck := math.Exp(-t*6) * decay

		val := 0.0
		if f := s.p.notes[idx%len(s.p.notes)]; f > 0 {
			val += 0.6 * pluck * wave(s.p.wave, f*t)
		}
		if len(s.p.bass) > 0 {
			// Bass changes every two lead steps
			if f := s.p.bass[(idx/2)%len(s.p.bass)]; f > 0 {
				val += 0.4 * decay * wave(WaveSine, f*t)
			}
		}

		samples[i][0] = val
		samples[i][1] = val
		s.pos++
	}
	return len(samples), true
}

func (s *sequencer) Err() error { return nil }

// wave evaluates a periodic wave at the given cycle count
func wave(w WaveType, cycles float64) float64 {
	phase := cycles - math.Floor(cycles)
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	}
	return math.Sin(2 * math.Pi * phase)
}

// TrackStreamer returns an endless streamer for track at the music volume
func TrackStreamer(track core.Track, cfg *Config) (beep.Streamer, error) {
	p, ok := trackPatterns[track]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrack, track)
	}
	rate := beep.SampleRate(cfg.SampleRate)
	seq := &sequencer{
		p:       p,
		rate:    rate,
		step:    rate.N(parameter.TrackStepDuration) * max(p.steps, 1),
		release: rate.N(parameter.TrackStepRelease),
	}
	return newVolume(seq, cfg.MusicVolume*cfg.MasterVolume), nil
}
