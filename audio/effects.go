package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/parameter"
)

// oscillator generates a raw wave, optionally gliding linearly to a target frequency
type oscillator struct {
	freq     float64
	glide    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator sweeping from freq to target over duration
func NewGlide(freq, target float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		glide:    target,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.glide != o.freq && o.duration > 0 {
			freq += (o.glide - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one step of a cue: a shaped oscillator, glide 0 holds the pitch
type tone struct {
	freq  float64
	glide float64
	dur   time.Duration
	wave  WaveType
	gain  float64
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// cueRecipes are played step by step in sequence
var cueRecipes = map[core.Cue][]tone{
	core.CueConfirm: {
		{freq: 659.25, dur: ms(60), wave: WaveSquare, gain: 0.4},
		{freq: 987.77, dur: ms(90), wave: WaveSquare, gain: 0.4},
	},
	core.CueCancel: {
		{freq: 440, dur: ms(60), wave: WaveSquare, gain: 0.4},
		{freq: 329.63, dur: ms(90), wave: WaveSquare, gain: 0.4},
	},
	core.CueAttackSmall: {
		{freq: 900, glide: 600, dur: ms(70), wave: WaveSaw, gain: 0.3},
	},
	core.CueAttackMedium: {
		{freq: 700, glide: 300, dur: ms(120), wave: WaveSaw, gain: 0.4},
	},
	core.CueAttackLarge: {
		{freq: 400, glide: 80, dur: ms(300), wave: WaveSquare, gain: 0.5},
	},
	core.CueItemGet: {
		{freq: 1046.5, dur: ms(70), wave: WaveSine, gain: 0.6},
		{freq: 1318.5, dur: ms(70), wave: WaveSine, gain: 0.6},
		{freq: 1568.0, dur: ms(120), wave: WaveSine, gain: 0.6},
	},
	core.CueItemUse: {
		{freq: 300, glide: 900, dur: ms(200), wave: WaveSine, gain: 0.6},
	},
	core.CueOneUp: {
		{freq: 659.25, dur: ms(60), wave: WaveSquare, gain: 0.35},
		{freq: 783.99, dur: ms(60), wave: WaveSquare, gain: 0.35},
		{freq: 1318.5, dur: ms(60), wave: WaveSquare, gain: 0.35},
		{freq: 1046.5, dur: ms(60), wave: WaveSquare, gain: 0.35},
		{freq: 1174.7, dur: ms(60), wave: WaveSquare, gain: 0.35},
		{freq: 1568.0, dur: ms(140), wave: WaveSquare, gain: 0.35},
	},
	core.CueFlush: {
		{dur: ms(400), wave: WaveNoise, gain: 0.4},
	},
	core.CueEnemyDeath: {
		{dur: ms(60), wave: WaveNoise, gain: 0.4},
		{freq: 300, glide: 60, dur: ms(180), wave: WaveSquare, gain: 0.35},
	},
	core.CueEnemyAttack: {
		{freq: 500, glide: 250, dur: ms(60), wave: WaveSquare, gain: 0.25},
	},
	core.CueDamage: {
		{freq: 100, dur: ms(150), wave: WaveSaw, gain: 0.6},
	},
}

// CueStreamer synthesises a one-shot streamer for cue
func CueStreamer(cue core.Cue, cfg *Config) (beep.Streamer, error) {
	recipe, ok := cueRecipes[cue]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCue, cue)
	}
	rate := beep.SampleRate(cfg.SampleRate)

	steps := make([]beep.Streamer, 0, len(recipe))
	for _, t := range recipe {
		glide := t.glide
		if glide == 0 {
			glide = t.freq
		}
		osc := NewGlide(t.freq, glide, t.dur, t.wave, rate)
		release := min(parameter.CueRelease, t.dur/2)
		shaped := NewEnvelope(osc, t.dur, parameter.CueAttack, release, rate)
		steps = append(steps, newVolume(shaped, t.gain))
	}

	return newVolume(beep.Seq(steps...), cfg.cueVolume(cue)), nil
}
