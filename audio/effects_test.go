package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hexfire/core"
)

// drain streams s to the end and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0], buf[i][1], -buf[i][1])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	return total, peak
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 50*time.Millisecond, tt.wave, rate)
			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Errorf("Expected 100 samples and ok, got %d %v", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Errorf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("Expected mono sample %d, got %v", i, samples[i])
				}
			}
			if osc.Err() != nil {
				t.Errorf("Expected no error, got %v", osc.Err())
			}
		})
	}
}

func TestOscillatorSquareLevels(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewGlide(400, 80, 100*time.Millisecond, WaveSine, rate)

	total, _ := drain(t, osc, 1<<20)
	if want := rate.N(100 * time.Millisecond); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain, got %v", samples[50][0])
	}
	if samples[99][0] >= samples[85][0] {
		t.Errorf("Expected release to fade, got %v then %v", samples[85][0], samples[99][0])
	}
}

func TestCueStreamers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 1
	for _, cue := range core.AllCues {
		t.Run(string(cue), func(t *testing.T) {
			s, err := CueStreamer(cue, cfg)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			total, peak := drain(t, s, cfg.SampleRate*2)
			if total == 0 || total >= cfg.SampleRate*2 {
				t.Errorf("Expected a finite one-shot, got %d samples", total)
			}
			if peak > 1 {
				t.Errorf("Expected peak within [-1, 1], got %v", peak)
			}
		})
	}
}

func TestCueDamageLength(t *testing.T) {
	cfg := DefaultConfig()
	s, _ := CueStreamer(core.CueDamage, cfg)
	total, _ := drain(t, s, 1<<20)
	if want := beep.SampleRate(cfg.SampleRate).N(150 * time.Millisecond); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestCueMuted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CueVolumes[core.CueFlush] = 0
	s, _ := CueStreamer(core.CueFlush, cfg)
	if _, peak := drain(t, s, 1<<20); peak != 0 {
		t.Errorf("Expected muted cue to be silent, got peak %v", peak)
	}
}

func TestUnknownCue(t *testing.T) {
	if _, err := CueStreamer(core.Cue("fanfare"), DefaultConfig()); !errors.Is(err, ErrUnknownCue) {
		t.Errorf("Expected ErrUnknownCue, got %v", err)
	}
}
