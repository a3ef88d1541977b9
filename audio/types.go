package audio

import "errors"

// Sentinel errors
var (
	ErrUnknownCue   = errors.New("unknown cue")
	ErrUnknownTrack = errors.New("unknown track")
	ErrDisabled     = errors.New("audio disabled")
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)
