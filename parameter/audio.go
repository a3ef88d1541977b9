package parameter

import "time"

// Audio Output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer; lower is snappier, higher is safer
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master gain in [0, 1]
	AudioMasterVolume = 0.5

	// AudioMusicVolume scales every track under the cues
	AudioMusicVolume = 0.35

	// MinSoundGap suppresses repeats of the same cue within the window
	MinSoundGap = 50 * time.Millisecond
)

// Cue Envelope
const (
	CueAttack  = 5 * time.Millisecond
	CueRelease = 40 * time.Millisecond
)

// Track Sequencing
const (
	// TrackStepDuration is one sixteenth at the default tempo
	TrackStepDuration = 125 * time.Millisecond
	TrackStepRelease  = 60 * time.Millisecond
)
