package core

//go:generate go tool mockgen -destination=./mocks/audio_mock.go -package=mocks . AudioSink

// AudioSink receives sound requests from the simulation
// All calls are fire-and-forget; implementations swallow their own failures
type AudioSink interface {
	PlayCue(cue Cue)
	PlayTrack(track Track)
	StopTrack()
}

// NopAudio discards every request
type NopAudio struct{}

func (NopAudio) PlayCue(Cue)     {}
func (NopAudio) PlayTrack(Track) {}
func (NopAudio) StopTrack()      {}
