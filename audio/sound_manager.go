package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/parameter"
)

// SoundManager plays synthesised cues and looping tracks through the speaker
// It implements core.AudioSink; every call is a silent no-op until Initialize
// succeeds, so the game runs unchanged without an audio device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	log         zerolog.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	track       core.Track
	lastCue     map[core.Cue]time.Time
	now         func() time.Time
	initialized bool
}

var _ core.AudioSink = (*SoundManager)(nil)

// NewSoundManager creates a manager; a nil config selects the defaults
func NewSoundManager(cfg *Config, log zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:     cfg,
		log:     log.With().Str("component", "audio").Logger(),
		mixer:   &beep.Mixer{},
		lastCue: make(map[core.Cue]time.Time),
		now:     time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
// Returns ErrDisabled when audio is switched off in the config
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info().Int("sample_rate", sm.cfg.SampleRate).Float64("master", sm.cfg.MasterVolume).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.music = nil
	sm.track = ""
	sm.initialized = false
	sm.log.Info().Msg("audio closed")
}

// PlayCue starts a one-shot cue; repeats inside MinSoundGap are dropped
func (sm *SoundManager) PlayCue(cue core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	now := sm.now()
	if last, ok := sm.lastCue[cue]; ok && now.Sub(last) < parameter.MinSoundGap {
		return
	}

	s, err := CueStreamer(cue, sm.cfg)
	if err != nil {
		sm.log.Debug().Err(err).Msg("cue skipped")
		return
	}
	sm.lastCue[cue] = now

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayTrack switches the background loop; replaying the current track is a no-op
func (sm *SoundManager) PlayTrack(track core.Track) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || (sm.track == track && sm.music != nil && !sm.music.Paused) {
		return
	}

	s, err := TrackStreamer(track, sm.cfg)
	if err != nil {
		sm.log.Debug().Err(err).Msg("track skipped")
		return
	}

	ctrl := &beep.Ctrl{Streamer: s}
	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music.Streamer = nil
	}
	sm.mixer.Add(ctrl)
	speaker.Unlock()

	sm.music = ctrl
	sm.track = track
	sm.log.Debug().Str("track", string(track)).Msg("track started")
}

// StopTrack silences the background loop
func (sm *SoundManager) StopTrack() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}

	speaker.Lock()
	sm.music.Paused = true
	sm.music.Streamer = nil
	speaker.Unlock()

	sm.music = nil
	sm.track = ""
}

// Track returns the playing track, empty when silent
func (sm *SoundManager) Track() core.Track {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.track
}
