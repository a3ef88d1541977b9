package audio

import (
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/service"
)

// AudioService wraps SoundManager as a service
// Handles graceful degradation when no audio backend is available
type AudioService struct {
	sm       *SoundManager
	log      zerolog.Logger
	disabled atomic.Bool
}

var _ service.Service = (*AudioService)(nil)

// NewService creates a new audio service
func NewService(cfg *Config, log zerolog.Logger) *AudioService {
	return &AudioService{
		sm:  NewSoundManager(cfg, log),
		log: log.With().Str("component", "audio").Logger(),
	}
}

// Name implements service.Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements service.Service
// Opens the speaker; sets the disabled flag on failure, no error returned
func (s *AudioService) Init() error {
	if err := s.sm.Initialize(); err != nil {
		s.disabled.Store(true)
		if errors.Is(err, ErrDisabled) {
			s.log.Info().Msg("audio disabled by config")
		} else {
			s.log.Warn().Err(err).Msg("audio unavailable, continuing silent")
		}
	}
	return nil
}

// Start implements service.Service; the mixer runs from Init
func (s *AudioService) Start() error {
	return nil
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	s.sm.Cleanup()
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Sink returns the audio sink for the simulation
// A disabled service hands out core.NopAudio
func (s *AudioService) Sink() core.AudioSink {
	if s.disabled.Load() {
		return core.NopAudio{}
	}
	return s.sm
}
