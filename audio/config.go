package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/parameter"
)

// Config is the audio section of the game configuration
type Config struct {
	Enabled      bool                 `toml:"enabled"`
	MasterVolume float64              `toml:"master_volume"`
	MusicVolume  float64              `toml:"music_volume"`
	SampleRate   int                  `toml:"sample_rate"`
	CueVolumes   map[core.Cue]float64 `toml:"cue_volumes"`
}

// DefaultConfig returns audio enabled at the default volumes
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		MusicVolume:  parameter.AudioMusicVolume,
		SampleRate:   parameter.AudioSampleRate,
		CueVolumes:   make(map[core.Cue]float64, len(core.AllCues)),
	}
	for _, c := range core.AllCues {
		cfg.CueVolumes[c] = 1.0
	}
	cfg.CueVolumes[core.CueEnemyAttack] = 0.5
	cfg.CueVolumes[core.CueAttackSmall] = 0.7
	return cfg
}

// ApplyEnv overrides fields from HEXFIRE_* environment variables
// Malformed values are ignored
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("HEXFIRE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("HEXFIRE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if cueVols := os.Getenv("HEXFIRE_CUE_VOLUMES"); cueVols != "" {
		var volumes map[core.Cue]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			if c.CueVolumes == nil {
				c.CueVolumes = make(map[core.Cue]float64, len(volumes))
			}
			for cue, v := range volumes {
				c.CueVolumes[cue] = v
			}
		}
	}

	if sampleRate := os.Getenv("HEXFIRE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}

// LoadConfig returns the defaults with environment overrides applied
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	return cfg
}

// cueVolume returns the effective gain for a cue, master volume included
func (c *Config) cueVolume(cue core.Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
