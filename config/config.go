// Package config loads hexfire.toml and applies HEXFIRE_* environment overrides
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/hexfire/audio"
	"github.com/lixenwraith/hexfire/parameter"
)

// Sentinel errors
var (
	ErrUnknownKey = errors.New("unknown config key")
	ErrInvalid    = errors.New("invalid config value")
)

// Color modes accepted by [render] color
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// StageConfig is the [stage] section
type StageConfig struct {
	Difficulty float64 `toml:"difficulty"`
	Seed       uint64  `toml:"seed"`
	MaxDelta   float64 `toml:"max_delta"`
}

// RenderConfig is the [render] section
type RenderConfig struct {
	Color   string `toml:"color"`
	Sprites string `toml:"sprites"` // optional sprite table override file
}

// InputConfig is the [input] section, windows in milliseconds
type InputConfig struct {
	HoldWindow   int `toml:"hold_window_ms"`
	RepeatWindow int `toml:"repeat_window_ms"`
}

// LogConfig is the [log] section
type LogConfig struct {
	Dir   string `toml:"dir"`
	Level string `toml:"level"`
}

// Config is the full game configuration
type Config struct {
	Stage  StageConfig       `toml:"stage"`
	Audio  audio.Config      `toml:"audio"`
	Render RenderConfig      `toml:"render"`
	Input  InputConfig       `toml:"input"`
	Keys   map[string]string `toml:"keys"`
	Log    LogConfig         `toml:"log"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Stage: StageConfig{
			Difficulty: parameter.DefaultDifficulty,
			MaxDelta:   parameter.MaxDeltaSeconds,
		},
		Audio:  *audio.DefaultConfig(),
		Render: RenderConfig{Color: ColorAuto},
		Input: InputConfig{
			HoldWindow:   int(parameter.HoldInitialWindow / time.Millisecond),
			RepeatWindow: int(parameter.HoldRepeatWindow / time.Millisecond),
		},
		Keys: map[string]string{},
		Log:  LogConfig{Dir: parameter.LogDir, Level: "debug"},
	}
}

// Load reads path over the defaults, then applies the environment
// A missing file is not an error; found reports whether one was read
func Load(path string) (cfg *Config, found bool, err error) {
	cfg = Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.Decode(data); err != nil {
				return nil, false, fmt.Errorf("%s: %w", path, err)
			}
			found = true
		case !errors.Is(err, os.ErrNotExist):
			return nil, false, fmt.Errorf("config read: %w", err)
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, found, err
	}
	return cfg, found, nil
}

// Decode overlays TOML data; keys absent from data keep their values
func (c *Config) Decode(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("config parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv applies HEXFIRE_* overrides; malformed values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("HEXFIRE_DIFFICULTY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Stage.Difficulty = f
		}
	}
	if v := os.Getenv("HEXFIRE_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Stage.Seed = n
		}
	}
	c.Audio.ApplyEnv()
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	if c.Stage.Difficulty <= 0 {
		return fmt.Errorf("%w: stage.difficulty %v must be positive", ErrInvalid, c.Stage.Difficulty)
	}
	if c.Stage.MaxDelta <= 0 || c.Stage.MaxDelta > 1 {
		return fmt.Errorf("%w: stage.max_delta %v must be in (0, 1]", ErrInvalid, c.Stage.MaxDelta)
	}
	switch c.Render.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: render.color %q", ErrInvalid, c.Render.Color)
	}
	if c.Input.HoldWindow < 0 || c.Input.RepeatWindow < 0 {
		return fmt.Errorf("%w: input windows must not be negative", ErrInvalid)
	}
	return nil
}

// Write encodes the configuration as TOML
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// HoldWindow returns the initial key hold window
func (c *Config) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldWindow) * time.Millisecond
}

// RepeatWindow returns the auto-repeat hold window
func (c *Config) RepeatWindow() time.Duration {
	return time.Duration(c.Input.RepeatWindow) * time.Millisecond
}
