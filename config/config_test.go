package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/hexfire/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexfire.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	for _, k := range []string{"HEXFIRE_DIFFICULTY", "HEXFIRE_SEED", "HEXFIRE_AUDIO_ENABLED", "HEXFIRE_MASTER_VOLUME", "HEXFIRE_SAMPLE_RATE", "HEXFIRE_CUE_VOLUMES"} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, found, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if found {
		t.Error("Expected found=false")
	}
	if cfg.Stage.Difficulty != 1 || cfg.Render.Color != ColorAuto {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if cfg.HoldWindow() != 550*time.Millisecond {
		t.Errorf("Expected 550ms hold window, got %v", cfg.HoldWindow())
	}
}

func TestLoadOverlay(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[stage]
difficulty = 1.5
seed = 42

[audio]
master_volume = 0.2

[audio.cue_volumes]
damage = 0.1

[render]
color = "256"

[keys]
f = "attack"
`)
	cfg, found, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !found {
		t.Error("Expected found=true")
	}
	if cfg.Stage.Difficulty != 1.5 || cfg.Stage.Seed != 42 {
		t.Errorf("Expected stage overrides, got %+v", cfg.Stage)
	}
	if cfg.Stage.MaxDelta != 0.1 {
		t.Errorf("Expected untouched max_delta 0.1, got %v", cfg.Stage.MaxDelta)
	}
	if cfg.Audio.MasterVolume != 0.2 || !cfg.Audio.Enabled {
		t.Errorf("Expected audio overlay, got %+v", cfg.Audio)
	}
	if v := cfg.Audio.CueVolumes[core.CueDamage]; v != 0.1 {
		t.Errorf("Expected damage cue volume 0.1, got %v", v)
	}
	if v := cfg.Audio.CueVolumes[core.CueConfirm]; v != 1 {
		t.Errorf("Expected other cue volumes kept, got %v", v)
	}
	if cfg.Render.Color != Color256 {
		t.Errorf("Expected color 256, got %q", cfg.Render.Color)
	}
	if cfg.Keys["f"] != "attack" {
		t.Errorf("Expected key binding, got %v", cfg.Keys)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown key", "[stage]\nlives = 9\n", ErrUnknownKey},
		{"zero difficulty", "[stage]\ndifficulty = 0.0\n", ErrInvalid},
		{"huge delta", "[stage]\nmax_delta = 5.0\n", ErrInvalid},
		{"bad color", "[render]\ncolor = \"cga\"\n", ErrInvalid},
		{"negative window", "[input]\nhold_window_ms = -1\n", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Load(writeConfig(t, tt.body)); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, _, err := Load(writeConfig(t, "[stage\n")); err == nil {
		t.Error("Expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HEXFIRE_DIFFICULTY", "2.5")
	t.Setenv("HEXFIRE_SEED", "7")
	t.Setenv("HEXFIRE_AUDIO_ENABLED", "false")

	path := writeConfig(t, "[stage]\ndifficulty = 1.2\n")
	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Stage.Difficulty != 2.5 {
		t.Errorf("Expected env to win over file, got %v", cfg.Stage.Difficulty)
	}
	if cfg.Stage.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", cfg.Stage.Seed)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled from env")
	}

	t.Setenv("HEXFIRE_DIFFICULTY", "-1")
	if _, _, err := Load(""); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected invalid env difficulty rejected, got %v", err)
	}
}

func TestWriteLoadsBack(t *testing.T) {
	clearEnv(t)
	cfg := Default()
	cfg.Stage.Seed = 99
	cfg.Keys["g"] = "item"

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	loaded, _, err := Load(writeConfig(t, buf.String()))
	if err != nil {
		t.Fatalf("Expected written config to load, got %v", err)
	}
	if loaded.Stage.Seed != 99 || loaded.Keys["g"] != "item" {
		t.Errorf("Expected written values, got %+v", loaded)
	}
}
