package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/parameter"
)

// setupLogging routes all logging into dir/hexfire.log when debug is set
// The terminal belongs to the renderer, so nothing is ever written to stdout or stderr
// Returns the open file for the caller to close, nil when logging is off
func setupLogging(dir string, debug bool) (*os.File, zerolog.Logger) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, zerolog.Nop()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, zerolog.Nop()
	}

	path := filepath.Join(dir, parameter.LogFileName)
	rotateLog(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, zerolog.Nop()
	}

	log.SetOutput(f)
	logger := zerolog.New(f).With().Timestamp().Logger()
	return f, logger
}

// rotateLog renames an oversized log out of the way, keeping a timestamp suffix
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= parameter.MaxLogSize {
		return
	}
	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	_ = os.Rename(path, rotated)
}
