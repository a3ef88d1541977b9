// Command hexfire is the terminal front-end for the side-scrolling shooter
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/hexfire/asset"
	"github.com/lixenwraith/hexfire/audio"
	"github.com/lixenwraith/hexfire/config"
	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/engine"
	"github.com/lixenwraith/hexfire/input"
	"github.com/lixenwraith/hexfire/parameter"
	"github.com/lixenwraith/hexfire/render"
	"github.com/lixenwraith/hexfire/scene"
	"github.com/lixenwraith/hexfire/service"
	"github.com/lixenwraith/hexfire/stage"
)

var (
	configFlag      = flag.String("config", "hexfire.toml", "Path to the TOML config file")
	debugFlag       = flag.Bool("debug", false, "Write debug logs to the log directory")
	colorFlag       = flag.String("color", "", "Color mode override: auto, truecolor, 256")
	writeConfigFlag = flag.Bool("write-config", false, "Print the effective configuration as TOML and exit")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hexfire: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, found, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *colorFlag != "" {
		cfg.Render.Color = *colorFlag
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if *writeConfigFlag {
		return cfg.Write(os.Stdout)
	}

	logFile, logger := setupLogging(cfg.Log.Dir, *debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		logger = logger.Level(lvl)
	}
	logger.Info().Str("config", *configFlag).Bool("found", found).Msg("starting")

	sprites, err := asset.LoadDefault()
	if err != nil {
		return fmt.Errorf("sprite table: %w", err)
	}
	if cfg.Render.Sprites != "" {
		if err := sprites.MergeFile(cfg.Render.Sprites); err != nil {
			logger.Warn().Err(err).Str("path", cfg.Render.Sprites).Msg("sprite override ignored")
		}
	}

	keymap, err := input.NewKeyMap(cfg.Keys)
	if err != nil {
		return fmt.Errorf("keymap: %w", err)
	}

	hub := service.NewHub(logger)
	term := render.NewService(nil, logger)
	sound := audio.NewService(&cfg.Audio, logger)
	for _, svc := range []service.Service{term, sound} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	defer hub.StopAll()
	if err := hub.StartAll(); err != nil {
		return err
	}

	screen := term.Screen()
	renderer := render.NewTerminalRenderer(screen, sprites, render.ParseColorMode(cfg.Render.Color), logger)

	tp := engine.NewMonotonicTimeProvider()
	kb := input.NewKeyboard(tp, keymap, input.KeyboardConfig{
		InitialWindow: cfg.HoldWindow(),
		RepeatWindow:  cfg.RepeatWindow(),
	}, logger)

	scenes := scene.NewManager(kb, sound.Sink(), stage.Options{
		Difficulty: cfg.Stage.Difficulty,
		MaxDelta:   cfg.Stage.MaxDelta,
		Seed:       cfg.Stage.Seed,
	}, logger)
	scenes.Start()
	defer scenes.Stop()

	var frame core.Frame
	step := func(dt float64) error {
	drain:
		for {
			select {
			case ev := <-term.Events():
				if _, ok := ev.(*tcell.EventResize); ok {
					screen.Sync()
					renderer.Resize()
					continue
				}
				kb.HandleEvent(ev)
			default:
				break drain
			}
		}

		kb.Update()
		if kb.QuitRequested() {
			return engine.ErrQuit
		}

		scenes.Update(dt)
		if scenes.Done() {
			return engine.ErrQuit
		}

		scenes.Frame(&frame)
		renderer.Render(&frame)
		return nil
	}

	clock := engine.NewClock(tp, cfg.Stage.MaxDelta)
	loop := engine.NewLoop(clock, parameter.FrameUpdateInterval, step, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, cancel := context.WithCancel(gctx)

	g.Go(func() error {
		defer crashGuard(hub, "EVENT POLLER")
		return term.Poll(loopCtx)
	})
	g.Go(func() error {
		defer crashGuard(hub, "GAME LOOP")
		// Cancel first so Poll treats the screen shutdown as requested
		defer term.Stop()
		defer cancel()
		return loop.Run(loopCtx)
	})

	err = g.Wait()
	logger.Info().Int("best", scenes.Best()).Uint64("frames", clock.Frame()).Msg("exiting")
	return err
}

// crashGuard restores the terminal and reports a panic from a loop goroutine
func crashGuard(hub *service.Hub, where string) {
	if r := recover(); r != nil {
		hub.StopAll()
		// Use \r\n for raw mode compatibility to avoid zig-zag output
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mHEXFIRE %s CRASHED: %v\x1b[0m\r\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
