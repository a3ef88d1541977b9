package render

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/parameter"
	"github.com/lixenwraith/hexfire/service"
)

// ErrScreenClosed is returned by Poll when the screen goes away underneath it
var ErrScreenClosed = errors.New("screen closed")

// ScreenFactory creates an uninitialised screen
type ScreenFactory func() (tcell.Screen, error)

// TerminalService owns the tcell screen and its event stream
type TerminalService struct {
	factory ScreenFactory
	log     zerolog.Logger
	screen  tcell.Screen
	events  chan tcell.Event

	mu      sync.Mutex
	running bool
	closed  bool
}

var _ service.Service = (*TerminalService)(nil)

// NewService creates a terminal service; nil factory selects tcell.NewScreen
func NewService(factory ScreenFactory, log zerolog.Logger) *TerminalService {
	if factory == nil {
		factory = tcell.NewScreen
	}
	return &TerminalService{
		factory: factory,
		log:     log.With().Str("component", "terminal").Logger(),
		events:  make(chan tcell.Event, parameter.InputChannelSize),
	}
}

// Name implements service.Service
func (s *TerminalService) Name() string {
	return "terminal"
}

// Dependencies implements service.Service
func (s *TerminalService) Dependencies() []string {
	return nil
}

// Init implements service.Service; takes over the terminal
func (s *TerminalService) Init() error {
	screen, err := s.factory()
	if err != nil {
		return fmt.Errorf("terminal create: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.Clear()

	s.mu.Lock()
	s.screen = screen
	s.closed = false
	s.mu.Unlock()

	w, h := screen.Size()
	s.log.Info().Int("width", w).Int("height", h).Msg("terminal initialized")
	return nil
}

// Start implements service.Service; polling runs on the caller's goroutine via Poll
func (s *TerminalService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen == nil {
		return fmt.Errorf("terminal start: %w", ErrScreenClosed)
	}
	s.running = true
	return nil
}

// Poll forwards screen events to Events until ctx ends or the screen closes
// Returns nil when the close was requested through ctx
func (s *TerminalService) Poll(ctx context.Context) error {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			if ctx.Err() != nil {
				return nil
			}
			return ErrScreenClosed
		}
		select {
		case s.events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// Events returns the buffered event stream fed by Poll
func (s *TerminalService) Events() <-chan tcell.Event {
	return s.events
}

// Screen returns the initialised screen, nil before Init
func (s *TerminalService) Screen() tcell.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// Stop implements service.Service; restores the terminal, unblocking Poll
func (s *TerminalService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen == nil || s.closed {
		return nil
	}
	s.closed = true
	s.running = false
	s.screen.Fini()
	s.log.Info().Msg("terminal restored")
	return nil
}
