// Package scene sequences the title, stage and result screens and turns the
// current screen into a presentation frame
package scene

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/stage"
)

// framer is implemented by scenes that contribute to the presentation frame
type framer interface {
	fill(f *core.Frame)
}

// Manager owns the scene set and drives the current one
// Transitions requested during an update take effect after it returns
// Not safe for concurrent use
type Manager struct {
	input core.InputProvider
	audio core.AudioSink
	log   zerolog.Logger

	title  *Title
	play   *Play
	result *Result

	current core.Scene
	next    core.Scene
	started bool
	done    bool
	best    int
	elapsed float64
}

// NewManager builds the scene set; nil audio is replaced by core.NopAudio
func NewManager(input core.InputProvider, audio core.AudioSink, opts stage.Options, log zerolog.Logger) *Manager {
	if audio == nil {
		audio = core.NopAudio{}
	}
	m := &Manager{
		input: input,
		audio: audio,
		log:   log.With().Str("component", "scene").Logger(),
	}
	m.title = &Title{m: m}
	m.play = &Play{m: m, stage: stage.New(input, audio, opts, log)}
	m.result = &Result{m: m}
	return m
}

// Start enters the title scene
func (m *Manager) Start() {
	if m.started {
		return
	}
	m.started = true
	m.current = m.title
	m.current.OnEnter()
}

// Update advances the current scene, then applies any requested transition
func (m *Manager) Update(dt float64) {
	if !m.started || m.done {
		return
	}
	m.elapsed += dt
	m.current.OnUpdate(dt)

	if m.next != nil {
		m.current.OnExit()
		m.current, m.next = m.next, nil
		m.current.OnEnter()
		if _, ok := m.current.(quitScene); ok {
			m.done = true
		}
	}
}

// Frame fills f for the current scene, reusing its sprite slice
func (m *Manager) Frame(f *core.Frame) {
	sprites := f.Sprites[:0]
	*f = core.Frame{Sprites: sprites, Time: m.elapsed, Score: m.best}
	if fr, ok := m.current.(framer); ok {
		fr.fill(f)
	}
}

// Stop exits the current scene and marks the manager done
func (m *Manager) Stop() {
	if m.done {
		return
	}
	if m.current != nil {
		m.current.OnExit()
	}
	m.done = true
}

// Done reports whether the player asked to leave
func (m *Manager) Done() bool { return m.done }

// Best returns the best score of the session
func (m *Manager) Best() int { return m.best }

// Current returns the active scene
func (m *Manager) Current() core.Scene { return m.current }

// Stage returns the stage driven by the play scene
func (m *Manager) Stage() *stage.Stage { return m.play.stage }

func (m *Manager) change(next core.Scene) {
	m.next = next
}

// finish records a stage outcome and moves to the result scene
func (m *Manager) finish(o core.Outcome, score int) {
	if score > m.best {
		m.best = score
	}
	m.result.outcome = o
	m.result.score = score
	m.log.Info().Str("outcome", o.String()).Int("score", score).Int("best", m.best).Msg("stage finished")
	m.change(m.result)
}

// quit exits the current scene at the end of the update
func (m *Manager) quit() {
	m.log.Info().Msg("quit requested")
	m.change(quitScene{})
}

// quitScene is the terminal state; entering it ends the session
type quitScene struct{}

func (quitScene) OnEnter()         {}
func (quitScene) OnUpdate(float64) {}
func (quitScene) OnExit()          {}
