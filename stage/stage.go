// Package stage runs one play stage: it owns the entity managers, steps them in
// a fixed order each frame, arbitrates collisions, keeps score and reports the
// victory and game-over outcomes to the scene layer
package stage

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/event"
	"github.com/lixenwraith/hexfire/parameter"
	"github.com/lixenwraith/hexfire/system"
	"github.com/lixenwraith/hexfire/vmath"
)

// Options configures a stage run
type Options struct {
	Difficulty float64 // Enemy hp and spawn chance factor, <= 0 selects the default
	MaxDelta   float64 // Frame delta clamp in seconds, <= 0 selects the default
	Seed       uint64  // Random seed, 0 draws from the runtime

	// Random overrides Seed when set
	Random system.Random
}

// Stage is the play-stage director; it implements core.Scene
// Not safe for concurrent use
type Stage struct {
	opts  Options
	input core.InputProvider
	audio core.AudioSink
	base  zerolog.Logger
	log   zerolog.Logger
	runID uuid.UUID

	sched    *event.Scheduler
	rng      system.Random
	player   *system.Player
	bullets  *system.BulletManager
	enemies  *system.EnemyManager
	items    *system.ItemManager
	scroller *system.Scroller

	entered       bool
	paused        bool
	phase         core.Phase
	transitioning bool
	bossWasActive bool
	score         int
	displayScore  int
	outcomes      []core.Outcome
	hud           core.HUD
}

// New creates a stage; managers are built on OnEnter
func New(input core.InputProvider, audio core.AudioSink, opts Options, log zerolog.Logger) *Stage {
	if opts.Difficulty <= 0 {
		opts.Difficulty = parameter.DefaultDifficulty
	}
	if opts.MaxDelta <= 0 {
		opts.MaxDelta = parameter.MaxDeltaSeconds
	}
	if audio == nil {
		audio = core.NopAudio{}
	}
	return &Stage{
		opts:  opts,
		input: input,
		audio: audio,
		base:  log,
		log:   log.With().Str("component", "stage").Logger(),
	}
}

// OnEnter builds a fresh set of managers and starts the stage music
func (s *Stage) OnEnter() {
	s.runID = uuid.New()
	run := s.base.With().Str("run_id", s.runID.String()).Logger()
	s.log = run.With().Str("component", "stage").Logger()

	s.rng = s.opts.Random
	if s.rng == nil {
		s.rng = system.NewRandom(s.opts.Seed)
	}

	s.sched = event.NewScheduler()
	s.bullets = system.NewBulletManager(run)
	s.items = system.NewItemManager(run)
	s.enemies = system.NewEnemyManager(s.bullets, s.audio, s.rng, s.opts.Difficulty, run)
	s.player = system.NewPlayer(s.bullets, s.input, s.sched, s.audio, s.rng, run)
	s.scroller = system.NewScroller()

	s.entered = true
	s.paused = false
	s.phase = core.PhasePlaying
	s.transitioning = false
	s.bossWasActive = false
	s.score = 0
	s.displayScore = 0
	s.outcomes = s.outcomes[:0]

	s.audio.PlayTrack(core.TrackGame)
	s.project()
	s.log.Info().Float64("difficulty", s.opts.Difficulty).Msg("stage entered")
}

// OnUpdate advances the simulation by dt, clamped to the configured maximum
// Order: scheduled events, player, bullets, enemies, items, scroll, collisions,
// compaction, HUD projection, terminal conditions
func (s *Stage) OnUpdate(dt float64) {
	if !s.entered {
		return
	}
	if s.paused {
		s.hud.Paused = true
		return
	}
	dt = vmath.Clamp(dt, 0, s.opts.MaxDelta)

	s.sched.Advance(dt)
	s.player.Update(dt)
	s.bullets.Update(dt)
	s.enemies.Update(dt, s.player)
	s.items.Update(dt)
	s.scroller.Update(dt)

	s.resolveCollisions()
	s.bullets.Compact()

	s.tickScore()
	s.project()
	s.checkTerminal()
	s.hud.Phase = s.phase
}

// OnExit cancels everything pending and drops all entities
func (s *Stage) OnExit() {
	if !s.entered {
		return
	}
	s.player.CancelRespawn()
	s.sched.Clear()
	s.bullets.Clear()
	s.enemies.Clear()
	s.items.Clear()
	s.audio.StopTrack()
	s.entered = false
	s.log.Info().Int("score", s.score).Float64("stage_time", s.enemies.StageTime()).Msg("stage exited")
}

// checkTerminal raises victory once a defeated boss is gone, and game over
// once the last life is lost; each outcome is emitted after its delay
func (s *Stage) checkTerminal() {
	if s.phase != core.PhasePlaying {
		return
	}

	if s.bossWasActive && !s.enemies.BossActive() && !s.transitioning {
		if s.enemies.BossDefeated() {
			s.victory()
			return
		}
		// Boss left the pool without lethal damage
		s.log.Warn().Msg("boss gone without defeat, victory withheld")
		s.bossWasActive = false
	}

	if s.player.Lives() < 0 {
		s.gameOver()
	}
}

func (s *Stage) victory() {
	s.transitioning = true
	s.phase = core.PhaseVictory
	s.audio.StopTrack()
	s.sched.Schedule(parameter.VictoryDelay, event.KindVictory, func() {
		s.emit(core.OutcomeVictory)
	})
	s.log.Info().Int("score", s.score).Msg("victory")
}

func (s *Stage) gameOver() {
	s.phase = core.PhaseGameOver
	s.audio.StopTrack()
	s.sched.Schedule(parameter.GameOverDelay, event.KindGameOver, func() {
		s.emit(core.OutcomeGameOver)
	})
	s.log.Info().Int("score", s.score).Msg("game over")
}

func (s *Stage) emit(o core.Outcome) {
	s.transitioning = true
	s.outcomes = append(s.outcomes, o)
}

// Outcomes drains the outcomes emitted since the last call
func (s *Stage) Outcomes() []core.Outcome {
	if len(s.outcomes) == 0 {
		return nil
	}
	out := make([]core.Outcome, len(s.outcomes))
	copy(out, s.outcomes)
	s.outcomes = s.outcomes[:0]
	return out
}

// SetPaused freezes or resumes the stage clock
func (s *Stage) SetPaused(p bool) {
	if s.paused == p {
		return
	}
	s.paused = p
	s.hud.Paused = p
	s.log.Debug().Bool("paused", p).Msg("pause toggled")
}

func (s *Stage) Paused() bool           { return s.paused }
func (s *Stage) Phase() core.Phase      { return s.phase }
func (s *Stage) Score() int             { return s.score }
func (s *Stage) StageTime() float64     { return s.enemies.StageTime() }
func (s *Stage) ScrollOffset() float64  { return s.scroller.Offset() }
func (s *Stage) RunID() uuid.UUID       { return s.runID }
func (s *Stage) Player() *system.Player { return s.player }
