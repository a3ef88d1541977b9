package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/event"
)

// seqRandom replays a fixed sequence, cycling when exhausted
type seqRandom struct {
	vals []float64
	i    int
}

func (r *seqRandom) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func constRandom(v float64) *seqRandom {
	return &seqRandom{vals: []float64{v}}
}

// fakeInput is a scripted input provider
type fakeInput struct {
	state  core.InputState
	held   float64
	resets int
}

func (f *fakeInput) State() core.InputState { return f.state }

func (f *fakeInput) AttackDuration() float64 {
	d := f.held
	if !f.state.Attack {
		f.held = 0
	}
	return d
}

func (f *fakeInput) ResetAttackCharge() {
	f.held = 0
	f.resets++
}

// cueRecorder collects everything sent to the audio sink
type cueRecorder struct {
	cues   []core.Cue
	tracks []core.Track
	stops  int
}

func (r *cueRecorder) PlayCue(c core.Cue)     { r.cues = append(r.cues, c) }
func (r *cueRecorder) PlayTrack(t core.Track) { r.tracks = append(r.tracks, t) }
func (r *cueRecorder) StopTrack()             { r.stops++ }

func (r *cueRecorder) count(c core.Cue) int {
	n := 0
	for _, x := range r.cues {
		if x == c {
			n++
		}
	}
	return n
}

type playerFixture struct {
	player  *Player
	bullets *BulletManager
	input   *fakeInput
	sched   *event.Scheduler
	audio   *cueRecorder
}

// newReadyPlayer returns a player past its intro glide at the anchor
func newReadyPlayer() *playerFixture {
	f := &playerFixture{
		bullets: NewBulletManager(zerolog.Nop()),
		input:   &fakeInput{},
		sched:   event.NewScheduler(),
		audio:   &cueRecorder{},
	}
	f.player = NewPlayer(f.bullets, f.input, f.sched, f.audio, constRandom(0.5), zerolog.Nop())
	f.player.intro = false
	f.player.pos[0] = -5
	return f
}

func newEnemyManager(rng Random, audio core.AudioSink) (*EnemyManager, *BulletManager) {
	bullets := NewBulletManager(zerolog.Nop())
	return NewEnemyManager(bullets, audio, rng, 1, zerolog.Nop()), bullets
}
