package scene

import "github.com/lixenwraith/hexfire/core"

// Result shows the outcome of the last stage until confirmed
type Result struct {
	m       *Manager
	outcome core.Outcome
	score   int
}

func (r *Result) OnEnter() {
	if r.outcome == core.OutcomeVictory {
		r.m.audio.PlayTrack(core.TrackEpilogue)
	} else {
		r.m.audio.PlayTrack(core.TrackGameOver)
	}
}

func (r *Result) OnUpdate(float64) {
	if r.m.input.State().Confirm {
		r.m.audio.PlayCue(core.CueConfirm)
		r.m.change(r.m.title)
	}
}

func (r *Result) OnExit() {
	r.m.audio.StopTrack()
}

func (r *Result) fill(f *core.Frame) {
	f.View = core.ViewResult
	f.Outcome = r.outcome
	f.Score = r.score
}
