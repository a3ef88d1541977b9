package scene

import (
	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/stage"
)

// Play runs the stage and toggles pause on cancel
type Play struct {
	m     *Manager
	stage *stage.Stage
}

func (p *Play) OnEnter() {
	p.stage.OnEnter()
}

func (p *Play) OnUpdate(dt float64) {
	in := p.m.input.State()
	if in.Cancel && p.stage.Phase() == core.PhasePlaying {
		p.stage.SetPaused(!p.stage.Paused())
		p.m.audio.PlayCue(core.CueCancel)
	}

	p.stage.OnUpdate(dt)

	// First outcome ends the run
	if out := p.stage.Outcomes(); len(out) > 0 {
		p.m.finish(out[0], p.stage.Score())
	}
}

func (p *Play) OnExit() {
	p.stage.OnExit()
}

func (p *Play) fill(f *core.Frame) {
	f.View = core.ViewStage
	f.HUD = p.stage.HUD()
	f.Sprites = p.stage.Snapshot(f.Sprites)
}
