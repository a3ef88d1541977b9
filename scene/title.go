package scene

import "github.com/lixenwraith/hexfire/core"

// Title waits for the player to start or leave
type Title struct {
	m *Manager
}

func (t *Title) OnEnter() {
	t.m.audio.PlayTrack(core.TrackTitle)
}

func (t *Title) OnUpdate(float64) {
	in := t.m.input.State()
	switch {
	case in.Confirm:
		t.m.audio.PlayCue(core.CueConfirm)
		t.m.change(t.m.play)
	case in.Cancel:
		t.m.audio.PlayCue(core.CueCancel)
		t.m.quit()
	}
}

func (t *Title) OnExit() {
	t.m.audio.StopTrack()
}

func (t *Title) fill(f *core.Frame) {
	f.View = core.ViewTitle
}
