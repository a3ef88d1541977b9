package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/engine"
	"github.com/lixenwraith/hexfire/parameter"
)

// hold tracks one level-sampled action between press and inferred release
type hold struct {
	down    bool
	since   time.Time // first press
	last    time.Time // latest press or repeat
	repeats int
}

// Keyboard is the terminal input provider
// Key events are fed with HandleEvent; Update latches one frame of state
// Not safe for concurrent use: feed and sample from the loop goroutine
type Keyboard struct {
	tp      engine.TimeProvider
	keymap  *KeyMap
	initial time.Duration
	repeat  time.Duration
	log     zerolog.Logger

	holds    [actionCount]hold
	pending  [actionCount]bool
	frame    core.InputState
	released float64
	quit     bool
}

// KeyboardConfig tunes hold inference; zero fields select defaults
type KeyboardConfig struct {
	InitialWindow time.Duration
	RepeatWindow  time.Duration
}

// NewKeyboard creates a keyboard provider; a nil keymap selects the defaults
func NewKeyboard(tp engine.TimeProvider, keymap *KeyMap, cfg KeyboardConfig, log zerolog.Logger) *Keyboard {
	if keymap == nil {
		keymap = DefaultKeyMap()
	}
	if cfg.InitialWindow <= 0 {
		cfg.InitialWindow = parameter.HoldInitialWindow
	}
	if cfg.RepeatWindow <= 0 {
		cfg.RepeatWindow = parameter.HoldRepeatWindow
	}
	return &Keyboard{
		tp:      tp,
		keymap:  keymap,
		initial: cfg.InitialWindow,
		repeat:  cfg.RepeatWindow,
		log:     log.With().Str("component", "keyboard").Logger(),
	}
}

// HandleEvent consumes a tcell event, returning true for a bound key
func (k *Keyboard) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return k.HandleKey(key.Key(), key.Rune()) != ActionNone
}

// HandleKey records a press or auto-repeat and returns the bound action
func (k *Keyboard) HandleKey(key tcell.Key, r rune) Action {
	a := k.keymap.Lookup(key, r)
	if a == ActionNone {
		return a
	}

	now := k.tp.Now()
	if a.held() {
		h := &k.holds[a]
		if !h.down {
			*h = hold{down: true, since: now}
		} else {
			h.repeats++
		}
		h.last = now
		return a
	}

	if a == ActionQuit {
		k.quit = true
		k.log.Debug().Msg("quit requested")
	}
	k.pending[a] = true
	return a
}

// Update expires holds whose repeats stopped and latches the frame state
// Call once per frame before the simulation samples State
func (k *Keyboard) Update() {
	now := k.tp.Now()
	for a := range k.holds {
		h := &k.holds[a]
		if !h.down || now.Sub(h.last) <= k.window(h) {
			continue
		}
		h.down = false
		if Action(a) == ActionAttack {
			k.released = max(h.last.Sub(h.since).Seconds(), parameter.HoldTapSeconds)
		}
	}

	k.frame = core.InputState{
		Up:      k.holds[ActionUp].down,
		Down:    k.holds[ActionDown].down,
		Left:    k.holds[ActionLeft].down,
		Right:   k.holds[ActionRight].down,
		Attack:  k.holds[ActionAttack].down,
		Item:    k.pending[ActionItem],
		Confirm: k.pending[ActionConfirm],
		Cancel:  k.pending[ActionCancel],
	}
	clear(k.pending[:])
}

func (k *Keyboard) window(h *hold) time.Duration {
	if h.repeats == 0 {
		return k.initial
	}
	return k.repeat
}

// State returns the flags latched by the last Update
func (k *Keyboard) State() core.InputState {
	return k.frame
}

// AttackDuration returns the live hold time while attack is latched as held,
// otherwise the completed hold once
func (k *Keyboard) AttackDuration() float64 {
	if k.frame.Attack {
		return k.tp.Now().Sub(k.holds[ActionAttack].since).Seconds()
	}
	d := k.released
	k.released = 0
	return d
}

// ResetAttackCharge drops a completed hold and restarts a live one from now
func (k *Keyboard) ResetAttackCharge() {
	k.released = 0
	if h := &k.holds[ActionAttack]; h.down {
		h.since = k.tp.Now()
	}
}

// QuitRequested reports whether a quit key was pressed
func (k *Keyboard) QuitRequested() bool {
	return k.quit
}
