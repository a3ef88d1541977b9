package input

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned for a keymap entry naming no action
var ErrUnknownAction = errors.New("unknown action")

// ErrUnknownKey is returned for a keymap entry naming no key
var ErrUnknownKey = errors.New("unknown key")

// Action is a logical control bound to one or more keys
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionAttack
	ActionItem
	ActionConfirm
	ActionCancel
	ActionQuit
	actionCount
)

var actionNames = [...]string{
	"none", "up", "down", "left", "right",
	"attack", "item", "confirm", "cancel", "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// held reports whether the action is sampled as a level rather than an edge
func (a Action) held() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionAttack:
		return true
	}
	return false
}

// ParseAction resolves a keymap action name
// "none" is valid and unbinds the key
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
