package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyByName is the lowercased reverse of tcell.KeyNames
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// KeyMap binds runes and special keys to actions
type KeyMap struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultKeyMap returns arrows, WASD and vi-style hjkl movement,
// space/z to attack, x for the item, enter/escape for confirm/cancel
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Runes: map[rune]Action{
			'w': ActionUp, 'k': ActionUp,
			's': ActionDown, 'j': ActionDown,
			'a': ActionLeft, 'h': ActionLeft,
			'd': ActionRight, 'l': ActionRight,
			' ': ActionAttack, 'z': ActionAttack,
			'x': ActionItem,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEnter:  ActionConfirm,
			tcell.KeyEscape: ActionCancel,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Lookup resolves a key event to its action
func (m *KeyMap) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return m.Runes[r]
	}
	return m.Keys[key]
}

// Apply overlays bindings of key name to action name onto the map
// Key names are single characters, a rune alias ("space") or a tcell key name
// ("Enter", "Ctrl-C", case-insensitive); binding to "none" removes the key
func (m *KeyMap) Apply(bindings map[string]string) error {
	for keyStr, actionName := range bindings {
		action, err := ParseAction(actionName)
		if err != nil {
			return fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			if action == ActionNone {
				delete(m.Runes, r)
			} else {
				m.Runes[r] = action
			}
			continue
		}

		k, ok := keyByName[strings.ToLower(keyStr)]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKey, keyStr)
		}
		if action == ActionNone {
			delete(m.Keys, k)
		} else {
			m.Keys[k] = action
		}
	}
	return nil
}

// NewKeyMap returns the default map with bindings applied
func NewKeyMap(bindings map[string]string) (*KeyMap, error) {
	m := DefaultKeyMap()
	if err := m.Apply(bindings); err != nil {
		return nil, err
	}
	return m, nil
}

func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, true
	}
	return 0, false
}
