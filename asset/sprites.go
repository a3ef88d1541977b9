// Package asset resolves presentation sprites to glyphs and colours
// A missing entry never fails a frame: it resolves to a flat placeholder
package asset

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/hexfire/core"
)

// ErrBadSprite is returned for an entry with an unusable glyph or color
var ErrBadSprite = errors.New("bad sprite entry")

// PlaceholderGlyph draws any sprite without a table entry
const PlaceholderGlyph = '█'

// placeholderColors are the flat fallback colours per sprite key
var placeholderColors = map[string]core.RGB{
	"enemy.ghost":    core.Hex(0xaaaaaa),
	"enemy.skeleton": core.Hex(0xdddddd),
	"enemy.dragon":   core.Hex(0x00ff00),
	"enemy.boss":     core.Hex(0x8b4513),
	"enemy.itembox":  core.Hex(0x808080),
	"item.health":    core.RGBRed,
	"item.magic":     core.RGBBlue,
}

// Entry is one resolved sprite
type Entry struct {
	Glyph       rune
	Color       core.RGB
	Placeholder bool
}

type spriteDef struct {
	Glyph string `toml:"glyph"`
	Color string `toml:"color"`
}

type spriteFile struct {
	Sprites map[string]spriteDef `toml:"sprite"`
}

// Table maps sprite keys to entries
type Table struct {
	entries map[string]Entry
}

// NewTable returns an empty table; every lookup yields a placeholder
func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// LoadDefault parses the built-in sprite table
func LoadDefault() (*Table, error) {
	t := NewTable()
	if err := t.Merge([]byte(DefaultSpriteConfig)); err != nil {
		return nil, err
	}
	return t, nil
}

// MergeFile overlays entries from a TOML file on disk
func (t *Table) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("sprite file: %w", err)
	}
	return t.Merge(data)
}

// Merge overlays entries parsed from TOML data
// The table is unchanged when any entry is invalid
func (t *Table) Merge(data []byte) error {
	var f spriteFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return fmt.Errorf("sprite parse: %w", err)
	}

	parsed := make(map[string]Entry, len(f.Sprites))
	for key, def := range f.Sprites {
		e, err := parseEntry(def)
		if err != nil {
			return fmt.Errorf("sprite %q: %w", key, err)
		}
		parsed[key] = e
	}
	for key, e := range parsed {
		t.entries[key] = e
	}
	return nil
}

func parseEntry(def spriteDef) (Entry, error) {
	if utf8.RuneCountInString(def.Glyph) != 1 {
		return Entry{}, fmt.Errorf("%w: glyph %q must be one character", ErrBadSprite, def.Glyph)
	}
	g, _ := utf8.DecodeRuneInString(def.Glyph)

	c, err := ParseColor(def.Color)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Glyph: g, Color: c}, nil
}

// ParseColor parses "#rrggbb" or "rrggbb"
func ParseColor(s string) (core.RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return core.RGB{}, fmt.Errorf("%w: color %q", ErrBadSprite, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return core.RGB{}, fmt.Errorf("%w: color %q", ErrBadSprite, s)
	}
	return core.Hex(uint32(v)), nil
}

// Lookup resolves key, falling back from "kind.variant" to "kind" and then
// to a flat placeholder
func (t *Table) Lookup(key string) Entry {
	if e, ok := t.entries[key]; ok {
		return e
	}
	if kind, _, found := strings.Cut(key, "."); found {
		if e, ok := t.entries[kind]; ok {
			return e
		}
	}
	c, ok := placeholderColors[key]
	if !ok {
		c = core.RGBGray
	}
	return Entry{Glyph: PlaceholderGlyph, Color: c, Placeholder: true}
}

// Resolve looks up the entry for a presentation sprite
func (t *Table) Resolve(sp core.Sprite) Entry {
	return t.Lookup(Key(sp))
}

// Key names the table entry for a sprite
func Key(sp core.Sprite) string {
	switch sp.Kind {
	case core.SpritePlayer:
		return "player"
	case core.SpriteEnemy:
		return "enemy." + sp.Variant.String()
	case core.SpriteItem:
		return "item." + sp.Item.String()
	case core.SpritePlayerBullet, core.SpriteEnemyBullet:
		return "bullet"
	case core.SpriteImpact:
		return "impact"
	case core.SpriteParticle:
		return "particle"
	}
	return "unknown"
}
