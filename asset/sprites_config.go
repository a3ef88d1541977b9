package asset

// DefaultSpriteConfig is the built-in sprite table in TOML
// Keys are "<kind>" or "<kind>.<variant>"; color is #rrggbb
const DefaultSpriteConfig = `
[sprite.player]
glyph = "▶"
color = "#66ccff"

[sprite."enemy.ghost"]
glyph = "◉"
color = "#c8c8ff"

[sprite."enemy.skeleton"]
glyph = "☠"
color = "#eeeeee"

[sprite."enemy.dragon"]
glyph = "▓"
color = "#33cc33"

[sprite."enemy.boss"]
glyph = "█"
color = "#a0522d"

[sprite."enemy.itembox"]
glyph = "▣"
color = "#b0b0b0"

[sprite."item.health"]
glyph = "♥"
color = "#ff3344"

[sprite."item.magic"]
glyph = "✦"
color = "#3399ff"

[sprite.bullet]
glyph = "●"
color = "#ffff00"

[sprite.impact]
glyph = "✶"
color = "#ffffff"

[sprite.particle]
glyph = "·"
color = "#ffe080"
`
