// Package render draws frames onto a tcell screen: the scrolling field with
// its sprites, the HUD row, the boss bar, and the title/result screens
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/asset"
	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/parameter"
)

// Fixed HUD colours
var (
	colorText     = core.Hex(0xdddddd)
	colorDim      = core.Hex(0x666666)
	colorHealth   = core.Hex(0x33cc55)
	colorWarn     = core.RGBRed
	colorMagic    = core.Hex(0x3399ff)
	colorBoss     = core.Hex(0xcc3333)
	colorBanner   = core.RGBYellow
	colorStar     = core.Hex(0x8888aa)
	colorMissing  = core.Hex(0x444444)
	colorTitleTop = core.Hex(0xff4500)
	colorTitleEnd = core.Hex(0xffd700)
)

// TerminalRenderer is the presentation sink over a tcell screen
// Not safe for concurrent use; call from the loop goroutine
type TerminalRenderer struct {
	screen  tcell.Screen
	sprites *asset.Table
	mode    ColorMode
	log     zerolog.Logger

	width, height int
	proj          Projection
	missing       map[string]bool
}

// NewTerminalRenderer creates a renderer; a nil table resolves every sprite to a placeholder
func NewTerminalRenderer(screen tcell.Screen, sprites *asset.Table, mode ColorMode, log zerolog.Logger) *TerminalRenderer {
	if sprites == nil {
		sprites = asset.NewTable()
	}
	r := &TerminalRenderer{
		screen:  screen,
		sprites: sprites,
		mode:    mode,
		log:     log.With().Str("component", "render").Logger(),
		missing: make(map[string]bool),
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.proj = NewProjection(r.width, r.height)
}

// Projection returns the current world-to-cell mapping
func (r *TerminalRenderer) Projection() Projection {
	return r.proj
}

// Render draws one frame and shows it
func (r *TerminalRenderer) Render(f *core.Frame) {
	r.screen.Clear()
	switch f.View {
	case core.ViewTitle:
		r.drawTitle(f)
	case core.ViewStage:
		r.drawStage(f)
	case core.ViewResult:
		r.drawResult(f)
	}
	r.screen.Show()
}

func (r *TerminalRenderer) style(fg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(r.mode.toTcell(fg)).Background(r.mode.toTcell(Background))
}

func (r *TerminalRenderer) put(x, y int, ch rune, fg core.RGB) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, r.style(fg))
}

// text writes s from (x, y), returning the column after the last rune
func (r *TerminalRenderer) text(x, y int, s string, fg core.RGB) int {
	for _, ch := range s {
		r.put(x, y, ch, fg)
		x++
	}
	return x
}

func (r *TerminalRenderer) centered(y int, s string, fg core.RGB) {
	r.text((r.width-len([]rune(s)))/2, y, s, fg)
}

// drawStage draws background, sprites, HUD, boss bar and phase overlays
func (r *TerminalRenderer) drawStage(f *core.Frame) {
	r.drawStars(f.HUD.ScrollOffset)

	for _, sp := range f.Sprites {
		r.drawSprite(sp)
	}

	r.drawHUD(f)
	if f.HUD.BossActive {
		r.drawBossBar(f.HUD.BossFraction)
	}

	mid := r.proj.Y + r.proj.Height/2
	switch {
	case f.HUD.Paused:
		r.centered(mid, parameter.PausedText, colorBanner)
	case f.HUD.Phase == core.PhaseVictory:
		r.centered(mid, parameter.VictoryBanner, colorBanner)
	case f.HUD.Phase == core.PhaseGameOver:
		r.centered(mid, parameter.GameOverText, colorWarn)
	}
}

// drawStars scatters a deterministic parallax starfield keyed to the scroll offset
func (r *TerminalRenderer) drawStars(offset float64) {
	span := 2 * parameter.FieldHalfWidth
	for i := 0; i < parameter.StarCount; i++ {
		// Additive recurrence, stable from frame to frame
		u := math.Mod(float64(i)*0.6180339887, 1)
		v := math.Mod(float64(i)*0.7548776662, 1)
		wx := math.Mod(u*span+offset*parameter.StarParallax, span)
		if wx < 0 {
			wx += span
		}
		wx -= parameter.FieldHalfWidth
		wy := (v*2 - 1) * parameter.FieldHalfHeight

		cx, cy := r.proj.Cell(wx, wy)
		x, y := int(cx), int(cy)
		if r.proj.Contains(x, y) {
			r.put(x, y, '.', colorStar)
		}
	}
}

func (r *TerminalRenderer) drawSprite(sp core.Sprite) {
	if sp.Opacity <= 0 || sp.Scale <= 0 {
		return
	}

	key := asset.Key(sp)
	entry := r.sprites.Lookup(key)
	if entry.Placeholder && !r.missing[key] {
		r.missing[key] = true
		r.log.Debug().Str("sprite", key).Msg("sprite missing, drawing placeholder")
	}

	c := entry.Color
	if sp.Tinted {
		c = sp.Tint
	}
	c = fade(c, sp.Opacity)

	radius := sp.Size * sp.Scale / 2
	r.proj.Ellipse(sp.Pos[0], sp.Pos[1], radius, func(x, y int) {
		r.put(x, y, entry.Glyph, c)
	})
}

func (r *TerminalRenderer) drawHUD(f *core.Frame) {
	h := f.HUD
	x := r.text(0, 0, fmt.Sprintf("SCORE %07d ", h.DisplayScore), colorText)

	hpColor := colorHealth
	showHP := true
	if h.HP < parameter.HealthWarnHP {
		hpColor = colorWarn
	}
	if h.HP < parameter.HealthCriticalHP {
		showHP = math.Sin(f.Time*parameter.HealthBlinkRateSec) > 0
	}
	x = r.text(x, 0, " HP ", colorText)
	if showHP {
		x = r.bar(x, 0, fraction(h.HP, h.MaxHP), parameter.BarWidth, hpColor)
	} else {
		x += parameter.BarWidth
	}

	x = r.text(x, 0, "  MP ", colorText)
	x = r.bar(x, 0, fraction(h.Magic, parameter.PlayerMaxMagic), parameter.BarWidth, colorMagic)

	x = r.text(x, 0, "  LIVES ", colorText)
	x = r.text(x, 0, strings.Repeat("♥", max(h.Lives, 0)), colorWarn)

	x = r.text(x, 0, "  ITEM ", colorText)
	if h.Inventory == core.ItemNone {
		x = r.text(x, 0, "-", colorDim)
	} else {
		e := r.sprites.Lookup("item." + h.Inventory.String())
		x = r.text(x, 0, string(e.Glyph)+" "+h.Inventory.String(), e.Color)
	}

	if h.Charge > 0 {
		x = r.text(x, 0, "  CHARGE ", colorText)
		r.bar(x, 0, min(h.Charge/parameter.ChargeMaxTime, 1), parameter.BarWidth/2, colorBanner)
	}
}

func (r *TerminalRenderer) drawBossBar(frac float64) {
	y := r.height - 1
	x := r.text((r.width-parameter.BossBarWidth-6)/2, y, "BOSS ", colorBoss)
	r.bar(x, y, frac, parameter.BossBarWidth, colorBoss)
}

// bar draws a [frac] gauge of width cells, returning the next column
func (r *TerminalRenderer) bar(x, y int, frac float64, width int, c core.RGB) int {
	filled := int(math.Round(min(max(frac, 0), 1) * float64(width)))
	for i := 0; i < width; i++ {
		if i < filled {
			r.put(x+i, y, '█', c)
		} else {
			r.put(x+i, y, '░', colorMissing)
		}
	}
	return x + width
}

func (r *TerminalRenderer) drawTitle(f *core.Frame) {
	mid := r.height / 2
	title := []rune(parameter.TitleText)
	x := (r.width - len(title)) / 2
	for i, ch := range title {
		t := float64(i) / float64(max(len(title)-1, 1))
		r.put(x+i, mid-2, ch, colorTitleTop.Lerp(colorTitleEnd, t))
	}
	if f.Score > 0 {
		r.centered(mid, fmt.Sprintf("best %07d", f.Score), colorText)
	}
	if math.Sin(f.Time*4) > -0.5 {
		r.centered(mid+2, parameter.TitleHint, colorDim)
	}
}

func (r *TerminalRenderer) drawResult(f *core.Frame) {
	mid := r.height / 2
	switch f.Outcome {
	case core.OutcomeVictory:
		r.centered(mid-2, parameter.VictoryBanner, colorBanner)
	default:
		r.centered(mid-2, parameter.GameOverText, colorWarn)
	}
	r.centered(mid, fmt.Sprintf("score %07d", f.Score), colorText)
	r.centered(mid+2, parameter.ResultHint, colorDim)
}

func fraction(v, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return v / total
}
