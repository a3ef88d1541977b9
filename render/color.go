package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hexfire/core"
)

// ColorMode selects how RGB values reach the terminal
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota
	ColorMode256
)

// Background is the field colour every sprite fades toward
var Background = core.RGBBlack

var palette256 = func() []tcell.Color {
	p := make([]tcell.Color, 256)
	for i := range p {
		p[i] = tcell.PaletteColor(i)
	}
	return p
}()

// toTcell converts an RGB for the active mode
func (m ColorMode) toTcell(c core.RGB) tcell.Color {
	tc := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	if m == ColorMode256 {
		return tcell.FindColor(tc, palette256)
	}
	return tc
}

// fade blends c toward the background by opacity
func fade(c core.RGB, opacity float64) core.RGB {
	return Background.Lerp(c, opacity)
}
