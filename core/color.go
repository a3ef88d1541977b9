package core

import colorful "github.com/lucasb-eyer/go-colorful"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack   = RGB{0, 0, 0}
	RGBWhite   = RGB{255, 255, 255}
	RGBRed     = RGB{255, 0, 0}
	RGBYellow  = RGB{255, 255, 0}
	RGBMagenta = RGB{255, 0, 255}
	RGBOrange  = RGB{255, 69, 0}
	RGBBrown   = RGB{139, 69, 19}
	RGBBlue    = RGB{0, 0, 255}
	RGBGray    = RGB{128, 128, 128}
)

// Hex builds an RGB from 0xRRGGBB
func Hex(h uint32) RGB {
	return RGB{R: uint8(h >> 16), G: uint8(h >> 8), B: uint8(h)}
}

// Colorful converts to the go-colorful representation
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful converts back, clamping out-of-gamut values
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Lerp interpolates linearly in RGB space from c toward to by t in [0,1]
func (c RGB) Lerp(to RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return to
	}
	return FromColorful(c.Colorful().BlendRgb(to.Colorful(), t))
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	return c.Lerp(src, alpha)
}

// Scale multiplies every channel, used for fades toward black
func (c RGB) Scale(f float64) RGB {
	return RGBBlack.Lerp(c, f)
}
