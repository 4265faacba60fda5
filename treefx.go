package treefx

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill of a new node.
var ColorWhite = Color{1, 1, 1, 1}

// ColorPink is the fill of a flower's centre petal.
var ColorPink = Color{1, 192.0 / 255, 203.0 / 255, 1}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: 1}
}

// brightnessFactor is the HSB scale applied by Darker and undone by Saturate.
const brightnessFactor = 0.7

// Darker returns c with its HSB brightness scaled by 0.7.
func (c Color) Darker() Color {
	h, s, v := rgbToHSB(c.R, c.G, c.B)
	r, g, b := hsbToRGB(h, s, v*brightnessFactor)
	return Color{r, g, b, c.A}
}

// Saturate returns c with its HSB saturation scaled by 1/0.7, capped at 1.
func (c Color) Saturate() Color {
	h, s, v := rgbToHSB(c.R, c.G, c.B)
	r, g, b := hsbToRGB(h, math.Min(s/brightnessFactor, 1), v)
	return Color{r, g, b, c.A}
}

// Lerp interpolates between c and to; t is not clamped.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// RGBA converts to an 8-bit non-premultiplied color.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions and outline points.
type Vec2 struct {
	X, Y float64
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeGroup   NodeType = iota // container with no visual output
	NodeTypeLine                    // stroked segment from (0,0) to (0,EndY)
	NodeTypeEllipse                 // filled ellipse centred on the origin
	NodeTypePath                    // filled outline from Node.Path
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeGroup:
		return "group"
	case NodeTypeLine:
		return "line"
	case NodeTypeEllipse:
		return "ellipse"
	case NodeTypePath:
		return "path"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

// rgbToHSB converts RGB to hue in degrees, saturation and brightness in [0, 1].
func rgbToHSB(r, g, b float64) (h, s, v float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	v = max
	if max > 0 {
		s = (max - min) / max
	}
	if s == 0 {
		return 0, 0, v
	}
	d := max - min
	switch max {
	case r:
		h = (g - b) / d
	case g:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}

func hsbToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	h = math.Mod(h, 360) / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
