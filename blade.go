package treefx

import "math"

const (
	bladeControlX    = -10
	bladeSpatialBase = 400
	bladeSpatialSpan = 1600
)

// Blade is one grass blade: a path of two quadratic curves whose top point
// moves along a circle of radius H as the shared wind phase changes.
type Blade struct {
	X, Y   float64 // root position in the grass layer
	H      float64 // blade height
	Width  float64 // root width
	Spring Color
	Autumn Color
	// Offset shifts this blade's wind phase; it grows with X so the field
	// moves as a wave, plus per-blade jitter so neighbours differ.
	Offset float64

	// Bend state from the last Update.
	Tip     Vec2
	Control Vec2

	node *Node
}

func newBlade(cfg GrassConfig, rng *Rand) *Blade {
	b := &Blade{Width: cfg.BladeWidth}
	b.Spring = RGB(rng.Float64()*0.5, rng.Float64()*0.5+0.5, 0).Darker()
	b.Autumn = RGB(rng.Float64()*0.4+0.3, rng.Float64()*0.1+0.4, rng.Float64()*0.2)
	b.X = rng.BoundedJitter(cfg.Width)
	b.Y = rng.BoundedJitter(cfg.Band) + cfg.Base
	b.H = (cfg.Height - b.Y/2) * rng.BoundedJitter(0.3)
	b.Offset = (b.X+bladeSpatialBase)*math.Pi/bladeSpatialSpan + rng.BoundedJitter(math.Pi/4)

	b.node = NewPath("blade", make([]Vec2, 0, 2*QuadSegments+1))
	b.node.X = b.X
	b.node.Y = b.Y
	b.node.Color = b.Autumn
	b.node.UserData = b
	b.Update(0)
	return b
}

// Node returns the blade path.
func (b *Blade) Node() *Node {
	return b.node
}

// Colors returns the spring and autumn fills.
func (b *Blade) Colors() (spring, autumn Color) {
	return b.Spring, b.Autumn
}

// BendX is the horizontal offset of the blade's top point for a given wind
// phase: between h/4 and -h/2.
func (b *Blade) BendX(phase float64) float64 {
	return b.H/4 + ((math.Cos(phase+b.Offset)+1)/2)*(-3.0/4)*b.H
}

// Update recomputes the bend and rewrites the node's outline in place.
func (b *Blade) Update(phase float64) {
	x := b.BendX(phase)
	y := math.Sqrt(math.Max(b.H*b.H-x*x, 0))
	b.Tip = Vec2{X: x, Y: y}
	b.Control = Vec2{X: bladeControlX, Y: y - b.H/4}
	b.node.Path = AppendBladeOutline(b.node.Path[:0], b.Tip, b.Control, b.Width)
}
