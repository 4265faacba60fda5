package treefx

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenColor, ...) and drive it with Update(dt) or Seek(t). The group
// auto-applies values and marks the node dirty. If the target node is
// disposed, the group stops immediately.
//
// Start values are captured when the group is constructed.
type TweenGroup struct {
	tweens   [4]*gween.Tween
	count    int
	fields   [4]*float64
	from     [4]float64
	to       [4]float64
	duration float32
	elapsed  float32
	fn       ease.TweenFunc
	target   *Node
	Done     bool
}

func newTweenGroup(target *Node, duration float32, fn ease.TweenFunc, fields []*float64, to []float64) *TweenGroup {
	if target == nil {
		panic("treefx: tween target is nil")
	}
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{count: len(fields), target: target, duration: duration, fn: fn}
	for i, f := range fields {
		g.fields[i] = f
		g.from[i] = *f
		g.to[i] = to[i]
		g.tweens[i] = gween.New(float32(*f), float32(to[i]), duration, fn)
	}
	return g
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	g.Seek(g.elapsed + dt)
}

// Seek writes the values at time t from the start of the group. Reaching
// the duration writes the exact target values.
func (g *TweenGroup) Seek(t float32) {
	if g.target.IsDisposed() {
		g.Done = true
		return
	}
	g.elapsed = t
	if t >= g.duration {
		for i := 0; i < g.count; i++ {
			*g.fields[i] = g.to[i]
		}
		g.Done = true
	} else {
		for i := 0; i < g.count; i++ {
			val, _ := g.tweens[i].Set(t)
			*g.fields[i] = float64(val)
		}
		g.Done = false
	}
	g.target.MarkDirty()
}

// Duration returns the group's length in seconds.
func (g *TweenGroup) Duration() float32 {
	return g.duration
}

// Reversed returns a group that animates the same fields from their current
// values back to this group's start values.
func (g *TweenGroup) Reversed() *TweenGroup {
	fields := g.fields[:g.count]
	to := g.from[:g.count]
	return newTweenGroup(g.target, g.duration, g.fn, fields, to)
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{&node.X, &node.Y}, []float64{toX, toY})
}

// TweenY creates a TweenGroup that animates node.Y alone.
func TweenY(node *Node, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{&node.Y}, []float64{toY})
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY to
// the given target values over the specified duration using the easing function.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{&node.ScaleX, &node.ScaleY}, []float64{toSX, toSY})
}

// TweenColor creates a TweenGroup that animates all four components of
// node.Color (R, G, B, A) to the target color over the specified duration.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn,
		[]*float64{&node.Color.R, &node.Color.G, &node.Color.B, &node.Color.A},
		[]float64{to.R, to.G, to.B, to.A})
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{&node.Alpha}, []float64{to})
}

// TweenRotation creates a TweenGroup that animates node.Rotation to the target
// value over the specified duration using the easing function.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{&node.Rotation}, []float64{to})
}

// TweenEndY creates a TweenGroup that grows or shrinks a line node.
func TweenEndY(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{&node.EndY}, []float64{to})
}
