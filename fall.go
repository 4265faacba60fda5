package treefx

import (
	"math"

	"github.com/tanema/gween/ease"
)

const (
	fallDelayMin    = 6.0  // seconds
	fallDelaySpread = 54.0 // seconds on top of fallDelayMin
	fallLandingMin  = 1.0
	fallLandingMax  = 31.0
	fallSwayX       = 50.0 // horizontal drift amplitude
	fallSwayPeriod  = 20.0 // fallen distance per radian of drift
	fallSpin        = 2.0  // degrees of rotation per unit fallen
)

// fallDown drops a transient copy of a shape to the ground. The copy is
// created when the animation starts and disposed when it ends, so each play
// owns a fresh duplicate. Its random draws are fixed when it is built.
type fallDown struct {
	a       *Animator
	src     *Node
	recolor *Color
	hide    func(n *Node)

	delay   float64
	landing float64
	base    float64 // degrees

	dup     *Node
	originX float64
	originY float64
	seq     *Sequence
}

func (a *Animator) fall(src *Node, recolor *Color, hide func(n *Node)) *fallDown {
	return &fallDown{
		a:       a,
		src:     src,
		recolor: recolor,
		hide:    hide,
		delay:   a.rng.Float64()*fallDelaySpread + fallDelayMin,
		landing: a.rng.Float64()*(fallLandingMax-fallLandingMin) + fallLandingMin,
		base:    a.rng.Float64() * 180,
	}
}

func (f *fallDown) start() {
	dup := NewEllipse(f.src.Name+"-fall", f.src.RadiusX, f.src.RadiusY)
	dup.Rotation = f.src.Rotation
	if f.recolor != nil {
		dup.Color = *f.recolor
	} else {
		dup.Color = f.src.Color
	}
	dup.Alpha = 0
	f.dup = dup
	f.a.addDuplicate(dup)

	drop := newTween(dup, f.a.timing.Fall, ease.Linear, func(d float32, fn ease.TweenFunc) *TweenGroup {
		return TweenY(dup, math.Min(f.landing, f.originY), d, fn)
	}).OnUpdate(f.drift)

	f.seq = NewSequence(
		NewPause(f.delay),
		NewCall(f.release),
		drop,
		FadeTo(dup, 0, f.a.timing.Fade).WithDelay(f.a.timing.FallHold),
		NewCall(f.finish),
	)
}

// release moves the duplicate onto the source and swaps their visibility.
func (f *fallDown) release() {
	layer := f.a.scene.TreeLayer()
	wx, wy := f.src.LocalToWorld(0, 0)
	f.originX, f.originY = layer.WorldToLocal(wx, wy)
	f.dup.X = f.originX
	f.dup.Y = f.originY
	f.dup.Rotation = degToRad(f.base)
	f.dup.Alpha = 1
	f.dup.MarkDirty()
	if f.hide != nil && !f.src.IsDisposed() {
		f.hide(f.src)
		f.src.MarkDirty()
	}
}

func (f *fallDown) drift() {
	fallen := f.originY - f.dup.Y
	f.dup.X = f.originX + fallSwayX*math.Sin(fallen/fallSwayPeriod)
	f.dup.Rotation = degToRad(fallSpin*fallen + f.base)
}

func (f *fallDown) finish() {
	if f.dup != nil {
		f.a.removeDuplicate(f.dup)
		f.dup = nil
	}
}

func (f *fallDown) Advance(now, dt float64) (float64, bool) {
	if f.seq == nil {
		f.start()
	}
	return f.seq.Advance(now, dt)
}

func (f *fallDown) Reset() {
	f.finish()
	f.seq = nil
}

func (f *fallDown) Duration() float64 {
	t := f.a.timing
	return f.delay + t.Fall + t.FallHold + t.Fade
}

func hideByAlpha(n *Node) {
	n.Alpha = 0
}

func hideByScale(n *Node) {
	n.ScaleX = 0
	n.ScaleY = 0
}
