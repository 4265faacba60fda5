package treefx

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Sweep runs a value from one bound to another and hands every step to fn.
// It animates values that are not node properties, such as the grass wind
// phase.
type Sweep struct {
	from, to float64
	length   float64
	fn       func(v float64)
	tween    *gween.Tween
	elapsed  float64
}

// NewSweep returns a linear Sweep from -> to over duration seconds.
func NewSweep(from, to, duration float64, fn func(v float64)) *Sweep {
	s := &Sweep{from: from, to: to, length: math.Max(duration, 0), fn: fn}
	s.tween = gween.New(float32(from), float32(to), float32(s.length), ease.Linear)
	return s
}

func (s *Sweep) Advance(now, dt float64) (float64, bool) {
	s.elapsed += dt
	if s.elapsed >= s.length {
		s.fn(s.to)
		return s.elapsed - s.length, true
	}
	v, _ := s.tween.Set(float32(s.elapsed))
	s.fn(float64(v))
	return 0, false
}

func (s *Sweep) Reset() {
	s.elapsed = 0
	s.tween.Reset()
}

func (s *Sweep) Duration() float64 {
	return s.length
}

// branchWind sways every branch around its rest angle for ever, by
// swayPerGeneration degrees per generation of depth.
func branchWind(tree *Tree, swayPerGeneration, cycle float64) *Parallel {
	p := NewParallel()
	for _, b := range tree.Branches() {
		n := b.Node()
		target := n.Rotation + degToRad(swayPerGeneration*float64(b.Depth))
		p.Add(NewLoop(RotateTo(n, target, cycle), Indefinite).AutoReverse())
	}
	return p
}

// grassWind bends every blade through a full phase turn each cycle, for ever.
func grassWind(blades []*Blade, cycle float64) Animation {
	sweep := NewSweep(0, 2*math.Pi, cycle, func(phase float64) {
		for _, b := range blades {
			b.Update(phase)
		}
	})
	return NewLoop(sweep, Indefinite)
}
