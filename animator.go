package treefx

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// growthStart is the pause before a branch gets its stroke and starts to
// grow.
const growthStart = 0.001

// leafRecolor is how long a fallen leaf takes to turn back to spring.
const leafRecolor = 0.001

// Animator builds and plays the full schedule for a generated scene: growth
// once, wind for ever, and the seasons looping after growth. All random
// choices are drawn when the schedule is built.
type Animator struct {
	scene  *Scene
	tree   *Tree
	grass  []*Blade
	timing TimingConfig
	sway   float64
	rng    *Rand
	log    *slog.Logger
	trace  *Trace

	player     *Player
	duplicates map[*Node]struct{}
}

// AnimatorOption configures an Animator.
type AnimatorOption func(*Animator)

// WithLogger sets the logger for schedule records. The package logger is
// used otherwise.
func WithLogger(l *slog.Logger) AnimatorOption {
	return func(a *Animator) { a.log = l }
}

// WithTrace records growth generations and seasons into t.
func WithTrace(t *Trace) AnimatorOption {
	return func(a *Animator) { a.trace = t }
}

// WithTiming replaces the default durations.
func WithTiming(t TimingConfig) AnimatorOption {
	return func(a *Animator) { a.timing = t }
}

// WithSway sets the wind sway in degrees per generation of depth.
func WithSway(degrees float64) AnimatorOption {
	return func(a *Animator) { a.sway = degrees }
}

// WithRand sets the source of the schedule's random draws.
func WithRand(r *Rand) AnimatorOption {
	return func(a *Animator) { a.rng = r }
}

// NewAnimator builds the schedule for tree and grass, which must already be
// attached to scene. A nil tree animates grass only.
func NewAnimator(scene *Scene, tree *Tree, grass []*Blade, opts ...AnimatorOption) (*Animator, error) {
	if scene == nil {
		return nil, fmt.Errorf("treefx: animator needs a scene: %w", ErrInvalidConfig)
	}
	defaults := Default()
	a := &Animator{
		scene:      scene,
		tree:       tree,
		grass:      grass,
		timing:     defaults.Timing,
		sway:       defaults.Tree.SwayPerGeneration,
		duplicates: make(map[*Node]struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.tree == nil {
		a.tree = newTree(0)
	}
	if a.rng == nil {
		a.rng = NewRand(defaults.Seed)
	}
	if a.log == nil {
		a.log = logger
	}
	if err := a.timing.Validate(); err != nil {
		return nil, err
	}
	if a.sway < 0 {
		return nil, fmt.Errorf("treefx: animator sway %v is negative: %w", a.sway, ErrInvalidConfig)
	}

	a.player = NewPlayer(a.build())
	a.player.OnStop(a.disposeDuplicates)
	a.log.Debug("schedule built",
		"branches", a.tree.NumBranches(),
		"leaves", len(a.tree.Leaves),
		"flowers", len(a.tree.Flowers),
		"petals", a.tree.NumPetals(),
		"blades", len(a.grass))
	return a, nil
}

func (a *Animator) build() Animation {
	seasons := NewSequence(
		a.traced("spring", a.spring()),
		a.traced("flowering", a.flowering()),
		a.traced("autumn", a.autumn()),
	)
	return NewParallel(
		grassWind(a.grass, a.timing.GrassWindCycle),
		branchWind(a.tree, a.sway, a.timing.WindCycle),
		NewSequence(
			a.traced("growth", a.growth()),
			NewLoop(NewTraced("seasons", a.trace, seasons), Indefinite),
		),
	)
}

// traced names a part of the schedule in the trace and the debug log.
func (a *Animator) traced(name string, anim Animation) Animation {
	announce := NewCall(func() {
		a.log.Debug("schedule part started", "part", name, "duplicates", len(a.duplicates))
	})
	return NewTraced(name, a.trace, NewSequence(announce, anim))
}

func (a *Animator) growth() Animation {
	seq := NewSequence()
	for depth, gen := range a.tree.Generations {
		p := NewParallel()
		for _, b := range gen {
			line := b.Line()
			stroke := b.StrokeWidth()
			p.Add(NewSequence(
				NewPause(growthStart),
				NewCall(func() { line.StrokeWidth = stroke }),
				GrowTo(line, b.Length, a.timing.BranchGrowing),
			))
		}
		seq.Add(NewTraced(fmt.Sprintf("generation-%d", depth), a.trace, p))
	}
	return seq
}

func (a *Animator) spring() Animation {
	p := NewParallel()
	for _, b := range a.grass {
		p.Add(springFill(b, a.timing.GrassGreen))
	}
	for _, l := range a.tree.Leaves {
		p.Add(ScaleTo(l.Node(), 1, 1, a.timing.LeafAppearing))
	}
	return p
}

func (a *Animator) flowering() Animation {
	p := NewParallel()
	for i, f := range a.tree.Flowers {
		delay := float64(i+1) / 3
		for _, petal := range f.Petals {
			n := petal.Node()
			p.Add(NewSequence(
				FadeTo(n, 1, a.timing.FlowerAppearing).WithDelay(delay),
				a.fall(n, nil, hideByAlpha),
			))
		}
	}
	return p
}

func (a *Animator) autumn() Animation {
	grass := NewParallel()
	for _, b := range a.grass {
		grass.Add(autumnFill(b, a.timing.GrassYellow).
			WithDelay(a.rng.Float64() * a.timing.GrassYellowJitter))
	}

	yellow := NewParallel()
	drop := NewParallel()
	for _, l := range a.tree.Leaves {
		_, autumn := l.Colors()
		yellow.Add(autumnFill(l, a.timing.LeafYellow))
		drop.Add(NewSequence(
			a.fall(l.Node(), &autumn, hideByScale),
			springFill(l, leafRecolor),
		))
	}
	return NewParallel(grass, NewSequence(yellow, drop))
}

func springFill(s Seasonal, duration float64) *Tween {
	spring, _ := s.Colors()
	return FillTo(s.Node(), spring, duration)
}

func autumnFill(s Seasonal, duration float64) *Tween {
	_, autumn := s.Colors()
	return FillTo(s.Node(), autumn, duration)
}

// Start begins playback.
func (a *Animator) Start() {
	if a.player.State() != PlayerIdle {
		return
	}
	a.player.Play()
	a.log.Info("animation started",
		"branches", a.tree.NumBranches(),
		"blades", len(a.grass))
}

// Update advances the schedule by dt seconds and refreshes world transforms.
// It reports whether the schedule is still playing.
func (a *Animator) Update(dt float64) bool {
	playing := a.player.Update(dt)
	a.scene.Update()
	return playing
}

// Run starts playback and ticks every interval on the calling goroutine
// until ctx is cancelled, then stops and returns ctx.Err().
func (a *Animator) Run(ctx context.Context, interval time.Duration) error {
	a.Start()
	err := runTicker(ctx, interval, a.Update)
	if err != nil {
		a.Stop()
	}
	return err
}

// Stop halts every track and disposes all falling duplicates. Stop is
// idempotent.
func (a *Animator) Stop() {
	if a.player.State() == PlayerStopped {
		return
	}
	a.player.Stop()
	a.log.Info("animation stopped", "at", a.player.Now())
}

// Duplicates returns the number of live falling duplicates.
func (a *Animator) Duplicates() int {
	return len(a.duplicates)
}

// Player returns the schedule's player.
func (a *Animator) Player() *Player {
	return a.player
}

// Trace returns the trace set with WithTrace, or nil.
func (a *Animator) Trace() *Trace {
	return a.trace
}

func (a *Animator) addDuplicate(n *Node) {
	a.scene.TreeLayer().AddChild(n)
	a.duplicates[n] = struct{}{}
}

func (a *Animator) removeDuplicate(n *Node) {
	if _, ok := a.duplicates[n]; !ok {
		return
	}
	delete(a.duplicates, n)
	n.Dispose()
}

func (a *Animator) disposeDuplicates() {
	count := len(a.duplicates)
	for n := range a.duplicates {
		n.Dispose()
	}
	clear(a.duplicates)
	if count > 0 {
		a.log.Debug("duplicates disposed", "count", count)
	}
}
