package treefx

import (
	"context"
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// Indefinite is the Duration of an animation that never completes on its
// own, and the Loop count that repeats forever.
const Indefinite = -1

// Animation is one node of a schedule. Advance moves the node forward by dt
// seconds starting at schedule time now and reports how much of dt was left
// over once it completed. Leftover time lets the next sequential sibling
// start at the exact instant this one ended.
type Animation interface {
	Advance(now, dt float64) (rest float64, done bool)
	Reset()
	Duration() float64
}

// reversible is implemented by animations that can play backwards, for
// auto-reversing loops.
type reversible interface {
	Reverse()
}

// transitionEase is the ease used by fill, scale and fade transitions.
// Keyframe-style tweens (growth, wind, fall) are linear.
var transitionEase ease.TweenFunc = ease.InOutSine

// --- Tween ---

// Tween drives a TweenGroup built when the tween actually starts, after its
// delay, so the start values are whatever the properties hold at that point.
type Tween struct {
	target   *Node
	build    func(duration float32, fn ease.TweenFunc) *TweenGroup
	duration float64
	delay    float64
	fn       ease.TweenFunc
	onUpdate func()

	group   *TweenGroup
	last    *TweenGroup
	elapsed float64
	reverse bool
	done    bool
}

func newTween(target *Node, duration float64, fn ease.TweenFunc, build func(float32, ease.TweenFunc) *TweenGroup) *Tween {
	if target == nil {
		panic("treefx: tween target is nil")
	}
	if duration < 0 {
		duration = 0
	}
	return &Tween{target: target, build: build, duration: duration, fn: fn}
}

// MoveY tweens node.Y linearly.
func MoveY(n *Node, to, duration float64) *Tween {
	return newTween(n, duration, ease.Linear, func(d float32, fn ease.TweenFunc) *TweenGroup {
		return TweenY(n, to, d, fn)
	})
}

// ScaleTo tweens both scale factors.
func ScaleTo(n *Node, sx, sy, duration float64) *Tween {
	return newTween(n, duration, transitionEase, func(d float32, fn ease.TweenFunc) *TweenGroup {
		return TweenScale(n, sx, sy, d, fn)
	})
}

// FillTo tweens the fill color.
func FillTo(n *Node, c Color, duration float64) *Tween {
	return newTween(n, duration, transitionEase, func(d float32, fn ease.TweenFunc) *TweenGroup {
		return TweenColor(n, c, d, fn)
	})
}

// FadeTo tweens the opacity.
func FadeTo(n *Node, alpha, duration float64) *Tween {
	return newTween(n, duration, transitionEase, func(d float32, fn ease.TweenFunc) *TweenGroup {
		return TweenAlpha(n, alpha, d, fn)
	})
}

// RotateTo tweens the rotation, in radians, linearly.
func RotateTo(n *Node, rotation, duration float64) *Tween {
	return newTween(n, duration, ease.Linear, func(d float32, fn ease.TweenFunc) *TweenGroup {
		return TweenRotation(n, rotation, d, fn)
	})
}

// GrowTo tweens a line's EndY linearly.
func GrowTo(n *Node, endY, duration float64) *Tween {
	return newTween(n, duration, ease.Linear, func(d float32, fn ease.TweenFunc) *TweenGroup {
		return TweenEndY(n, endY, d, fn)
	})
}

// WithDelay holds the tween for d seconds before it starts.
func (t *Tween) WithDelay(d float64) *Tween {
	t.delay = math.Max(d, 0)
	return t
}

// OnUpdate registers fn to run after every write while the tween plays.
func (t *Tween) OnUpdate(fn func()) *Tween {
	t.onUpdate = fn
	return t
}

func (t *Tween) Advance(now, dt float64) (float64, bool) {
	if t.done {
		return dt, true
	}
	if t.target.IsDisposed() {
		t.done = true
		return dt, true
	}
	t.elapsed += dt
	if t.elapsed < t.delay {
		return 0, false
	}
	if t.group == nil {
		if t.reverse && t.last != nil {
			t.group = t.last.Reversed()
		} else {
			t.group = t.build(float32(t.duration), t.fn)
		}
	}
	local := t.elapsed - t.delay
	if local >= t.duration {
		t.group.Seek(t.group.Duration())
		t.fire()
		t.done = true
		return local - t.duration, true
	}
	t.group.Seek(float32(local))
	t.fire()
	return 0, false
}

func (t *Tween) fire() {
	if t.onUpdate != nil {
		t.onUpdate()
	}
}

func (t *Tween) Reset() {
	if t.group != nil {
		t.last = t.group
	}
	t.group = nil
	t.elapsed = 0
	t.done = false
}

// Reverse flips the direction of the next run: it tweens from the values the
// previous run ended on back to the values it started from.
func (t *Tween) Reverse() {
	t.reverse = !t.reverse
}

func (t *Tween) Duration() float64 {
	return t.delay + t.duration
}

// --- Pause ---

// Pause waits.
type Pause struct {
	length  float64
	elapsed float64
}

// NewPause returns a Pause of d seconds.
func NewPause(d float64) *Pause {
	return &Pause{length: math.Max(d, 0)}
}

func (p *Pause) Advance(now, dt float64) (float64, bool) {
	p.elapsed += dt
	if p.elapsed >= p.length {
		return p.elapsed - p.length, true
	}
	return 0, false
}

func (p *Pause) Reset()            { p.elapsed = 0 }
func (p *Pause) Duration() float64 { return p.length }

// --- Call ---

// Call runs a function once, taking no time.
type Call struct {
	fn    func()
	fired bool
}

// NewCall returns a Call running fn.
func NewCall(fn func()) *Call {
	return &Call{fn: fn}
}

func (c *Call) Advance(now, dt float64) (float64, bool) {
	if !c.fired {
		c.fired = true
		if c.fn != nil {
			c.fn()
		}
	}
	return dt, true
}

func (c *Call) Reset()            { c.fired = false }
func (c *Call) Duration() float64 { return 0 }

// --- Sequence ---

// Sequence plays its children one after another.
type Sequence struct {
	children []Animation
	index    int
}

// NewSequence returns a Sequence of children.
func NewSequence(children ...Animation) *Sequence {
	return &Sequence{children: children}
}

// Add appends a child.
func (s *Sequence) Add(a Animation) {
	s.children = append(s.children, a)
}

// Len returns the number of children.
func (s *Sequence) Len() int {
	return len(s.children)
}

func (s *Sequence) Advance(now, dt float64) (float64, bool) {
	for s.index < len(s.children) {
		rest, done := s.children[s.index].Advance(now, dt)
		if !done {
			return 0, false
		}
		now += dt - rest
		dt = rest
		s.index++
	}
	return dt, true
}

func (s *Sequence) Reset() {
	s.index = 0
	for _, c := range s.children {
		c.Reset()
	}
}

func (s *Sequence) Duration() float64 {
	total := 0.0
	for _, c := range s.children {
		d := c.Duration()
		if d == Indefinite {
			return Indefinite
		}
		total += d
	}
	return total
}

// --- Parallel ---

// Parallel plays its children together and completes when the last one
// does. An empty Parallel completes immediately.
type Parallel struct {
	children []Animation
	done     []bool
	pending  int
}

// NewParallel returns a Parallel of children.
func NewParallel(children ...Animation) *Parallel {
	p := &Parallel{}
	for _, c := range children {
		p.Add(c)
	}
	return p
}

// Add appends a child.
func (p *Parallel) Add(a Animation) {
	p.children = append(p.children, a)
	p.done = append(p.done, false)
	p.pending++
}

// Len returns the number of children.
func (p *Parallel) Len() int {
	return len(p.children)
}

func (p *Parallel) Advance(now, dt float64) (float64, bool) {
	if p.pending == 0 {
		return dt, true
	}
	least := dt
	for i, c := range p.children {
		if p.done[i] {
			continue
		}
		rest, done := c.Advance(now, dt)
		if !done {
			least = 0
			continue
		}
		p.done[i] = true
		p.pending--
		least = math.Min(least, rest)
	}
	if p.pending > 0 {
		return 0, false
	}
	return least, true
}

func (p *Parallel) Reset() {
	for i, c := range p.children {
		c.Reset()
		p.done[i] = false
	}
	p.pending = len(p.children)
}

func (p *Parallel) Duration() float64 {
	longest := 0.0
	for _, c := range p.children {
		d := c.Duration()
		if d == Indefinite {
			return Indefinite
		}
		longest = math.Max(longest, d)
	}
	return longest
}

// --- Loop ---

// Loop repeats its child count times, or forever with Indefinite. With
// auto-reverse every other cycle plays backwards.
type Loop struct {
	child       Animation
	count       int
	autoReverse bool
	cycle       int
}

// NewLoop returns a Loop over child.
func NewLoop(child Animation, count int) *Loop {
	return &Loop{child: child, count: count}
}

// AutoReverse makes odd cycles play backwards. Children that cannot reverse
// simply replay.
func (l *Loop) AutoReverse() *Loop {
	l.autoReverse = true
	return l
}

// Cycles returns the number of completed cycles.
func (l *Loop) Cycles() int {
	return l.cycle
}

func (l *Loop) Advance(now, dt float64) (float64, bool) {
	if l.count >= 0 && l.cycle >= l.count {
		return dt, true
	}
	for {
		rest, done := l.child.Advance(now, dt)
		if !done {
			return 0, false
		}
		l.cycle++
		if l.count >= 0 && l.cycle >= l.count {
			return rest, true
		}
		consumed := dt - rest
		l.restart()
		if consumed <= 0 {
			// Zero-length cycle: let the frame end.
			return 0, false
		}
		now += consumed
		dt = rest
	}
}

func (l *Loop) restart() {
	l.child.Reset()
	if l.autoReverse {
		if r, ok := l.child.(reversible); ok {
			r.Reverse()
		}
	}
}

func (l *Loop) Reset() {
	l.child.Reset()
	if l.autoReverse && l.cycle%2 == 1 {
		if r, ok := l.child.(reversible); ok {
			r.Reverse()
		}
	}
	l.cycle = 0
}

func (l *Loop) Duration() float64 {
	if l.count < 0 {
		return Indefinite
	}
	d := l.child.Duration()
	if d == Indefinite {
		return Indefinite
	}
	return d * float64(l.count)
}

// --- Traced ---

// Traced records the start and end of child into a Trace under name.
type Traced struct {
	child   Animation
	name    string
	trace   *Trace
	started bool
	start   float64
}

// NewTraced wraps child. A nil trace records nothing.
func NewTraced(name string, trace *Trace, child Animation) *Traced {
	return &Traced{child: child, name: name, trace: trace}
}

func (t *Traced) Advance(now, dt float64) (float64, bool) {
	if !t.started {
		t.started = true
		t.start = now
	}
	rest, done := t.child.Advance(now, dt)
	if done && t.trace != nil {
		t.trace.record(t.name, t.start, now+dt-rest)
	}
	return rest, done
}

func (t *Traced) Reset() {
	t.child.Reset()
	t.started = false
}

func (t *Traced) Duration() float64 {
	return t.child.Duration()
}

// --- Player ---

// PlayerState is the lifecycle of a Player.
type PlayerState uint8

const (
	PlayerIdle PlayerState = iota
	PlayerPlaying
	PlayerFinished
	PlayerStopped
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerPlaying:
		return "playing"
	case PlayerFinished:
		return "finished"
	case PlayerStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// DefaultTickInterval is the Run interval used when none is given.
const DefaultTickInterval = time.Second / 60

// Player owns the schedule clock. It is not safe for concurrent use; Run
// drives it from the calling goroutine.
type Player struct {
	root   Animation
	now    float64
	state  PlayerState
	onStop []func()
}

// NewPlayer returns an idle player for root.
func NewPlayer(root Animation) *Player {
	if root == nil {
		panic("treefx: player root is nil")
	}
	return &Player{root: root}
}

// Play starts the schedule. It has no effect unless the player is idle.
func (p *Player) Play() {
	if p.state == PlayerIdle {
		p.state = PlayerPlaying
	}
}

// Update advances the schedule by dt seconds and reports whether it is
// still playing. Negative dt is treated as zero.
func (p *Player) Update(dt float64) bool {
	if p.state != PlayerPlaying {
		return false
	}
	dt = math.Max(dt, 0)
	_, done := p.root.Advance(p.now, dt)
	p.now += dt
	if done {
		p.state = PlayerFinished
		return false
	}
	return true
}

// OnStop registers fn to run once when the player is stopped.
func (p *Player) OnStop(fn func()) {
	p.onStop = append(p.onStop, fn)
}

// Stop halts the schedule. Nothing is mutated by the schedule afterwards.
// Stop is idempotent.
func (p *Player) Stop() {
	if p.state == PlayerStopped {
		return
	}
	p.state = PlayerStopped
	hooks := p.onStop
	p.onStop = nil
	for _, fn := range hooks {
		fn()
	}
}

// Now returns the schedule time in seconds.
func (p *Player) Now() float64 {
	return p.now
}

// State returns the lifecycle state.
func (p *Player) State() PlayerState {
	return p.state
}

// Run plays the schedule, ticking every interval until ctx is cancelled or
// the schedule ends. On cancellation the player is stopped and ctx.Err() is
// returned.
func (p *Player) Run(ctx context.Context, interval time.Duration) error {
	p.Play()
	err := runTicker(ctx, interval, p.Update)
	if err != nil {
		p.Stop()
	}
	return err
}

// runTicker calls update with the elapsed wall time every interval until it
// returns false or ctx is done.
func runTicker(ctx context.Context, interval time.Duration, update func(dt float64) bool) error {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			dt := time.Since(last)
			last = last.Add(dt)
			if !update(dt.Seconds()) {
				return nil
			}
		}
	}
}
