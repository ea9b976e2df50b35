package glide

import "time"

// Animated animates a whole blendable record along a single eased axis. It
// is the generic seam for wrapping arbitrary visual state: give it a new
// target with Set, tick it every frame, and draw Value.
//
// Unlike a scalar Animation, a retarget restarts the axis from the
// currently displayed blend rather than preserving velocity: the distance
// between two records has no single scale to carry a speed across. The
// record still never jumps.
type Animated[T Blendable[T]] struct {
	// Duration and Curve configure the axis. They are read when Set
	// starts a flight; changing them mid-flight applies to the next one.
	Duration time.Duration
	Curve    Curve

	axis Animation
	from T
	to   T
}

// NewAnimated returns a wrapper at rest on value, with the same defaults as
// NewAnimation (500ms, Linear).
func NewAnimated[T Blendable[T]](value T) *Animated[T] {
	return &Animated[T]{
		Duration: 500 * time.Millisecond,
		from:     value,
		to:       value,
	}
}

// Set starts animating toward target. If a flight is already in progress
// the currently displayed blend becomes the new origin. Set always restarts
// the axis; callers decide whether the target actually changed.
func (a *Animated[T]) Set(target T, now time.Time) {
	a.from = a.Value()
	a.to = target
	a.axis = Animation{Duration: a.Duration, Curve: a.Curve}
	a.axis.Transition(1, now)
}

// Tick advances the axis to now and reports whether a redraw is warranted.
func (a *Animated[T]) Tick(now time.Time) bool {
	return a.axis.Tick(now)
}

// Value returns the record to draw this frame.
func (a *Animated[T]) Value() T {
	if !a.axis.Animating() {
		return a.to
	}
	return a.from.Blend(a.to, a.axis.Value())
}

// Animating reports whether a flight is in progress.
func (a *Animated[T]) Animating() bool {
	return a.axis.Animating()
}
