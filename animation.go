package glide

import "time"

// Animation advances a single scalar value from an origin toward a target
// over a configured duration and easing curve. It is the one-dimensional
// building block behind every animated axis: a checkbox owns one Animation
// for its checked amount and another for its hovered amount.
//
// The machine has two states. At rest nothing moves and Tick reports false.
// In flight the internal position advances linearly with elapsed time while
// Value applies the curve for display, so retargeting mid-flight can
// re-anchor at the exact value on screen without a visible jump.
//
// There is no global animation manager — the host loop calls Tick once per
// frame with an explicit timestamp. Timestamps passed to Transition and Tick
// must not move backward.
type Animation struct {
	// Duration is the time a full-range transition takes. Zero disables
	// animation: the next Tick completes the transition instantly.
	Duration time.Duration

	// Curve shapes the displayed value. It never alters the internal
	// linear position, only what Value reports.
	Curve Curve

	position    float32
	origin      float32
	destination float32
	animating   bool

	startedAt  time.Time
	lastTickAt time.Time

	// interruptSpeed is the magnitude of position change per millisecond,
	// captured the first time an in-flight transition is retargeted.
	// Later retargets of the same flight reuse it, so a chain of
	// interrupts moves at one consistent velocity.
	interruptSpeed float32
	interrupted    bool
}

// NewAnimation returns an Animation at rest on initial, with a 500ms
// duration and the Linear curve.
func NewAnimation(initial float32) *Animation {
	return &Animation{
		Duration: 500 * time.Millisecond,
		position: initial,
		origin:   initial,
	}
}

// Transition starts animating toward target, or retargets the flight
// already in progress. Retargeting re-anchors the origin at the eased
// display value, so the motion continues from exactly what is on screen.
// Transitioning toward the current destination is a no-op.
func (a *Animation) Transition(target float32, now time.Time) {
	if a.animating {
		if target == a.destination {
			return
		}
		if !a.interrupted {
			if ms := durationMS(a.Duration); ms > 0 {
				a.interruptSpeed = abs32(a.destination-a.origin) / ms
				a.interrupted = true
			}
		}
		// Elapsed-time bookkeeping continues across the retarget;
		// startedAt and lastTickAt stay as they are.
		a.origin = a.Value()
		a.position = a.origin
		a.destination = target
		return
	}
	a.origin = a.position
	a.destination = target
	a.animating = true
	a.startedAt = now
	a.lastTickAt = time.Time{}
	a.interruptSpeed = 0
	a.interrupted = false
}

// Tick advances the animation to now and reports whether a redraw is
// warranted. It returns true for every call while a transition is in
// flight, including the call that completes it, and false at rest.
func (a *Animation) Tick(now time.Time) bool {
	if !a.animating {
		return false
	}
	last := a.lastTickAt
	if last.IsZero() {
		last = a.startedAt
	}
	elapsed := durationMS(now.Sub(last))
	total := durationMS(a.Duration)

	finished := false
	switch {
	case total <= 0:
		finished = true
	case a.interrupted:
		// After a retarget the remainder of the flight moves at the
		// captured speed. Re-deriving a curved time axis after a
		// mid-curve retarget is ill-defined, so easing is bypassed
		// for position advancement from here on.
		if a.destination >= a.position {
			a.position += elapsed * a.interruptSpeed
			finished = a.position >= a.destination
		} else {
			a.position -= elapsed * a.interruptSpeed
			finished = a.position <= a.destination
		}
	default:
		a.position += elapsed / total * (a.destination - a.origin)
		if a.destination >= a.origin {
			finished = a.position >= a.destination
		} else {
			finished = a.position <= a.destination
		}
	}

	if finished {
		a.position = a.destination
		a.origin = a.destination
		a.animating = false
		a.startedAt = time.Time{}
		a.lastTickAt = time.Time{}
		a.interruptSpeed = 0
		a.interrupted = false
	} else {
		a.lastTickAt = now
	}
	return true
}

// Value returns the eased display value: the origin plus the curved share
// of the distance covered so far. At rest, or when a flight has nowhere to
// go (destination equals origin), it is the raw position.
func (a *Animation) Value() float32 {
	if !a.animating || a.destination == a.origin {
		return a.position
	}
	completion := (a.position - a.origin) / (a.destination - a.origin)
	return a.origin + a.Curve.Evaluate(completion)*(a.destination-a.origin)
}

// Animating reports whether a transition is in flight.
func (a *Animation) Animating() bool {
	return a.animating
}

// Target returns the value the animation is heading toward, or the resting
// position when nothing is in flight. Widget layers compare it against the
// desired state to decide whether a Transition is needed this frame.
func (a *Animation) Target() float32 {
	if a.animating {
		return a.destination
	}
	return a.position
}

func durationMS(d time.Duration) float32 {
	return float32(d) / float32(time.Millisecond)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
