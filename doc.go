// Package glide animates transitions between visual states for [Ebitengine]
// user interfaces.
//
// Glide is the animation engine only: it knows nothing about layout,
// hit-testing, event dispatch, or rendering. The host widget layer feeds it
// target values when state changes (a checkbox toggles, the cursor enters a
// control), ticks it once per frame, and draws whatever it reports.
//
// # Scalar animation
//
// [Animation] advances one value toward a target over a configured duration
// and easing [Curve], and keeps motion continuous when a transition is
// retargeted mid-flight:
//
//	anim := glide.NewAnimation(0)
//	anim.Duration = 300 * time.Millisecond
//	anim.Curve = glide.EaseInOut
//
//	anim.Transition(1, time.Now())       // on state change
//	needsRedraw := anim.Tick(time.Now()) // once per frame
//	draw(anim.Value())                   // eased display value
//
// There is no global animation manager and glide never reads the clock:
// callers pass every timestamp explicitly, which keeps the engine
// deterministic and testable with a logical clock.
//
// # Appearance blending
//
// [Appearance] is the visual state of a checkbox-like control. Two
// appearances blend field-wise by a ratio produced by an Animation.
// [CheckboxAnimation] pairs two independent axes (checked, hovered) and
// composes their blends into the appearance to draw each frame. [Animated]
// wraps any [Blendable] record to animate it along a single axis.
//
// # Themes
//
// [Theme] loads checkbox styling and per-axis animation settings from YAML.
// See examples/checkbox for a runnable application.
//
// [Ebitengine]: https://ebitengine.org
package glide
