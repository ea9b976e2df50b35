package glide

import "github.com/tanema/gween/ease"

// Curve names an easing shape applied to displayed progress. A curve maps
// linear progress in [0, 1] to eased progress with f(0) = 0 and f(1) = 1.
// Inputs are not clamped; callers keep completion in range.
type Curve uint8

const (
	Linear         Curve = iota // constant rate
	EaseIn                      // sine ease-in: slow start
	EaseOut                     // sine ease-out: slow finish
	EaseInOut                   // sine ease-in-out: slow start and finish
	EaseInQuint                 // quintic ease-in: very slow start
	EaseOutQuint                // quintic ease-out: very slow finish
	EaseInOutQuint              // quintic ease-in-out
)

// tweenFunc returns the gween easing function backing this curve. Unknown
// values fall back to Linear rather than failing: an unrecognized curve
// renders as a constant-rate transition.
func (c Curve) tweenFunc() ease.TweenFunc {
	switch c {
	case EaseIn:
		return ease.InSine
	case EaseOut:
		return ease.OutSine
	case EaseInOut:
		return ease.InOutSine
	case EaseInQuint:
		return ease.InQuint
	case EaseOutQuint:
		return ease.OutQuint
	case EaseInOutQuint:
		return ease.InOutQuint
	default:
		return ease.Linear
	}
}

// Evaluate maps linear progress x to eased progress.
func (c Curve) Evaluate(x float32) float32 {
	return c.tweenFunc()(x, 0, 1, 1)
}

// curveNames are the identifiers used in theme files.
var curveNames = [...]string{
	Linear:         "linear",
	EaseIn:         "easeIn",
	EaseOut:        "easeOut",
	EaseInOut:      "easeInOut",
	EaseInQuint:    "easeInQuint",
	EaseOutQuint:   "easeOutQuint",
	EaseInOutQuint: "easeInOutQuint",
}

// String returns the curve's theme-file name.
func (c Curve) String() string {
	if int(c) < len(curveNames) {
		return curveNames[c]
	}
	return "linear"
}

// CurveByName resolves a theme-file curve name. It reports false for
// unknown names.
func CurveByName(name string) (Curve, bool) {
	for c, n := range curveNames {
		if n == name {
			return Curve(c), true
		}
	}
	return Linear, false
}
