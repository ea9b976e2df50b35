package glide

import "time"

// CheckboxStyle holds the four corner appearances of a checkbox: checked or
// not, hovered or not. The widget layer resolves these from its theme before
// any blending happens; the animation engine never looks styles up itself.
type CheckboxStyle struct {
	Off        Appearance // unchecked, cursor elsewhere
	On         Appearance // checked, cursor elsewhere
	OffHovered Appearance // unchecked, cursor over the control
	OnHovered  Appearance // checked, cursor over the control
}

// CheckboxAnimation drives the two animated axes of a checkbox: how checked
// it currently looks and how hovered it currently looks. Each axis is an
// independent Animation with its own duration and curve, so a toggle can
// sweep slowly while hover feedback stays snappy.
type CheckboxAnimation struct {
	Checked *Animation
	Hovered *Animation
}

// NewCheckboxAnimation returns a checkbox animation at rest in the given
// state.
func NewCheckboxAnimation(checked, hovered bool) *CheckboxAnimation {
	return &CheckboxAnimation{
		Checked: NewAnimation(amount(checked)),
		Hovered: NewAnimation(amount(hovered)),
	}
}

func amount(on bool) float32 {
	if on {
		return 1
	}
	return 0
}

// SetChecked animates the checked axis toward the given state. Calling it
// every frame is safe: nothing happens while the axis is already at, or
// heading toward, the state.
func (c *CheckboxAnimation) SetChecked(checked bool, now time.Time) {
	if target := amount(checked); c.Checked.Target() != target {
		c.Checked.Transition(target, now)
	}
}

// SetHovered animates the hovered axis toward the given state, with the
// same per-frame guard as SetChecked.
func (c *CheckboxAnimation) SetHovered(hovered bool, now time.Time) {
	if target := amount(hovered); c.Hovered.Target() != target {
		c.Hovered.Transition(target, now)
	}
}

// Tick advances both axes to now and reports whether either wants a redraw.
func (c *CheckboxAnimation) Tick(now time.Time) bool {
	checked := c.Checked.Tick(now)
	hovered := c.Hovered.Tick(now)
	return checked || hovered
}

// Animating reports whether either axis is in flight.
func (c *CheckboxAnimation) Animating() bool {
	return c.Checked.Animating() || c.Hovered.Animating()
}

// Appearance blends the style's four corners into the appearance to draw
// this frame. Composition is sequential, one axis at a time: the checked
// blend is computed for both hover states, then the hovered axis blends
// between those results. That approximates true bilinear blending over the
// four corners and is exact while the two axes affect independent fields.
func (c *CheckboxAnimation) Appearance(style CheckboxStyle) Appearance {
	checked := c.Checked.Value()
	base := style.Off.Blend(style.On, checked)
	hovered := style.OffHovered.Blend(style.OnHovered, checked)
	return base.Blend(hovered, c.Hovered.Value())
}
