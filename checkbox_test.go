package glide

import (
	"testing"
	"time"
)

// cornerStyle gives each corner a distinct border width so tests can tell
// exactly which blend produced a value: width = checked*10 + hovered*100.
func cornerStyle() CheckboxStyle {
	return CheckboxStyle{
		Off:        testAppearance(0, UniformRadius(0), nil),
		On:         testAppearance(10, UniformRadius(0), nil),
		OffHovered: testAppearance(100, UniformRadius(0), nil),
		OnHovered:  testAppearance(110, UniformRadius(0), nil),
	}
}

func TestCheckboxInitialState(t *testing.T) {
	c := NewCheckboxAnimation(true, false)

	if c.Checked.Value() != 1 {
		t.Errorf("Checked = %f, want 1", c.Checked.Value())
	}
	if c.Hovered.Value() != 0 {
		t.Errorf("Hovered = %f, want 0", c.Hovered.Value())
	}
	if c.Animating() {
		t.Error("fresh checkbox should be at rest")
	}
}

func TestCheckboxCornerSelection(t *testing.T) {
	style := cornerStyle()
	cases := []struct {
		checked, hovered bool
		want             float32
	}{
		{false, false, 0},
		{true, false, 10},
		{false, true, 100},
		{true, true, 110},
	}
	for _, tc := range cases {
		c := NewCheckboxAnimation(tc.checked, tc.hovered)
		if got := c.Appearance(style).BorderWidth; got != tc.want {
			t.Errorf("corner (%v, %v) width = %f, want %f",
				tc.checked, tc.hovered, got, tc.want)
		}
	}
}

func TestCheckboxSequentialComposition(t *testing.T) {
	style := cornerStyle()
	c := NewCheckboxAnimation(false, false)
	c.Checked.Duration = time.Second
	c.Hovered.Duration = time.Second

	c.SetChecked(true, at(0))
	c.SetHovered(true, at(0))
	c.Tick(at(500))

	// Both axes half way: width = 0.5*10 + 0.5*100.
	if got := c.Appearance(style).BorderWidth; !near(got, 55) {
		t.Errorf("width = %f, want 55", got)
	}
}

func TestCheckboxSettersAreGuarded(t *testing.T) {
	c := NewCheckboxAnimation(false, false)
	c.Checked.Duration = time.Second

	c.SetChecked(true, at(0))
	c.Tick(at(500))
	before := c.Checked.Value()

	// Repeating the same state every frame must not restart or interrupt
	// the flight.
	c.SetChecked(true, at(500))
	if c.Checked.Value() != before {
		t.Errorf("Value changed from %f to %f on repeated SetChecked", before, c.Checked.Value())
	}

	c.Tick(at(1000))
	if c.Checked.Animating() {
		t.Error("flight should complete on the original schedule")
	}

	// At rest in the requested state, the setter is also a no-op.
	c.SetChecked(true, at(1100))
	if c.Checked.Animating() {
		t.Error("SetChecked at rest in-state should not start a flight")
	}
}

func TestCheckboxSetterInterruptsOppositeFlight(t *testing.T) {
	c := NewCheckboxAnimation(false, false)
	c.Checked.Duration = time.Second

	c.SetChecked(true, at(0))
	c.Tick(at(500))
	c.SetChecked(false, at(500))

	if target := c.Checked.Target(); target != 0 {
		t.Errorf("Target = %f, want 0 after toggling mid-flight", target)
	}
}

func TestCheckboxTickAggregatesAxes(t *testing.T) {
	c := NewCheckboxAnimation(false, false)
	c.Checked.Duration = time.Second
	c.Hovered.Duration = 100 * time.Millisecond

	if c.Tick(at(0)) {
		t.Error("Tick at rest should report false")
	}

	c.SetHovered(true, at(0))
	if !c.Tick(at(50)) {
		t.Error("Tick should report true while the hovered axis flies")
	}
	if !c.Animating() {
		t.Error("Animating should report the hovered flight")
	}

	c.Tick(at(100))
	if c.Animating() {
		t.Error("both axes should be at rest")
	}
}

func TestCheckboxPerAxisConfiguration(t *testing.T) {
	c := NewCheckboxAnimation(false, false)
	c.Checked.Duration = time.Second
	c.Checked.Curve = EaseInQuint
	c.Hovered.Duration = 100 * time.Millisecond
	c.Hovered.Curve = EaseInOut

	c.SetChecked(true, at(0))
	c.SetHovered(true, at(0))
	c.Tick(at(100))

	// The hovered axis finished its 100ms flight while the checked axis
	// has barely begun its quintic ease.
	if c.Hovered.Value() != 1 {
		t.Errorf("Hovered = %f, want 1", c.Hovered.Value())
	}
	if c.Checked.Value() >= 0.1 {
		t.Errorf("Checked = %f, expected a slow quintic start", c.Checked.Value())
	}
	if !c.Checked.Animating() || c.Hovered.Animating() {
		t.Error("only the checked axis should still be in flight")
	}
}
