package glide

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Theme is a data-driven checkbox look: the four corner appearances plus
// per-axis animation settings. Themes typically come from a YAML file:
//
//	checked:
//	  durationMs: 300
//	  curve: easeInOutQuint
//	hovered:
//	  durationMs: 100
//	  curve: easeInOut
//	off:
//	  background: "#2B2438"
//	  iconColor: "#2B243800"
//	  borderRadius: 4
//	  borderWidth: 1.5
//	  borderColor: "#6B5F8A"
//	on:
//	  background: "#7C5CBF"
//	  ...
type Theme struct {
	Checked    AxisConfig       `yaml:"checked"`
	Hovered    AxisConfig       `yaml:"hovered"`
	Off        AppearanceConfig `yaml:"off"`
	On         AppearanceConfig `yaml:"on"`
	OffHovered AppearanceConfig `yaml:"offHovered"`
	OnHovered  AppearanceConfig `yaml:"onHovered"`
}

// AxisConfig configures one animated axis.
type AxisConfig struct {
	// DurationMs is the full-range transition time in milliseconds.
	// Zero completes transitions instantly (animation disabled).
	DurationMs int `yaml:"durationMs"`

	// Curve is the easing shape, by name ("linear", "easeInOut", ...).
	Curve Curve `yaml:"curve"`
}

// AppearanceConfig is the YAML form of an Appearance. Colors are "#RRGGBB"
// or "#RRGGBBAA" strings; textColor may be omitted.
type AppearanceConfig struct {
	Background   string  `yaml:"background"`
	IconColor    string  `yaml:"iconColor"`
	BorderRadius float32 `yaml:"borderRadius"`
	BorderWidth  float32 `yaml:"borderWidth"`
	BorderColor  string  `yaml:"borderColor"`
	TextColor    string  `yaml:"textColor,omitempty"`
}

// UnmarshalYAML decodes a curve from its theme-file name.
func (c *Curve) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	curve, ok := CurveByName(name)
	if !ok {
		return fmt.Errorf("unknown curve %q", name)
	}
	*c = curve
	return nil
}

// MarshalYAML encodes a curve as its theme-file name.
func (c Curve) MarshalYAML() (any, error) {
	return c.String(), nil
}

// LoadTheme reads and validates a YAML theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme parses and validates YAML theme data.
func ParseTheme(data []byte) (*Theme, error) {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	return &theme, nil
}

// Validate checks that durations are non-negative and that every corner's
// colors parse.
func (t *Theme) Validate() error {
	if t.Checked.DurationMs < 0 {
		return fmt.Errorf("checked: durationMs is negative")
	}
	if t.Hovered.DurationMs < 0 {
		return fmt.Errorf("hovered: durationMs is negative")
	}
	corners := []struct {
		name string
		cfg  AppearanceConfig
	}{
		{"off", t.Off},
		{"on", t.On},
		{"offHovered", t.OffHovered},
		{"onHovered", t.OnHovered},
	}
	for _, corner := range corners {
		if _, err := corner.cfg.appearance(); err != nil {
			return fmt.Errorf("%s: %w", corner.name, err)
		}
	}
	return nil
}

// Style resolves the theme's four corner appearances. The theme must have
// passed Validate; corners that fail to parse here resolve to zero values.
func (t *Theme) Style() CheckboxStyle {
	off, _ := t.Off.appearance()
	on, _ := t.On.appearance()
	offHovered, _ := t.OffHovered.appearance()
	onHovered, _ := t.OnHovered.appearance()
	return CheckboxStyle{
		Off:        off,
		On:         on,
		OffHovered: offHovered,
		OnHovered:  onHovered,
	}
}

// Checkbox builds a CheckboxAnimation at rest in the given state, with both
// axes configured from the theme.
func (t *Theme) Checkbox(checked, hovered bool) *CheckboxAnimation {
	c := NewCheckboxAnimation(checked, hovered)
	c.Checked.Duration = time.Duration(t.Checked.DurationMs) * time.Millisecond
	c.Checked.Curve = t.Checked.Curve
	c.Hovered.Duration = time.Duration(t.Hovered.DurationMs) * time.Millisecond
	c.Hovered.Curve = t.Hovered.Curve
	return c
}

func (c AppearanceConfig) appearance() (Appearance, error) {
	background, err := ParseColor(c.Background)
	if err != nil {
		return Appearance{}, fmt.Errorf("background: %w", err)
	}
	icon, err := ParseColor(c.IconColor)
	if err != nil {
		return Appearance{}, fmt.Errorf("iconColor: %w", err)
	}
	border, err := ParseColor(c.BorderColor)
	if err != nil {
		return Appearance{}, fmt.Errorf("borderColor: %w", err)
	}
	app := Appearance{
		Background:   SolidBackground(background),
		IconColor:    icon,
		BorderRadius: UniformRadius(c.BorderRadius),
		BorderWidth:  c.BorderWidth,
		BorderColor:  border,
	}
	if c.TextColor != "" {
		text, err := ParseColor(c.TextColor)
		if err != nil {
			return Appearance{}, fmt.Errorf("textColor: %w", err)
		}
		app.TextColor = &text
	}
	return app, nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into a Color. Alpha defaults
// to opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return Color{
		R: float32(v>>24&0xFF) / 255,
		G: float32(v>>16&0xFF) / 255,
		B: float32(v>>8&0xFF) / 255,
		A: float32(v&0xFF) / 255,
	}, nil
}
