package glide

import "github.com/hajimehoshi/ebiten/v2"

// Blendable is the protocol for visual state records that can be mixed
// pairwise. Blend returns the value ratio of the way from the receiver to
// other: 0 yields the receiver, 1 yields other. Ratios are not clamped, so
// values outside [0, 1] extrapolate, mirroring linear blend semantics.
type Blendable[T any] interface {
	Blend(other T, ratio float32) T
}

// Lerp linearly interpolates between a and b by ratio, unclamped.
func Lerp(a, b, ratio float32) float32 {
	return a*(1-ratio) + b*ratio
}

// Mix blends two colors component-wise.
func (c Color) Mix(other Color, ratio float32) Color {
	return Color{
		R: Lerp(c.R, other.R, ratio),
		G: Lerp(c.G, other.G, ratio),
		B: Lerp(c.B, other.B, ratio),
		A: Lerp(c.A, other.A, ratio),
	}
}

// Blend implements Blendable for Color.
func (c Color) Blend(other Color, ratio float32) Color {
	return c.Mix(other, ratio)
}

// BackgroundKind discriminates the closed set of background fills.
type BackgroundKind uint8

const (
	BackgroundColor BackgroundKind = iota // solid color fill
	BackgroundImage                       // textured fill
)

// Background is a control's fill: a solid color or an image.
type Background struct {
	Kind  BackgroundKind
	Color Color
	Image *ebiten.Image
}

// SolidBackground returns a solid color background.
func SolidBackground(c Color) Background {
	return Background{Kind: BackgroundColor, Color: c}
}

// ImageBackground returns a textured background.
func ImageBackground(img *ebiten.Image) Background {
	return Background{Kind: BackgroundImage, Image: img}
}

// Blend mixes two color backgrounds component-wise. Any other pairing has
// no defined blend and resolves to the incoming side.
func (b Background) Blend(other Background, ratio float32) Background {
	if b.Kind == BackgroundColor && other.Kind == BackgroundColor {
		return SolidBackground(b.Color.Mix(other.Color, ratio))
	}
	return other
}

// BorderRadius holds the four corner radii in clockwise order starting at
// the top left. Radii have no defined blend; blending keeps the receiver's
// corners unchanged.
type BorderRadius [4]float32

// UniformRadius returns a BorderRadius with the same radius on every corner.
func UniformRadius(r float32) BorderRadius {
	return BorderRadius{r, r, r, r}
}

// Appearance is the full visual state of a checkbox-like control, resolved
// from a style or theme before blending. TextColor is optional; nil means
// the label keeps the surrounding default.
type Appearance struct {
	Background   Background
	IconColor    Color
	BorderRadius BorderRadius
	BorderWidth  float32
	BorderColor  Color
	TextColor    *Color
}

// Blend mixes two appearances field-wise: colors mix, the border width
// lerps, the radius keeps the receiver's corners. An optional text color is
// mixed when both sides have one; otherwise the incoming side wins, even
// when it is absent.
func (a Appearance) Blend(other Appearance, ratio float32) Appearance {
	blended := Appearance{
		Background:   a.Background.Blend(other.Background, ratio),
		IconColor:    a.IconColor.Mix(other.IconColor, ratio),
		BorderRadius: a.BorderRadius,
		BorderWidth:  Lerp(a.BorderWidth, other.BorderWidth, ratio),
		BorderColor:  a.BorderColor.Mix(other.BorderColor, ratio),
		TextColor:    other.TextColor,
	}
	if a.TextColor != nil && other.TextColor != nil {
		mixed := a.TextColor.Mix(*other.TextColor, ratio)
		blended.TextColor = &mixed
	}
	return blended
}
