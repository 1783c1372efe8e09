package picklist

import "github.com/mattn/go-runewidth"

// Font identifies a typeface by name. The measurer and renderer interpret
// the name; an empty name selects their built-in font.
type Font struct {
	Name string
}

// TextMeasurer is the text-measurement collaborator. Implementations
// report the rendered size of a string at a given text size and font,
// constrained to a bounding box.
type TextMeasurer interface {
	MeasureText(s string, size float32, f Font, bounds Vec2) Vec2

	// DefaultSize returns the text size used when a widget does not
	// override it.
	DefaultSize() float32
}

// MonoMeasurer measures text against a monospaced cell grid. Wide runes
// (CJK and friends) count as two cells, per Unicode East Asian Width.
type MonoMeasurer struct {
	// CharAspect is the cell width as a fraction of the text size.
	// Zero selects the default of 0.5.
	CharAspect float32
}

// DefaultMonoTextSize is the text size MonoMeasurer reports as its default.
const DefaultMonoTextSize float32 = 16

// MeasureText implements TextMeasurer.
func (m MonoMeasurer) MeasureText(s string, size float32, _ Font, bounds Vec2) Vec2 {
	aspect := m.CharAspect
	if aspect == 0 {
		aspect = 0.5
	}
	w := float32(runewidth.StringWidth(s)) * size * aspect
	return Vec2{X: minf(w, bounds.X), Y: minf(size, bounds.Y)}
}

// DefaultSize implements TextMeasurer.
func (m MonoMeasurer) DefaultSize() float32 {
	return DefaultMonoTextSize
}

// charWidth returns the width of one narrow cell at the given text size,
// used to place glyphs when drawing with the built-in bitmap font.
func charWidth(m TextMeasurer, size float32, f Font) float32 {
	return m.MeasureText("M", size, f, unbounded()).X
}

// unbounded returns a bounding box that never constrains measurement.
func unbounded() Vec2 {
	const inf = float32(1e9)
	return Vec2{X: inf, Y: inf}
}
