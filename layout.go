package picklist

// defaultContentWidth is used in place of a measurement when the option
// list or the placeholder is absent during shrink-to-content sizing.
const defaultContentWidth float32 = 100

type lengthPolicy int

const (
	policyShrink lengthPolicy = iota
	policyFill
	policyFixed
)

// Length describes how a dimension resolves against its constraints.
type Length struct {
	policy lengthPolicy
	units  float32
}

// Shrink sizes the dimension to its measured content.
var Shrink = Length{policy: policyShrink}

// Fill expands the dimension to the maximum the constraints allow.
var Fill = Length{policy: policyFill}

// Units fixes the dimension to an exact value.
func Units(v float32) Length {
	return Length{policy: policyFixed, units: v}
}

// IsShrink returns true when the length is content-sized.
func (l Length) IsShrink() bool {
	return l.policy == policyShrink
}

// Limits is the sizing constraint a parent imposes on a child, a minimum
// and maximum size per axis plus fill flags set by Fill lengths.
type Limits struct {
	min, max Vec2
	fill     [2]bool
}

// NewLimits creates Limits from minimum and maximum sizes.
func NewLimits(min, max Vec2) Limits {
	return Limits{min: min, max: max}
}

// Unbounded returns Limits with no effective maximum.
func Unbounded() Limits {
	return NewLimits(Vec2{}, unbounded())
}

// Min returns the minimum size.
func (l Limits) Min() Vec2 { return l.min }

// Max returns the maximum size.
func (l Limits) Max() Vec2 { return l.max }

// Width applies a width policy to the limits.
func (l Limits) Width(w Length) Limits {
	switch w.policy {
	case policyFill:
		l.fill[0] = true
	case policyFixed:
		u := clampf(w.units, l.min.X, l.max.X)
		l.min.X = u
		l.max.X = u
	}
	return l
}

// Height applies a height policy to the limits.
func (l Limits) Height(h Length) Limits {
	switch h.policy {
	case policyFill:
		l.fill[1] = true
	case policyFixed:
		u := clampf(h.units, l.min.Y, l.max.Y)
		l.min.Y = u
		l.max.Y = u
	}
	return l
}

// Pad shrinks the limits by the given padding on all sides.
func (l Limits) Pad(p Padding) Limits {
	l.min.X = maxf(0, l.min.X-p.Horizontal())
	l.min.Y = maxf(0, l.min.Y-p.Vertical())
	l.max.X = maxf(0, l.max.X-p.Horizontal())
	l.max.Y = maxf(0, l.max.Y-p.Vertical())
	return l
}

// Resolve turns an intrinsic content size into a concrete size within the
// limits. Fill axes take the maximum; the rest clamp the intrinsic size.
func (l Limits) Resolve(intrinsic Vec2) Vec2 {
	var size Vec2
	if l.fill[0] {
		size.X = l.max.X
	} else {
		size.X = clampf(intrinsic.X, l.min.X, l.max.X)
	}
	if l.fill[1] {
		size.Y = l.max.Y
	} else {
		size.Y = clampf(intrinsic.Y, l.min.Y, l.max.Y)
	}
	return size
}

// Node is the computed layout of a widget: its box plus child sub-boxes.
// Child positions are relative to the parent's top-left corner; hosts
// position the root by calling MoveTo.
type Node struct {
	Bounds   Rect
	Children []Node
}

// NewNode creates a leaf node of the given size at the origin.
func NewNode(size Vec2) Node {
	return Node{Bounds: Rect{W: size.X, H: size.Y}}
}

// MoveTo positions the node at p, keeping its size.
func (n *Node) MoveTo(p Vec2) {
	n.Bounds.X = p.X
	n.Bounds.Y = p.Y
}

// InnerText returns the text sub-region in the same coordinate space as
// the node's own bounds. Falls back to the full bounds when the node has
// no text child.
func (n Node) InnerText() Rect {
	if len(n.Children) == 0 {
		return n.Bounds
	}
	c := n.Children[0].Bounds
	return Rect{X: n.Bounds.X + c.X, Y: n.Bounds.Y + c.Y, W: c.W, H: c.H}
}

// computeLayout sizes the control from its content. With a shrink width
// policy every option's string form and the placeholder are measured and
// the widest wins; fixed and fill widths skip measurement entirely.
// Measurement is not cached, so a layout pass costs one measurer call per
// option plus one for the placeholder.
func computeLayout[T comparable](
	m TextMeasurer,
	limits Limits,
	width Length,
	padding Padding,
	textSize float32,
	font Font,
	placeholder string,
	hasPlaceholder bool,
	options Options[T],
	toString func(T) string,
) Node {
	limits = limits.Width(width).Height(Shrink).Pad(padding)

	if textSize == 0 {
		textSize = m.DefaultSize()
	}

	var contentWidth float32
	if width.IsShrink() {
		measure := func(label string) float32 {
			return roundf(m.MeasureText(label, textSize, font, unbounded()).X)
		}

		labelsWidth := defaultContentWidth
		if options.Len() > 0 {
			labelsWidth = 0
			for i := 0; i < options.Len(); i++ {
				item, _ := options.At(i)
				labelsWidth = maxf(labelsWidth, measure(toString(item)))
			}
		}

		placeholderWidth := defaultContentWidth
		if hasPlaceholder {
			placeholderWidth = measure(placeholder)
		}

		contentWidth = maxf(labelsWidth, placeholderWidth)
	}

	intrinsic := Vec2{
		X: contentWidth + textSize + padding.Left,
		Y: textSize,
	}

	size := limits.Resolve(intrinsic)
	size.X += padding.Horizontal()
	size.Y += padding.Vertical()

	text := NewNode(limits.Resolve(size))
	text.MoveTo(Vec2{X: padding.Left, Y: 0})

	node := NewNode(size)
	node.Children = []Node{text}
	return node
}
