package picklist

// Menu builds the floating option list shown while a pick list is open.
// Picks are not emitted directly: they land in the owning State's one-shot
// selection mailbox, which the pick list drains on its next primary press.
// That keeps close-then-notify ordering inside the normal event path.
type Menu[T comparable] struct {
	state    *State[T]
	options  Options[T]
	toString func(T) string
	width     float32
	maxHeight float32
	padding   Padding
	textSize  float32
	font     Font
	style    MenuAppearance
}

// NewMenu creates a menu bound to a pick list's state. The hovered index
// and selection mailbox are shared through the state.
func NewMenu[T comparable](state *State[T], options Options[T], toString func(T) string) *Menu[T] {
	return &Menu[T]{
		state:    state,
		options:  options,
		toString: toString,
		style:    DefaultTheme().MenuStyle(),
	}
}

// Width sets the menu width.
func (m *Menu[T]) Width(w float32) *Menu[T] {
	m.width = w
	return m
}

// MaxHeight caps the menu height; taller content scrolls. Zero means no
// cap.
func (m *Menu[T]) MaxHeight(h float32) *Menu[T] {
	m.maxHeight = h
	return m
}

// Padding sets the per-entry padding.
func (m *Menu[T]) Padding(p Padding) *Menu[T] {
	m.padding = p
	return m
}

// TextSize sets the entry text size.
func (m *Menu[T]) TextSize(size float32) *Menu[T] {
	m.textSize = size
	return m
}

// Font sets the entry font.
func (m *Menu[T]) Font(f Font) *Menu[T] {
	m.font = f
	return m
}

// Style sets the menu appearance.
func (m *Menu[T]) Style(s MenuAppearance) *Menu[T] {
	m.style = s
	return m
}

// Overlay anchors the menu below a box of the given height at position
// and returns the floating element the host should render above normal
// content.
func (m *Menu[T]) Overlay(position Vec2, targetHeight float32) *MenuOverlay[T] {
	return &MenuOverlay[T]{
		menu:   m,
		anchor: Vec2{X: position.X, Y: position.Y + targetHeight},
	}
}

// OverlayElement is a floating element produced by a widget, drawn above
// normal content and receiving events before it.
type OverlayElement interface {
	Bounds() Rect
	OnEvent(ev Event, cursor Vec2) Status
	Draw(dl *DrawList, m TextMeasurer)
}

// MenuOverlay is the instantiated floating menu.
type MenuOverlay[T comparable] struct {
	menu   *Menu[T]
	anchor Vec2
}

func (o *MenuOverlay[T]) textSize() float32 {
	if o.menu.textSize > 0 {
		return o.menu.textSize
	}
	return DefaultMonoTextSize
}

func (o *MenuOverlay[T]) entryHeight() float32 {
	return o.textSize() + o.menu.padding.Vertical()
}

// Bounds returns the menu's on-screen box.
func (o *MenuOverlay[T]) Bounds() Rect {
	h := o.entryHeight() * float32(o.menu.options.Len())
	if o.menu.maxHeight > 0 {
		h = minf(h, o.menu.maxHeight)
	}
	return Rect{
		X: o.anchor.X,
		Y: o.anchor.Y,
		W: o.menu.width,
		H: h,
	}
}

// entryAt returns the option index under the cursor, or -1.
func (o *MenuOverlay[T]) entryAt(cursor Vec2) int {
	bounds := o.Bounds()
	if !bounds.Contains(cursor) {
		return -1
	}
	entryH := o.entryHeight()
	i := int((cursor.Y - bounds.Y + o.menu.state.Menu.ScrollY) / entryH)
	if i < 0 || i >= o.menu.options.Len() {
		return -1
	}
	return i
}

// OnEvent lets the menu track hover, scroll, and picks. A pick writes the
// owning state's selection mailbox and highlights the picked entry; the
// pick list emits the message when it drains the mailbox.
func (o *MenuOverlay[T]) OnEvent(ev Event, cursor Vec2) Status {
	switch e := ev.(type) {
	case PointerMoved:
		if i := o.entryAt(cursor); i >= 0 {
			o.menu.state.HoveredOption = i
			return Captured
		}
		return Ignored

	case WheelScrolled:
		if !o.Bounds().Contains(cursor) {
			return Ignored
		}
		st := &o.menu.state.Menu
		entryH := o.entryHeight()
		content := entryH * float32(o.menu.options.Len())
		st.ScrollY = clampf(st.ScrollY-e.DeltaY*entryH, 0, maxf(0, content-o.Bounds().H))
		return Captured

	case PointerPressed:
		if e.Button != MouseButtonLeft {
			return Ignored
		}
		i := o.entryAt(cursor)
		if i < 0 {
			return Ignored
		}
		if item, ok := o.menu.options.At(i); ok {
			o.menu.state.HoveredOption = i
			o.menu.state.postSelection(item)
		}
		return Captured

	case TouchStarted:
		i := o.entryAt(cursor)
		if i < 0 {
			return Ignored
		}
		if item, ok := o.menu.options.At(i); ok {
			o.menu.state.HoveredOption = i
			o.menu.state.postSelection(item)
		}
		return Captured
	}

	return Ignored
}

// Draw renders the menu box and its entries, highlighting the hovered one.
func (o *MenuOverlay[T]) Draw(dl *DrawList, m TextMeasurer) {
	bounds := o.Bounds()
	style := o.menu.style
	size := o.textSize()
	entryH := o.entryHeight()

	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.Background)
	if style.BorderWidth > 0 {
		dl.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, style.BorderColor, style.BorderWidth)
	}

	cw := charWidth(m, size, o.menu.font)

	dl.PushClipRect(bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H)
	y := bounds.Y - o.menu.state.Menu.ScrollY
	for i := 0; i < o.menu.options.Len(); i++ {
		item, _ := o.menu.options.At(i)

		textColor := style.TextColor
		if i == o.menu.state.HoveredOption {
			dl.AddRect(bounds.X, y, bounds.W, entryH, style.SelectedBackground)
			textColor = style.SelectedTextColor
		}

		dl.AddText(bounds.X+o.menu.padding.Left, y+o.menu.padding.Top, o.menu.toString(item), textColor, size, cw)
		y += entryH
	}
	dl.PopClipRect()
}
