package picklist

import "fmt"

// DefaultPadding is the box padding used when none is configured.
var DefaultPadding = UniformPadding(5)

// PickList is a combined text-entry and dropdown-selection control. The
// closed form is a single-line box showing the selected value or a
// placeholder; the open form adds a floating menu listing every option.
// T is the option type and M the host's message type.
//
// A PickList is a per-frame description: configuration lives here, while
// everything that must survive across frames lives in State, fetched from
// the host's StateStore by ID.
type PickList[T comparable, M any] struct {
	id             ID
	options        Options[T]
	selected       *T
	placeholder    string
	hasPlaceholder bool

	width         Length
	padding       Padding
	textSize      float32
	font          Font
	menuMaxHeight float32

	style     StyleSheet
	menuStyle MenuStyleSheet
	textStyle TextFieldStyleSheet

	value    Value
	toString func(T) string
	editor   TextEditor[M]

	onSelected func(T) M
	onChange   func(string) M
	onPaste    func(string) M
	onSubmit   *M
	onFocus    *M
}

// New creates a pick list over options. selected points at the current
// choice, nil for none. onSelected maps a picked option to a message.
// onChange, when non-nil, makes the box editable: typing rewrites value
// and emits onChange messages; when nil the box is a pure dropdown.
func New[T comparable, M any](options []T, selected *T, onSelected func(T) M, onChange func(string) M, value string) *PickList[T, M] {
	p := &PickList[T, M]{
		id:         NewID("picklist"),
		options:    NewOptions(options),
		selected:   selected,
		width:      Shrink,
		padding:    DefaultPadding,
		style:      DefaultTheme(),
		menuStyle:  DefaultTheme(),
		textStyle:  DefaultTheme(),
		value:      NewValue(value),
		toString:   func(v T) string { return fmt.Sprint(v) },
		onSelected: onSelected,
		onChange:   onChange,
	}
	if onChange != nil {
		p.editor = BasicEditor[M]{}
	} else {
		p.editor = NullEditor[M]{}
	}
	return p
}

// ID overrides the state key. Two pick lists shown in the same frame must
// not share an ID.
func (p *PickList[T, M]) ID(label string) *PickList[T, M] {
	p.id = NewID(label)
	return p
}

// Placeholder sets the text shown while nothing is selected.
func (p *PickList[T, M]) Placeholder(text string) *PickList[T, M] {
	p.placeholder = text
	p.hasPlaceholder = true
	return p
}

// ToString overrides how options are rendered and measured.
func (p *PickList[T, M]) ToString(f func(T) string) *PickList[T, M] {
	p.toString = f
	return p
}

// OnSubmit sets the message emitted when Enter is pressed while editing.
func (p *PickList[T, M]) OnSubmit(msg M) *PickList[T, M] {
	p.onSubmit = &msg
	return p
}

// OnFocus sets the message emitted when the box gains focus.
func (p *PickList[T, M]) OnFocus(msg M) *PickList[T, M] {
	p.onFocus = &msg
	return p
}

// OnPaste maps pasted text to a message instead of onChange.
func (p *PickList[T, M]) OnPaste(f func(string) M) *PickList[T, M] {
	p.onPaste = f
	return p
}

// Width sets the width policy. Shrink fits the widest option.
func (p *PickList[T, M]) Width(w Length) *PickList[T, M] {
	p.width = w
	return p
}

// Padding sets the box padding.
func (p *PickList[T, M]) Padding(pad Padding) *PickList[T, M] {
	p.padding = pad
	return p
}

// MenuMaxHeight caps the open menu's height; taller option lists scroll.
func (p *PickList[T, M]) MenuMaxHeight(h float32) *PickList[T, M] {
	p.menuMaxHeight = h
	return p
}

// TextSize sets the text size, 0 for the measurer's default.
func (p *PickList[T, M]) TextSize(size float32) *PickList[T, M] {
	p.textSize = size
	return p
}

// Font sets the text font.
func (p *PickList[T, M]) Font(f Font) *PickList[T, M] {
	p.font = f
	return p
}

// Style sets the box appearance.
func (p *PickList[T, M]) Style(s StyleSheet) *PickList[T, M] {
	p.style = s
	return p
}

// MenuStyle sets the overlay menu appearance.
func (p *PickList[T, M]) MenuStyle(s MenuStyleSheet) *PickList[T, M] {
	p.menuStyle = s
	return p
}

// TextStyle sets the embedded text field appearance.
func (p *PickList[T, M]) TextStyle(s TextFieldStyleSheet) *PickList[T, M] {
	p.textStyle = s
	return p
}

// Editor replaces the text-editing collaborator.
func (p *PickList[T, M]) Editor(e TextEditor[M]) *PickList[T, M] {
	p.editor = e
	return p
}

// WidthPolicy reports the configured width policy for container layout.
func (p *PickList[T, M]) WidthPolicy() Length {
	return p.width
}

// HeightPolicy reports the height policy. Pick lists always shrink to
// their single line of text.
func (p *PickList[T, M]) HeightPolicy() Length {
	return Shrink
}

// State fetches this pick list's persistent state from the store,
// creating it on first sight.
func (p *PickList[T, M]) State(store StateStore) *State[T] {
	if v, ok := store.Get(p.id); ok {
		if s, ok := v.(*State[T]); ok {
			return s
		}
	}
	s := NewState[T]()
	store.Set(p.id, s)
	return s
}

// Layout sizes the closed box within limits.
func (p *PickList[T, M]) Layout(m TextMeasurer, limits Limits) Node {
	return computeLayout(m, limits, p.width, p.padding, p.textSize,
		p.font, p.placeholder, p.hasPlaceholder, p.options, p.toString)
}

func (p *PickList[T, M]) resolvedTextSize(m TextMeasurer) float32 {
	if p.textSize > 0 {
		return p.textSize
	}
	return m.DefaultSize()
}

func (p *PickList[T, M]) editOptions() EditOptions[M] {
	return EditOptions[M]{
		Size:     p.textSize,
		Font:     p.font,
		OnChange: p.onChange,
		OnPaste:  p.onPaste,
		OnSubmit: p.onSubmit,
	}
}

// OnEvent runs the two-state open/closed machine and forwards what it
// does not consume to the text editor. Messages go to out; the return
// value tells the host whether the event may propagate further.
func (p *PickList[T, M]) OnEvent(state *State[T], ev Event, node Node, cursor Vec2, m TextMeasurer, clip Clipboard, out *Outbox[M]) Status {
	switch e := ev.(type) {
	case PointerPressed:
		if e.Button != MouseButtonLeft {
			break
		}
		return p.handlePress(state, ev, node, cursor, m, clip, out)

	case TouchStarted:
		return p.handlePress(state, ev, node, cursor, m, clip, out)

	case WheelScrolled:
		// Line scrolls are the cycling gesture and never reach the
		// editor; pixel scrolls fall through to it.
		if e.Unit != ScrollLines {
			break
		}
		if state.Modifiers.Command() && node.Bounds.Contains(cursor) && !state.Open {
			var next T
			var ok bool
			switch {
			case e.DeltaY < 0:
				next, ok = p.options.Next(p.selected)
			case e.DeltaY > 0:
				next, ok = p.options.Prev(p.selected)
			}
			if ok {
				out.Publish(p.onSelected(next))
			}
			return Captured
		}
		return Ignored

	case KeyPressed:
		if e.Key == KeyEscape && state.IsFocused() {
			state.Unfocus()
			return Captured
		}

	case ModifiersChanged:
		state.Modifiers = e.Modifiers
		p.editor.Update(ev, node, cursor, m, &state.TextField, &p.value, p.editOptions(), clip, out)
		return Ignored
	}

	return p.editor.Update(ev, node, cursor, m, &state.TextField, &p.value, p.editOptions(), clip, out)
}

// handlePress settles a primary press or touch, then drains the
// selection mailbox: a pick recorded by the overlay rides out on the
// next press no matter how that press itself settled.
func (p *PickList[T, M]) handlePress(state *State[T], ev Event, node Node, cursor Vec2, m TextMeasurer, clip Clipboard, out *Outbox[M]) Status {
	status := Ignored
	switch {
	case state.Open:
		// Any press while the menu shows is consumed. A press on the box
		// dismisses, unless the host reports the cursor at negative
		// coordinates, which marks a synthetic press that belongs to the
		// editor. A press elsewhere is the overlay's to settle and leaves
		// the widget state alone.
		if node.Bounds.Contains(cursor) {
			if cursor.X >= 0 && cursor.Y >= 0 {
				state.Unfocus()
			} else {
				p.editor.Update(ev, node, cursor, m, &state.TextField, &p.value, p.editOptions(), clip, out)
			}
		}
		status = Captured

	case node.Bounds.Contains(cursor):
		state.Open = true
		state.HoveredOption = p.options.Position(p.selected)
		state.TextField.Focus()
		state.TextField.MoveCursorToEnd(&p.value)
		// The press also belongs to the now-focused editor, which may
		// re-place the caret from the click position.
		p.editor.Update(ev, node, cursor, m, &state.TextField, &p.value, p.editOptions(), clip, out)
		if p.onFocus != nil {
			out.Publish(*p.onFocus)
		}
		status = Captured
	}

	if picked, ok := state.takeSelection(); ok {
		out.Publish(p.onSelected(picked))
		state.Unfocus()
		return Captured
	}
	return status
}

// MouseCursor reports the cursor shape for the given pointer position:
// a text caret over the inner text region, a pointer over the rest of
// the box, the default elsewhere.
func (p *PickList[T, M]) MouseCursor(node Node, cursor Vec2) CursorKind {
	if !node.Bounds.Contains(cursor) {
		return CursorDefault
	}
	if node.InnerText().Contains(cursor) {
		return CursorText
	}
	return CursorPointer
}

// Draw renders the closed box: background, border, the dropdown arrow,
// and either the editable text (while focused) or the selected label or
// placeholder.
func (p *PickList[T, M]) Draw(dl *DrawList, m TextMeasurer, state *State[T], node Node, cursor Vec2) {
	bounds := node.Bounds
	style := p.style.Active()
	if bounds.Contains(cursor) {
		style = p.style.Hovered()
	}

	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.Background)
	if style.BorderWidth > 0 {
		dl.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, style.BorderColor, style.BorderWidth)
	}

	p.drawArrow(dl, bounds, style)

	size := p.resolvedTextSize(m)
	inner := node.InnerText()

	if state.TextField.IsFocused() {
		textNode := NewNode(Vec2{X: inner.W, Y: inner.H})
		textNode.MoveTo(Vec2{X: inner.X, Y: inner.Y})
		p.editor.Draw(dl, m, textNode, &state.TextField, &p.value, p.placeholder, size, p.font, p.textStyle.TextFieldStyle())
		return
	}

	label := p.placeholder
	color := style.PlaceholderColor
	if p.selected != nil {
		label = p.toString(*p.selected)
		color = style.TextColor
	}
	if label == "" {
		return
	}

	cw := charWidth(m, size, p.font)
	dl.PushClipRect(inner.X, bounds.Y, inner.X+inner.W, bounds.Y+bounds.H)
	dl.AddText(inner.X, bounds.CenterY()-size/2, label, color, size, cw)
	dl.PopClipRect()
}

// drawArrow paints the down-pointing chevron at the right edge.
func (p *PickList[T, M]) drawArrow(dl *DrawList, bounds Rect, style BoxAppearance) {
	side := bounds.H * style.IconSize
	if side <= 0 {
		return
	}
	cx := bounds.X + bounds.W - p.padding.Horizontal()
	cy := bounds.CenterY()
	dl.AddTriangle(
		cx-side/2, cy-side/4,
		cx+side/2, cy-side/4,
		cx, cy+side/4,
		style.TextColor,
	)
}

// Overlay returns the floating menu while open, nil otherwise. The host
// draws it above normal content and routes events to it first.
func (p *PickList[T, M]) Overlay(state *State[T], node Node) OverlayElement {
	if !state.Open {
		return nil
	}

	menu := NewMenu(state, p.options, p.toString).
		Width(roundf(node.Bounds.W)).
		Padding(p.padding).
		Font(p.font).
		Style(p.menuStyle.MenuStyle())
	if p.textSize > 0 {
		menu.TextSize(p.textSize)
	}
	if p.menuMaxHeight > 0 {
		menu.MaxHeight(p.menuMaxHeight)
	}

	return menu.Overlay(node.Bounds.Position(), node.Bounds.H)
}
