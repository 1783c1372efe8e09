package picklist

// BasicEditor is a minimal built-in TextEditor: character entry, cursor
// movement, backspace/delete, submit, and clipboard paste. No selection,
// undo, or multi-line editing; hosts with a richer text engine should
// supply their own TextEditor instead.
type BasicEditor[M any] struct{}

// Update implements TextEditor.
func (BasicEditor[M]) Update(ev Event, node Node, cursor Vec2, m TextMeasurer, state *TextFieldState, value *Value, opts EditOptions[M], clip Clipboard, out *Outbox[M]) Status {
	if !state.IsFocused() {
		return Ignored
	}

	switch e := ev.(type) {
	case TextEntered:
		if e.Rune < 32 {
			return Ignored
		}
		value.Insert(state.Cursor(), e.Rune)
		state.MoveCursorTo(state.Cursor()+1, value)
		if opts.OnChange != nil {
			out.Publish(opts.OnChange(value.String()))
		}
		return Captured

	case KeyPressed:
		return handleKey(e, state, value, opts, clip, out)

	case PointerPressed:
		if e.Button != MouseButtonLeft {
			return Ignored
		}
		text := node.InnerText()
		if !text.Contains(cursor) {
			return Ignored
		}
		size := opts.Size
		if size == 0 {
			size = m.DefaultSize()
		}
		state.MoveCursorTo(hitCursor(m, value, cursor.X-text.X, size, opts.Font), value)
		return Captured
	}

	return Ignored
}

func handleKey[M any](e KeyPressed, state *TextFieldState, value *Value, opts EditOptions[M], clip Clipboard, out *Outbox[M]) Status {
	changed := false

	switch e.Key {
	case KeyLeft:
		state.MoveCursorTo(state.Cursor()-1, value)
	case KeyRight:
		state.MoveCursorTo(state.Cursor()+1, value)
	case KeyHome:
		state.MoveCursorTo(0, value)
	case KeyEnd:
		state.MoveCursorToEnd(value)
	case KeyBackspace:
		if state.Cursor() > 0 {
			value.Delete(state.Cursor() - 1)
			state.MoveCursorTo(state.Cursor()-1, value)
			changed = true
		}
	case KeyDelete:
		if state.Cursor() < value.Len() {
			value.Delete(state.Cursor())
			changed = true
		}
	case KeyEnter:
		if opts.OnSubmit != nil {
			out.Publish(*opts.OnSubmit)
		}
	case KeyV:
		if !e.Modifiers.Command() {
			return Ignored
		}
		pasted := clip.Read()
		if pasted == "" {
			return Captured
		}
		value.InsertString(state.Cursor(), pasted)
		state.MoveCursorTo(state.Cursor()+len([]rune(pasted)), value)
		if opts.OnPaste != nil {
			out.Publish(opts.OnPaste(value.String()))
		} else if opts.OnChange != nil {
			out.Publish(opts.OnChange(value.String()))
		}
	default:
		return Ignored
	}

	if changed && opts.OnChange != nil {
		out.Publish(opts.OnChange(value.String()))
	}
	return Captured
}

// hitCursor maps a horizontal offset inside the text region to the
// nearest rune position.
func hitCursor(m TextMeasurer, value *Value, x, size float32, font Font) int {
	for i := 0; i <= value.Len(); i++ {
		w := m.MeasureText(value.Until(i), size, font, unbounded()).X
		if w >= x {
			return i
		}
	}
	return value.Len()
}

// Draw implements TextEditor: background, buffer or placeholder text, and
// a caret at the cursor position.
func (BasicEditor[M]) Draw(dl *DrawList, m TextMeasurer, node Node, state *TextFieldState, value *Value, placeholder string, size float32, font Font, style TextFieldAppearance) {
	bounds := node.Bounds
	text := node.InnerText()

	if size == 0 {
		size = m.DefaultSize()
	}

	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.Background)
	if style.BorderWidth > 0 {
		dl.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, style.BorderColor, style.BorderWidth)
	}

	cw := charWidth(m, size, font)
	textY := bounds.CenterY() - size/2

	dl.PushClipRect(text.X, bounds.Y, text.X+text.W, bounds.Y+bounds.H)
	if value.Len() > 0 {
		dl.AddText(text.X, textY, value.String(), style.TextColor, size, cw)
	} else if placeholder != "" {
		dl.AddText(text.X, textY, placeholder, style.PlaceholderColor, size, cw)
	}
	dl.PopClipRect()

	if state.IsFocused() {
		caretX := text.X + m.MeasureText(value.Until(state.Cursor()), size, font, unbounded()).X
		dl.AddLine(caretX, textY, caretX, textY+size, style.TextColor, 1)
	}
}
