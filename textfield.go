package picklist

// TextFieldState is the focus and cursor state of the embedded text
// field. The pick list owns the focus transitions; editing behavior lives
// behind the TextEditor interface.
type TextFieldState struct {
	focused bool
	cursor  int // rune position
}

// IsFocused reports whether the field holds keyboard focus.
func (s *TextFieldState) IsFocused() bool {
	return s.focused
}

// Focus gives the field keyboard focus.
func (s *TextFieldState) Focus() {
	s.focused = true
}

// Unfocus removes keyboard focus.
func (s *TextFieldState) Unfocus() {
	s.focused = false
}

// Cursor returns the edit cursor's rune position.
func (s *TextFieldState) Cursor() int {
	return s.cursor
}

// MoveCursorTo moves the edit cursor, clamped to the value's length.
func (s *TextFieldState) MoveCursorTo(pos int, value *Value) {
	if pos < 0 {
		pos = 0
	}
	if pos > value.Len() {
		pos = value.Len()
	}
	s.cursor = pos
}

// MoveCursorToEnd moves the edit cursor past the last rune.
func (s *TextFieldState) MoveCursorToEnd(value *Value) {
	s.cursor = value.Len()
}

// EditOptions carries the per-dispatch configuration a TextEditor needs.
type EditOptions[M any] struct {
	Size     float32
	Font     Font
	OnChange func(string) M
	OnPaste  func(string) M // nil when paste messages are not wanted
	OnSubmit *M             // nil when submit messages are not wanted
}

// TextEditor is the embedded text-editing collaborator. The pick list
// forwards events it does not consume and delegates focused drawing.
type TextEditor[M any] interface {
	Update(ev Event, node Node, cursor Vec2, m TextMeasurer, state *TextFieldState, value *Value, opts EditOptions[M], clip Clipboard, out *Outbox[M]) Status

	Draw(dl *DrawList, m TextMeasurer, node Node, state *TextFieldState, value *Value, placeholder string, size float32, font Font, style TextFieldAppearance)
}

// NullEditor ignores every event and draws nothing. It keeps a pick list
// usable as a pure dropdown when the host wires no editor.
type NullEditor[M any] struct{}

// Update implements TextEditor.
func (NullEditor[M]) Update(Event, Node, Vec2, TextMeasurer, *TextFieldState, *Value, EditOptions[M], Clipboard, *Outbox[M]) Status {
	return Ignored
}

// Draw implements TextEditor.
func (NullEditor[M]) Draw(*DrawList, TextMeasurer, Node, *TextFieldState, *Value, string, float32, Font, TextFieldAppearance) {
}
