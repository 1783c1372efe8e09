package picklist

// Options is the ordered set of selectable values supplied by the caller.
// The slice is borrowed, not copied; it must not change for the lifetime of
// the widget instance that holds it.
type Options[T comparable] struct {
	items []T
}

// NewOptions wraps a slice of selectable values.
func NewOptions[T comparable](items []T) Options[T] {
	return Options[T]{items: items}
}

// Len returns the number of options.
func (o Options[T]) Len() int {
	return len(o.items)
}

// At returns the option at index i, or false if i is out of range.
func (o Options[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(o.items) {
		var zero T
		return zero, false
	}
	return o.items[i], true
}

// Position returns the index of the given value, or -1 when the value is
// nil or not present.
func (o Options[T]) Position(v *T) int {
	if v == nil {
		return -1
	}
	for i, item := range o.items {
		if item == *v {
			return i
		}
	}
	return -1
}

// Next returns the option immediately after the given value in list order.
// When v is nil the first option is returned. The second result is false
// when no such option exists (empty list, v not found, or v is last).
func (o Options[T]) Next(v *T) (T, bool) {
	var zero T
	if v == nil {
		if len(o.items) == 0 {
			return zero, false
		}
		return o.items[0], true
	}
	for i, item := range o.items {
		if item == *v && i+1 < len(o.items) {
			return o.items[i+1], true
		}
	}
	return zero, false
}

// Prev returns the option immediately before the given value in list order.
// When v is nil the last option is returned. The second result is false
// when no such option exists.
func (o Options[T]) Prev(v *T) (T, bool) {
	var zero T
	if v == nil {
		if len(o.items) == 0 {
			return zero, false
		}
		return o.items[len(o.items)-1], true
	}
	for i, item := range o.items {
		if item == *v && i > 0 {
			return o.items[i-1], true
		}
	}
	return zero, false
}

// Value is the live, editable text buffer shown while the embedded text
// field has focus. Positions are in runes, not bytes.
type Value struct {
	runes []rune
}

// NewValue creates a Value from an initial string.
func NewValue(s string) Value {
	return Value{runes: []rune(s)}
}

// String returns the buffer contents.
func (v *Value) String() string {
	return string(v.runes)
}

// Len returns the buffer length in runes.
func (v *Value) Len() int {
	return len(v.runes)
}

// SetString replaces the buffer contents.
func (v *Value) SetString(s string) {
	v.runes = []rune(s)
}

// Insert inserts a rune at the given position, clamped to the buffer.
func (v *Value) Insert(pos int, r rune) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(v.runes) {
		pos = len(v.runes)
	}
	v.runes = append(v.runes, 0)
	copy(v.runes[pos+1:], v.runes[pos:])
	v.runes[pos] = r
}

// InsertString inserts a string at the given position, clamped to the buffer.
func (v *Value) InsertString(pos int, s string) {
	for _, r := range s {
		v.Insert(pos, r)
		pos++
	}
}

// Delete removes the rune at the given position, if any.
func (v *Value) Delete(pos int) {
	if pos < 0 || pos >= len(v.runes) {
		return
	}
	v.runes = append(v.runes[:pos], v.runes[pos+1:]...)
}

// Until returns the buffer contents up to the given rune position.
func (v *Value) Until(pos int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(v.runes) {
		pos = len(v.runes)
	}
	return string(v.runes[:pos])
}
