package picklist

import "hash/fnv"

// ID uniquely identifies a widget instance for state persistence.
// IDs are stable across frames for the same widget.
type ID uint64

// NewID derives a stable ID from a string label.
func NewID(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// StateStore persists widget state between frames. Hosts that keep a
// retained tree can back this with their own per-node storage.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is a simple in-memory StateStore implementation.
type MapStateStore map[ID]any

// Get retrieves a value from the store.
func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

// Set stores a value in the store.
func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

// Delete removes a value from the store.
func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState retrieves typed state from a store.
// Returns defaultVal if the state doesn't exist or has the wrong type.
func GetState[S any](store StateStore, id ID, defaultVal S) S {
	if v, ok := store.Get(id); ok {
		if typed, ok := v.(S); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState stores typed state in a store.
func SetState[S any](store StateStore, id ID, value S) {
	store.Set(id, value)
}

// DeleteState removes state from a store.
func DeleteState(store StateStore, id ID) {
	store.Delete(id)
}

// MenuState is the overlay menu's own mutable state.
type MenuState struct {
	ScrollY float32
}

// State is the per-instance mutable state of a pick list. It is created
// fresh when the host realizes the widget instance and persists across
// frames keyed to that instance.
type State[T comparable] struct {
	// Open reports whether the overlay menu is currently shown.
	// Open implies the embedded text field holds focus.
	Open bool

	// HoveredOption is the index highlighted in the menu, -1 for none.
	// Set on open to the selected value's position. Only ever derived from
	// a live search over the current option list, so it cannot go stale
	// into an out-of-range index.
	HoveredOption int

	// Modifiers is the latest known modifier-key snapshot.
	Modifiers Modifiers

	// TextField is the embedded text-editing collaborator's state.
	TextField TextFieldState

	// Menu is the overlay menu's scroll state.
	Menu MenuState

	// lastSelection is a one-shot mailbox: written by the overlay menu
	// when the user picks an entry, drained by event handling on the next
	// primary press to emit the selection message and close.
	lastSelection *T
}

// NewState creates widget state with all defaults.
func NewState[T comparable]() *State[T] {
	return &State[T]{HoveredOption: -1}
}

// Focus gives the embedded text field keyboard focus.
func (s *State[T]) Focus() {
	s.TextField.Focus()
}

// Unfocus removes text-field focus and closes the menu. The two always
// change together; an open menu with an unfocused field is invalid.
func (s *State[T]) Unfocus() {
	s.TextField.Unfocus()
	s.Open = false
}

// IsFocused reports whether the embedded text field holds focus.
func (s *State[T]) IsFocused() bool {
	return s.TextField.IsFocused()
}

// Pick selects the given element programmatically: the menu closes, focus
// is released, and the selection message is emitted on the next event.
func (s *State[T]) Pick(element T) {
	s.lastSelection = &element
	s.Unfocus()
}

// postSelection is the overlay menu's write into the mailbox.
func (s *State[T]) postSelection(v T) {
	s.lastSelection = &v
}

// takeSelection drains the mailbox. Draining an empty mailbox is a no-op.
func (s *State[T]) takeSelection() (T, bool) {
	if s.lastSelection == nil {
		var zero T
		return zero, false
	}
	v := *s.lastSelection
	s.lastSelection = nil
	return v, true
}
