package picklist

// Status reports whether a widget consumed an event.
type Status int

const (
	// Ignored means the event was not relevant to the widget and may be
	// offered to other widgets in the tree.
	Ignored Status = iota
	// Captured means the widget handled the event.
	Captured
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Key represents a keyboard key relevant to text editing.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyV
)

// Modifiers is a snapshot of the keyboard modifier keys.
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Super bool
}

// Command returns true when the platform command chord is held
// (Ctrl on most platforms, the logo key on macOS).
func (m Modifiers) Command() bool {
	return m.Ctrl || m.Super
}

// ScrollUnit distinguishes line-based wheel deltas from pixel-based ones
// (trackpads usually report pixels, wheels report lines).
type ScrollUnit int

const (
	ScrollLines ScrollUnit = iota
	ScrollPixels
)

// Event is a raw input event delivered by the host toolkit. The cursor
// position is not part of the event; hosts pass it alongside each dispatch.
type Event interface {
	isEvent()
}

// PointerPressed is a mouse button press.
type PointerPressed struct {
	Button MouseButton
}

// PointerReleased is a mouse button release.
type PointerReleased struct {
	Button MouseButton
}

// PointerMoved reports that the cursor moved; the new position arrives
// through the dispatch cursor argument.
type PointerMoved struct{}

// TouchStarted is a finger-down contact, treated like a primary press.
type TouchStarted struct{}

// WheelScrolled is a scroll wheel or trackpad delta.
type WheelScrolled struct {
	DeltaX float32
	DeltaY float32
	Unit   ScrollUnit
}

// ModifiersChanged reports a new modifier-key snapshot.
type ModifiersChanged struct {
	Modifiers Modifiers
}

// KeyPressed is a non-text key press, delivered to the embedded editor.
type KeyPressed struct {
	Key       Key
	Modifiers Modifiers
}

// TextEntered is a typed Unicode character.
type TextEntered struct {
	Rune rune
}

func (PointerPressed) isEvent()   {}
func (PointerReleased) isEvent()  {}
func (PointerMoved) isEvent()     {}
func (TouchStarted) isEvent()     {}
func (WheelScrolled) isEvent()    {}
func (ModifiersChanged) isEvent() {}
func (KeyPressed) isEvent()       {}
func (TextEntered) isEvent()      {}

// Outbox collects messages produced while handling events, for the host
// application to drain after dispatch.
type Outbox[M any] struct {
	messages []M
}

// Publish queues a message for the host application.
func (o *Outbox[M]) Publish(m M) {
	o.messages = append(o.messages, m)
}

// Len returns the number of queued messages.
func (o *Outbox[M]) Len() int {
	return len(o.messages)
}

// Drain returns the queued messages and empties the outbox.
func (o *Outbox[M]) Drain() []M {
	msgs := o.messages
	o.messages = nil
	return msgs
}

// CursorKind is the pointer shape a host should show over a region.
type CursorKind int

const (
	CursorDefault CursorKind = iota
	CursorPointer
	CursorText
)

// Clipboard abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs.
type Clipboard interface {
	// Read retrieves text from the system clipboard.
	// Returns empty string if the clipboard is empty or holds non-text data.
	Read() string

	// Write copies text to the system clipboard.
	Write(text string)
}

// NullClipboard is a Clipboard that stores nothing.
type NullClipboard struct{}

func (NullClipboard) Read() string { return "" }

func (NullClipboard) Write(string) {}
