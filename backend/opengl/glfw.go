package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/uilab/picklist"
)

// Platform adapts GLFW input to picklist events. Callbacks queue events
// as they arrive; Poll drains the queue once per frame. A modifier change
// is reported before the key or button event that carries it so the
// widget's modifier snapshot is current when the event lands.
type Platform struct {
	window *glfw.Window
	events []picklist.Event
	mods   picklist.Modifiers
}

// NewPlatform installs input callbacks on the window.
func NewPlatform(window *glfw.Window) *Platform {
	p := &Platform{window: window}

	window.SetKeyCallback(p.keyCallback)
	window.SetCharCallback(p.charCallback)
	window.SetMouseButtonCallback(p.mouseButtonCallback)
	window.SetScrollCallback(p.scrollCallback)
	window.SetCursorPosCallback(p.cursorPosCallback)

	return p
}

// Poll returns the events queued since the last call. The returned slice
// is only valid until the next Poll.
func (p *Platform) Poll() []picklist.Event {
	events := p.events
	p.events = p.events[:0]
	return events
}

// Cursor returns the current pointer position in window coordinates.
func (p *Platform) Cursor() picklist.Vec2 {
	x, y := p.window.GetCursorPos()
	return picklist.Vec2{X: float32(x), Y: float32(y)}
}

// Clipboard returns a clipboard backed by the window.
func (p *Platform) Clipboard() picklist.Clipboard {
	return glfwClipboard{window: p.window}
}

func (p *Platform) push(ev picklist.Event) {
	p.events = append(p.events, ev)
}

func (p *Platform) syncMods(mods glfw.ModifierKey) {
	m := picklist.Modifiers{
		Ctrl:  mods&glfw.ModControl != 0,
		Shift: mods&glfw.ModShift != 0,
		Alt:   mods&glfw.ModAlt != 0,
		Super: mods&glfw.ModSuper != 0,
	}
	if m != p.mods {
		p.mods = m
		p.push(picklist.ModifiersChanged{Modifiers: m})
	}
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	p.syncMods(mods)

	if action == glfw.Release {
		return
	}
	k := glfwKeyToPickList(key)
	if k == picklist.KeyNone {
		return
	}
	p.push(picklist.KeyPressed{Key: k, Modifiers: p.mods})
}

func (p *Platform) charCallback(w *glfw.Window, char rune) {
	p.push(picklist.TextEntered{Rune: char})
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	p.syncMods(mods)

	b := glfwMouseButtonToPickList(button)
	if b < 0 {
		return
	}
	switch action {
	case glfw.Press:
		p.push(picklist.PointerPressed{Button: b})
	case glfw.Release:
		p.push(picklist.PointerReleased{Button: b})
	}
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	p.push(picklist.WheelScrolled{
		DeltaX: float32(xoff),
		DeltaY: float32(yoff),
		Unit:   picklist.ScrollLines,
	})
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	p.push(picklist.PointerMoved{})
}

// glfwClipboard reads and writes the system clipboard through GLFW.
type glfwClipboard struct {
	window *glfw.Window
}

func (c glfwClipboard) Read() string {
	return c.window.GetClipboardString()
}

func (c glfwClipboard) Write(text string) {
	c.window.SetClipboardString(text)
}

// glfwKeyToPickList maps GLFW keys to picklist keys.
func glfwKeyToPickList(key glfw.Key) picklist.Key {
	switch key {
	case glfw.KeyLeft:
		return picklist.KeyLeft
	case glfw.KeyRight:
		return picklist.KeyRight
	case glfw.KeyHome:
		return picklist.KeyHome
	case glfw.KeyEnd:
		return picklist.KeyEnd
	case glfw.KeyDelete:
		return picklist.KeyDelete
	case glfw.KeyBackspace:
		return picklist.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return picklist.KeyEnter
	case glfw.KeyEscape:
		return picklist.KeyEscape
	case glfw.KeyV:
		return picklist.KeyV
	default:
		return picklist.KeyNone
	}
}

// glfwMouseButtonToPickList maps GLFW mouse buttons to picklist buttons.
func glfwMouseButtonToPickList(button glfw.MouseButton) picklist.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return picklist.MouseButtonLeft
	case glfw.MouseButtonRight:
		return picklist.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return picklist.MouseButtonMiddle
	default:
		return -1
	}
}
