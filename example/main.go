// Example shows a pick list in a GLFW window: an editable language
// selector whose dropdown opens on click and whose text can be typed
// into and submitted.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/uilab/picklist"
	"github.com/uilab/picklist/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "picklist example"
)

// message is what the widget emits back to the application.
type message struct {
	kind     string // "selected", "edited", "submitted", "focused"
	language string
	input    string
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	platform := opengl.NewPlatform(window)
	clipboard := platform.Clipboard()
	measurer := picklist.MonoMeasurer{}
	store := picklist.MapStateStore{}

	// Application state.
	languages := []string{"Go", "Rust", "Zig", "OCaml", "Erlang"}
	var selected *string
	input := ""
	statusLine := "pick a language"

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// Rebuild the widget description each frame.
		list := picklist.New(languages, selected,
			func(lang string) message { return message{kind: "selected", language: lang} },
			func(text string) message { return message{kind: "edited", input: text} },
			input).
			ID("language").
			Placeholder("Choose a language...").
			OnSubmit(message{kind: "submitted"}).
			OnFocus(message{kind: "focused"}).
			Width(picklist.Units(260))

		state := list.State(store)
		node := list.Layout(measurer, picklist.NewLimits(
			picklist.Vec2{}, picklist.Vec2{X: float32(w), Y: float32(h)}))
		node.MoveTo(picklist.Vec2{X: 40, Y: 40})

		cursor := platform.Cursor()
		overlay := list.Overlay(state, node)

		var outbox picklist.Outbox[message]
		for _, ev := range platform.Poll() {
			// The open menu sees events first.
			if overlay != nil && overlay.OnEvent(ev, cursor) == picklist.Captured {
				continue
			}
			list.OnEvent(state, ev, node, cursor, measurer, clipboard, &outbox)
		}

		for _, msg := range outbox.Drain() {
			switch msg.kind {
			case "selected":
				v := msg.language
				selected = &v
				input = v
				statusLine = "selected " + v
			case "edited":
				input = msg.input
				selected = nil
			case "submitted":
				statusLine = "submitted " + input
			case "focused":
				statusLine = "editing"
			}
		}

		dl := picklist.AcquireDrawList()
		dl.FontTexture = renderer.GlyphAtlasID()

		list.Draw(dl, measurer, state, node, cursor)
		if overlay := list.Overlay(state, node); overlay != nil {
			overlay.Draw(dl, measurer)
		}
		dl.AddText(40, float32(h)-60, statusLine, picklist.ColorWhite, 16, 8)

		if err := renderer.Render(dl); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		picklist.ReleaseDrawList(dl)

		window.SwapBuffers()
	}

	return nil
}
