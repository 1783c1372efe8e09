/*
Package picklist implements a combined text-entry and dropdown-selection
widget for retained-mode GUI trees.

# Overview

The widget is described fresh each frame and carries no state of its own:
everything that must survive across frames lives in a State value fetched
from the host's StateStore. The host drives the widget through a small
contract — Layout sizes it, OnEvent feeds it input, Draw paints it, and
Overlay hands back the floating menu while it is open. Interactions are
reported as application messages of a caller-chosen type, collected in an
Outbox during event dispatch.

Closed, the control is a single-line box showing the selected value or a
placeholder. A primary press opens the floating menu; picking an entry
stores the choice in a one-shot mailbox that the widget drains on the
next press, emitting the selection message and closing. Holding the
command modifier and scrolling the wheel over the closed box cycles
through the options without opening the menu.

When constructed with an on-change callback the box is editable: typing,
caret movement, and clipboard paste are delegated to an embedded
TextEditor collaborator (BasicEditor by default).

# Quick Start

	// Setup
	measurer := picklist.MonoMeasurer{}
	store := picklist.MapStateStore{}

	// Frame loop
	list := picklist.New(options, selected,
	    func(v string) msg { return selectMsg{v} },
	    func(s string) msg { return editMsg{s} },
	    input).
	    Placeholder("Choose...").
	    Width(picklist.Units(260))

	state := list.State(store)
	node := list.Layout(measurer, limits)

	for _, ev := range events {
	    if overlay := list.Overlay(state, node); overlay != nil &&
	        overlay.OnEvent(ev, cursor) == picklist.Captured {
	        continue
	    }
	    list.OnEvent(state, ev, node, cursor, measurer, clipboard, &outbox)
	}

	list.Draw(dl, measurer, state, node, cursor)
	if overlay := list.Overlay(state, node); overlay != nil {
	    overlay.Draw(dl, measurer)
	}

# Keyboard Shortcuts

While the box is focused:

	Left/Right       Move the caret
	Home/End         Jump to start/end of the buffer
	Backspace/Delete Remove the rune before/under the caret
	Ctrl+V           Paste from the clipboard
	Enter            Emit the submit message, if configured
	Escape           Close the menu and release focus

Rendering goes through a DrawList (vertex and command batching with a
clip-rect stack); backend/opengl renders those batches with OpenGL 4.1
and adapts GLFW input into this package's events.
*/
package picklist
