package picklist_test

import (
	"testing"

	"github.com/uilab/picklist"
)

// editFixture wires a focused BasicEditor over an initial buffer with the
// cursor at the end.
type editFixture struct {
	editor picklist.BasicEditor[testMsg]
	state  picklist.TextFieldState
	value  picklist.Value
	node   picklist.Node
	clip   stubClipboard
	out    picklist.Outbox[testMsg]
}

func newEditFixture(initial string) *editFixture {
	f := &editFixture{value: picklist.NewValue(initial)}
	f.node = picklist.NewNode(picklist.Vec2{X: 200, Y: 26})
	f.state.Focus()
	f.state.MoveCursorToEnd(&f.value)
	return f
}

func (f *editFixture) opts() picklist.EditOptions[testMsg] {
	return picklist.EditOptions[testMsg]{
		Size:     16,
		OnChange: editedMsg,
	}
}

func (f *editFixture) send(ev picklist.Event) picklist.Status {
	return f.editor.Update(ev, f.node, picklist.Vec2{}, picklist.MonoMeasurer{}, &f.state, &f.value, f.opts(), &f.clip, &f.out)
}

func (f *editFixture) key(k picklist.Key) picklist.Status {
	return f.send(picklist.KeyPressed{Key: k})
}

func TestEditorCursorMovement(t *testing.T) {
	f := newEditFixture("abc")

	f.key(picklist.KeyLeft)
	if f.state.Cursor() != 2 {
		t.Errorf("after left: cursor %d, want 2", f.state.Cursor())
	}
	f.key(picklist.KeyHome)
	if f.state.Cursor() != 0 {
		t.Errorf("after home: cursor %d, want 0", f.state.Cursor())
	}
	f.key(picklist.KeyLeft)
	if f.state.Cursor() != 0 {
		t.Errorf("left at start: cursor %d, want 0", f.state.Cursor())
	}
	f.key(picklist.KeyEnd)
	if f.state.Cursor() != 3 {
		t.Errorf("after end: cursor %d, want 3", f.state.Cursor())
	}
	f.key(picklist.KeyRight)
	if f.state.Cursor() != 3 {
		t.Errorf("right at end: cursor %d, want 3", f.state.Cursor())
	}
}

func TestEditorBackspaceAndDelete(t *testing.T) {
	f := newEditFixture("abc")

	f.key(picklist.KeyBackspace)
	if got := f.value.String(); got != "ab" {
		t.Errorf("after backspace: %q, want ab", got)
	}

	f.key(picklist.KeyHome)
	f.key(picklist.KeyDelete)
	if got := f.value.String(); got != "b" {
		t.Errorf("after delete at start: %q, want b", got)
	}

	msgs := f.out.Drain()
	if len(msgs) != 2 || msgs[0] != editedMsg("ab") || msgs[1] != editedMsg("b") {
		t.Errorf("expected change messages [ab b], got %v", msgs)
	}
}

func TestEditorBackspaceAtStartNoop(t *testing.T) {
	f := newEditFixture("abc")
	f.key(picklist.KeyHome)

	f.key(picklist.KeyBackspace)
	if got := f.value.String(); got != "abc" {
		t.Errorf("backspace at start changed buffer to %q", got)
	}
	if f.out.Len() != 0 {
		t.Error("no-op edit should emit nothing")
	}
}

func TestEditorTypingInsertsAtCursor(t *testing.T) {
	f := newEditFixture("ac")
	f.key(picklist.KeyLeft)

	f.send(picklist.TextEntered{Rune: 'b'})
	if got := f.value.String(); got != "abc" {
		t.Errorf("after insert: %q, want abc", got)
	}
	if f.state.Cursor() != 2 {
		t.Errorf("cursor %d after insert, want 2", f.state.Cursor())
	}
}

func TestEditorControlRunesIgnored(t *testing.T) {
	f := newEditFixture("")

	if got := f.send(picklist.TextEntered{Rune: '\b'}); got != picklist.Ignored {
		t.Errorf("control rune: got %v, want Ignored", got)
	}
	if f.value.Len() != 0 {
		t.Error("control rune should not enter the buffer")
	}
}

func TestEditorPasteWithoutCommandIgnored(t *testing.T) {
	f := newEditFixture("")
	f.clip.content = "text"

	if got := f.key(picklist.KeyV); got != picklist.Ignored {
		t.Errorf("plain v key: got %v, want Ignored", got)
	}
	if f.value.Len() != 0 {
		t.Error("plain v key must not paste")
	}
}

func TestEditorPasteInsertsAtCursor(t *testing.T) {
	f := newEditFixture("ad")
	f.key(picklist.KeyLeft)
	f.clip.content = "bc"

	f.send(picklist.KeyPressed{Key: picklist.KeyV, Modifiers: picklist.Modifiers{Super: true}})
	if got := f.value.String(); got != "abcd" {
		t.Errorf("after paste: %q, want abcd", got)
	}
	if f.state.Cursor() != 3 {
		t.Errorf("cursor %d after paste, want 3", f.state.Cursor())
	}
}

func TestEditorClickMovesCursor(t *testing.T) {
	f := newEditFixture("abcdef")

	// At size 16 each cell is 8 wide; x=17 lands after the third rune.
	cursor := picklist.Vec2{X: 17, Y: 5}
	got := f.editor.Update(picklist.PointerPressed{Button: picklist.MouseButtonLeft},
		f.node, cursor, picklist.MonoMeasurer{}, &f.state, &f.value, f.opts(), &f.clip, &f.out)
	if got != picklist.Captured {
		t.Fatalf("click in text: got %v, want Captured", got)
	}
	if f.state.Cursor() != 3 {
		t.Errorf("cursor %d after click, want 3", f.state.Cursor())
	}
}

func TestEditorIgnoresEverythingUnfocused(t *testing.T) {
	f := newEditFixture("abc")
	f.state.Unfocus()

	if got := f.send(picklist.TextEntered{Rune: 'x'}); got != picklist.Ignored {
		t.Errorf("unfocused rune: got %v, want Ignored", got)
	}
	if got := f.key(picklist.KeyBackspace); got != picklist.Ignored {
		t.Errorf("unfocused key: got %v, want Ignored", got)
	}
	if got := f.value.String(); got != "abc" {
		t.Errorf("unfocused events changed buffer to %q", got)
	}
}

func TestEditorDrawShowsCaret(t *testing.T) {
	f := newEditFixture("abc")

	dl := picklist.AcquireDrawList()
	defer picklist.ReleaseDrawList(dl)

	f.editor.Draw(dl, picklist.MonoMeasurer{}, f.node, &f.state, &f.value, "", 16, picklist.Font{}, picklist.DefaultTheme().TextFieldStyle())
	if len(dl.VtxBuffer) == 0 {
		t.Error("focused editor draw should emit vertices")
	}
}
