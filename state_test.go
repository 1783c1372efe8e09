package picklist_test

import (
	"testing"

	"github.com/uilab/picklist"
)

func TestNewStateDefaults(t *testing.T) {
	state := picklist.NewState[string]()

	if state.Open {
		t.Error("new state should start closed")
	}
	if state.HoveredOption != -1 {
		t.Errorf("hovered option = %d, want -1", state.HoveredOption)
	}
	if state.IsFocused() {
		t.Error("new state should start unfocused")
	}
}

func TestUnfocusClosesMenu(t *testing.T) {
	state := picklist.NewState[string]()
	state.Open = true
	state.Focus()

	state.Unfocus()
	if state.Open {
		t.Error("unfocus must close the menu")
	}
	if state.IsFocused() {
		t.Error("unfocus must release text-field focus")
	}
}

func TestMapStateStore(t *testing.T) {
	store := picklist.MapStateStore{}
	id := picklist.NewID("widget")

	if _, ok := store.Get(id); ok {
		t.Error("empty store should have no entry")
	}

	store.Set(id, 42)
	if v, ok := store.Get(id); !ok || v != 42 {
		t.Errorf("Get = %v, %v; want 42, true", v, ok)
	}

	store.Delete(id)
	if _, ok := store.Get(id); ok {
		t.Error("entry should be gone after Delete")
	}
}

func TestTypedStateAccess(t *testing.T) {
	store := picklist.MapStateStore{}
	id := picklist.NewID("scroll")

	if got := picklist.GetState(store, id, float32(1.5)); got != 1.5 {
		t.Errorf("missing entry: got %v, want the default 1.5", got)
	}

	picklist.SetState(store, id, float32(3))
	if got := picklist.GetState(store, id, float32(0)); got != 3 {
		t.Errorf("stored entry: got %v, want 3", got)
	}

	// A type mismatch falls back to the default rather than panicking.
	if got := picklist.GetState(store, id, "fallback"); got != "fallback" {
		t.Errorf("mismatched type: got %q, want fallback", got)
	}

	picklist.DeleteState(store, id)
	if got := picklist.GetState(store, id, float32(0)); got != 0 {
		t.Errorf("deleted entry: got %v, want 0", got)
	}
}

func TestIDsStableAndDistinct(t *testing.T) {
	a := picklist.NewID("first")
	b := picklist.NewID("first")
	c := picklist.NewID("second")

	if a != b {
		t.Error("same label should hash to the same ID")
	}
	if a == c {
		t.Error("different labels should hash to different IDs")
	}
}
