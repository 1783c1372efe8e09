package picklist_test

import (
	"testing"

	"github.com/uilab/picklist"
)

func TestOptionsPosition(t *testing.T) {
	opts := picklist.NewOptions(testLanguages)

	rust := "Rust"
	if got := opts.Position(&rust); got != 1 {
		t.Errorf("Position(Rust) = %d, want 1", got)
	}

	missing := "COBOL"
	if got := opts.Position(&missing); got != -1 {
		t.Errorf("Position(COBOL) = %d, want -1", got)
	}
	if got := opts.Position(nil); got != -1 {
		t.Errorf("Position(nil) = %d, want -1", got)
	}
}

func TestOptionsNextPrev(t *testing.T) {
	opts := picklist.NewOptions(testLanguages)

	// No current value: Next starts at the front, Prev at the back.
	if v, ok := opts.Next(nil); !ok || v != "Go" {
		t.Errorf("Next(nil) = %q, %v", v, ok)
	}
	if v, ok := opts.Prev(nil); !ok || v != "Zig" {
		t.Errorf("Prev(nil) = %q, %v", v, ok)
	}

	rust := "Rust"
	if v, ok := opts.Next(&rust); !ok || v != "Zig" {
		t.Errorf("Next(Rust) = %q, %v", v, ok)
	}
	if v, ok := opts.Prev(&rust); !ok || v != "Go" {
		t.Errorf("Prev(Rust) = %q, %v", v, ok)
	}

	// No wraparound at either end.
	zig := "Zig"
	if _, ok := opts.Next(&zig); ok {
		t.Error("Next at the last option should report false")
	}
	goLang := "Go"
	if _, ok := opts.Prev(&goLang); ok {
		t.Error("Prev at the first option should report false")
	}
}

func TestOptionsNextUnknownValue(t *testing.T) {
	opts := picklist.NewOptions(testLanguages)
	unknown := "COBOL"

	if _, ok := opts.Next(&unknown); ok {
		t.Error("Next from a value outside the list should report false")
	}
}

func TestOptionsEmpty(t *testing.T) {
	var opts picklist.Options[string]

	if opts.Len() != 0 {
		t.Errorf("Len = %d, want 0", opts.Len())
	}
	if _, ok := opts.At(0); ok {
		t.Error("At on empty options should report false")
	}
	if _, ok := opts.Next(nil); ok {
		t.Error("Next on empty options should report false")
	}
}

func TestValueEditing(t *testing.T) {
	v := picklist.NewValue("go")

	v.Insert(2, '!')
	if got := v.String(); got != "go!" {
		t.Errorf("after insert: %q, want %q", got, "go!")
	}

	v.InsertString(0, ">> ")
	if got := v.String(); got != ">> go!" {
		t.Errorf("after insert string: %q, want %q", got, ">> go!")
	}

	v.Delete(0)
	if got := v.String(); got != "> go!" {
		t.Errorf("after delete: %q, want %q", got, "> go!")
	}

	if got := v.Until(4); got != "> go" {
		t.Errorf("Until(4) = %q, want %q", got, "> go")
	}
}

func TestValueRuneBoundaries(t *testing.T) {
	v := picklist.NewValue("a語b")

	if v.Len() != 3 {
		t.Errorf("Len = %d, want 3 (runes, not bytes)", v.Len())
	}
	v.Delete(1)
	if got := v.String(); got != "ab" {
		t.Errorf("after deleting the wide rune: %q, want %q", got, "ab")
	}
}
