package picklist_test

import (
	"testing"

	"github.com/uilab/picklist"
)

func TestDrawListPoolReuse(t *testing.T) {
	dl := picklist.AcquireDrawList()
	dl.AddRect(0, 0, 10, 10, picklist.ColorWhite)
	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(dl.VtxBuffer))
	}
	picklist.ReleaseDrawList(dl)

	dl2 := picklist.AcquireDrawList()
	defer picklist.ReleaseDrawList(dl2)
	if len(dl2.VtxBuffer) != 0 {
		t.Error("acquired draw list should start empty")
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := picklist.AcquireDrawList()
	defer picklist.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, picklist.ColorTransparent)
	dl.AddText(0, 0, "hi", picklist.ColorTransparent, 16, 8)
	if len(dl.VtxBuffer) != 0 {
		t.Errorf("transparent primitives should emit nothing, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestDrawListClipRectSplitsCommands(t *testing.T) {
	dl := picklist.AcquireDrawList()
	defer picklist.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, picklist.ColorWhite)
	dl.PushClipRect(5, 5, 50, 50)
	dl.AddRect(10, 10, 10, 10, picklist.ColorWhite)
	dl.PopClipRect()
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	clipped := dl.CmdBuffer[1]
	want := [4]float32{5, 5, 50, 50}
	if clipped.ClipRect != want {
		t.Errorf("clip rect = %v, want %v", clipped.ClipRect, want)
	}
}

func TestDrawListTextBindsFontTexture(t *testing.T) {
	dl := picklist.AcquireDrawList()
	defer picklist.ReleaseDrawList(dl)
	dl.FontTexture = 7

	dl.AddRect(0, 0, 10, 10, picklist.ColorWhite)
	dl.AddText(0, 0, "abc", picklist.ColorWhite, 16, 8)
	dl.AddRect(20, 0, 10, 10, picklist.ColorWhite)
	dl.Finalize()

	var textured, untextured int
	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID == 7 {
			textured++
		} else {
			untextured++
		}
	}
	if textured != 1 {
		t.Errorf("expected 1 textured command, got %d", textured)
	}
	if untextured != 2 {
		t.Errorf("expected 2 untextured commands, got %d", untextured)
	}
}

func TestDrawListTextGlyphCount(t *testing.T) {
	dl := picklist.AcquireDrawList()
	defer picklist.ReleaseDrawList(dl)

	dl.AddText(0, 0, "abcd", picklist.ColorWhite, 16, 8)
	if len(dl.VtxBuffer) != 16 {
		t.Errorf("expected 16 vertices for 4 glyphs, got %d", len(dl.VtxBuffer))
	}
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := picklist.AcquireDrawList()
	defer picklist.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%1024 == 0 {
			dl.Clear()
		}
		dl.AddRect(0, 0, 100, 50, picklist.ColorWhite)
	}
}

func BenchmarkDrawListAddText(b *testing.B) {
	dl := picklist.AcquireDrawList()
	defer picklist.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%256 == 0 {
			dl.Clear()
		}
		dl.AddText(0, 0, "benchmark text", picklist.ColorWhite, 16, 8)
	}
}
