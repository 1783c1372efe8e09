package picklist_test

import (
	"testing"

	"github.com/uilab/picklist"
)

// openMenu opens a test list and returns its parts. Entry height is 26:
// text size 16 plus vertical padding 10.
func openMenu(t *testing.T) (*picklist.State[string], picklist.OverlayElement, picklist.Node) {
	t.Helper()
	list := newTestList(nil)
	node := layoutAtOrigin(t, list)
	state := picklist.NewState[string]()

	var out picklist.Outbox[testMsg]
	pressAt(list, state, node, inside(node), &out)

	overlay := list.Overlay(state, node)
	if overlay == nil {
		t.Fatal("expected overlay while open")
	}
	return state, overlay, node
}

func TestMenuAnchoredBelowBox(t *testing.T) {
	_, overlay, node := openMenu(t)

	bounds := overlay.Bounds()
	if bounds.Y != node.Bounds.Y+node.Bounds.H {
		t.Errorf("menu top = %v, want %v (below the box)", bounds.Y, node.Bounds.Y+node.Bounds.H)
	}
	if bounds.X != node.Bounds.X {
		t.Errorf("menu left = %v, want %v", bounds.X, node.Bounds.X)
	}
	if bounds.W != node.Bounds.W {
		t.Errorf("menu width = %v, want box width %v", bounds.W, node.Bounds.W)
	}
	if bounds.H != 26*3 {
		t.Errorf("menu height = %v, want 78 (three entries)", bounds.H)
	}
}

func TestMenuHoverTracksEntries(t *testing.T) {
	state, overlay, _ := openMenu(t)
	bounds := overlay.Bounds()

	// Move over the second entry.
	cursor := picklist.Vec2{X: bounds.X + 2, Y: bounds.Y + 26 + 2}
	if got := overlay.OnEvent(picklist.PointerMoved{}, cursor); got != picklist.Captured {
		t.Fatalf("hover move: got %v, want Captured", got)
	}
	if state.HoveredOption != 1 {
		t.Errorf("hovered option = %d, want 1", state.HoveredOption)
	}

	// Moving off the menu leaves the highlight where it was.
	overlay.OnEvent(picklist.PointerMoved{}, outside)
	if state.HoveredOption != 1 {
		t.Errorf("hovered option after leaving = %d, want 1", state.HoveredOption)
	}
}

func TestMenuEntryPressHighlightsAndStoresPick(t *testing.T) {
	state, overlay, _ := openMenu(t)
	bounds := overlay.Bounds()

	cursor := picklist.Vec2{X: bounds.X + 2, Y: bounds.Y + 2*26 + 2}
	if got := overlay.OnEvent(picklist.PointerPressed{Button: picklist.MouseButtonLeft}, cursor); got != picklist.Captured {
		t.Fatalf("entry press: got %v, want Captured", got)
	}
	if state.HoveredOption != 2 {
		t.Errorf("hovered option = %d, want 2", state.HoveredOption)
	}
}

func TestMenuPressOutsideIgnored(t *testing.T) {
	_, overlay, _ := openMenu(t)

	if got := overlay.OnEvent(picklist.PointerPressed{Button: picklist.MouseButtonLeft}, outside); got != picklist.Ignored {
		t.Errorf("press outside menu: got %v, want Ignored", got)
	}
}

func TestMenuScrollClampedToContent(t *testing.T) {
	state := picklist.NewState[string]()
	menu := picklist.NewMenu(state, picklist.NewOptions(testLanguages), func(s string) string { return s }).
		Width(120).
		TextSize(16).
		Padding(picklist.UniformPadding(5)).
		MaxHeight(40)
	overlay := menu.Overlay(picklist.Vec2{}, 0)

	inMenu := picklist.Vec2{X: 5, Y: 5}

	// Content is 78 tall against a 40 cap: scrolling down clamps at 38.
	for i := 0; i < 10; i++ {
		overlay.OnEvent(picklist.WheelScrolled{DeltaY: -1, Unit: picklist.ScrollLines}, inMenu)
	}
	if state.Menu.ScrollY != 38 {
		t.Errorf("scroll = %v, want 38", state.Menu.ScrollY)
	}

	// And scrolling back up clamps at zero.
	for i := 0; i < 10; i++ {
		overlay.OnEvent(picklist.WheelScrolled{DeltaY: 1, Unit: picklist.ScrollLines}, inMenu)
	}
	if state.Menu.ScrollY != 0 {
		t.Errorf("scroll = %v, want 0", state.Menu.ScrollY)
	}
}

func TestMenuScrollOffsetsHitTesting(t *testing.T) {
	state := picklist.NewState[string]()
	menu := picklist.NewMenu(state, picklist.NewOptions(testLanguages), func(s string) string { return s }).
		Width(120).
		TextSize(16).
		Padding(picklist.UniformPadding(5)).
		MaxHeight(30)
	overlay := menu.Overlay(picklist.Vec2{}, 0)

	state.Menu.ScrollY = 26

	// With the first entry scrolled away, the top of the menu hits the
	// second option.
	overlay.OnEvent(picklist.PointerMoved{}, picklist.Vec2{X: 5, Y: 2})
	if state.HoveredOption != 1 {
		t.Errorf("hovered option = %d, want 1", state.HoveredOption)
	}
}

func TestMenuDrawHighlightsHoveredEntry(t *testing.T) {
	state, overlay, _ := openMenu(t)
	state.HoveredOption = 1

	dl := picklist.AcquireDrawList()
	defer picklist.ReleaseDrawList(dl)

	overlay.Draw(dl, picklist.MonoMeasurer{})
	if len(dl.VtxBuffer) == 0 {
		t.Error("menu draw should emit vertices")
	}
}
