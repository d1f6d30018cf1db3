package retained

import "testing"

// tallContent builds a viewer over a stack of count rows of the given
// height, laid out in a surface-sized tree.
func tallContent(t *testing.T, rows, rowHeight, surfaceW, surfaceH int) (*ScrollViewer, *StackPanel, *Tree) {
	t.Helper()
	panel := NewStackPanel()
	for i := 0; i < rows; i++ {
		panel.AddChild(newFixedBox(60, rowHeight))
	}
	viewer := NewScrollViewer()
	viewer.SetContent(panel)
	tree := layoutTree(viewer, surfaceW, surfaceH)
	return viewer, panel, tree
}

func TestScrollViewerExtentAndViewport(t *testing.T) {
	viewer, _, _ := tallContent(t, 10, 20, 100, 100)

	if got := viewer.ExtentSize(); got != (Size{60, 200}) {
		t.Errorf("extent = %+v, want {60 200}", got)
	}
	if got := viewer.ViewportSize(); got != (Size{100, 100}) {
		t.Errorf("viewport = %+v, want {100 100}", got)
	}
}

func TestScrollViewerOffsetClamping(t *testing.T) {
	// Extent 200, viewport 100: the valid vertical range is [0, 100].
	tests := []struct {
		name string
		set  int
		want int
	}{
		{"negativeClampsToZero", -10, 0},
		{"inRange", 40, 40},
		{"pastMaxClampsToMax", 500, 100},
		{"exactMax", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewer, _, _ := tallContent(t, 10, 20, 100, 100)
			viewer.SetVerticalOffset(tt.set)
			if got := viewer.VerticalOffset(); got != tt.want {
				t.Errorf("offset = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScrollViewerClampIsIdempotent(t *testing.T) {
	viewer, _, _ := tallContent(t, 10, 20, 100, 100)

	events := 0
	viewer.ScrollChanged.Attach(func(ScrollChangedArgs) { events++ })

	viewer.SetVerticalOffset(500)
	if events != 1 {
		t.Fatalf("expected one scroll event, got %d", events)
	}
	// Re-assigning the already-clamped value is a no-op.
	viewer.SetVerticalOffset(500)
	viewer.SetVerticalOffset(100)
	if events != 1 {
		t.Errorf("idempotent assignment fired %d extra events", events-1)
	}
}

func TestScrollViewerScrollChangedCarriesOldAndNew(t *testing.T) {
	viewer, _, _ := tallContent(t, 10, 20, 100, 100)

	var got []ScrollChangedArgs
	viewer.ScrollChanged.Attach(func(args ScrollChangedArgs) { got = append(got, args) })

	viewer.SetVerticalOffset(30)
	viewer.SetVerticalOffset(70)

	want := []ScrollChangedArgs{
		{Old: Offset{0, 0}, New: Offset{0, 30}},
		{Old: Offset{0, 30}, New: Offset{0, 70}},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScrollViewerContentShiftsOppositeToOffset(t *testing.T) {
	viewer, panel, tree := tallContent(t, 10, 20, 100, 100)

	viewer.SetVerticalOffset(60)
	tree.UpdateLayout()

	if got := panel.LayoutOffset(); got != (Offset{0, -60}) {
		t.Errorf("content offset = %+v, want {0 -60}", got)
	}
}

func TestScrollViewerReclampsWhenExtentShrinks(t *testing.T) {
	viewer, panel, tree := tallContent(t, 10, 20, 100, 100)
	viewer.SetVerticalOffset(100)
	tree.UpdateLayout()

	var last ScrollChangedArgs
	viewer.ScrollChanged.Attach(func(args ScrollChangedArgs) { last = args })

	// Drop to 6 rows: extent 120, max offset 20.
	for i := 0; i < 4; i++ {
		panel.RemoveChild(panel.ChildAt(panel.ChildCount() - 1))
	}
	tree.UpdateLayout()

	if got := viewer.VerticalOffset(); got != 20 {
		t.Fatalf("offset after shrink = %d, want 20", got)
	}
	if last.Old.Y != 100 || last.New.Y != 20 {
		t.Errorf("reclamp event = %+v, want 100 -> 20", last)
	}
}

func TestScrollViewerEnsureVisible(t *testing.T) {
	tests := []struct {
		name        string
		startOffset int
		top, bottom int
		wantOffset  int
	}{
		{
			// Viewport 100, item spanning 80..140: the part below
			// the fold scrolls down by exactly 40.
			name:       "belowViewportAlignsBottom",
			top:        80,
			bottom:     140,
			wantOffset: 40,
		},
		{
			name:        "aboveViewportAlignsTop",
			startOffset: 60,
			top:         -20,
			bottom:      0,
			wantOffset:  40,
		},
		{
			name:        "fullyVisibleIsNoop",
			startOffset: 40,
			top:         10,
			bottom:      90,
			wantOffset:  40,
		},
		{
			name:       "exactFitBottom",
			top:        0,
			bottom:     100,
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewer, _, _ := tallContent(t, 10, 20, 100, 100)
			viewer.SetVerticalOffset(tt.startOffset)
			viewer.EnsureVisible(tt.top, tt.bottom)
			if got := viewer.VerticalOffset(); got != tt.wantOffset {
				t.Errorf("offset = %d, want %d", got, tt.wantOffset)
			}
		})
	}
}

func TestScrollViewerLineAndPage(t *testing.T) {
	viewer, _, tree := tallContent(t, 10, 20, 100, 100)
	viewer.SetScrollingStyle(ScrollByPixel)
	viewer.SetLineHeight(10)

	viewer.LineDown()
	if viewer.VerticalOffset() != 10 {
		t.Fatalf("pixel line down = %d, want 10", viewer.VerticalOffset())
	}
	viewer.LineUp()
	if viewer.VerticalOffset() != 0 {
		t.Fatalf("pixel line up = %d, want 0", viewer.VerticalOffset())
	}

	viewer.PageDown()
	if viewer.VerticalOffset() != 100 {
		t.Fatalf("page down = %d, want viewport height 100", viewer.VerticalOffset())
	}
	viewer.PageUp()
	if viewer.VerticalOffset() != 0 {
		t.Fatalf("page up = %d, want 0", viewer.VerticalOffset())
	}

	// Item scrolling snaps to row boundaries regardless of line height.
	viewer.SetScrollingStyle(ScrollByItem)
	viewer.LineDown()
	tree.UpdateLayout()
	if viewer.VerticalOffset() != 20 {
		t.Fatalf("item line down = %d, want 20", viewer.VerticalOffset())
	}
	viewer.LineDown()
	if viewer.VerticalOffset() != 40 {
		t.Fatalf("second item line down = %d, want 40", viewer.VerticalOffset())
	}
	viewer.LineUp()
	if viewer.VerticalOffset() != 20 {
		t.Fatalf("item line up = %d, want 20", viewer.VerticalOffset())
	}
}

func TestScrollViewerRenderClipsToViewport(t *testing.T) {
	_, _, tree := tallContent(t, 10, 20, 100, 100)

	surface := &recordingSurface{}
	tree.Render(NewRenderContext(surface))

	if len(surface.ops) < 2 {
		t.Fatalf("ops = %v", surface.ops)
	}
	if surface.ops[0] != "clip 0,0 100x100" {
		t.Errorf("first op = %q, want viewport clip", surface.ops[0])
	}
	if surface.ops[len(surface.ops)-2] != "clearclip" {
		t.Errorf("expected clip cleared before flush, ops tail = %v", surface.ops[len(surface.ops)-2:])
	}
}
