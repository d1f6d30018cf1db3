package retained

import "testing"

func newItems(t *testing.T, selectable ...bool) *ItemCollection {
	t.Helper()
	panel := NewStackPanel()
	items := newItemCollection(panel)
	for _, s := range selectable {
		it := itemBox(20)
		it.SetSelectable(s)
		items.Add(it)
	}
	return items
}

func TestFindNextSelectable(t *testing.T) {
	tests := []struct {
		name       string
		selectable []bool
		start      int
		step       int
		want       int
		ok         bool
	}{
		{"forwardImmediateHit", []bool{true, true}, 0, +1, 0, true},
		{"forwardSkipsNonSelectable", []bool{true, false, false, true}, 1, +1, 3, true},
		{"forwardRunsOffEnd", []bool{true, false, false}, 1, +1, -1, false},
		{"backwardImmediateHit", []bool{true, true}, 1, -1, 1, true},
		{"backwardSkipsNonSelectable", []bool{true, false, true}, 1, -1, 0, true},
		{"backwardRunsOffStart", []bool{false, false, true}, 1, -1, -1, false},
		{"startPastEnd", []bool{true}, 5, +1, -1, false},
		{"startBeforeBegin", []bool{true}, -1, -1, -1, false},
		{"emptyCollection", nil, 0, +1, -1, false},
		{"invalidStep", []bool{true, true}, 0, +2, -1, false},
		{"zeroStep", []bool{true, true}, 0, 0, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := newItems(t, tt.selectable...)
			got, ok := FindNextSelectable(items, tt.start, tt.step)
			if got != tt.want || ok != tt.ok {
				t.Errorf("FindNextSelectable(start=%d, step=%d) = (%d, %v), want (%d, %v)",
					tt.start, tt.step, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNavigationDirectionString(t *testing.T) {
	if NavigateUp.String() != "up" || NavigateDown.String() != "down" {
		t.Errorf("got %q and %q", NavigateUp, NavigateDown)
	}
	if NavigationDirection(9).String() != "unknown" {
		t.Errorf("out-of-range direction = %q", NavigationDirection(9))
	}
}

// navRecorder is a container that records navigation events reaching it,
// optionally consuming them.
type navRecorder struct {
	Element
	seen    []NavigationDirection
	consume bool
}

func newNavRecorder(consume bool) *navRecorder {
	r := &navRecorder{consume: consume}
	r.Element.init(r)
	return r
}

func (r *navRecorder) HandleNavigation(ev *NavigationEvent) {
	r.seen = append(r.seen, ev.Direction)
	if r.consume {
		ev.Handled = true
	}
}

func TestDispatchNavigationBubblesFromFocus(t *testing.T) {
	outer := newNavRecorder(true)
	inner := newNavRecorder(false)
	leaf := newFixedBox(10, 10)
	inner.AddChild(leaf)
	outer.AddChild(inner)

	tree := NewTree(Size{Width: 100, Height: 100})
	tree.SetRoot(outer)
	tree.SetFocus(leaf)

	ev := &NavigationEvent{Direction: NavigateDown}
	tree.DispatchNavigation(ev)

	if !ev.Handled {
		t.Fatal("event should be consumed by the outer handler")
	}
	if len(inner.seen) != 1 || inner.seen[0] != NavigateDown {
		t.Errorf("inner saw %v", inner.seen)
	}
	if len(outer.seen) != 1 {
		t.Errorf("outer saw %v", outer.seen)
	}
}

func TestDispatchNavigationStopsWhenHandled(t *testing.T) {
	outer := newNavRecorder(true)
	inner := newNavRecorder(true)
	outer.AddChild(inner)

	tree := NewTree(Size{Width: 100, Height: 100})
	tree.SetRoot(outer)
	tree.SetFocus(inner)

	tree.DispatchNavigation(&NavigationEvent{Direction: NavigateUp})

	if len(inner.seen) != 1 {
		t.Errorf("inner saw %v", inner.seen)
	}
	if len(outer.seen) != 0 {
		t.Errorf("handled event reached the outer handler: %v", outer.seen)
	}
}

func TestDispatchNavigationWithoutFocusStartsAtRoot(t *testing.T) {
	root := newNavRecorder(true)
	tree := NewTree(Size{Width: 100, Height: 100})
	tree.SetRoot(root)

	tree.DispatchNavigation(&NavigationEvent{Direction: NavigateDown})
	if len(root.seen) != 1 {
		t.Errorf("root saw %v", root.seen)
	}
}

func TestDispatchNavigationToListBoxAndAncestorFallback(t *testing.T) {
	// A list pinned at its last item leaves the event unhandled, so a
	// surrounding handler gets a chance at it.
	outer := newNavRecorder(true)
	lb := NewListBox()
	for i := 0; i < 3; i++ {
		lb.Items().Add(itemBox(20))
	}
	outer.AddChild(lb)

	tree := layoutTree(outer, 100, 100)
	tree.SetFocus(lb)
	if err := lb.SetSelectedIndex(2); err != nil {
		t.Fatal(err)
	}

	ev := &NavigationEvent{Direction: NavigateDown}
	tree.DispatchNavigation(ev)

	if !ev.Handled {
		t.Fatal("ancestor handler should have consumed the event")
	}
	if lb.SelectedIndex() != 2 {
		t.Errorf("selection moved to %d", lb.SelectedIndex())
	}
	if len(outer.seen) != 1 || outer.seen[0] != NavigateDown {
		t.Errorf("outer saw %v", outer.seen)
	}
}
