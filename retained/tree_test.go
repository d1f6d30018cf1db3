package retained

import (
	"errors"
	"testing"
)

func TestVerifyAccess(t *testing.T) {
	tree := NewTree(Size{Width: 100, Height: 100})
	if err := tree.VerifyAccess(); err != nil {
		t.Fatalf("owner goroutine rejected: %v", err)
	}

	errCh := make(chan error)
	go func() {
		errCh <- tree.VerifyAccess()
	}()
	err := <-errCh

	var threadErr *ThreadAccessError
	if !errors.As(err, &threadErr) {
		t.Fatalf("expected *ThreadAccessError, got %v", err)
	}
	if threadErr.Owner == threadErr.Caller {
		t.Errorf("error should carry distinct goroutine ids, got owner=caller=%d", threadErr.Owner)
	}
}

func TestMutatorPanicsOffOwnerGoroutine(t *testing.T) {
	tree := NewTree(Size{Width: 100, Height: 100})
	panel := NewStackPanel()
	tree.SetRoot(panel)

	recovered := make(chan any)
	go func() {
		defer func() { recovered <- recover() }()
		panel.SetGap(5)
	}()

	err, ok := (<-recovered).(error)
	if !ok {
		t.Fatal("cross-goroutine mutation did not panic with an error")
	}
	var threadErr *ThreadAccessError
	if !errors.As(err, &threadErr) {
		t.Fatalf("panic value = %v, want *ThreadAccessError", err)
	}
}

func TestSetSelectedIndexOffOwnerGoroutineFails(t *testing.T) {
	lb := NewListBox()
	lb.Items().Add(itemBox(20))
	layoutTree(lb, 100, 100)

	errCh := make(chan error)
	go func() {
		errCh <- lb.SetSelectedIndex(0)
	}()
	err := <-errCh

	var threadErr *ThreadAccessError
	if !errors.As(err, &threadErr) {
		t.Fatalf("expected *ThreadAccessError, got %v", err)
	}
	if lb.SelectedIndex() != -1 {
		t.Error("rejected call must not move the selection")
	}
}

func TestNeedsLayoutLifecycle(t *testing.T) {
	tree := NewTree(Size{Width: 100, Height: 100})
	if tree.NeedsLayout() {
		t.Error("fresh tree with no root should still start clean after construction")
	}

	box := newFixedBox(10, 10)
	tree.SetRoot(box)
	if !tree.NeedsLayout() {
		t.Error("SetRoot must schedule a pass")
	}

	tree.UpdateLayout()
	if tree.NeedsLayout() {
		t.Error("UpdateLayout must clear the flag")
	}

	box.resize(20, 20)
	if !tree.NeedsLayout() {
		t.Error("invalidation must schedule a pass")
	}
}

func TestSetSurfaceSizeRelayouts(t *testing.T) {
	panel := NewStackPanel()
	panel.SetStretch(true)
	box := newFixedBox(10, 10)
	panel.AddChild(box)
	tree := layoutTree(panel, 100, 100)

	tree.SetSurfaceSize(Size{Width: 200, Height: 80})
	if !tree.NeedsLayout() {
		t.Fatal("resize must schedule a pass")
	}
	tree.UpdateLayout()

	if got := panel.Bounds(); got.Width != 200 || got.Height != 80 {
		t.Errorf("root bounds = %v", got)
	}
	if got := box.Bounds().Width; got != 200 {
		t.Errorf("stretched child width = %d, want 200", got)
	}

	// Setting the same size again is a no-op.
	tree.SetSurfaceSize(Size{Width: 200, Height: 80})
	if tree.NeedsLayout() {
		t.Error("unchanged size must not schedule a pass")
	}
}

func TestSetRootDetachesPrevious(t *testing.T) {
	first := NewStackPanel()
	second := NewStackPanel()
	tree := NewTree(Size{Width: 100, Height: 100})

	tree.SetRoot(first)
	tree.SetFocus(first)
	tree.SetRoot(second)

	if tree.Root() != Control(second) {
		t.Fatal("root not replaced")
	}
	if tree.Focus() != nil {
		t.Error("focus must be cleared when the root changes")
	}

	// The detached hierarchy no longer reaches the tree, so its mutators
	// run unchecked and invalidations go nowhere.
	tree.UpdateLayout()
	first.SetGap(3)
	if tree.NeedsLayout() {
		t.Error("detached control invalidated the tree")
	}
}

func TestWalkAndFind(t *testing.T) {
	outer := NewStackPanel()
	inner := NewStackPanel()
	a := newFixedBox(10, 10)
	b := newFixedBox(10, 20)
	inner.AddChild(a)
	outer.AddChild(inner)
	outer.AddChild(b)
	tree := NewTree(Size{Width: 100, Height: 100})
	tree.SetRoot(outer)

	var order []Control
	tree.Walk(func(c Control) bool {
		order = append(order, c)
		return true
	})
	want := []Control{outer, inner, a, b}
	if len(order) != len(want) {
		t.Fatalf("walk visited %d controls, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("walk order[%d] wrong", i)
		}
	}

	found := tree.Find(func(c Control) bool {
		return len(c.Children()) == 0 && c == Control(b)
	})
	if found != Control(b) {
		t.Error("Find did not return the matching control")
	}

	// Walk stops when the callback returns false.
	visits := 0
	tree.Walk(func(Control) bool {
		visits++
		return false
	})
	if visits != 1 {
		t.Errorf("aborted walk visited %d controls", visits)
	}
}
