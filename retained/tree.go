package retained

// TextMeasurer resolves the pixel size of a string in a given font. The
// engine supplies an implementation backed by the native text metrics;
// tests supply fakes.
type TextMeasurer interface {
	MeasureText(text string, font Font) Size
}

// Tree owns a control hierarchy and drives its layout. All operations on a
// tree and its controls must run on the goroutine that constructed it; the
// owning goroutine id is captured here and checked on every mutating entry
// point.
type Tree struct {
	owner   uint64
	root    Control
	surface Size

	needsLayout bool
	focus       Control
	measurer    TextMeasurer
}

// NewTree creates a tree for a surface of the given size. The calling
// goroutine becomes the owner.
func NewTree(surface Size) *Tree {
	return &Tree{
		owner:   goroutineID(),
		surface: surface,
	}
}

// VerifyAccess returns a *ThreadAccessError when called from a goroutine
// other than the owner, nil otherwise.
func (t *Tree) VerifyAccess() error {
	caller := goroutineID()
	if caller != t.owner {
		return &ThreadAccessError{Owner: t.owner, Caller: caller}
	}
	return nil
}

// mustAccess is VerifyAccess for void mutators: a violation is fatal to
// the offending call.
func (t *Tree) mustAccess() {
	if err := t.VerifyAccess(); err != nil {
		panic(err)
	}
}

// SetRoot attaches a control hierarchy to the tree.
func (t *Tree) SetRoot(root Control) {
	t.mustAccess()
	if t.root != nil {
		t.root.base().setTree(nil)
	}
	t.root = root
	if root != nil {
		b := root.base()
		b.parent = nil
		b.setTree(t)
	}
	t.focus = nil
	t.scheduleLayout()
}

// Root returns the root control, or nil.
func (t *Tree) Root() Control {
	return t.root
}

// SurfaceSize returns the size layout is constrained to.
func (t *Tree) SurfaceSize() Size {
	return t.surface
}

// SetSurfaceSize resizes the layout constraint, e.g. after a display
// rotation, and schedules a full pass.
func (t *Tree) SetSurfaceSize(s Size) {
	t.mustAccess()
	if t.surface == s {
		return
	}
	t.surface = s
	if t.root != nil {
		t.root.InvalidateMeasure()
	}
	t.scheduleLayout()
}

// SetTextMeasurer installs the text metrics source used by text controls.
func (t *Tree) SetTextMeasurer(m TextMeasurer) {
	t.mustAccess()
	t.measurer = m
	if t.root != nil {
		t.root.InvalidateMeasure()
	}
}

// Measurer returns the installed text metrics source, or nil.
func (t *Tree) Measurer() TextMeasurer {
	return t.measurer
}

func (t *Tree) scheduleLayout() {
	t.needsLayout = true
}

// NeedsLayout reports whether anything invalidated since the last
// UpdateLayout.
func (t *Tree) NeedsLayout() bool {
	return t.needsLayout
}

// UpdateLayout runs one measure/arrange pass over the tree: measurement
// bottom-up against the surface size, then arrangement top-down from the
// surface rectangle. Clean subtrees are skipped by the caching in Element.
func (t *Tree) UpdateLayout() {
	t.mustAccess()
	t.needsLayout = false
	if t.root == nil {
		return
	}
	t.root.Measure(t.surface)
	t.root.Arrange(Rect{X: 0, Y: 0, Width: t.surface.Width, Height: t.surface.Height})
}

// Render draws the tree through the given context and flushes the surface
// region it covers. Layout must be current; callers normally go through
// the engine's frame pump, which updates layout first.
func (t *Tree) Render(rc *RenderContext) {
	t.mustAccess()
	if t.root == nil {
		return
	}
	b := t.root.base()
	if !b.visible {
		return
	}
	rc.pushOrigin(b.bounds.Origin())
	t.root.Render(rc)
	rc.popOrigin()
	rc.Flush(Rect{X: 0, Y: 0, Width: t.surface.Width, Height: t.surface.Height})
}

// ============================================================================
// Traversal
// ============================================================================

// Walk traverses the tree depth-first. Return false from fn to stop.
func (t *Tree) Walk(fn func(Control) bool) {
	if t.root != nil {
		walkControl(t.root, fn)
	}
}

func walkControl(c Control, fn func(Control) bool) bool {
	if !fn(c) {
		return false
	}
	for _, child := range c.Children() {
		if !walkControl(child, fn) {
			return false
		}
	}
	return true
}

// Find returns the first control matching the predicate, or nil.
func (t *Tree) Find(pred func(Control) bool) Control {
	var found Control
	t.Walk(func(c Control) bool {
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// ============================================================================
// Focus and Navigation Dispatch
// ============================================================================

// SetFocus directs navigation events at the given control. Passing nil
// clears focus; events then start at the root.
func (t *Tree) SetFocus(c Control) {
	t.mustAccess()
	t.focus = c
}

// Focus returns the control navigation events are delivered to first.
func (t *Tree) Focus() Control {
	return t.focus
}

// DispatchNavigation delivers a decoded navigation event to the focused
// control and bubbles it toward the root until some handler marks it
// handled. An unhandled event simply falls off the top; the caller can
// inspect ev.Handled.
func (t *Tree) DispatchNavigation(ev *NavigationEvent) {
	t.mustAccess()
	target := t.focus
	if target == nil {
		target = t.root
	}
	for c := target; c != nil && !ev.Handled; c = c.Parent() {
		if h, ok := c.(NavigationHandler); ok {
			h.HandleNavigation(ev)
		}
	}
}
