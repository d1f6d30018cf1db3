// Package retained implements the retained-mode control tree for the ember
// toolkit: a logical tree of controls laid out with a two-phase
// measure/arrange protocol and rendered onto a pixel surface provided by
// the native engine.
//
// The package is single-threaded by contract. A Tree captures its owning
// goroutine at construction and every mutating entry point verifies the
// caller against it; cross-goroutine mutation is a programming error, not
// something the toolkit synchronizes around.
package retained

// Control is implemented by everything that participates in layout.
// Concrete controls embed Element, which supplies the tree bookkeeping and
// the measure/arrange caching, and override MeasureOverride /
// ArrangeOverride / Render for their own behavior.
type Control interface {
	// Measure computes the control's desired size under the given
	// constraint. The result is cached until the control is invalidated or
	// the constraint changes.
	Measure(available Size) Size

	// Arrange assigns the control's rectangle within its parent's content
	// box. Only the parent calls Arrange; a control never positions itself.
	Arrange(bounds Rect)

	// MeasureOverride is the per-control sizing pass invoked by Measure.
	MeasureOverride(available Size) Size

	// ArrangeOverride is the per-control placement pass invoked by Arrange
	// with the final size the parent granted.
	ArrangeOverride(final Size)

	// Render draws the arranged content through the render context.
	Render(rc *RenderContext)

	DesiredSize() Size
	Bounds() Rect
	LayoutOffset() Offset

	Parent() Control
	Children() []Control

	InvalidateMeasure()
	InvalidateArrange()

	base() *Element
}

// Element is the embeddable base for all controls. It owns the logical
// tree links (a non-owning parent back-reference and the owned, ordered
// child sequence) and the dirty flags that drive incremental layout.
type Element struct {
	// self points back at the embedding control so the base Measure and
	// Arrange dispatch to the outermost overrides. Set once by init.
	self Control

	parent   Control
	children []Control
	tree     *Tree

	desired       Size
	lastAvailable Size
	measured      bool
	measureDirty  bool

	bounds       Rect
	arranged     bool
	arrangeDirty bool

	visible    bool
	background Color
}

// init wires the embedding control into the base. Every constructor calls
// this before the control is used.
func (e *Element) init(self Control) {
	e.self = self
	e.visible = true
	e.measureDirty = true
	e.arrangeDirty = true
}

func (e *Element) base() *Element { return e }

// ============================================================================
// Logical Tree
// ============================================================================

// Parent returns the logical parent, or nil for a detached or root control.
func (e *Element) Parent() Control {
	return e.parent
}

// Children returns a copy of the child sequence.
func (e *Element) Children() []Control {
	result := make([]Control, len(e.children))
	copy(result, e.children)
	return result
}

// ChildCount returns the number of children without copying.
func (e *Element) ChildCount() int {
	return len(e.children)
}

// ChildAt returns the child at index i, or nil when out of bounds.
func (e *Element) ChildAt(i int) Control {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

// AddChild appends a child. A control lives in at most one parent; adding
// a child that already has one removes it from there first.
func (e *Element) AddChild(child Control) {
	e.mustAccess()
	e.adopt(child)
	e.children = append(e.children, child)
	e.self.InvalidateMeasure()
}

// InsertChild inserts a child at the given index, clamped to the valid
// range.
func (e *Element) InsertChild(index int, child Control) {
	e.mustAccess()
	e.adopt(child)
	if index < 0 {
		index = 0
	}
	if index >= len(e.children) {
		e.children = append(e.children, child)
	} else {
		e.children = append(e.children[:index+1], e.children[index:]...)
		e.children[index] = child
	}
	e.self.InvalidateMeasure()
}

// RemoveChild removes a child by identity. Returns false when the control
// is not a child of this element.
func (e *Element) RemoveChild(child Control) bool {
	e.mustAccess()
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			b := child.base()
			b.parent = nil
			b.setTree(nil)
			e.self.InvalidateMeasure()
			return true
		}
	}
	return false
}

// IndexOfChild returns the child's index, or -1 when absent.
func (e *Element) IndexOfChild(child Control) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (e *Element) adopt(child Control) {
	b := child.base()
	if b.parent != nil {
		b.parent.base().RemoveChild(child)
	}
	b.parent = e.self
	b.setTree(e.tree)
}

// setTree attaches or detaches the subtree rooted here.
func (e *Element) setTree(t *Tree) {
	if e.tree == t {
		return
	}
	e.tree = t
	for _, c := range e.children {
		c.base().setTree(t)
	}
}

// Tree returns the owning tree, or nil while detached.
func (e *Element) Tree() *Tree {
	return e.tree
}

// ============================================================================
// Measure / Arrange
// ============================================================================

// Measure returns the desired size for the given constraint, recomputing
// through MeasureOverride only when dirty or when the constraint changed.
func (e *Element) Measure(available Size) Size {
	if e.measured && !e.measureDirty && available == e.lastAvailable {
		return e.desired
	}
	d := e.self.MeasureOverride(available)
	if d.Width < 0 {
		d.Width = 0
	}
	if d.Height < 0 {
		d.Height = 0
	}
	e.desired = d
	e.lastAvailable = available
	e.measured = true
	e.measureDirty = false
	return d
}

// Arrange places the control at bounds within its parent's content box,
// rerunning ArrangeOverride only when dirty or when the bounds changed.
func (e *Element) Arrange(bounds Rect) {
	if e.arranged && !e.arrangeDirty && bounds == e.bounds {
		return
	}
	e.bounds = bounds
	e.arranged = true
	e.self.ArrangeOverride(bounds.Size())
	e.arrangeDirty = false
}

// MeasureOverride is the default sizing pass: measure every child with the
// full constraint and report the envelope. Leaf controls and panels
// override this.
func (e *Element) MeasureOverride(available Size) Size {
	var d Size
	for _, c := range e.children {
		d = d.Max(c.Measure(available))
	}
	return d
}

// ArrangeOverride is the default placement pass: every child fills the
// final rectangle.
func (e *Element) ArrangeOverride(final Size) {
	for _, c := range e.children {
		c.Arrange(Rect{X: 0, Y: 0, Width: final.Width, Height: final.Height})
	}
}

// DesiredSize returns the size reported by the last measure pass.
func (e *Element) DesiredSize() Size {
	return e.desired
}

// Bounds returns the rectangle assigned by the last arrange pass, relative
// to the parent's content origin.
func (e *Element) Bounds() Rect {
	return e.bounds
}

// LayoutOffset returns the arranged position relative to the parent's
// content origin.
func (e *Element) LayoutOffset() Offset {
	return e.bounds.Origin()
}

// InvalidateMeasure marks this control's desired size stale and walks the
// dirt up the logical tree so the next layout pass recomputes from the
// nearest valid ancestor. The walk stops at the first already-dirty
// ancestor.
func (e *Element) InvalidateMeasure() {
	if e.measureDirty {
		return
	}
	e.measureDirty = true
	e.arrangeDirty = true
	if e.parent != nil {
		e.parent.InvalidateMeasure()
	}
	if e.tree != nil {
		e.tree.scheduleLayout()
	}
}

// InvalidateArrange marks the placement stale while the desired size is
// still trusted. The flag walks to the root so the next pass descends
// through otherwise-clean ancestors; their unchanged children early-out on
// the arrange cache.
func (e *Element) InvalidateArrange() {
	if e.arrangeDirty {
		return
	}
	e.arrangeDirty = true
	if e.parent != nil {
		e.parent.InvalidateArrange()
	}
	if e.tree != nil {
		e.tree.scheduleLayout()
	}
}

// ============================================================================
// Appearance
// ============================================================================

// Visible reports whether the control renders.
func (e *Element) Visible() bool {
	return e.visible
}

// SetVisible toggles rendering and invalidates the parent's measure, since
// panels skip collapsed children.
func (e *Element) SetVisible(v bool) {
	e.mustAccess()
	if e.visible == v {
		return
	}
	e.visible = v
	if e.parent != nil {
		e.parent.InvalidateMeasure()
	}
}

// Background returns the fill color painted behind the content.
// ColorTransparent means no fill.
func (e *Element) Background() Color {
	return e.background
}

// SetBackground sets the fill color painted behind the content.
func (e *Element) SetBackground(c Color) {
	e.mustAccess()
	e.background = c
}

// Render paints the background and then the visible children, each
// translated to its arranged offset.
func (e *Element) Render(rc *RenderContext) {
	rc.FillRect(RectOf(Offset{}, e.bounds.Size()), e.background)
	e.renderChildren(rc)
}

func (e *Element) renderChildren(rc *RenderContext) {
	snapshot := acquireControlSlice(len(e.children))
	copy(snapshot, e.children)
	defer releaseControlSlice(snapshot)

	for _, c := range snapshot {
		b := c.base()
		if !b.visible {
			continue
		}
		rc.pushOrigin(b.bounds.Origin())
		c.Render(rc)
		rc.popOrigin()
	}
}

// mustAccess panics with a *ThreadAccessError when the caller is not the
// owning goroutine. Detached controls carry no affinity yet and skip the
// check.
func (e *Element) mustAccess() {
	if e.tree != nil {
		e.tree.mustAccess()
	}
}
