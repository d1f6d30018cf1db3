package retained

// ScrollingStyle selects how navigation-driven scrolling interprets a
// "line" step. It never affects offset clamping.
type ScrollingStyle int

const (
	// ScrollByPixel moves by a fixed pixel delta per line step.
	ScrollByPixel ScrollingStyle = iota

	// ScrollByItem snaps line steps to the content panel's child
	// boundaries, one whole item at a time.
	ScrollByItem
)

// DefaultScrollLine is the pixel delta of one line step under
// ScrollByPixel.
const DefaultScrollLine = 16

// ScrollViewer presents a clipped, offsettable viewport over exactly one
// content control. The content is measured unconstrained, its desired size
// becomes the extent, and the viewer arranges it shifted by the negated
// offsets so content moves opposite to offset growth.
//
// Offsets are always clamped to [0, max(0, extent-viewport)]; assignments
// outside that range are clamped silently rather than rejected, since they
// come from continuous gestures where failing would be hostile.
type ScrollViewer struct {
	Element

	content Control

	offsetX int
	offsetY int
	extent  Size

	style      ScrollingStyle
	lineHeight int

	// ScrollChanged fires after any effective offset change, assignment
	// and recomputation clamps alike, with the offsets before and after.
	ScrollChanged Event[ScrollChangedArgs]
}

// NewScrollViewer creates an empty viewer with pixel scrolling.
func NewScrollViewer() *ScrollViewer {
	v := &ScrollViewer{lineHeight: DefaultScrollLine}
	v.Element.init(v)
	return v
}

// Content returns the wrapped control, or nil.
func (v *ScrollViewer) Content() Control {
	return v.content
}

// SetContent replaces the wrapped control. The previous content is
// detached from the tree.
func (v *ScrollViewer) SetContent(c Control) {
	v.mustAccess()
	if v.content == c {
		return
	}
	if v.content != nil {
		v.RemoveChild(v.content)
	}
	v.content = c
	if c != nil {
		v.AddChild(c)
	}
	v.InvalidateMeasure()
}

// ScrollingStyle returns the configured line-step behavior.
func (v *ScrollViewer) ScrollingStyle() ScrollingStyle {
	return v.style
}

// SetScrollingStyle configures how line steps are interpreted.
func (v *ScrollViewer) SetScrollingStyle(s ScrollingStyle) {
	v.mustAccess()
	v.style = s
}

// LineHeight returns the pixel delta of one ScrollByPixel line step.
func (v *ScrollViewer) LineHeight() int {
	return v.lineHeight
}

// SetLineHeight sets the pixel delta of one ScrollByPixel line step.
func (v *ScrollViewer) SetLineHeight(h int) {
	v.mustAccess()
	if h < 1 {
		h = 1
	}
	v.lineHeight = h
}

// ============================================================================
// Geometry
// ============================================================================

// ExtentSize returns the content's full size from the last measure pass.
func (v *ScrollViewer) ExtentSize() Size {
	return v.extent
}

// ViewportSize returns the visible size from the last arrange pass.
func (v *ScrollViewer) ViewportSize() Size {
	return v.bounds.Size()
}

// HorizontalOffset returns the current horizontal scroll position.
func (v *ScrollViewer) HorizontalOffset() int {
	return v.offsetX
}

// VerticalOffset returns the current vertical scroll position.
func (v *ScrollViewer) VerticalOffset() int {
	return v.offsetY
}

// SetHorizontalOffset scrolls horizontally, clamping into the valid range.
// A no-op when the clamped value equals the current one.
func (v *ScrollViewer) SetHorizontalOffset(x int) {
	v.mustAccess()
	v.setOffsets(x, v.offsetY, true)
}

// SetVerticalOffset scrolls vertically, clamping into the valid range.
// A no-op when the clamped value equals the current one.
func (v *ScrollViewer) SetVerticalOffset(y int) {
	v.mustAccess()
	v.setOffsets(v.offsetX, y, true)
}

func (v *ScrollViewer) maxOffsets() (int, int) {
	viewport := v.bounds.Size()
	return max(0, v.extent.Width-viewport.Width),
		max(0, v.extent.Height-viewport.Height)
}

// setOffsets clamps, stores, and notifies. invalidate is false when called
// from inside ArrangeOverride, where the content is about to be placed
// with the new offsets anyway.
func (v *ScrollViewer) setOffsets(x, y int, invalidate bool) {
	maxX, maxY := v.maxOffsets()
	x = min(max(0, x), maxX)
	y = min(max(0, y), maxY)
	if x == v.offsetX && y == v.offsetY {
		return
	}
	old := Offset{X: v.offsetX, Y: v.offsetY}
	v.offsetX = x
	v.offsetY = y
	if invalidate {
		v.InvalidateArrange()
	}
	v.ScrollChanged.publish(ScrollChangedArgs{Old: old, New: Offset{X: x, Y: y}})
}

// MeasureOverride measures the content without constraints, records its
// desired size as the extent, and reports no more than the available size
// for the viewer itself.
func (v *ScrollViewer) MeasureOverride(available Size) Size {
	if v.content == nil {
		v.extent = Size{}
		return Size{}
	}
	v.extent = v.content.Measure(Size{Width: Unbounded, Height: Unbounded})
	return v.extent.Min(available)
}

// ArrangeOverride re-clamps the offsets against the (possibly changed)
// extent and viewport, then places the content shifted by the negated
// offsets.
func (v *ScrollViewer) ArrangeOverride(final Size) {
	v.setOffsets(v.offsetX, v.offsetY, false)
	if v.content == nil {
		return
	}
	v.content.Arrange(Rect{
		X:      -v.offsetX,
		Y:      -v.offsetY,
		Width:  max(v.extent.Width, final.Width),
		Height: v.extent.Height,
	})
}

// Render clips to the viewport before painting the content.
func (v *ScrollViewer) Render(rc *RenderContext) {
	rc.FillRect(RectOf(Offset{}, v.bounds.Size()), v.background)
	rc.PushClip(RectOf(Offset{}, v.bounds.Size()))
	v.renderChildren(rc)
	rc.PopClip()
}

// ============================================================================
// Scrolling Operations
// ============================================================================

// EnsureVisible adjusts the vertical offset by the minimal delta that
// brings a rectangle spanning top..bottom, in viewport coordinates, fully
// into view. The bottom check runs first, then the top check; at most one
// is effective per call. An item taller than the viewport keeps the
// source model's behavior: its top edge wins.
func (v *ScrollViewer) EnsureVisible(top, bottom int) {
	viewportH := v.bounds.Height
	y := v.offsetY
	if bottom > viewportH {
		y += bottom - viewportH
	}
	if top < 0 {
		y += top
	}
	if y != v.offsetY {
		v.setOffsets(v.offsetX, y, true)
	}
}

// LineDown scrolls one line step toward the end of the content.
func (v *ScrollViewer) LineDown() {
	v.SetVerticalOffset(v.offsetY + v.lineStepDown())
}

// LineUp scrolls one line step toward the start of the content.
func (v *ScrollViewer) LineUp() {
	v.SetVerticalOffset(v.offsetY - v.lineStepUp())
}

// PageDown scrolls by one viewport height.
func (v *ScrollViewer) PageDown() {
	v.SetVerticalOffset(v.offsetY + v.bounds.Height)
}

// PageUp scrolls back by one viewport height.
func (v *ScrollViewer) PageUp() {
	v.SetVerticalOffset(v.offsetY - v.bounds.Height)
}

func (v *ScrollViewer) lineStepDown() int {
	if v.style == ScrollByItem {
		if step, ok := v.itemStepDown(); ok {
			return step
		}
	}
	return v.lineHeight
}

func (v *ScrollViewer) lineStepUp() int {
	if v.style == ScrollByItem {
		if step, ok := v.itemStepUp(); ok {
			return step
		}
	}
	return v.lineHeight
}

// itemStepDown finds the distance to the first child boundary below the
// current offset. Falls back to pixel steps when the content is not a
// panel.
func (v *ScrollViewer) itemStepDown() (int, bool) {
	panel, ok := v.content.(*StackPanel)
	if !ok {
		return 0, false
	}
	for _, c := range panel.Children() {
		if y := c.LayoutOffset().Y; y > v.offsetY {
			return y - v.offsetY, true
		}
	}
	return 0, false
}

func (v *ScrollViewer) itemStepUp() (int, bool) {
	panel, ok := v.content.(*StackPanel)
	if !ok {
		return 0, false
	}
	step, found := 0, false
	for _, c := range panel.Children() {
		if y := c.LayoutOffset().Y; y < v.offsetY {
			step, found = v.offsetY-y, true
		} else {
			break
		}
	}
	return step, found
}
