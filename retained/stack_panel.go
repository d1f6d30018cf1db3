package retained

// Orientation selects the stacking axis of a StackPanel.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// StackPanel arranges its children linearly along one axis, each child at
// the accumulated extent of the children before it. The panel reports its
// full content size even when it exceeds the available constraint, so a
// scroll host above it can decide to scroll rather than clip blindly.
type StackPanel struct {
	Element

	orientation Orientation
	gap         int
	stretch     bool
}

// NewStackPanel creates an empty vertical panel.
func NewStackPanel() *StackPanel {
	p := &StackPanel{}
	p.Element.init(p)
	return p
}

// Orientation returns the stacking axis.
func (p *StackPanel) Orientation() Orientation {
	return p.orientation
}

// SetOrientation changes the stacking axis.
func (p *StackPanel) SetOrientation(o Orientation) {
	p.mustAccess()
	if p.orientation == o {
		return
	}
	p.orientation = o
	p.InvalidateMeasure()
}

// Gap returns the spacing inserted between consecutive children.
func (p *StackPanel) Gap() int {
	return p.gap
}

// SetGap sets the spacing inserted between consecutive children.
func (p *StackPanel) SetGap(gap int) {
	p.mustAccess()
	if gap < 0 {
		gap = 0
	}
	if p.gap == gap {
		return
	}
	p.gap = gap
	p.InvalidateMeasure()
}

// Stretch reports whether children are widened (vertical) or tallened
// (horizontal) to the panel's cross-axis size instead of keeping their
// desired cross size.
func (p *StackPanel) Stretch() bool {
	return p.stretch
}

// SetStretch toggles cross-axis stretching of children.
func (p *StackPanel) SetStretch(s bool) {
	p.mustAccess()
	if p.stretch == s {
		return
	}
	p.stretch = s
	p.InvalidateArrange()
}

// MeasureOverride sizes the panel to the maximum child extent on the cross
// axis and the saturating sum of child extents on the main axis. Children
// are measured unbounded along the main axis; collapsed children do not
// contribute.
func (p *StackPanel) MeasureOverride(available Size) Size {
	var main, cross int
	visible := 0
	for _, c := range p.children {
		if !c.base().visible {
			continue
		}
		var d Size
		if p.orientation == Vertical {
			d = c.Measure(Size{Width: available.Width, Height: Unbounded})
			main = satAdd(main, d.Height)
			cross = max(cross, d.Width)
		} else {
			d = c.Measure(Size{Width: Unbounded, Height: available.Height})
			main = satAdd(main, d.Width)
			cross = max(cross, d.Height)
		}
		visible++
	}
	if visible > 1 {
		main = satAdd(main, p.gap*(visible-1))
	}
	if p.orientation == Vertical {
		return Size{Width: cross, Height: main}
	}
	return Size{Width: main, Height: cross}
}

// ArrangeOverride walks children in collection order, assigning each an
// offset accumulating the extents of the children before it.
func (p *StackPanel) ArrangeOverride(final Size) {
	pos := 0
	for _, c := range p.children {
		if !c.base().visible {
			continue
		}
		d := c.DesiredSize()
		var r Rect
		if p.orientation == Vertical {
			w := d.Width
			if p.stretch {
				w = final.Width
			}
			r = Rect{X: 0, Y: pos, Width: w, Height: d.Height}
			pos += d.Height + p.gap
		} else {
			h := d.Height
			if p.stretch {
				h = final.Height
			}
			r = Rect{X: pos, Y: 0, Width: d.Width, Height: h}
			pos += d.Width + p.gap
		}
		c.Arrange(r)
	}
}

// ChildOffset returns the arranged offset of a direct child relative to
// the panel's content origin, for scroll calculations by ancestors.
func (p *StackPanel) ChildOffset(c Control) (Offset, bool) {
	if p.IndexOfChild(c) < 0 {
		return Offset{}, false
	}
	return c.LayoutOffset(), true
}
