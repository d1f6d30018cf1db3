package retained

import "fmt"

// fixedBox is a leaf control with a fixed desired size that counts its
// override invocations, for exercising the measure/arrange caching.
type fixedBox struct {
	Element

	w, h         int
	measureCalls int
	arrangeCalls int
}

func newFixedBox(w, h int) *fixedBox {
	b := &fixedBox{w: w, h: h}
	b.Element.init(b)
	return b
}

func (b *fixedBox) MeasureOverride(available Size) Size {
	b.measureCalls++
	return Size{Width: b.w, Height: b.h}
}

func (b *fixedBox) ArrangeOverride(final Size) {
	b.arrangeCalls++
}

func (b *fixedBox) resize(w, h int) {
	b.w, b.h = w, h
	b.InvalidateMeasure()
}

// fakeMeasurer sizes text at a fixed advance per byte, one line tall.
type fakeMeasurer struct {
	advance    int
	lineHeight int
}

func (m fakeMeasurer) MeasureText(text string, font Font) Size {
	return Size{Width: len(text) * m.advance, Height: m.lineHeight}
}

// recordingSurface captures draw calls as strings for order and geometry
// assertions.
type recordingSurface struct {
	ops []string
}

func (s *recordingSurface) FillRect(r Rect, c Color) {
	s.ops = append(s.ops, fmt.Sprintf("fill %d,%d %dx%d #%08X", r.X, r.Y, r.Width, r.Height, uint32(c)))
}

func (s *recordingSurface) DrawText(text string, f Font, c Color, r Rect) {
	s.ops = append(s.ops, fmt.Sprintf("text %q %d,%d %dx%d", text, r.X, r.Y, r.Width, r.Height))
}

func (s *recordingSurface) SetClip(r Rect) {
	s.ops = append(s.ops, fmt.Sprintf("clip %d,%d %dx%d", r.X, r.Y, r.Width, r.Height))
}

func (s *recordingSurface) ClearClip() {
	s.ops = append(s.ops, "clearclip")
}

func (s *recordingSurface) Flush(r Rect) {
	s.ops = append(s.ops, fmt.Sprintf("flush %d,%d %dx%d", r.X, r.Y, r.Width, r.Height))
}

// itemBox returns a selectable item of the given pixel height, the shape
// used throughout the list tests.
func itemBox(h int) *ListBoxItem {
	return NewListBoxItem(newFixedBox(80, h))
}

// layoutTree wraps a root in a tree of the given surface size and runs one
// layout pass.
func layoutTree(root Control, w, h int) *Tree {
	tree := NewTree(Size{Width: w, Height: h})
	tree.SetRoot(root)
	tree.UpdateLayout()
	return tree
}
