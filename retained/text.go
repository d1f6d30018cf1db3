package retained

// DefaultFont is used by text controls until a font is set.
var DefaultFont = Font{Name: "system", Size: 14}

// TextBlock is a leaf control drawing a single run of text. Metrics come
// from the tree's TextMeasurer; a detached TextBlock, or a tree without a
// measurer, measures as empty rather than guessing.
type TextBlock struct {
	Element

	text  string
	font  Font
	color Color
}

// NewTextBlock creates a text control in the default font.
func NewTextBlock(text string) *TextBlock {
	tb := &TextBlock{
		text:  text,
		font:  DefaultFont,
		color: 0xFFFFFFFF,
	}
	tb.Element.init(tb)
	return tb
}

// Text returns the displayed string.
func (tb *TextBlock) Text() string {
	return tb.text
}

// SetText replaces the displayed string.
func (tb *TextBlock) SetText(s string) {
	tb.mustAccess()
	if tb.text == s {
		return
	}
	tb.text = s
	tb.InvalidateMeasure()
}

// Font returns the font the text is drawn with.
func (tb *TextBlock) Font() Font {
	return tb.font
}

// SetFont replaces the font the text is drawn with.
func (tb *TextBlock) SetFont(f Font) {
	tb.mustAccess()
	if tb.font == f {
		return
	}
	tb.font = f
	tb.InvalidateMeasure()
}

// Color returns the text color.
func (tb *TextBlock) Color() Color {
	return tb.color
}

// SetColor sets the text color.
func (tb *TextBlock) SetColor(c Color) {
	tb.mustAccess()
	tb.color = c
}

// MeasureOverride asks the tree's measurer for the text's pixel size.
func (tb *TextBlock) MeasureOverride(available Size) Size {
	if tb.tree == nil || tb.tree.Measurer() == nil || tb.text == "" {
		return Size{}
	}
	return tb.tree.Measurer().MeasureText(tb.text, tb.font)
}

// Render draws the text into the arranged bounds.
func (tb *TextBlock) Render(rc *RenderContext) {
	rc.FillRect(RectOf(Offset{}, tb.bounds.Size()), tb.background)
	rc.DrawText(tb.text, tb.font, tb.color, RectOf(Offset{}, tb.bounds.Size()))
}
