package retained

// Color is a 32-bit ARGB value, the representation the native engine
// consumes directly. ColorTransparent (zero alpha) is never painted.
type Color uint32

const ColorTransparent Color = 0

// Opaque reports whether the color has a nonzero alpha channel.
func (c Color) Opaque() bool {
	return c&0xFF000000 != 0
}

// Font names a face and size for the native engine. The core treats it as
// an opaque value; metrics come back through a TextMeasurer.
type Font struct {
	Name string
	Size int
}

// Surface is the drawing side of the native engine. The core calls it only
// to paint arranged content and flush regions; it never inspects pixels.
type Surface interface {
	FillRect(r Rect, c Color)
	DrawText(text string, f Font, c Color, r Rect)
	SetClip(r Rect)
	ClearClip()
	Flush(r Rect)
}

// RenderContext carries the accumulated origin and clip state of a render
// walk, translating control-local rectangles into device coordinates
// before handing them to the surface.
type RenderContext struct {
	surface Surface
	origin  Offset
	origins []Offset
	clips   []Rect
}

// NewRenderContext wraps a surface for one render pass.
func NewRenderContext(s Surface) *RenderContext {
	return &RenderContext{surface: s}
}

func (rc *RenderContext) pushOrigin(o Offset) {
	rc.origins = append(rc.origins, rc.origin)
	rc.origin = rc.origin.Add(o)
}

func (rc *RenderContext) popOrigin() {
	n := len(rc.origins) - 1
	rc.origin = rc.origins[n]
	rc.origins = rc.origins[:n]
}

// PushClip intersects the clip stack with a control-local rectangle.
// Subsequent draws outside it are discarded by the surface.
func (rc *RenderContext) PushClip(r Rect) {
	abs := r.Translate(rc.origin.X, rc.origin.Y)
	if len(rc.clips) > 0 {
		abs = abs.Intersect(rc.clips[len(rc.clips)-1])
	}
	rc.clips = append(rc.clips, abs)
	rc.surface.SetClip(abs)
}

// PopClip restores the clip in effect before the matching PushClip.
func (rc *RenderContext) PopClip() {
	rc.clips = rc.clips[:len(rc.clips)-1]
	if len(rc.clips) == 0 {
		rc.surface.ClearClip()
	} else {
		rc.surface.SetClip(rc.clips[len(rc.clips)-1])
	}
}

// FillRect paints a control-local rectangle. Transparent colors are
// skipped.
func (rc *RenderContext) FillRect(r Rect, c Color) {
	if !c.Opaque() {
		return
	}
	rc.surface.FillRect(r.Translate(rc.origin.X, rc.origin.Y), c)
}

// DrawText draws a string into a control-local rectangle.
func (rc *RenderContext) DrawText(text string, f Font, c Color, r Rect) {
	if text == "" || !c.Opaque() {
		return
	}
	rc.surface.DrawText(text, f, c, r.Translate(rc.origin.X, rc.origin.Y))
}

// Flush pushes a device-coordinate region to the display.
func (rc *RenderContext) Flush(r Rect) {
	rc.surface.Flush(r)
}
