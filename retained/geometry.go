package retained

import "math"

// Unbounded is the measurement constraint meaning "no limit" on an axis.
// Panels pass it on their stacking axis so children report their natural
// size. Arithmetic on sizes saturates at Unbounded instead of wrapping.
const Unbounded = math.MaxInt32

func satAdd(a, b int) int {
	if a >= Unbounded-b {
		return Unbounded
	}
	return a + b
}

func satMul(a, b int) int {
	if a != 0 && b > Unbounded/a {
		return Unbounded
	}
	return a * b
}

// Size is a width/height pair in integer pixels.
type Size struct {
	Width  int
	Height int
}

// Add returns the component-wise sum, saturating at Unbounded.
func (s Size) Add(o Size) Size {
	return Size{Width: satAdd(s.Width, o.Width), Height: satAdd(s.Height, o.Height)}
}

// Sub returns the component-wise difference, clamping at zero.
func (s Size) Sub(o Size) Size {
	w := s.Width - o.Width
	if w < 0 {
		w = 0
	}
	h := s.Height - o.Height
	if h < 0 {
		h = 0
	}
	return Size{Width: w, Height: h}
}

// Scale multiplies both components by n, saturating at Unbounded.
func (s Size) Scale(n int) Size {
	return Size{Width: satMul(s.Width, n), Height: satMul(s.Height, n)}
}

// Div divides both components by n, truncating toward zero.
func (s Size) Div(n int) Size {
	return Size{Width: s.Width / n, Height: s.Height / n}
}

// Max returns the component-wise maximum.
func (s Size) Max(o Size) Size {
	if o.Width > s.Width {
		s.Width = o.Width
	}
	if o.Height > s.Height {
		s.Height = o.Height
	}
	return s
}

// Min returns the component-wise minimum.
func (s Size) Min(o Size) Size {
	if o.Width < s.Width {
		s.Width = o.Width
	}
	if o.Height < s.Height {
		s.Height = o.Height
	}
	return s
}

// Offset is a translation in integer pixels.
type Offset struct {
	X int
	Y int
}

// Add returns the component-wise sum.
func (o Offset) Add(p Offset) Offset {
	return Offset{X: o.X + p.X, Y: o.Y + p.Y}
}

// Rect is an axis-aligned rectangle in integer pixels.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectOf builds a rectangle at the given origin with the given size.
func RectOf(o Offset, s Size) Rect {
	return Rect{X: o.X, Y: o.Y, Width: s.Width, Height: s.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.X, Y: r.Y}
}

// Size returns the dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether the point is inside the rectangle. The left and
// top edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlap of two rectangles, or the zero Rect when
// they are disjoint or touch only at an edge.
func (r Rect) Intersect(o Rect) Rect {
	x1 := r.X
	if o.X > x1 {
		x1 = o.X
	}
	y1 := r.Y
	if o.Y > y1 {
		y1 = o.Y
	}
	x2 := r.X + r.Width
	if o.X+o.Width < x2 {
		x2 = o.X + o.Width
	}
	y2 := r.Y + r.Height
	if o.Y+o.Height < y2 {
		y2 = o.Y + o.Height
	}
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}
