package ember

import (
	"github.com/emberui/ember/internal/ffi"
	"github.com/emberui/ember/retained"
)

// engineSurface adapts the native engine's drawing calls to the
// retained.Surface interface. Draw errors are swallowed: render runs per
// frame and a failed primitive has nowhere useful to propagate.
type engineSurface struct{}

func (engineSurface) FillRect(r retained.Rect, c retained.Color) {
	_ = ffi.FillRect(r.X, r.Y, r.Width, r.Height, uint32(c))
}

func (engineSurface) DrawText(text string, f retained.Font, c retained.Color, r retained.Rect) {
	_ = ffi.DrawText(text, f.Name, float32(f.Size), uint32(c), r.X, r.Y, r.Width, r.Height)
}

func (engineSurface) SetClip(r retained.Rect) {
	_ = ffi.SetClip(r.X, r.Y, r.Width, r.Height)
}

func (engineSurface) ClearClip() {
	ffi.ClearClip()
}

func (engineSurface) Flush(r retained.Rect) {
	_ = ffi.Flush(r.X, r.Y, r.Width, r.Height)
}

// engineMeasurer implements retained.TextMeasurer over the native text
// metrics, memoized through the FFI measure cache.
type engineMeasurer struct {
	cache *ffi.MeasureCache
}

func newEngineMeasurer(capacity int) *engineMeasurer {
	return &engineMeasurer{cache: ffi.NewMeasureCache(capacity, nil)}
}

func (m *engineMeasurer) MeasureText(text string, font retained.Font) retained.Size {
	w, h, err := m.cache.Measure(text, font.Name, float32(font.Size))
	if err != nil {
		return retained.Size{}
	}
	return retained.Size{Width: w, Height: h}
}
