package ember

import (
	"fmt"

	"github.com/emberui/ember/internal/ffi"
	"github.com/emberui/ember/retained"
)

// Engine owns the native surface and drives a retained tree: one
// synchronous pump of decoded input, layout, and rendering per frame.
// There is no internal loop or goroutine; the application calls Pump from
// the goroutine that constructed the engine, which is also the goroutine
// that owns the tree.
type Engine struct {
	cfg     AppConfig
	tree    *retained.Tree
	surface engineSurface
}

// NewEngine initializes the native engine and creates the owning tree.
func NewEngine(cfg AppConfig) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Engine.LibraryPath != "" {
		ffi.SetLibraryPath(cfg.Engine.LibraryPath)
	}
	if err := ffi.Init(cfg.Surface.Width, cfg.Surface.Height); err != nil {
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}

	tree := retained.NewTree(retained.Size{
		Width:  cfg.Surface.Width,
		Height: cfg.Surface.Height,
	})
	tree.SetTextMeasurer(newEngineMeasurer(cfg.Engine.MeasureCacheSize))

	return &Engine{cfg: cfg, tree: tree}, nil
}

// Tree returns the control tree this engine renders.
func (e *Engine) Tree() *retained.Tree {
	return e.tree
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() AppConfig {
	return e.cfg
}

// Version returns the native engine's version string.
func (e *Engine) Version() string {
	return ffi.Version()
}

// Shutdown releases the native surface. The tree stays usable for layout
// but renders go nowhere afterward.
func (e *Engine) Shutdown() {
	ffi.Shutdown()
}

// RenderFrame runs layout when anything invalidated and repaints the tree.
func (e *Engine) RenderFrame() {
	if e.tree.NeedsLayout() {
		e.tree.UpdateLayout()
	}
	e.tree.Render(retained.NewRenderContext(e.surface))
}

// PollNavigation drains one decoded input from the engine and translates
// it into a navigation event, or returns false when the queue is empty.
func (e *Engine) PollNavigation() (*retained.NavigationEvent, bool) {
	switch ffi.PollInput() {
	case ffi.InputUp:
		return &retained.NavigationEvent{Direction: retained.NavigateUp}, true
	case ffi.InputDown:
		return &retained.NavigationEvent{Direction: retained.NavigateDown}, true
	}
	return nil, false
}

// Pump processes all pending input and renders one frame: the application
// calls this from its own loop, typically after blocking on the engine's
// input readiness.
func (e *Engine) Pump() {
	for {
		ev, ok := e.PollNavigation()
		if !ok {
			break
		}
		e.tree.DispatchNavigation(ev)
	}
	e.RenderFrame()
}
