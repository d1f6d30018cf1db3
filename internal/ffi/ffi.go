// Package ffi provides Go bindings to the ember native rendering engine
// via purego. No CGo is required, which keeps cross-compilation for
// embedded targets trivial.
//
// The engine owns the pixel surface, rasterization, font metrics, and
// input decoding; this package only marshals calls across the boundary.
package ffi

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ============================================================================
// Library Loading
// ============================================================================

var (
	libHandle   uintptr
	libOnce     sync.Once
	libErr      error
	libPath     string
	initialized bool
)

// Library function pointers (populated by initLibrary)
var (
	fnEngineInit     func(width, height uint32) int32
	fnEngineShutdown func()
	fnEngineVersion  func() uintptr

	fnSurfaceFillRect  func(x, y, w, h int32, argb uint32) int32
	fnSurfaceDrawText  func(text uintptr, font uintptr, size float32, argb uint32, x, y, w, h int32) int32
	fnSurfaceSetClip   func(x, y, w, h int32) int32
	fnSurfaceClearClip func()
	fnSurfaceFlush     func(x, y, w, h int32) int32

	fnTextMeasure func(text uintptr, font uintptr, size float32, widthOut, heightOut uintptr) int32

	fnInputPoll func() int32
)

// Decoded input codes returned by the engine's poll call.
const (
	InputNone = 0
	InputUp   = 1
	InputDown = 2
)

// ErrNotInitialized is returned when a call reaches the boundary before
// Init succeeded.
var ErrNotInitialized = errors.New("ffi: engine not initialized")

// SetLibraryPath overrides where the engine library is loaded from. Must
// be called before Init; later calls are ignored.
func SetLibraryPath(path string) {
	libPath = path
}

func getLibraryPath() string {
	if libPath != "" {
		return libPath
	}
	if env := os.Getenv("EMBER_ENGINE_PATH"); env != "" {
		return env
	}
	switch runtime.GOOS {
	case "darwin":
		return "libember_engine.dylib"
	case "windows":
		return "ember_engine.dll"
	default:
		return "libember_engine.so"
	}
}

// initLibrary loads the dynamic library and registers all function pointers.
func initLibrary() error {
	libOnce.Do(func() {
		path := getLibraryPath()
		log.Printf("ffi: loading engine library from: %s", path)

		libHandle, libErr = openLibrary(path)
		if libErr != nil {
			libErr = fmt.Errorf("failed to load ember engine library from %s: %w", path, libErr)
			return
		}

		registerEngineFunctions()
		registerSurfaceFunctions()
		registerTextFunctions()
		registerInputFunctions()

		initialized = true
	})

	return libErr
}

func registerEngineFunctions() {
	purego.RegisterLibFunc(&fnEngineInit, libHandle, "ember_engine_init")
	purego.RegisterLibFunc(&fnEngineShutdown, libHandle, "ember_engine_shutdown")
	purego.RegisterLibFunc(&fnEngineVersion, libHandle, "ember_engine_version")
}

func registerSurfaceFunctions() {
	purego.RegisterLibFunc(&fnSurfaceFillRect, libHandle, "ember_surface_fill_rect")
	purego.RegisterLibFunc(&fnSurfaceDrawText, libHandle, "ember_surface_draw_text")
	purego.RegisterLibFunc(&fnSurfaceSetClip, libHandle, "ember_surface_set_clip")
	purego.RegisterLibFunc(&fnSurfaceClearClip, libHandle, "ember_surface_clear_clip")
	purego.RegisterLibFunc(&fnSurfaceFlush, libHandle, "ember_surface_flush")
}

func registerTextFunctions() {
	purego.RegisterLibFunc(&fnTextMeasure, libHandle, "ember_text_measure")
}

func registerInputFunctions() {
	purego.RegisterLibFunc(&fnInputPoll, libHandle, "ember_input_poll")
}

// ============================================================================
// String Marshalling
// ============================================================================

// cString returns a pointer to a null-terminated copy of s. The backing
// slice must stay reachable until the call returns; callers keep it in a
// local.
func cString(s string) ([]byte, uintptr) {
	buf := append([]byte(s), 0)
	return buf, uintptr(unsafe.Pointer(&buf[0]))
}

func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for *(*byte)(unsafe.Pointer(ptr + uintptr(length))) != 0 {
		length++
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}

// ============================================================================
// Engine Lifecycle
// ============================================================================

// Init loads the engine library and creates a surface of the given pixel
// size.
func Init(width, height int) error {
	if err := initLibrary(); err != nil {
		return err
	}
	if rc := fnEngineInit(uint32(width), uint32(height)); rc != 0 {
		return fmt.Errorf("ffi: engine init failed with code %d", rc)
	}
	return nil
}

// Shutdown releases the engine surface. Safe to call when Init failed.
func Shutdown() {
	if initialized {
		fnEngineShutdown()
	}
}

// Version returns the engine's version string, or "" before Init.
func Version() string {
	if !initialized {
		return ""
	}
	return goString(fnEngineVersion())
}

// ============================================================================
// Surface Operations
// ============================================================================

// FillRect paints a solid rectangle in device coordinates.
func FillRect(x, y, w, h int, argb uint32) error {
	if !initialized {
		return ErrNotInitialized
	}
	if rc := fnSurfaceFillRect(int32(x), int32(y), int32(w), int32(h), argb); rc != 0 {
		return fmt.Errorf("ffi: fill_rect failed with code %d", rc)
	}
	return nil
}

// DrawText rasterizes a string into a device-coordinate rectangle.
func DrawText(text, font string, size float32, argb uint32, x, y, w, h int) error {
	if !initialized {
		return ErrNotInitialized
	}
	textBuf, textPtr := cString(text)
	fontBuf, fontPtr := cString(font)
	rc := fnSurfaceDrawText(textPtr, fontPtr, size, argb, int32(x), int32(y), int32(w), int32(h))
	runtime.KeepAlive(textBuf)
	runtime.KeepAlive(fontBuf)
	if rc != 0 {
		return fmt.Errorf("ffi: draw_text failed with code %d", rc)
	}
	return nil
}

// SetClip restricts subsequent draws to a device-coordinate rectangle.
func SetClip(x, y, w, h int) error {
	if !initialized {
		return ErrNotInitialized
	}
	if rc := fnSurfaceSetClip(int32(x), int32(y), int32(w), int32(h)); rc != 0 {
		return fmt.Errorf("ffi: set_clip failed with code %d", rc)
	}
	return nil
}

// ClearClip removes the clip rectangle.
func ClearClip() {
	if initialized {
		fnSurfaceClearClip()
	}
}

// Flush pushes a device-coordinate region to the display.
func Flush(x, y, w, h int) error {
	if !initialized {
		return ErrNotInitialized
	}
	if rc := fnSurfaceFlush(int32(x), int32(y), int32(w), int32(h)); rc != 0 {
		return fmt.Errorf("ffi: flush failed with code %d", rc)
	}
	return nil
}

// ============================================================================
// Text Metrics
// ============================================================================

// MeasureText returns the pixel size of a string in the given font.
func MeasureText(text, font string, size float32) (int, int, error) {
	if !initialized {
		return 0, 0, ErrNotInitialized
	}
	var w, h uint32
	textBuf, textPtr := cString(text)
	fontBuf, fontPtr := cString(font)
	rc := fnTextMeasure(textPtr, fontPtr, size,
		uintptr(unsafe.Pointer(&w)), uintptr(unsafe.Pointer(&h)))
	runtime.KeepAlive(textBuf)
	runtime.KeepAlive(fontBuf)
	if rc != 0 {
		return 0, 0, fmt.Errorf("ffi: text_measure failed with code %d", rc)
	}
	return int(w), int(h), nil
}

// ============================================================================
// Input
// ============================================================================

// PollInput returns the next decoded input code, or InputNone when the
// engine's queue is empty.
func PollInput() int {
	if !initialized {
		return InputNone
	}
	return int(fnInputPoll())
}
