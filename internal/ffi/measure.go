package ffi

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMeasureCacheSize bounds the text-measurement cache. Layout
// re-measures the same strings every pass; embedded targets cannot afford
// a boundary crossing each time, nor an unbounded cache.
const DefaultMeasureCacheSize = 512

type measureKey struct {
	text string
	font string
	size float32
}

// MeasureFunc resolves the pixel size of a string; MeasureText is the
// production implementation.
type MeasureFunc func(text, font string, size float32) (int, int, error)

// MeasureCache memoizes text measurements in an LRU keyed by
// (text, font, size). Errors are not cached, so a measurement that failed
// before the engine was ready is retried.
type MeasureCache struct {
	cache *lru.Cache[measureKey, [2]int]
	fn    MeasureFunc
}

// NewMeasureCache builds a cache of the given capacity over fn. A nil fn
// uses the engine's MeasureText.
func NewMeasureCache(capacity int, fn MeasureFunc) *MeasureCache {
	if capacity <= 0 {
		capacity = DefaultMeasureCacheSize
	}
	if fn == nil {
		fn = MeasureText
	}
	// Only errors on capacity <= 0, which is normalized above.
	cache, _ := lru.New[measureKey, [2]int](capacity)
	return &MeasureCache{cache: cache, fn: fn}
}

// Measure returns the cached pixel size of the string, measuring through
// the underlying function on a miss.
func (c *MeasureCache) Measure(text, font string, size float32) (int, int, error) {
	key := measureKey{text: text, font: font, size: size}
	if dims, ok := c.cache.Get(key); ok {
		return dims[0], dims[1], nil
	}
	w, h, err := c.fn(text, font, size)
	if err != nil {
		return 0, 0, err
	}
	c.cache.Add(key, [2]int{w, h})
	return w, h, nil
}

// Len returns the number of cached measurements.
func (c *MeasureCache) Len() int {
	return c.cache.Len()
}

// Purge empties the cache, e.g. after the engine reloads fonts.
func (c *MeasureCache) Purge() {
	c.cache.Purge()
}
