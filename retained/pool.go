package retained

import "sync"

// Pooled child-slice snapshots for layout and render walks. The walks copy
// children before iterating so a handler mutating the tree mid-walk sees a
// consistent sequence; pooling keeps those copies from churning the GC on
// large trees.

var controlSlicePool = sync.Pool{
	New: func() any {
		return make([]Control, 0, 16)
	},
}

// acquireControlSlice gets a slice from the pool with len == n.
// Caller must call releaseControlSlice when done.
func acquireControlSlice(n int) []Control {
	slice := controlSlicePool.Get().([]Control)
	if cap(slice) < n {
		controlSlicePool.Put(slice[:0])
		return make([]Control, n, n*2)
	}
	return slice[:n]
}

// releaseControlSlice returns a slice to the pool. The slice must not be
// used afterward.
func releaseControlSlice(slice []Control) {
	if slice == nil {
		return
	}
	for i := range slice {
		slice[i] = nil
	}
	if cap(slice) <= 256 {
		controlSlicePool.Put(slice[:0])
	}
}
