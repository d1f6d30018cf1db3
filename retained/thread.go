package retained

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID parses the current goroutine's id out of the runtime stack
// header ("goroutine 18 [running]:"). The runtime exposes no cheaper
// supported way to identify a goroutine; the id is only used to pin a tree
// to its constructing goroutine and report violations.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
