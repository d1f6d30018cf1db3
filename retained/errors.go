package retained

import "fmt"

// RangeError reports an index the API contract rules out entirely, e.g. a
// selection index below the -1 sentinel. Indices that are merely past the
// end of a collection are not range errors; they resolve to no item.
type RangeError struct {
	Index int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index %d out of range", e.Index)
}

// NotSelectableError reports an attempt to move selection onto an item
// whose selectable flag is off.
type NotSelectableError struct {
	Index int
}

func (e *NotSelectableError) Error() string {
	return fmt.Sprintf("item %d is not selectable", e.Index)
}

// ThreadAccessError reports a tree operation attempted from a goroutine
// other than the one that constructed the tree.
type ThreadAccessError struct {
	Owner  uint64
	Caller uint64
}

func (e *ThreadAccessError) Error() string {
	return fmt.Sprintf("tree owned by goroutine %d accessed from goroutine %d", e.Owner, e.Caller)
}
