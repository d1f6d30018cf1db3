package retained

// Token identifies an attached event handler for later detachment.
type Token uint64

type handler[T any] struct {
	token Token
	fn    func(T)
}

// Event is a multicast callback list. Handlers fire in attach order against
// a snapshot taken when publish is called: detaching a handler mid-dispatch
// does not cut it from the current walk, and a handler attached mid-dispatch
// first fires on the next publish.
//
// The zero value is ready to use. Events share their owning tree's
// single-goroutine discipline and need no locking.
type Event[T any] struct {
	handlers []handler[T]
	next     Token
}

// Attach registers fn and returns a token for Detach.
func (e *Event[T]) Attach(fn func(T)) Token {
	e.next++
	e.handlers = append(e.handlers, handler[T]{token: e.next, fn: fn})
	return e.next
}

// Detach removes the handler registered under token. Unknown tokens are
// ignored.
func (e *Event[T]) Detach(token Token) {
	for i, h := range e.handlers {
		if h.token == token {
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return
		}
	}
}

// Len returns the number of attached handlers.
func (e *Event[T]) Len() int {
	return len(e.handlers)
}

func (e *Event[T]) publish(v T) {
	snapshot := e.handlers
	for _, h := range snapshot {
		h.fn(v)
	}
}

// ScrollChangedArgs carries the offsets before and after an effective
// scroll change.
type ScrollChangedArgs struct {
	Old Offset
	New Offset
}

// SelectionChangedArgs carries the selected indices before and after a
// selection move, -1 meaning no selection.
type SelectionChangedArgs struct {
	OldIndex int
	NewIndex int
}
