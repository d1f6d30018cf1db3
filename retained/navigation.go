package retained

// NavigationDirection is a decoded directional intent. Button polling and
// key-code mapping happen outside the core; by the time an event reaches a
// tree it is already one of these.
type NavigationDirection int

const (
	NavigateUp NavigationDirection = iota
	NavigateDown
)

func (d NavigationDirection) String() string {
	switch d {
	case NavigateUp:
		return "up"
	case NavigateDown:
		return "down"
	}
	return "unknown"
}

// NavigationEvent is one decoded navigation intent. A handler that
// consumes the event sets Handled, which stops it from bubbling further;
// an unconsumed event propagates so an ancestor can act on it instead.
type NavigationEvent struct {
	Direction NavigationDirection
	Handled   bool
}

// NavigationHandler is implemented by controls that respond to navigation
// events, e.g. ListBox.
type NavigationHandler interface {
	HandleNavigation(ev *NavigationEvent)
}

// FindNextSelectable scans items from start in the given direction (+1
// forward, -1 backward) and returns the index of the first selectable
// item, or ok=false when the scan runs off either end. The scan is a pure
// function of the collection; it moves no selection.
func FindNextSelectable(items *ItemCollection, start, step int) (int, bool) {
	if step != 1 && step != -1 {
		return -1, false
	}
	for i := start; i >= 0 && i < items.Len(); i += step {
		if item := items.At(i); item != nil && item.Selectable() {
			return i, true
		}
	}
	return -1, false
}
