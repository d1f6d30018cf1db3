package retained

// ListItem is the collaborator contract for anything placed in an
// ItemCollection: a control with a selectable flag and a selection-state
// callback. ListBoxItem is the standard implementation.
type ListItem interface {
	Control

	// Selectable reports whether selection and navigation may land here.
	Selectable() bool

	// Selected reports the current selection state.
	Selected() bool

	// SetSelected is invoked by the owning ListBox as selection moves;
	// implementations fire their own callbacks from here.
	SetSelected(selected bool)
}

// ItemCollection is the ordered item sequence of a ListBox. It is backed
// directly by the items panel's child list, so item indices and layout
// order cannot diverge. Indices are contiguous 0..Len()-1 and stable until
// the next mutation.
type ItemCollection struct {
	panel *StackPanel
}

func newItemCollection(panel *StackPanel) *ItemCollection {
	return &ItemCollection{panel: panel}
}

// Len returns the number of items.
func (ic *ItemCollection) Len() int {
	return ic.panel.ChildCount()
}

// Add appends an item and returns its index.
func (ic *ItemCollection) Add(item ListItem) int {
	ic.panel.AddChild(item)
	return ic.panel.ChildCount() - 1
}

// Insert places an item at index, shifting later items up by one.
func (ic *ItemCollection) Insert(index int, item ListItem) {
	ic.panel.InsertChild(index, item)
}

// At returns the item at index, or nil when out of bounds.
func (ic *ItemCollection) At(index int) ListItem {
	c := ic.panel.ChildAt(index)
	if c == nil {
		return nil
	}
	return c.(ListItem)
}

// IndexOf locates an item by identity. Returns -1 when the item is not in
// the collection; lookups never fail the surrounding operation.
func (ic *ItemCollection) IndexOf(item ListItem) int {
	if item == nil {
		return -1
	}
	return ic.panel.IndexOfChild(item)
}

// Remove removes an item by identity. Returns false when absent.
func (ic *ItemCollection) Remove(item ListItem) bool {
	if item == nil {
		return false
	}
	return ic.panel.RemoveChild(item)
}

// RemoveAt removes and returns the item at index, or nil when out of
// bounds.
func (ic *ItemCollection) RemoveAt(index int) ListItem {
	item := ic.At(index)
	if item != nil {
		ic.panel.RemoveChild(item)
	}
	return item
}
