package retained

// ListBox is the composite list control: a ScrollViewer wrapping a
// vertical StackPanel of selectable items, plus single-selection state and
// keyboard-driven navigation with skip-over semantics.
type ListBox struct {
	Element

	scroll *ScrollViewer
	panel  *StackPanel
	items  *ItemCollection

	selectedIndex int

	// SelectionChanged fires after the item-level callbacks, carrying the
	// old and new index.
	SelectionChanged Event[SelectionChangedArgs]
}

// NewListBox creates an empty list.
func NewListBox() *ListBox {
	lb := &ListBox{selectedIndex: -1}
	lb.Element.init(lb)

	lb.panel = NewStackPanel()
	lb.panel.SetStretch(true)

	lb.scroll = NewScrollViewer()
	lb.scroll.SetScrollingStyle(ScrollByItem)
	lb.scroll.SetContent(lb.panel)

	lb.AddChild(lb.scroll)

	lb.items = newItemCollection(lb.panel)
	return lb
}

// Items returns the item collection.
func (lb *ListBox) Items() *ItemCollection {
	return lb.items
}

// ScrollViewer returns the inner viewer, e.g. to configure the scrolling
// style.
func (lb *ListBox) ScrollViewer() *ScrollViewer {
	return lb.scroll
}

// MeasureOverride defers to the scroll viewer.
func (lb *ListBox) MeasureOverride(available Size) Size {
	return lb.scroll.Measure(available)
}

// ============================================================================
// Selection
// ============================================================================

// SelectedIndex returns the selected item's index, or -1 for none.
func (lb *ListBox) SelectedIndex() int {
	return lb.selectedIndex
}

// SelectedItem returns the item at the selected index. Tolerant of stale
// indices after external removals: out-of-bounds resolves to nil.
func (lb *ListBox) SelectedItem() ListItem {
	return lb.items.At(lb.selectedIndex)
}

// SetSelectedIndex moves the selection to index, or clears it for -1.
//
// Indices below -1 fail with a *RangeError and indices resolving to a
// non-selectable item fail with a *NotSelectableError, both leaving state
// untouched. An index past the end resolves to no item and clears the
// selection, matching SelectedItem's tolerance of stale indices.
//
// On success the previously selected item is notified first, then the
// index is stored, then the newly selected item is notified, and finally
// SelectionChanged fires; observers always see the item-level callbacks
// before the aggregate event.
func (lb *ListBox) SetSelectedIndex(index int) error {
	if lb.tree != nil {
		if err := lb.tree.VerifyAccess(); err != nil {
			return err
		}
	}
	if index == lb.selectedIndex {
		return nil
	}
	if index < -1 {
		return &RangeError{Index: index}
	}
	item := lb.items.At(index)
	if item != nil && !item.Selectable() {
		return &NotSelectableError{Index: index}
	}

	old := lb.selectedIndex
	if prev := lb.SelectedItem(); prev != nil {
		prev.SetSelected(false)
	}
	lb.selectedIndex = index
	if item != nil {
		item.SetSelected(true)
	}
	lb.SelectionChanged.publish(SelectionChangedArgs{OldIndex: old, NewIndex: index})
	return nil
}

// SetSelectedItem selects an item by identity. An item not present in the
// collection is a stale reference: the call is a no-op and the current
// selection is kept.
func (lb *ListBox) SetSelectedItem(item ListItem) error {
	index := lb.items.IndexOf(item)
	if index < 0 {
		return nil
	}
	return lb.SetSelectedIndex(index)
}

// ScrollIntoView adjusts the scroll offset so the item at index is fully
// inside the viewport. Out-of-bounds indices are ignored.
func (lb *ListBox) ScrollIntoView(index int) {
	item := lb.items.At(index)
	if item == nil {
		return
	}
	bounds := item.Bounds()
	top := bounds.Y - lb.scroll.VerticalOffset()
	lb.scroll.EnsureVisible(top, top+bounds.Height)
}

// ============================================================================
// Navigation
// ============================================================================

// HandleNavigation interprets a decoded move-up/move-down intent against
// the item collection: scan in the direction of travel for the next
// selectable item, skipping non-selectable ones. A successful move selects
// the item, scrolls it into view, and consumes the event. Reaching the
// boundary without a selectable item leaves the selection and the handled
// flag untouched so the event can bubble to an ancestor.
func (lb *ListBox) HandleNavigation(ev *NavigationEvent) {
	switch ev.Direction {
	case NavigateDown:
		if lb.selectedIndex >= lb.items.Len()-1 {
			return
		}
		if index, ok := FindNextSelectable(lb.items, lb.selectedIndex+1, +1); ok {
			lb.moveTo(index, ev)
		}
	case NavigateUp:
		if lb.selectedIndex <= 0 {
			return
		}
		if index, ok := FindNextSelectable(lb.items, lb.selectedIndex-1, -1); ok {
			lb.moveTo(index, ev)
		}
	}
}

func (lb *ListBox) moveTo(index int, ev *NavigationEvent) {
	// Cannot fail: the scan only lands on selectable, in-range items.
	if err := lb.SetSelectedIndex(index); err != nil {
		return
	}
	lb.ScrollIntoView(index)
	ev.Handled = true
}

// ============================================================================
// ListBoxItem
// ============================================================================

// ListBoxItem is the standard list item: a single-content container with a
// selectable flag, a selected-state highlight, and an optional callback
// fired when the owning ListBox moves selection onto or off it.
//
// An item that turns non-selectable while selected stays selected; the
// flag is only consulted when selection next lands on it.
type ListBoxItem struct {
	Element

	content    Control
	selectable bool
	selected   bool

	selectedBackground Color
	onSelectionChanged func(selected bool)
}

// DefaultSelectedBackground is the highlight painted behind a selected
// item unless overridden.
const DefaultSelectedBackground Color = 0xFF2F6FD0

// NewListBoxItem creates a selectable item wrapping the given content.
func NewListBoxItem(content Control) *ListBoxItem {
	it := &ListBoxItem{
		selectable:         true,
		selectedBackground: DefaultSelectedBackground,
	}
	it.Element.init(it)
	if content != nil {
		it.content = content
		it.AddChild(content)
	}
	return it
}

// Content returns the wrapped control, or nil.
func (it *ListBoxItem) Content() Control {
	return it.content
}

// Selectable reports whether navigation and selection may land here.
func (it *ListBoxItem) Selectable() bool {
	return it.selectable
}

// SetSelectable gates whether selection may land on this item.
func (it *ListBoxItem) SetSelectable(s bool) {
	it.mustAccess()
	it.selectable = s
}

// Selected reports whether the owning ListBox currently selects this item.
func (it *ListBoxItem) Selected() bool {
	return it.selected
}

// SetSelected records the selection state and fires the item callback.
// Called by the owning ListBox; applications observe rather than call.
func (it *ListBoxItem) SetSelected(selected bool) {
	if it.selected == selected {
		return
	}
	it.selected = selected
	if it.onSelectionChanged != nil {
		it.onSelectionChanged(selected)
	}
}

// OnSelectionChanged registers the callback invoked when selection moves
// onto or off this item.
func (it *ListBoxItem) OnSelectionChanged(fn func(selected bool)) {
	it.mustAccess()
	it.onSelectionChanged = fn
}

// SelectedBackground returns the highlight color used while selected.
func (it *ListBoxItem) SelectedBackground() Color {
	return it.selectedBackground
}

// SetSelectedBackground overrides the highlight color used while selected.
func (it *ListBoxItem) SetSelectedBackground(c Color) {
	it.mustAccess()
	it.selectedBackground = c
}

// Render paints the selection highlight behind the content when selected.
func (it *ListBoxItem) Render(rc *RenderContext) {
	bg := it.background
	if it.selected {
		bg = it.selectedBackground
	}
	rc.FillRect(RectOf(Offset{}, it.bounds.Size()), bg)
	it.renderChildren(rc)
}
