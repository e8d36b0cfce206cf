package ui

// FocusManager tracks and rotates focus across buttons.
type FocusManager struct {
	Current ButtonID   // currently focused button
	Order   []ButtonID // tab order for focus rotation
}

// NewFocusManager focuses the first button in order.
func NewFocusManager(order ...ButtonID) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next button in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() ButtonID {
	return f.step(1)
}

// Prev moves focus to the previous button in order.
func (f *FocusManager) Prev() ButtonID {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) ButtonID {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index(f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	n := len(f.Order)
	f.Current = f.Order[((idx+delta)%n+n)%n]
	return f.Current
}

// SetFocus sets focus to the given button.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id ButtonID) bool {
	if f.index(id) < 0 {
		return false
	}
	f.Current = id
	return true
}

func (f *FocusManager) index(id ButtonID) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
