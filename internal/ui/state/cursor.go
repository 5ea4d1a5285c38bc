package state

// MoveCursorUp moves the cursor to the previous visible entry.
func (v *View) MoveCursorUp(n int) bool {
	return v.moveCursorBy(-1, n)
}

// MoveCursorDown moves the cursor to the next visible entry.
func (v *View) MoveCursorDown(n int) bool {
	return v.moveCursorBy(1, n)
}

// MoveCursorHome moves the cursor to the first visible entry.
func (v *View) MoveCursorHome(n int) bool {
	if n == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	v.Cursor = 0
	return old != v.Cursor
}

// MoveCursorEnd moves the cursor to the last visible entry.
func (v *View) MoveCursorEnd(n int) bool {
	if n == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	v.Cursor = n - 1
	return old != v.Cursor
}

// ClampCursor keeps the cursor inside a visible slice of n entries.
func (v *View) ClampCursor(n int) {
	if n <= 0 || v.Cursor < 0 {
		v.Cursor = 0
		return
	}
	if v.Cursor >= n {
		v.Cursor = n - 1
	}
}

func (v *View) moveCursorBy(delta, n int) bool {
	if n == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	v.ClampCursor(n)
	v.Cursor += delta
	v.ClampCursor(n)
	return v.Cursor != old
}
