package state

import "unicode"

// Input is a one-line edit buffer with a rune cursor, used for the query
// prompt. It holds uncommitted text only; committing is the caller's job.
type Input struct {
	Text   string
	Cursor int
}

// CursorPos returns the rune offset of the cursor, clamped to the text.
func (in *Input) CursorPos() int {
	runes := []rune(in.Text)
	if in.Cursor < 0 {
		return 0
	}
	if in.Cursor > len(runes) {
		return len(runes)
	}
	return in.Cursor
}

// SetText replaces the buffer and places the cursor at the end.
func (in *Input) SetText(text string) {
	in.Text = text
	in.Cursor = len([]rune(text))
}

// Insert inserts text at the cursor position.
func (in *Input) Insert(text string) bool {
	if text == "" {
		return false
	}
	insert := []rune(text)
	runes := []rune(in.Text)
	pos := in.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	in.Text = string(updated)
	in.Cursor = pos + len(insert)
	return true
}

// DeleteRuneBackward deletes a rune before the cursor.
func (in *Input) DeleteRuneBackward() bool {
	runes := []rune(in.Text)
	pos := in.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	in.Text = string(updated)
	in.Cursor = pos - 1
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (in *Input) DeleteWordBackward() bool {
	runes := []rune(in.Text)
	pos := in.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	in.Text = string(updated)
	in.Cursor = i
	return true
}

// Clear empties the buffer.
func (in *Input) Clear() bool {
	if in.Text == "" {
		return false
	}
	in.Text = ""
	in.Cursor = 0
	return true
}

// MoveStart moves the cursor to the start of the buffer.
func (in *Input) MoveStart() bool {
	if in.CursorPos() == 0 {
		return false
	}
	in.Cursor = 0
	return true
}

// MoveEnd moves the cursor to the end of the buffer.
func (in *Input) MoveEnd() bool {
	end := len([]rune(in.Text))
	if in.CursorPos() == end {
		return false
	}
	in.Cursor = end
	return true
}

// MoveWordBackward moves the cursor one word backward.
func (in *Input) MoveWordBackward() bool {
	runes := []rune(in.Text)
	pos := in.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	if i == pos {
		return false
	}
	in.Cursor = i
	return true
}

// MoveWordForward moves the cursor one word forward.
func (in *Input) MoveWordForward() bool {
	runes := []rune(in.Text)
	pos := in.CursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	in.Cursor = i
	return true
}

// MoveRuneBackward moves the cursor one rune backward.
func (in *Input) MoveRuneBackward() bool {
	if in.CursorPos() == 0 {
		return false
	}
	in.Cursor = in.CursorPos() - 1
	return true
}

// MoveRuneForward moves the cursor one rune forward.
func (in *Input) MoveRuneForward() bool {
	runes := []rune(in.Text)
	pos := in.CursorPos()
	if pos >= len(runes) {
		return false
	}
	in.Cursor = pos + 1
	return true
}
