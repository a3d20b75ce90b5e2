package field

import (
	"numfield/internal/numeric"
)

// Memory is an in-memory Field with a selection. It plays the part of a
// live control for scripted replays and tests: Press performs the default
// action a text box would take for a key the guard let through.
type Memory struct {
	value  []rune
	cursor int
	anchor int // selection is [min(anchor,cursor), max(anchor,cursor))
}

// NewMemory returns a control holding value with the caret at the end.
func NewMemory(value string) *Memory {
	m := &Memory{}
	m.SetValue(value)
	m.SetCursor(len(m.value))
	return m
}

func (m *Memory) Value() string { return string(m.value) }
func (m *Memory) Position() int { return m.cursor }

// SetValue replaces the text; the caret is kept when still in range.
func (m *Memory) SetValue(s string) {
	m.value = []rune(s)
	m.SetCursor(m.cursor)
}

// SetCursor moves the caret and collapses the selection.
func (m *Memory) SetCursor(pos int) {
	m.cursor = clamp(pos, 0, len(m.value))
	m.anchor = m.cursor
}

// Select marks [start, end) and leaves the caret at end.
func (m *Memory) Select(start, end int) {
	m.anchor = clamp(start, 0, len(m.value))
	m.cursor = clamp(end, 0, len(m.value))
}

// Selection implements Selector.
func (m *Memory) Selection() (int, int) {
	return min(m.anchor, m.cursor), max(m.anchor, m.cursor)
}

// Press applies the default behaviour of an admitted key.
func (m *Memory) Press(k numeric.Keystroke) {
	start, end := m.Selection()
	switch k.Key {
	case "backspace":
		if start == end && start > 0 {
			start--
		}
		m.splice(start, end, "")
	case "delete":
		if start == end && end < len(m.value) {
			end++
		}
		m.splice(start, end, "")
	case "left":
		m.SetCursor(m.cursor - 1)
	case "right":
		m.SetCursor(m.cursor + 1)
	case "home":
		m.SetCursor(0)
	case "end":
		m.SetCursor(len(m.value))
	default:
		if k.Ctrl || k.IsControl() {
			return
		}
		m.splice(start, end, k.Key)
	}
}

func (m *Memory) splice(start, end int, text string) {
	ins := []rune(text)
	next := make([]rune, 0, len(m.value)-(end-start)+len(ins))
	next = append(next, m.value[:start]...)
	next = append(next, ins...)
	next = append(next, m.value[end:]...)
	m.value = next
	m.SetCursor(start + len(ins))
}
