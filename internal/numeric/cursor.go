package numeric

import "unicode/utf8"

// Reconcile maps a caret offset in oldText to one in newText after a filter
// pass. It shifts the caret left by however many runes the rewrite removed
// (or right by however many it added) and clamps the result to newText.
//
// This is a length heuristic, not an alignment: it is exact when the only
// structural change is commas appearing or disappearing around the edit.
// An out-of-range oldCursor is clamped into oldText before it is shifted.
func Reconcile(oldText, newText string, oldCursor int) int {
	oldLen := utf8.RuneCountInString(oldText)
	newLen := utf8.RuneCountInString(newText)

	oldCursor = clamp(oldCursor, 0, oldLen)
	delta := oldLen - newLen
	return clamp(oldCursor-delta, 0, newLen)
}

// Apply filters st.Text and carries the caret across the rewrite.
func Apply(st State, cfg Config) State {
	text := Filter(st.Text, cfg)
	if text == st.Text {
		st.Cursor = clamp(st.Cursor, 0, utf8.RuneCountInString(text))
		return st
	}
	return State{Text: text, Cursor: Reconcile(st.Text, text, st.Cursor)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
