package numeric

import (
	"strings"
	"unicode/utf8"
)

// Keystroke is a pending key press, before it reaches the field.
// Key is either a named key ("backspace", "left", ...) or the single
// character the key would insert.
type Keystroke struct {
	Key  string
	Ctrl bool
	Alt  bool
}

// Char builds the keystroke for a plain typed character.
func Char(r rune) Keystroke {
	return Keystroke{Key: string(r)}
}

// Named keys that edit or move without inserting numeric content.
var controlKeys = map[string]bool{
	"backspace": true,
	"delete":    true,
	"tab":       true,
	"shift+tab": true,
	"esc":       true,
	"enter":     true,
	"left":      true,
	"right":     true,
	"up":        true,
	"down":      true,
	"home":      true,
	"end":       true,
}

// Select-all, copy, paste, cut, undo.
var clipboardChords = map[string]bool{
	"a": true,
	"c": true,
	"v": true,
	"x": true,
	"z": true,
}

// IsControl reports whether k is a navigation/editing key or a clipboard chord.
func (k Keystroke) IsControl() bool {
	if controlKeys[k.Key] {
		return true
	}
	return k.Ctrl && clipboardChords[strings.ToLower(k.Key)]
}

// Admit decides whether k may insert into a field currently in state st.
// It is a fast path in front of Filter and is never looser than Filter:
// anything it lets through is still canonicalized afterwards.
func Admit(k Keystroke, st State, cfg Config) bool {
	if k.IsControl() {
		return true
	}
	if k.Ctrl || utf8.RuneCountInString(k.Key) != 1 {
		return false
	}

	switch c := k.Key[0]; {
	case c >= '0' && c <= '9':
		return true
	case c == '.':
		return cfg.AllowDecimals && !strings.Contains(st.Text, ".")
	case c == ',':
		return true
	case c == '-':
		return cfg.AllowNegative && st.Cursor == 0 && !strings.Contains(st.Text, "-")
	default:
		return false
	}
}
