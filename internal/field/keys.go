package field

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"numfield/internal/numeric"
)

// terminal aliases for named editing keys
var keyAliases = map[string]string{
	"ctrl+h": "backspace",
}

// Keystroke converts a bubbletea key message into the guard's keystroke.
// Multi-rune messages have no single-key equivalent and come back with the
// whole burst as Key, which the guard rejects.
func Keystroke(msg tea.KeyMsg) numeric.Keystroke {
	switch msg.Type {
	case tea.KeyRunes:
		return numeric.Keystroke{Key: string(msg.Runes), Alt: msg.Alt}
	case tea.KeySpace:
		return numeric.Keystroke{Key: " ", Alt: msg.Alt}
	}

	name := tea.Key{Type: msg.Type}.String()
	if alias, ok := keyAliases[name]; ok {
		return numeric.Keystroke{Key: alias, Alt: msg.Alt}
	}
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		return numeric.Keystroke{Key: rest, Ctrl: true, Alt: msg.Alt}
	}
	return numeric.Keystroke{Key: name, Alt: msg.Alt}
}
