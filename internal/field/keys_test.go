package field

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"numfield/internal/numeric"
)

func TestKeystroke(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want numeric.Keystroke
	}{
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")}, numeric.Keystroke{Key: "7"}},
		{"alt digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7"), Alt: true}, numeric.Keystroke{Key: "7", Alt: true}},
		{"rune burst", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12")}, numeric.Keystroke{Key: "12"}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, numeric.Keystroke{Key: " "}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, numeric.Keystroke{Key: "backspace"}},
		{"ctrl+h is backspace", tea.KeyMsg{Type: tea.KeyCtrlH}, numeric.Keystroke{Key: "backspace"}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, numeric.Keystroke{Key: "delete"}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, numeric.Keystroke{Key: "left"}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, numeric.Keystroke{Key: "shift+tab"}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, numeric.Keystroke{Key: "esc"}},
		{"ctrl+v", tea.KeyMsg{Type: tea.KeyCtrlV}, numeric.Keystroke{Key: "v", Ctrl: true}},
		{"ctrl+k", tea.KeyMsg{Type: tea.KeyCtrlK}, numeric.Keystroke{Key: "k", Ctrl: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Keystroke(tt.msg)); diff != "" {
				t.Errorf("Keystroke() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKeystroke_GuardVerdicts(t *testing.T) {
	st := numeric.State{Text: "1,234", Cursor: 5}
	cfg := numeric.IntegerConfig()

	admitted := []tea.KeyMsg{
		{Type: tea.KeyBackspace},
		{Type: tea.KeyCtrlH},
		{Type: tea.KeyTab},
		{Type: tea.KeyEnter},
		{Type: tea.KeyHome},
		{Type: tea.KeyCtrlA},
		{Type: tea.KeyCtrlZ},
	}
	for _, msg := range admitted {
		if !numeric.Admit(Keystroke(msg), st, cfg) {
			t.Errorf("%s should be admitted", msg)
		}
	}

	rejected := []tea.KeyMsg{
		{Type: tea.KeySpace},
		{Type: tea.KeyCtrlK},
		{Type: tea.KeyCtrlW},
		{Type: tea.KeyRunes, Runes: []rune("x")},
	}
	for _, msg := range rejected {
		if numeric.Admit(Keystroke(msg), st, cfg) {
			t.Errorf("%s should be rejected", msg)
		}
	}
}
