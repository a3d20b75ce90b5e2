package field

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"numfield/internal/logging"
	"numfield/internal/numeric"
)

// PasteMsg carries clipboard text into a bound Input.
type PasteMsg struct {
	Text string
	Err  error
}

// readClipboard is swapped out in tests.
var readClipboard = clipboard.ReadAll

// ReadClipboard is a command that reads the system clipboard.
func ReadClipboard() tea.Msg {
	text, err := readClipboard()
	return PasteMsg{Text: text, Err: err}
}

var pasteKey = key.NewBinding(key.WithKeys("ctrl+v"))

// Input is a bubbles textinput bound to a numeric grammar.
//
// The textinput lives behind a pointer so copies of Input made by the
// bubbletea update cycle all talk to the same control the binder holds.
type Input struct {
	ti     *textinput.Model
	binder *Binder
}

// NewInput creates a focused-off text input held to cfg.
func NewInput(cfg numeric.Config) (Input, error) {
	ti := textinput.New()
	// Paste goes through the binder, never straight into the control.
	ti.KeyMap.Paste.SetEnabled(false)

	b, err := Bind(&ti, cfg)
	if err != nil {
		return Input{}, fmt.Errorf("failed to bind sale price input: %w", err)
	}
	return Input{ti: &ti, binder: b}, nil
}

// TextInput exposes the underlying control for styling (prompt,
// placeholder, width). Writing its value directly bypasses the grammar;
// use SetValue instead.
func (m Input) TextInput() *textinput.Model {
	return m.ti
}

// Binder returns the binder driving this input.
func (m Input) Binder() *Binder {
	return m.binder
}

func (m Input) Value() string { return m.ti.Value() }
func (m Input) Position() int { return m.ti.Position() }
func (m Input) Focused() bool { return m.ti.Focused() }
func (m Input) Focus() tea.Cmd { return m.ti.Focus() }
func (m Input) Blur() { m.ti.Blur() }
func (m Input) View() string { return m.ti.View() }
func (m Input) SetValue(v string) { m.binder.Set(v) }

// Update routes a message through the binder before (or instead of)
// the textinput.
func (m Input) Update(msg tea.Msg) (Input, tea.Cmd) {
	switch msg := msg.(type) {
	case PasteMsg:
		if msg.Err != nil {
			logging.Get(logging.CategoryBinder).Warnw("clipboard read failed", "error", msg.Err)
			return m, nil
		}
		if m.ti.Focused() {
			m.binder.Paste(msg.Text)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.ti.Focused() {
			return m, nil
		}
		if msg.Paste {
			m.binder.Paste(string(msg.Runes))
			return m, nil
		}
		if key.Matches(msg, pasteKey) {
			return m, ReadClipboard
		}
		// A burst of runes (IME commit, fast typing) has no single-key
		// verdict; let it land and rely on the input pass.
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
			return m.forward(msg)
		}
		if !m.binder.KeyDown(Keystroke(msg)) {
			return m, nil
		}
		return m.forward(msg)
	}

	return m.forward(msg)
}

func (m Input) forward(msg tea.Msg) (Input, tea.Cmd) {
	var cmd tea.Cmd
	*m.ti, cmd = m.ti.Update(msg)
	m.binder.Input()
	return m, cmd
}
