// Package calculator is the interactive commission savings screen: a sale
// price field held to the numeric grammar, quick example prices and a
// savings readout.
package calculator

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"numfield/cmd/numfield/ui"
	"numfield/internal/commission"
	"numfield/internal/config"
	"numfield/internal/field"
	"numfield/internal/logging"
)

// SavingsPlaceholder is shown until a price has been calculated, and again
// whenever the field holds nothing parseable.
const SavingsPlaceholder = "Enter a sale price"

// Rows reserved beneath the savings line for confetti.
const confettiHeight = 6

// configReloadedMsg carries a config published by the watcher.
type configReloadedMsg struct {
	cfg *config.Config
}

type noticeLevel int

const (
	noticeSuccess noticeLevel = iota
	noticeWarning
	noticeError
)

// notice is a one-line status shown under the panel until the next
// calculation.
type notice struct {
	level noticeLevel
	text  string
}

// Model is the calculator screen.
type Model struct {
	cfg    *config.Config
	rates  commission.Rates
	styles ui.Styles
	keys   KeyMap
	help   help.Model

	input    field.Input
	examples []string

	// 0 is the field, 1..len(examples) the example buttons, then Calculate
	focus int

	fees   *commission.Fees
	notice *notice

	width  int
	height int

	confetti   *ui.Confetti
	confettiID int
	rng        *rand.Rand

	updates <-chan *config.Config
	log     *zap.SugaredLogger
}

// Option customizes a Model.
type Option func(*Model)

// WithUpdates subscribes the model to config reloads.
func WithUpdates(ch <-chan *config.Config) Option {
	return func(m *Model) { m.updates = ch }
}

// WithRand fixes the confetti randomness.
func WithRand(r *rand.Rand) Option {
	return func(m *Model) { m.rng = r }
}

// New builds the calculator for cfg. The sanitizer section is fixed for the
// life of the model; rates, examples and theme follow reloads.
func New(cfg *config.Config, opts ...Option) (Model, error) {
	rates, err := cfg.Commission.Rates()
	if err != nil {
		return Model{}, err
	}

	in, err := field.NewInput(cfg.Sanitizer.Numeric())
	if err != nil {
		return Model{}, err
	}
	ti := in.TextInput()
	ti.Prompt = "$ "
	ti.Placeholder = "450,000"
	ti.Width = 20

	m := Model{
		cfg:      cfg,
		rates:    rates,
		styles:   ui.NewStyles(ui.ThemeFor(cfg.UI.Theme)),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    in,
		examples: append([]string(nil), cfg.UI.ExamplePrices...),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      logging.Get(logging.CategoryUI),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.input.Focus()
	return m, nil
}

// Init starts the cursor blink and, when subscribed, the reload listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForConfig())
}

func (m Model) waitForConfig() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	ch := m.updates
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ui.ConfettiTickMsg:
		if m.confetti == nil || msg.ID != m.confetti.ID {
			return m, nil
		}
		if m.confetti.Step() {
			return m, m.confetti.Tick()
		}
		m.confetti = nil
		return m, nil

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		return m, m.waitForConfig()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1), nil
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1), nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Activate):
		return m.activate()
	case key.Matches(msg, m.keys.Press) && m.focus != 0:
		return m.activate()
	}

	if m.focus != 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) focusCount() int {
	return len(m.examples) + 2
}

func (m Model) calculateFocus() int {
	return len(m.examples) + 1
}

func (m Model) moveFocus(delta int) Model {
	n := m.focusCount()
	m.focus = ((m.focus+delta)%n + n) % n
	if m.focus == 0 {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// activate performs the action of whatever has focus.
func (m Model) activate() (tea.Model, tea.Cmd) {
	if m.focus >= 1 && m.focus <= len(m.examples) {
		price := m.examples[m.focus-1]
		m.log.Debugw("example price selected", "price", price)
		m.input.SetValue(price)
	}
	return m.calculate()
}

func (m Model) calculate() (tea.Model, tea.Cmd) {
	m.notice = nil
	price, ok := commission.ParseSalePrice(m.input.Value())
	if !ok {
		m.fees = nil
		return m, nil
	}

	fees := commission.Calculate(price, m.rates)
	m.fees = &fees

	if !m.cfg.UI.Confetti {
		return m, nil
	}
	m.confettiID++
	m.confetti = ui.NewConfetti(m.confettiID, m.confettiWidth(), confettiHeight, ui.DefaultConfettiOptions(), m.rng)
	return m, m.confetti.Tick()
}

func (m Model) confettiWidth() int {
	if m.width <= 0 {
		return 40
	}
	if m.compact() {
		return max(m.width-4, 1)
	}
	return max(m.width/2-4, 1)
}

func (m Model) compact() bool {
	return m.width > 0 && m.width < m.cfg.UI.CompactWidth
}

// applyConfig takes rates, examples and theme from a reloaded config. A
// bound field's grammar cannot change under it, so sanitizer edits wait for
// a restart.
func (m *Model) applyConfig(next *config.Config) {
	rates, err := next.Commission.Rates()
	if err != nil {
		m.log.Warnw("ignoring reloaded config", "error", err)
		m.notice = &notice{level: noticeError, text: "Config reload rejected: " + err.Error()}
		return
	}
	m.notice = &notice{level: noticeSuccess, text: "Config reloaded"}
	if next.Sanitizer != m.cfg.Sanitizer {
		m.log.Warnw("sanitizer changes take effect after restart",
			"current", m.cfg.Sanitizer, "requested", next.Sanitizer)
		m.notice = &notice{level: noticeWarning, text: "Config reloaded. Sale price rules change after a restart"}
	}

	cfg := *next
	cfg.Sanitizer = m.cfg.Sanitizer
	m.cfg = &cfg
	m.rates = rates
	m.examples = append([]string(nil), next.UI.ExamplePrices...)
	m.styles = ui.NewStyles(ui.ThemeFor(next.UI.Theme))

	if m.focus >= m.focusCount() {
		m.focus = m.calculateFocus()
	}
	if m.fees != nil {
		fees := commission.Calculate(m.fees.SalePrice, rates)
		m.fees = &fees
	}
	m.log.Infow("calculator config applied", "examples", len(m.examples))
}
