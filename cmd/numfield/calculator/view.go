package calculator

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"numfield/internal/commission"
)

// View renders the calculator. Below the compact breakpoint everything
// stacks in one column with the savings right under the field.
func (m Model) View() string {
	s := m.styles

	header := lipgloss.JoinVertical(lipgloss.Left,
		s.Header.Render("Commission savings calculator"),
		s.Subtitle.Render("Average broker commission against our flat fee"),
	)
	priceBlock := lipgloss.JoinVertical(lipgloss.Left,
		s.Label.Render("Sale price"),
		m.fieldView(),
	)
	savingsBlock := m.savingsView()
	controls := lipgloss.JoinVertical(lipgloss.Left,
		m.examplesView(),
		m.buttonView("Calculate", m.focus == m.calculateFocus()),
	)

	var body string
	if m.compact() {
		body = lipgloss.JoinVertical(lipgloss.Left, priceBlock, savingsBlock, controls)
	} else {
		left := lipgloss.JoinVertical(lipgloss.Left, priceBlock, "", controls)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", savingsBlock)
	}

	sections := []string{header, s.Panel.Render(body)}
	if n := m.noticeView(); n != "" {
		sections = append(sections, n)
	}
	sections = append(sections,
		s.RenderDivider(m.dividerWidth()),
		s.Footer.Render(m.help.View(m.keys)),
	)
	return s.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) noticeView() string {
	if m.notice == nil {
		return ""
	}
	st := m.styles.Success
	switch m.notice.level {
	case noticeWarning:
		st = m.styles.Warning
	case noticeError:
		st = m.styles.Error
	}
	return st.PaddingLeft(2).Render(m.notice.text)
}

func (m Model) dividerWidth() int {
	if m.width <= 0 {
		return 40
	}
	return m.width
}

func (m Model) fieldView() string {
	st := m.styles.Field
	if m.focus == 0 {
		st = m.styles.FieldFocused
	}
	return st.Render(m.input.View())
}

func (m Model) savingsView() string {
	s := m.styles

	lines := []string{s.Title.Render("You save")}
	if m.fees == nil {
		lines = append(lines, s.SavingsInactive.Render(SavingsPlaceholder))
	} else {
		lines = append(lines, s.Savings.Render(commission.FormatAmount(m.fees.Savings)))
	}

	if m.confetti != nil {
		lines = append(lines, m.confetti.View())
	}

	if m.fees != nil {
		lines = append(lines, s.Breakdown.Render(strings.Join([]string{
			"Average broker fee  " + commission.FormatAmount(m.fees.BrokerFee),
			"Our fee             " + commission.FormatAmount(m.fees.ServiceFee),
		}, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) examplesView() string {
	if len(m.examples) == 0 {
		return ""
	}

	buttons := make([]string, 0, len(m.examples))
	for i, price := range m.examples {
		buttons = append(buttons, m.buttonView("$"+price, m.focus == i+1))
	}

	var row string
	if m.compact() {
		row = lipgloss.JoinVertical(lipgloss.Left, buttons...)
	} else {
		row = lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Muted.Render("Try an example"), row)
}

func (m Model) buttonView(label string, focused bool) string {
	if focused {
		return m.styles.ButtonFocused.Render(label)
	}
	return m.styles.Button.Render(label)
}
