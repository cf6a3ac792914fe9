package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stegcalc/internal/domain"
)

const calcWidth = 22

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	displayStyle = lipgloss.NewStyle().
			Width(calcWidth).
			Align(lipgloss.Right).
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("236"))
	keyStyle      = lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
	opStyle       = keyStyle.Foreground(lipgloss.Color("214"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	tabStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("244"))
	activeTab     = tabStyle.Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))
	plaintextBox  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	calculatorPad = [][]string{
		{"7", "8", "9", "/"},
		{"4", "5", "6", "*"},
		{"1", "2", "3", "-"},
		{"0", ".", "=", "+"},
	}
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.machine.Mode() == domain.ModeCovertTool {
		return m.viewCovert()
	}
	return m.viewCalculator()
}

func (m *Model) viewCalculator() string {
	rows := []string{displayStyle.Render(m.machine.Display()), ""}
	for _, row := range calculatorPad {
		var cells []string
		for _, k := range row {
			if strings.ContainsAny(k, "+-*/=") {
				cells = append(cells, opStyle.Render(k))
			} else {
				cells = append(cells, keyStyle.Render(k))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	rows = append(rows, "", hintStyle.Render("c clear  ⌫ delete  q quit"))
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) viewCovert() string {
	var tabs []string
	for _, t := range []Tab{TabEncrypt, TabDecrypt} {
		if t == m.tab {
			tabs = append(tabs, activeTab.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	for i, f := range m.form.fields(m.tab) {
		value := f.value
		if f.secret {
			value = strings.Repeat("•", len([]rune(value)))
		}
		line := f.label + ": " + value
		if i == m.focus {
			b.WriteString(focusStyle.Render("> "+line) + "█\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if s := m.status.Text(); s != "" {
		b.WriteString("\n" + statusStyle.Render(s) + "\n")
	}

	if m.tab == TabDecrypt {
		if text := m.exchange.Plaintext(); text != "" {
			b.WriteString("\n" + titleStyle.Render("Decrypted message") + "\n")
			b.WriteString(plaintextBox.Render(text) + "\n")
		}
		if m.exchange.CopyVisible() {
			b.WriteString(hintStyle.Render("ctrl+y copy (cleared after 30s)") + "\n")
		}
	}

	b.WriteString("\n" + hintStyle.Render("tab next field  ctrl+t switch  ctrl+s run  esc calculator"))
	return frameStyle.Render(b.String())
}
