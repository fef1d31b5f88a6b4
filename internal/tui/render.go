package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderWidget())
	switch m.modal {
	case ModalMenu:
		b.WriteString("\n" + m.renderMenu())
	case ModalPassword:
		b.WriteString("\n" + m.renderPasswordPrompt())
	case ModalSettings:
		b.WriteString("\n" + m.renderSettings())
	}
	if m.Message != "" {
		b.WriteString("\n" + m.theme.Notice.Render(m.Message))
	}
	if help := m.keys.HelpFor(m.modal); help != "" {
		b.WriteString("\n" + m.theme.Dim.Render(help))
	}
	return b.String()
}

// renderWidget is the always-visible line: selected countdown and its label.
func (m MainModel) renderWidget() string {
	selected := m.picker.Selected()
	if selected == "" {
		selected = "-"
	}
	badge := m.theme.Badge.Render(truncateLabel(selected, config.PickerWidth))

	labelStyle := m.theme.Label
	if m.label == config.InvalidEntry {
		labelStyle = m.theme.Invalid
	}
	label := m.label
	if m.width > 0 {
		room := m.width - lipgloss.Width(badge) - 1
		if room < config.MinLabelWidth {
			room = config.MinLabelWidth
		}
		label = truncateLabel(label, room)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, badge, " ", labelStyle.Render(label))
}

func (m MainModel) frame() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(config.ModalWidth)
}

func (m MainModel) renderMenu() string {
	var b strings.Builder
	for i, name := range m.picker.Options() {
		line := cursorMark(i == m.menu.Cursor) + truncateLabel(name, config.ModalWidth-4)
		if i == m.menu.Cursor {
			line = m.theme.Selected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(m.theme.Dim.Render("[up/down]move [enter]choose [esc]close"))
	return m.frame().Render(b.String())
}

func (m MainModel) renderPasswordPrompt() string {
	var b strings.Builder
	b.WriteString(m.theme.Focused.Render("Enter password") + "\n\n")
	if m.prompt.Message != "" {
		b.WriteString(m.theme.Error.Render(m.prompt.Message) + "\n")
	}
	b.WriteString(m.theme.Focused.Render("> ") + m.prompt.Input.View() + "\n")
	b.WriteString(m.theme.Dim.Render("[enter]submit [esc]cancel"))
	return m.frame().Render(b.String())
}

func (m MainModel) renderSettings() string {
	var b strings.Builder
	b.WriteString(m.theme.Focused.Render(fmt.Sprintf("Settings | %s v%s", m.cfg.Name, versionLabel())) + "\n\n")

	rows := m.settingsRows()
	if len(rows) == 0 {
		b.WriteString(m.theme.Dim.Render("  (nothing configured)") + "\n")
	}
	end := m.settings.Offset + config.MaxVisibleRows
	if end > len(rows) {
		end = len(rows)
	}
	for i := m.settings.Offset; i < end; i++ {
		row := rows[i]
		var text string
		if row.countdown != nil {
			text = fmt.Sprintf("countdown  %-12s %s", row.countdown.Date, row.countdown.Name)
		} else {
			text = "cheer      " + row.encouragement
		}
		line := cursorMark(i == m.settings.Cursor) + truncateLabel(text, config.ModalWidth-4)
		if i == m.settings.Cursor {
			line = m.theme.Selected.Render(line)
		}
		b.WriteString(line + "\n")
	}

	switch m.settings.Stage {
	case StageAddName:
		b.WriteString("\nName: " + m.inputs.name.View() + "\n")
	case StageAddDate:
		b.WriteString(fmt.Sprintf("\nDate for %q: %s\n", m.settings.PendingName, m.inputs.date.View()))
	case StageAddEncouragement:
		b.WriteString("\nEncouragement: " + m.inputs.encouragement.View() + "\n")
	}
	if m.settings.Status != "" {
		b.WriteString("\n" + m.theme.Notice.Render(m.settings.Status))
	}
	return m.frame().Render(strings.TrimRight(b.String(), "\n"))
}
