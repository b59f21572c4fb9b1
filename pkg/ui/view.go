package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskpad/pkg/tasks"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		sb.WriteString(m.app.styles.TitleBar.Render(" taskpad "))
		sb.WriteString("  ")
		sb.WriteString(m.app.styles.SecondaryTxt.Render(m.now.Format("Mon 15:04:05")))
		sb.WriteString("\n\n")

		sb.WriteString(m.table.View())
		sb.WriteString("\n")

		sb.WriteString(m.renderProgress())
		sb.WriteString("\n\n")

		sb.WriteString(m.app.styles.SecondaryTxt.Render("Tip: " + m.tip))
		sb.WriteString("\n")

	case AddMode:
		sb.WriteString(m.app.styles.TitleBar.Render(" Add New Task "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DeleteConfirmMode:
		sb.WriteString(m.app.styles.Error.Render(" Delete Task "))
		sb.WriteString("\n\n")

		if m.deleting != nil {
			sb.WriteString("Are you sure you want to delete this task?\n\n")
			sb.WriteString(fmt.Sprintf("Name: %s\n", m.deleting.Name))
			sb.WriteString(fmt.Sprintf("Category: %s\n", m.deleting.Category.Display()))
			if m.deleting.ScheduledTime != "" {
				sb.WriteString(fmt.Sprintf("Time: %s\n", m.deleting.ScheduledTime))
			}
			sb.WriteString("\n")
			sb.WriteString(m.app.styles.NormalText.Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case ThemePickerMode:
		sb.WriteString(m.app.styles.TitleBar.Render(" Pick Theme "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderThemePicker())

	case HelpViewMode:
		sb.WriteString(m.app.styles.NormalText.Bold(true).Render("Available Commands"))
		sb.WriteString("\n\n")

		addCommand := func(keyStr, helpStr string) {
			sb.WriteString(fmt.Sprintf("%s: %s\n",
				m.app.styles.NormalText.Render(helpStr),
				m.app.styles.Accent.Render(keyStr)))
		}

		addCommand(m.keyMap.QuitApp.Help().Key, m.keyMap.QuitApp.Help().Desc)
		addCommand(m.keyMap.ShowHelp.Help().Key, m.keyMap.ShowHelp.Help().Desc)
		addCommand(m.keyMap.ToggleStatus.Help().Key, m.keyMap.ToggleStatus.Help().Desc)
		addCommand(m.keyMap.AddTask.Help().Key, m.keyMap.AddTask.Help().Desc)
		addCommand(m.keyMap.DeleteTask.Help().Key, m.keyMap.DeleteTask.Help().Desc)
		addCommand(m.keyMap.PickTheme.Help().Key, m.keyMap.PickTheme.Help().Desc)
	}

	// Status line for the most recent signal, if any
	if m.app.status != "" {
		sb.WriteString("\n")
		sb.WriteString(m.app.styles.StatusBar.Render(m.app.status))
	}

	// Add help status bar at the bottom
	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

// renderProgress renders the completion bar with its percentage.
func (m Model) renderProgress() string {
	percent := m.store.Progress()
	bar := m.app.progress.ViewAs(float64(percent) / 100)
	label := m.app.styles.SecondaryTxt.Render(fmt.Sprintf(" %d%% of %d task(s)", percent, m.store.Len()))
	return bar + label
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	separator := m.app.styles.Border.Render(" | ")

	addAction := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s",
			m.app.styles.Accent.Render(k),
			m.app.styles.SecondaryTxt.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		addAction(m.keyMap.AddTask.Help().Key, "add")
		addAction(m.keyMap.DeleteTask.Help().Key, "del")
		addAction(m.keyMap.ToggleStatus.Help().Key, "toggle")
		addAction(m.keyMap.PickTheme.Help().Key, "theme")
		addAction(m.keyMap.ShowHelp.Help().Key, "help")
		addAction(m.keyMap.QuitApp.Help().Key, "quit")

	case AddMode:
		addAction("tab", "next field")
		addAction("enter", "save")
		addAction("esc", "cancel")

	case DeleteConfirmMode:
		addAction("y", "confirm")
		addAction("n", "cancel")

	case ThemePickerMode:
		addAction("up/down", "choose")
		addAction("enter", "apply")
		addAction("esc", "cancel")

	case HelpViewMode:
		addAction("esc", "back")
		addAction(m.keyMap.QuitApp.Help().Key, "quit")
	}

	return strings.Join(actions, separator)
}

// renderForm renders the input form for adding tasks
func (m Model) renderForm() string {
	var sb strings.Builder

	sb.WriteString("Name:\n")
	sb.WriteString(m.form.nameInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Category:\n")
	sb.WriteString(m.renderCategorySelector())
	sb.WriteString("\n\n")

	sb.WriteString("Scheduled Time (HH:MM, optional):\n")
	sb.WriteString(m.form.timeInput.View())

	return sb.String()
}

// renderCategorySelector renders the closed category choice, cycled with
// the left/right keys while the field is active.
func (m Model) renderCategorySelector() string {
	var parts []string

	for i, cat := range tasks.Categories() {
		label := cat.Display()
		switch {
		case i == m.form.categoryIdx && m.form.activeInput == fieldCategory:
			label = m.app.styles.Selected.Render(" " + label + " ")
		case i == m.form.categoryIdx:
			label = m.app.styles.Accent.Render(label)
		default:
			label = m.app.styles.SecondaryTxt.Render(label)
		}
		parts = append(parts, label)
	}

	return strings.Join(parts, "  ")
}

// renderThemePicker lists the five themes with preview swatches.
func (m Model) renderThemePicker() string {
	var sb strings.Builder

	for i, def := range m.manager.AvailableThemes() {
		cursor := "  "
		name := def.DisplayName
		if i == m.themeCursor {
			cursor = m.app.styles.Accent.Render("> ")
			name = m.app.styles.Accent.Render(name)
		} else {
			name = m.app.styles.NormalText.Render(name)
		}

		active := "   "
		if def.Name == m.manager.Current() {
			active = m.app.styles.Success.Render(" * ")
		}

		swatch := renderSwatch(def.Preview.Primary) +
			renderSwatch(def.Preview.Secondary) +
			renderSwatch(def.Preview.Text)

		sb.WriteString(fmt.Sprintf("%s%-24s %s%s  %s\n",
			cursor, name, swatch, active,
			m.app.styles.SecondaryTxt.Render(def.Description)))
	}

	return sb.String()
}

func renderSwatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}
