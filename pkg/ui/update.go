package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskpad/pkg/tasks"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.ToggleStatus):
				if task, ok := m.selectedTask(); ok {
					if m.store.ToggleCompletion(task.ID) {
						m.app.status = ""
					}
					m.refreshRows()
				}

			case key.Matches(msg, m.keyMap.AddTask):
				m.mode = AddMode
				m.form.reset()

			case key.Matches(msg, m.keyMap.DeleteTask):
				if task, ok := m.selectedTask(); ok {
					m.mode = DeleteConfirmMode
					m.deleting = &task
				}

			case key.Matches(msg, m.keyMap.PickTheme):
				m.mode = ThemePickerMode
				m.themeCursor = 0
				for i, def := range m.manager.AvailableThemes() {
					if def.Name == m.manager.Current() {
						m.themeCursor = i
					}
				}
			}

		case AddMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.form.reset()

			case "tab":
				m.form.focusNextInput()

			case "shift+tab":
				m.form.focusPreviousInput()

			case "left":
				if m.form.activeInput == fieldCategory {
					m.form.cycleCategory(-1)
				}

			case "right":
				if m.form.activeInput == fieldCategory {
					m.form.cycleCategory(1)
				}

			case "enter":
				if m.form.activeInput == fieldTime { // Submit on enter from the last field
					m.submitForm()
				} else {
					m.form.focusNextInput()
				}
			}

			// Handle input updates
			if cmd := m.form.update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}

		case DeleteConfirmMode:
			// Handle delete confirmation; the store requires it upstream
			switch msg.String() {
			case "y", "Y":
				if m.deleting != nil {
					m.logger.Debug("deleting task", "id", m.deleting.ID)
					if m.store.Delete(m.deleting.ID) {
						m.app.status = "Task deleted"
					}
					m.refreshRows()
				}
				m.mode = NormalMode
				m.deleting = nil

			case "n", "N", "esc":
				m.mode = NormalMode
				m.deleting = nil
			}

		case ThemePickerMode:
			themes := m.manager.AvailableThemes()
			switch msg.String() {
			case "esc":
				m.mode = NormalMode

			case "up", "k":
				m.themeCursor = (m.themeCursor + len(themes) - 1) % len(themes)

			case "down", "j":
				m.themeCursor = (m.themeCursor + 1) % len(themes)

			case "enter":
				if m.manager.SetTheme(string(themes[m.themeCursor].Name)) {
					m.applyTableStyles()
					m.refreshRows()
				}
				m.mode = NormalMode
			}

		case HelpViewMode:
			switch msg.String() {
			case "esc", "ctrl+b":
				m.mode = NormalMode
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 10)
	}

	// Only update table in normal mode
	if m.mode == NormalMode {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submitForm feeds the form into the task store. Validation errors surface
// in the status line and keep the form open; the store never mutates on a
// rejected input.
func (m *Model) submitForm() {
	_, err := m.store.Add(
		m.form.nameInput.Value(),
		string(m.form.category()),
		m.form.timeInput.Value(),
	)
	if err != nil {
		var verr *tasks.ValidationError
		if errors.As(err, &verr) {
			m.app.status = verr.Signal().Message()
		} else {
			m.app.status = err.Error()
		}
		return
	}

	m.mode = NormalMode
	m.form.reset()
	m.refreshRows()
	m.tip = pickTip()
}
