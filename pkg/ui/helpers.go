package ui

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/bubbles/table"

	"taskpad/pkg/tasks"
)

// tips shown below the clock. Picked at random at startup and after every
// added task.
var tips = []string{
	"Schedule hard tasks for when your energy peaks.",
	"Break big tasks into ones you can finish today.",
	"Three categories are enough: work, study, personal.",
	"Mark something done before adding something new.",
	"A task without a time is a wish; give it one.",
	"Review the list each morning, purge it each week.",
	"One task at a time beats five at once.",
}

func pickTip() string {
	return tips[rand.Intn(len(tips))]
}

// refreshRows rebuilds the table rows from the current collection snapshot.
func (m *Model) refreshRows() {
	items := m.store.Tasks()
	rows := make([]table.Row, 0, len(items))

	for _, task := range items {
		status := "[ ]"
		name := m.app.styles.NormalText.Render(task.Name)
		if task.Completed {
			status = "[x]"
			name = m.app.styles.Done.Render(task.Name)
		}

		category := task.Category.Display()
		if style, ok := m.app.styles.CategoryColors[string(task.Category)]; ok {
			category = style.Render(category)
		} else {
			category = m.app.styles.SecondaryTxt.Render(category)
		}

		text := fmt.Sprintf("%s %s (%s)", status, name, category)
		if task.ScheduledTime != "" {
			text += m.app.styles.SecondaryTxt.Render(" @ " + task.ScheduledTime)
		}

		rows = append(rows, table.Row{text})
	}

	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// selectedTask returns the task under the table cursor.
func (m *Model) selectedTask() (tasks.Task, bool) {
	items := m.store.Tasks()
	cursor := m.table.Cursor()
	if len(items) == 0 || cursor < 0 || cursor >= len(items) {
		return tasks.Task{}, false
	}
	return items[cursor], true
}
