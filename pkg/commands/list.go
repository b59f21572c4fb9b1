package commands

import (
	"fmt"

	"taskpad/pkg/tasks"
)

// HandleListTasks processes the -list command
func HandleListTasks(store *tasks.Store, doneOnly, undoneOnly bool) {
	items := store.Tasks()

	shown := 0
	for _, task := range items {
		if doneOnly && !task.Completed {
			continue
		}
		if undoneOnly && task.Completed {
			continue
		}

		status := " "
		if task.Completed {
			status = "x"
		}

		line := fmt.Sprintf("- [%s] %s (%s)", status, task.Name, task.Category.Display())
		if task.ScheduledTime != "" {
			line += " @ " + task.ScheduledTime
		}
		fmt.Println(line)
		shown++
	}

	if shown == 0 {
		fmt.Println("No tasks.")
		return
	}

	fmt.Printf("\n%d task(s), %d%% complete\n", len(items), store.Progress())
}
