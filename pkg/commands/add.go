package commands

import (
	"fmt"
	"os"

	"taskpad/pkg/tasks"
)

// HandleAddTask processes the -add command
func HandleAddTask(store *tasks.Store, name, category, timeStr string) {
	task, err := store.Add(name, category, timeStr)
	if err != nil {
		fmt.Printf("Error adding task: %v\n", err)
		os.Exit(1)
	}

	label := task.Name
	if task.ScheduledTime != "" {
		label = fmt.Sprintf("%s at %s", task.Name, task.ScheduledTime)
	}
	fmt.Printf("Added %s task: %s\n", task.Category.Display(), label)
}
