package commands

import (
	"fmt"
	"os"
	"strings"

	"taskpad/pkg/tasks"
)

// HandlePurgeCommand processes the -purge command, deleting all completed
// tasks after confirmation.
func HandlePurgeCommand(store *tasks.Store, skipConfirm bool) {
	var doomed []tasks.Task
	for _, task := range store.Tasks() {
		if task.Completed {
			doomed = append(doomed, task)
		}
	}

	if len(doomed) == 0 {
		fmt.Println("No completed tasks to purge.")
		return
	}

	// Show confirmation unless -yes flag is used
	if !skipConfirm {
		fmt.Printf("Are you sure you want to delete %d completed task(s)? (y/N): ", len(doomed))
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
	}

	deleted := 0
	for _, task := range doomed {
		if store.Delete(task.ID) {
			deleted++
		}
	}

	if deleted < len(doomed) {
		fmt.Printf("Deleted %d of %d task(s); some deletions could not be saved\n", deleted, len(doomed))
		os.Exit(1)
	}

	fmt.Printf("Successfully deleted %d task(s)\n", deleted)
}
