package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"taskpad/pkg/tasks"
)

// HandleExportCommand processes -export commands
func HandleExportCommand(store *tasks.Store, filename, exportType string) {
	items := store.Tasks()

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte
	var err error

	switch exportType {
	case "json":
		content, err = json.MarshalIndent(items, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling tasks to JSON: %v\n", err)
			os.Exit(1)
		}
	case "txt":
		var lines []string
		var lastCategory tasks.Category
		for _, task := range items {
			if task.Category != lastCategory {
				lines = append(lines, fmt.Sprintf("\n%s:", task.Category.Display()))
				lastCategory = task.Category
			}

			status := " "
			if task.Completed {
				status = "x"
			}

			line := fmt.Sprintf("- [%s] %s", status, task.Name)
			if task.ScheduledTime != "" {
				line += " @ " + task.ScheduledTime
			}
			lines = append(lines, line)
		}
		content = []byte(strings.TrimSpace(strings.Join(lines, "\n")))
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d task(s) to %s\n", len(items), filename)
}
