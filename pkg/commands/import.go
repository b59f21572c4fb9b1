package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"taskpad/pkg/tasks"
)

// importRecord mirrors the export format. Only the validated fields travel;
// ids are regenerated on import so they are never reused across stores.
type importRecord struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	ScheduledTime string `json:"scheduledTime"`
	Completed     bool   `json:"completed"`
}

// HandleImportCommand processes -import commands
func HandleImportCommand(store *tasks.Store, filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	var records []importRecord
	if err := json.Unmarshal(content, &records); err != nil {
		fmt.Printf("Error parsing file: %v\n", err)
		os.Exit(1)
	}

	var added, skipped int
	for _, rec := range records {
		task, err := store.Add(rec.Name, rec.Category, rec.ScheduledTime)
		if err != nil {
			fmt.Printf("Skipping task %q: %v\n", rec.Name, err)
			skipped++
			continue
		}
		if rec.Completed {
			store.ToggleCompletion(task.ID)
		}
		added++
	}

	if skipped > 0 {
		fmt.Printf("Imported %d task(s) from %s, skipped %d invalid\n", added, filename, skipped)
		return
	}
	fmt.Printf("Successfully imported %d task(s) from %s\n", added, filename)
}
