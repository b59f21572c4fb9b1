package tasks

import (
	"strings"
	"time"
	"unicode/utf8"

	"taskpad/pkg/signal"
)

// Category is the closed set of task categories.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryPersonal Category = "personal"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryWork, CategoryStudy, CategoryPersonal}
}

// ParseCategory resolves a user- or storage-supplied category string.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryWork:
		return CategoryWork, true
	case CategoryStudy:
		return CategoryStudy, true
	case CategoryPersonal:
		return CategoryPersonal, true
	}
	return "", false
}

// Display returns the category with its leading letter capitalized.
func (c Category) Display() string {
	switch c {
	case CategoryWork:
		return "Work"
	case CategoryStudy:
		return "Study"
	case CategoryPersonal:
		return "Personal"
	}
	return string(c)
}

// MaxNameLength is the longest allowed task name, counted in runes after
// trimming surrounding whitespace.
const MaxNameLength = 100

// Task is a single to-do item. ScheduledTime is a 24-hour HH:MM wall-clock
// time or empty.
type Task struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	ScheduledTime string   `json:"scheduledTime,omitempty"`
	Completed     bool     `json:"completed"`
}

// ValidationError reports a single rejected input. It carries the signal
// code so callers can surface the exact condition without string matching.
type ValidationError struct {
	Code signal.Code
}

func (e *ValidationError) Error() string {
	return signal.Signal{Kind: signal.Validation, Code: e.Code}.Message()
}

// Signal returns the error as a raised condition.
func (e *ValidationError) Signal() signal.Signal {
	return signal.Signal{Kind: signal.Validation, Code: e.Code}
}

// Valid reports whether a task satisfies every field invariant. Used when
// filtering rehydrated records; invalid records are dropped, never repaired.
func (t Task) Valid() bool {
	if t.ID == "" {
		return false
	}
	name := strings.TrimSpace(t.Name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return false
	}
	if _, ok := ParseCategory(string(t.Category)); !ok {
		return false
	}
	if t.ScheduledTime != "" && !ValidScheduledTime(t.ScheduledTime) {
		return false
	}
	return true
}

// ValidScheduledTime reports whether s is a 24-hour HH:MM time.
func ValidScheduledTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
