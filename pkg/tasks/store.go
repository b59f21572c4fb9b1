package tasks

import (
	"encoding/json"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"taskpad/pkg/signal"
	"taskpad/pkg/storage"
)

// RecordKey is the storage key the serialized collection lives under.
const RecordKey = "taskpad.tasks"

// Store owns the ordered task collection for the lifetime of the session.
// Mutations go through Add/ToggleCompletion/Delete and are persisted on every
// change; the in-memory collection remains the source of truth when storage
// misbehaves. Non-fatal conditions are raised through the notifier.
//
// Persistence failure handling is deliberately asymmetric: Add keeps the new
// task in memory (the user keeps working, with a degraded-persistence
// warning), while ToggleCompletion and Delete roll back. The latter two are
// cheap to retry, so they prefer consistency over optimism.
type Store struct {
	kv     storage.KV
	notify signal.Notifier
	logger *log.Logger
	items  []Task
}

// NewStore creates an empty Store persisting through kv. notify may be nil.
func NewStore(kv storage.KV, notify signal.Notifier, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		kv:     kv,
		notify: notify,
		logger: logger,
	}
}

// Load rehydrates the collection from storage. An absent record yields an
// empty collection; an unparseable one is discarded (DataCorruption) rather
// than repaired; individual invalid records are filtered out
// (PartialDataLoss) and the cleaned collection re-persisted so the bad
// records do not resurface on the next start.
func (s *Store) Load() []Task {
	s.items = nil

	raw, ok := s.kv.Get(RecordKey)
	if !ok {
		return s.Tasks()
	}

	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") {
		s.discardCorrupted()
		return s.Tasks()
	}

	var records []Task
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.discardCorrupted()
		return s.Tasks()
	}

	kept := make([]Task, 0, len(records))
	for _, t := range records {
		if t.Valid() {
			kept = append(kept, t)
		}
	}

	dropped := len(records) - len(kept)
	s.items = kept

	if dropped > 0 {
		s.logger.Warn("dropped invalid stored tasks", "count", dropped)
		s.notify.Notify(signal.Signal{Kind: signal.PartialDataLoss, Count: dropped})
		if len(kept) > 0 {
			s.persist()
		}
	}

	return s.Tasks()
}

func (s *Store) discardCorrupted() {
	s.logger.Warn("stored task record is corrupted, discarding")
	s.kv.Remove(RecordKey)
	s.notify.Notify(signal.Signal{Kind: signal.DataCorruption})
}

// Add validates the input, appends a new task, and persists. The returned
// error is always a *ValidationError. A failed persist does not roll the
// task back; it raises PersistenceDegraded instead.
func (s *Store) Add(name, category, scheduledTime string) (Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Task{}, &ValidationError{Code: signal.MissingName}
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return Task{}, &ValidationError{Code: signal.NameTooLong}
	}

	cat, ok := ParseCategory(category)
	if !ok {
		return Task{}, &ValidationError{Code: signal.MissingCategory}
	}

	scheduledTime = strings.TrimSpace(scheduledTime)
	if scheduledTime != "" && !ValidScheduledTime(scheduledTime) {
		return Task{}, &ValidationError{Code: signal.InvalidScheduledTime}
	}

	task := Task{
		ID:            uuid.NewString(),
		Name:          name,
		Category:      cat,
		ScheduledTime: scheduledTime,
	}

	s.items = append(s.items, task)

	if status := s.persist(); status != storage.StatusOK {
		s.logger.Warn("task kept in memory only", "id", task.ID, "storage", status)
		s.notify.Notify(signal.Signal{Kind: signal.PersistenceDegraded})
	}

	return task, nil
}

// ToggleCompletion flips the completed flag of the task with the given id.
// It returns false when no such task exists or when the persist failed and
// the flip was rolled back (PersistenceFailed is raised for the latter).
func (s *Store) ToggleCompletion(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	s.items[idx].Completed = !s.items[idx].Completed

	if status := s.persist(); status != storage.StatusOK {
		s.items[idx].Completed = !s.items[idx].Completed
		s.logger.Warn("toggle rolled back", "id", id, "storage", status)
		s.notify.Notify(signal.Signal{Kind: signal.PersistenceFailed})
		return false
	}

	return true
}

// Delete removes the task with the given id. User confirmation is the
// caller's precondition; the store does not prompt. On persist failure the
// task is re-inserted at its original position and PersistenceFailed raised.
func (s *Store) Delete(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)

	if status := s.persist(); status != storage.StatusOK {
		s.items = append(s.items[:idx], append([]Task{removed}, s.items[idx:]...)...)
		s.logger.Warn("delete rolled back", "id", id, "storage", status)
		s.notify.Notify(signal.Signal{Kind: signal.PersistenceFailed})
		return false
	}

	return true
}

// Progress returns the completion percentage, 0..100, rounded half away
// from zero. Recomputed on every call so it always reflects the collection.
func (s *Store) Progress() int {
	if len(s.items) == 0 {
		return 0
	}

	completed := 0
	for _, t := range s.items {
		if t.Completed {
			completed++
		}
	}

	return int(math.Round(100 * float64(completed) / float64(len(s.items))))
}

// Tasks returns a snapshot copy of the collection in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.items {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist() storage.Status {
	items := s.items
	if items == nil {
		// A nil slice marshals to "null", which is not a sequence.
		items = []Task{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		// A Task always marshals; treat the impossible as unavailable.
		return storage.StatusUnavailable
	}
	return s.kv.Set(RecordKey, string(data))
}
