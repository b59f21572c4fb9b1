package tasks

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpad/pkg/signal"
	"taskpad/pkg/storage"
)

// fakeKV is an in-memory stand-in for the durable store with switchable
// availability and injectable write failures.
type fakeKV struct {
	data      map[string]string
	available bool
	setStatus storage.Status
	sets      int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}, available: true}
}

func (f *fakeKV) Available() bool { return f.available }

func (f *fakeKV) Get(key string) (string, bool) {
	if !f.available {
		return "", false
	}
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeKV) Set(key, value string) storage.Status {
	f.sets++
	if !f.available {
		return storage.StatusUnavailable
	}
	if f.setStatus != storage.StatusOK {
		return f.setStatus
	}
	f.data[key] = value
	return storage.StatusOK
}

func (f *fakeKV) Remove(key string) {
	if f.available {
		delete(f.data, key)
	}
}

// collector gathers raised signals for assertions.
type collector struct {
	signals []signal.Signal
}

func (c *collector) notify(s signal.Signal) {
	c.signals = append(c.signals, s)
}

func (c *collector) kinds() []signal.Kind {
	kinds := make([]signal.Kind, len(c.signals))
	for i, s := range c.signals {
		kinds[i] = s.Kind
	}
	return kinds
}

func newStore(t *testing.T) (*Store, *fakeKV, *collector) {
	t.Helper()
	kv := newFakeKV()
	c := &collector{}
	return NewStore(kv, c.notify, nil), kv, c
}

func TestAddValidation(t *testing.T) {
	cases := []struct {
		name     string
		taskName string
		category string
		time     string
		wantCode signal.Code
	}{
		{"empty name", "", "work", "", signal.MissingName},
		{"whitespace name", "   ", "work", "", signal.MissingName},
		{"name too long", strings.Repeat("x", 101), "work", "", signal.NameTooLong},
		{"missing category", "write report", "", "", signal.MissingCategory},
		{"unknown category", "write report", "chores", "", signal.MissingCategory},
		{"bad time", "write report", "work", "25:00", signal.InvalidScheduledTime},
		{"not a time", "write report", "work", "soon", signal.InvalidScheduledTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, kv, _ := newStore(t)

			_, err := store.Add(tc.taskName, tc.category, tc.time)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantCode, verr.Code)

			// A rejected input never mutates state or touches storage
			assert.Equal(t, 0, store.Len())
			assert.Equal(t, 0, kv.sets)
		})
	}
}

func TestAddSuccess(t *testing.T) {
	store, kv, c := newStore(t)

	task, err := store.Add("  Write report  ", "Work", "")
	require.NoError(t, err)

	assert.Equal(t, "Write report", task.Name)
	assert.Equal(t, CategoryWork, task.Category)
	assert.False(t, task.Completed)
	assert.NotEmpty(t, task.ID)
	assert.Empty(t, c.signals)

	// The collection is persisted on every successful mutation
	raw, ok := kv.Get(RecordKey)
	require.True(t, ok)
	var persisted []Task
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, []Task{task}, persisted)
}

func TestAddNameAtLimit(t *testing.T) {
	store, _, _ := newStore(t)

	_, err := store.Add(strings.Repeat("x", 100), "work", "")
	assert.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestAddUniqueIDs(t *testing.T) {
	store, _, _ := newStore(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		task, err := store.Add("task", "personal", "")
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "id %q issued twice", task.ID)
		seen[task.ID] = true
	}
}

func TestAddKeepsTaskWhenPersistFails(t *testing.T) {
	store, kv, c := newStore(t)
	kv.setStatus = storage.StatusQuotaExceeded

	task, err := store.Add("Write report", "work", "")
	require.NoError(t, err)

	// Optimistic: the task stays in memory, with a degraded warning
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, task, store.Tasks()[0])
	assert.Equal(t, []signal.Kind{signal.PersistenceDegraded}, c.kinds())
}

func TestToggleCompletion(t *testing.T) {
	store, kv, _ := newStore(t)
	task, err := store.Add("Read book", "study", "18:30")
	require.NoError(t, err)

	assert.False(t, store.ToggleCompletion("no-such-id"))

	assert.True(t, store.ToggleCompletion(task.ID))
	assert.True(t, store.Tasks()[0].Completed)

	assert.True(t, store.ToggleCompletion(task.ID))
	assert.False(t, store.Tasks()[0].Completed)

	var persisted []Task
	raw, _ := kv.Get(RecordKey)
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.False(t, persisted[0].Completed)
}

func TestToggleRollsBackWhenPersistFails(t *testing.T) {
	store, kv, c := newStore(t)
	task, err := store.Add("Read book", "study", "")
	require.NoError(t, err)

	kv.setStatus = storage.StatusUnavailable

	// Pessimistic: the flip is rolled back, unlike Add
	assert.False(t, store.ToggleCompletion(task.ID))
	assert.False(t, store.Tasks()[0].Completed)
	assert.Contains(t, c.kinds(), signal.PersistenceFailed)
}

func TestDelete(t *testing.T) {
	store, _, _ := newStore(t)
	first, _ := store.Add("first", "work", "")
	second, _ := store.Add("second", "study", "")
	third, _ := store.Add("third", "personal", "")

	assert.False(t, store.Delete("no-such-id"))

	assert.True(t, store.Delete(second.ID))

	// Insertion order survives the removal
	remaining := store.Tasks()
	require.Len(t, remaining, 2)
	assert.Equal(t, first.ID, remaining[0].ID)
	assert.Equal(t, third.ID, remaining[1].ID)
}

func TestDeleteReinsertsWhenPersistFails(t *testing.T) {
	store, kv, c := newStore(t)
	first, _ := store.Add("first", "work", "")
	second, _ := store.Add("second", "study", "")
	third, _ := store.Add("third", "personal", "")

	kv.setStatus = storage.StatusDenied

	assert.False(t, store.Delete(second.ID))
	assert.Contains(t, c.kinds(), signal.PersistenceFailed)

	// The removed task is back at its original position
	ids := []string{}
	for _, task := range store.Tasks() {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, ids)
}

func TestProgress(t *testing.T) {
	store, _, _ := newStore(t)
	assert.Equal(t, 0, store.Progress(), "empty collection is exactly 0")

	a, _ := store.Add("a", "work", "")
	b, _ := store.Add("b", "work", "")
	c, _ := store.Add("c", "work", "")
	assert.Equal(t, 0, store.Progress())

	store.ToggleCompletion(a.ID)
	assert.Equal(t, 33, store.Progress(), "1/3 rounds down")

	store.ToggleCompletion(b.ID)
	assert.Equal(t, 67, store.Progress(), "2/3 rounds up")

	store.ToggleCompletion(c.ID)
	assert.Equal(t, 100, store.Progress(), "all completed is exactly 100")

	store.Delete(c.ID)
	store.Delete(b.ID)
	store.ToggleCompletion(a.ID)
	assert.Equal(t, 0, store.Progress())
}

func TestLoadAbsentRecord(t *testing.T) {
	store, _, c := newStore(t)

	assert.Empty(t, store.Load())
	assert.Empty(t, c.signals)
}

func TestLoadUnavailableStorage(t *testing.T) {
	store, kv, c := newStore(t)
	kv.available = false

	// Unavailable storage reads as absent, not as corruption
	assert.Empty(t, store.Load())
	assert.Empty(t, c.signals)
}

func TestLoadRoundTrip(t *testing.T) {
	kv := newFakeKV()
	writer := NewStore(kv, nil, nil)
	first, _ := writer.Add("Write report", "work", "")
	second, _ := writer.Add("Read book", "study", "18:30")
	writer.ToggleCompletion(first.ID)

	reader := NewStore(kv, nil, nil)
	loaded := reader.Load()

	require.Len(t, loaded, 2)
	assert.Equal(t, first.ID, loaded[0].ID)
	assert.True(t, loaded[0].Completed)
	assert.Equal(t, second, loaded[1])
}

func TestLoadCorruptedRecord(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "definitely not json"},
		{"not a sequence", `{"id":"x"}`},
		{"json null", "null"},
		{"truncated array", `[{"id":"x"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, kv, c := newStore(t)
			kv.data[RecordKey] = tc.raw

			assert.Empty(t, store.Load())
			assert.Equal(t, []signal.Kind{signal.DataCorruption}, c.kinds())

			// The corrupted value is discarded, so a second load is clean
			c.signals = nil
			assert.Empty(t, store.Load())
			assert.Empty(t, c.signals)
		})
	}
}

func TestLoadFiltersInvalidTasks(t *testing.T) {
	store, kv, c := newStore(t)

	valid := Task{ID: "a", Name: "keep me", Category: CategoryWork}
	records := []Task{
		valid,
		{ID: "", Name: "no id", Category: CategoryWork},
		{ID: "b", Name: "", Category: CategoryStudy},
		{ID: "c", Name: "bad category", Category: "chores"},
		{ID: "d", Name: "bad time", Category: CategoryWork, ScheduledTime: "9am"},
	}
	raw, err := json.Marshal(records)
	require.NoError(t, err)
	kv.data[RecordKey] = string(raw)

	loaded := store.Load()

	require.Len(t, loaded, 1)
	assert.Equal(t, valid, loaded[0])

	require.Len(t, c.signals, 1)
	assert.Equal(t, signal.PartialDataLoss, c.signals[0].Kind)
	assert.Equal(t, 4, c.signals[0].Count)

	// The cleaned collection was re-persisted so the bad records are gone
	var persisted []Task
	require.NoError(t, json.Unmarshal([]byte(kv.data[RecordKey]), &persisted))
	assert.Equal(t, []Task{valid}, persisted)
}

func TestLoadAllTasksInvalid(t *testing.T) {
	store, kv, c := newStore(t)
	kv.data[RecordKey] = `[{"id":"","name":"","category":"nope"}]`
	before := kv.sets

	assert.Empty(t, store.Load())
	assert.Equal(t, []signal.Kind{signal.PartialDataLoss}, c.kinds())
	assert.Equal(t, before, kv.sets, "nothing survived, nothing to re-persist")
}
