package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpad/pkg/signal"
	"taskpad/pkg/storage"
)

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

// fakeApplier records the call sequence so tests can assert ordering, for
// example that input is captured before Apply and restored after persist.
type fakeApplier struct {
	styling   bool
	applyErr  error
	applied   []Name
	animated  []bool
	fallbacks int
	calls     []string
}

func newFakeApplier() *fakeApplier {
	return &fakeApplier{styling: true}
}

func (f *fakeApplier) SupportsStyling() bool { return f.styling }

func (f *fakeApplier) Apply(def Definition, animate bool) error {
	f.calls = append(f.calls, "apply")
	if f.applyErr != nil {
		return f.applyErr
	}
	f.applied = append(f.applied, def.Name)
	f.animated = append(f.animated, animate)
	return nil
}

func (f *fakeApplier) ApplyFallback() error {
	f.calls = append(f.calls, "fallback")
	f.fallbacks++
	return nil
}

func (f *fakeApplier) CaptureInput() InputSnapshot {
	f.calls = append(f.calls, "capture")
	return "draft input"
}

func (f *fakeApplier) RestoreInput(snap InputSnapshot) {
	f.calls = append(f.calls, "restore")
}

type collector struct {
	signals []signal.Signal
}

func (c *collector) notify(s signal.Signal) {
	c.signals = append(c.signals, s)
}

func (c *collector) codes() []signal.Code {
	codes := make([]signal.Code, len(c.signals))
	for i, s := range c.signals {
		codes[i] = s.Code
	}
	return codes
}

func newManager(t *testing.T) (*Manager, *fakeKV, *fakeApplier, *collector) {
	t.Helper()
	kv := newFakeKV()
	applier := newFakeApplier()
	c := &collector{}
	return NewManager(kv, applier, c.notify, nil), kv, applier, c
}

func TestInitializeDefault(t *testing.T) {
	mgr, kv, applier, c := newManager(t)

	res := mgr.Initialize()

	assert.Equal(t, White, res.Theme)
	assert.False(t, res.FromStorage)
	assert.False(t, res.Degraded)
	assert.Equal(t, []Name{White}, applier.applied)
	assert.Equal(t, []bool{false}, applier.animated, "startup applies without transition")
	assert.Empty(t, c.signals)

	// Startup resolution never writes the selection back
	assert.Equal(t, 0, kv.sets)
	_, stored := kv.Get(RecordKey)
	assert.False(t, stored)
}

func TestInitializeFromStorage(t *testing.T) {
	mgr, kv, applier, c := newManager(t)
	kv.data[RecordKey] = "developer"

	res := mgr.Initialize()

	assert.Equal(t, Developer, res.Theme)
	assert.True(t, res.FromStorage)
	assert.Equal(t, Developer, mgr.Current())
	assert.Equal(t, []Name{Developer}, applier.applied)
	assert.Empty(t, c.signals)
	assert.Equal(t, 0, kv.sets)
}

func TestInitializeInvalidStoredName(t *testing.T) {
	mgr, kv, applier, c := newManager(t)
	kv.data[RecordKey] = "neon"

	res := mgr.Initialize()

	assert.Equal(t, White, res.Theme)
	assert.False(t, res.FromStorage)
	assert.Equal(t, []signal.Code{signal.InvalidStoredTheme}, c.codes())
	assert.Equal(t, []Name{White}, applier.applied)

	// The invalid value is discarded, not preserved for next start
	_, ok := kv.data[RecordKey]
	assert.False(t, ok)
}

func TestInitializeStorageUnavailable(t *testing.T) {
	mgr, kv, _, c := newManager(t)
	kv.available = false

	res := mgr.Initialize()

	assert.Equal(t, White, res.Theme)
	assert.False(t, res.Degraded)
	require.Len(t, c.signals, 1)
	assert.Equal(t, signal.Capability, c.signals[0].Kind)
	assert.Equal(t, signal.StorageUnavailable, c.signals[0].Code)
}

func TestInitializeStylingUnsupported(t *testing.T) {
	mgr, kv, applier, c := newManager(t)
	applier.styling = false
	kv.data[RecordKey] = "dark"

	res := mgr.Initialize()

	assert.True(t, res.Degraded)
	assert.Equal(t, White, res.Theme)
	assert.Equal(t, White, mgr.Current(), "logically still on the default")
	assert.True(t, mgr.Degraded())
	assert.Equal(t, 1, applier.fallbacks)
	assert.Empty(t, applier.applied)
	require.Len(t, c.signals, 1)
	assert.Equal(t, signal.Capability, c.signals[0].Kind)
	assert.Equal(t, signal.StyleVariables, c.signals[0].Code)
}

func TestInitializeApplyFailure(t *testing.T) {
	mgr, kv, applier, c := newManager(t)
	applier.applyErr = errors.New("render broke")
	kv.data[RecordKey] = "dark"

	res := mgr.Initialize()

	assert.True(t, res.Degraded)
	assert.Equal(t, White, mgr.Current())
	assert.Equal(t, 1, applier.fallbacks)
	require.Len(t, c.signals, 1)
	assert.Equal(t, signal.Application, c.signals[0].Kind)
}

func TestSetTheme(t *testing.T) {
	mgr, kv, applier, c := newManager(t)
	mgr.Initialize()

	var gotOld, gotNew Name
	var gotDef Definition
	mgr.Subscribe(func(old, new Name, def Definition) {
		gotOld, gotNew, gotDef = old, new, def
	})

	assert.True(t, mgr.SetTheme("dark"))

	assert.Equal(t, Dark, mgr.Current())
	assert.Equal(t, "dark", kv.data[RecordKey])
	assert.Equal(t, White, gotOld)
	assert.Equal(t, Dark, gotNew)
	assert.Equal(t, Dark, gotDef.Name)
	assert.Empty(t, c.signals)

	// Transition applies with animation, after capturing in-progress input
	assert.Equal(t, []bool{false, true}, applier.animated)
	assert.Equal(t, []string{"apply", "capture", "apply", "restore"}, applier.calls)
}

func TestSetThemeIdempotent(t *testing.T) {
	mgr, kv, applier, _ := newManager(t)
	mgr.Initialize()
	require.True(t, mgr.SetTheme("student"))

	applies := len(applier.applied)
	sets := kv.sets

	assert.True(t, mgr.SetTheme("student"))

	assert.Equal(t, applies, len(applier.applied), "no re-apply")
	assert.Equal(t, sets, kv.sets, "no re-persist")
}

func TestSetThemeUnknownName(t *testing.T) {
	mgr, kv, _, c := newManager(t)
	mgr.Initialize()
	require.True(t, mgr.SetTheme("dark"))

	// An unknown name substitutes the default instead of rejecting
	assert.True(t, mgr.SetTheme("neon"))
	assert.Equal(t, White, mgr.Current())
	assert.Equal(t, "white", kv.data[RecordKey])
	assert.Contains(t, c.codes(), signal.InvalidTheme)
}

func TestSetThemeApplyFailure(t *testing.T) {
	mgr, kv, applier, c := newManager(t)
	mgr.Initialize()

	observed := false
	mgr.Subscribe(func(old, new Name, def Definition) { observed = true })

	applier.applyErr = errors.New("render broke")
	sets := kv.sets

	assert.False(t, mgr.SetTheme("dark"))

	// The previous theme stays active and nothing downstream fires
	assert.Equal(t, White, mgr.Current())
	assert.Equal(t, sets, kv.sets)
	assert.False(t, observed)
	require.Len(t, c.signals, 1)
	assert.Equal(t, signal.Application, c.signals[0].Kind)
}

func TestSetThemePersistFailure(t *testing.T) {
	mgr, kv, _, c := newManager(t)
	mgr.Initialize()
	kv.setStatus = storage.StatusQuotaExceeded

	assert.True(t, mgr.SetTheme("dark"))

	// The theme is applied for the session even though it did not persist
	assert.Equal(t, Dark, mgr.Current())
	require.Len(t, c.signals, 1)
	assert.Equal(t, signal.PersistenceWarning, c.signals[0].Kind)
}

func TestSetThemeRecoversFromDegraded(t *testing.T) {
	mgr, _, applier, _ := newManager(t)
	applier.styling = false
	mgr.Initialize()
	require.True(t, mgr.Degraded())

	// Styling comes back; re-selecting the default must re-apply it
	applier.styling = true
	assert.True(t, mgr.SetTheme("white"))
	assert.False(t, mgr.Degraded())
	assert.Equal(t, []Name{White}, applier.applied)
}

func TestReset(t *testing.T) {
	mgr, kv, applier, _ := newManager(t)
	mgr.Initialize()
	require.True(t, mgr.SetTheme("professional"))

	assert.True(t, mgr.Reset())

	assert.Equal(t, White, mgr.Current())
	_, ok := kv.data[RecordKey]
	assert.False(t, ok, "persisted selection cleared")
	assert.Equal(t, White, applier.applied[len(applier.applied)-1])
}

func TestResetWhileStylingUnsupported(t *testing.T) {
	mgr, _, applier, _ := newManager(t)
	applier.styling = false
	mgr.Initialize()

	assert.False(t, mgr.Reset(), "fallback styling is still the best available")
	assert.True(t, mgr.Degraded())
}
