package theme

import (
	"github.com/charmbracelet/log"

	"taskpad/pkg/signal"
	"taskpad/pkg/storage"
)

// RecordKey is the storage key the selected theme name lives under.
const RecordKey = "taskpad.theme"

// InputSnapshot is an opaque capture of in-progress form input, taken before
// a theme is applied and restored afterwards so a theme change never
// discards what the user was typing.
type InputSnapshot interface{}

// Applier is the presentation-layer boundary. The manager decides which
// theme is active; the applier turns a Definition into visible styling.
//
// SupportsStyling reports whether the styling mechanism is available at all.
// When it is not, the manager applies the minimal fallback via ApplyFallback
// and stays logically on the default theme.
type Applier interface {
	SupportsStyling() bool
	Apply(def Definition, animate bool) error
	ApplyFallback() error
	CaptureInput() InputSnapshot
	RestoreInput(snap InputSnapshot)
}

// Observer is notified after every completed theme transition.
type Observer func(old, new Name, def Definition)

// InitResult reports how startup resolution went.
type InitResult struct {
	Theme       Name
	FromStorage bool
	Degraded    bool // fallback styling is in effect
}

// Manager owns the active theme selection. Transitions happen only through
// SetTheme; the manager is never in an undefined state, whatever the
// environment withholds. Degradation order: full theme with transition, full
// theme without transition, hardcoded minimal fallback styling, and as a
// last resort a logically valid default with no styling applied at all.
type Manager struct {
	kv        storage.KV
	applier   Applier
	notify    signal.Notifier
	logger    *log.Logger
	current   Name
	degraded  bool
	observers []Observer
}

// NewManager creates a Manager in the default state. Initialize must be
// called once at startup to resolve and apply the persisted selection.
func NewManager(kv storage.KV, applier Applier, notify signal.Notifier, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		kv:      kv,
		applier: applier,
		notify:  notify,
		logger:  logger,
		current: Default,
	}
}

// Initialize resolves the startup theme and applies it without a transition.
// A stored but invalid name is discarded (InvalidStoredTheme); unavailable
// storage or an unsupported styling mechanism degrade per the ladder. The
// resolved theme is never re-written to storage here.
func (m *Manager) Initialize() InitResult {
	m.degraded = false

	if !m.applier.SupportsStyling() {
		m.logger.Warn("styling mechanism unsupported, using minimal fallback")
		m.notify.Notify(signal.Signal{Kind: signal.Capability, Code: signal.StyleVariables})
		if err := m.applier.ApplyFallback(); err != nil {
			m.logger.Error("fallback styling failed", "err", err)
		}
		m.current = Default
		m.degraded = true
		return InitResult{Theme: m.current, Degraded: true}
	}

	resolved := Default
	fromStorage := false

	if !m.kv.Available() {
		m.logger.Warn("storage unavailable, theme selection will not persist")
		m.notify.Notify(signal.Signal{Kind: signal.Capability, Code: signal.StorageUnavailable})
	} else if stored, ok := m.kv.Get(RecordKey); ok {
		if name, valid := Parse(stored); valid {
			resolved = name
			fromStorage = true
		} else {
			m.logger.Warn("discarding invalid stored theme", "value", stored)
			m.kv.Remove(RecordKey)
			m.notify.Notify(signal.Signal{Kind: signal.Validation, Code: signal.InvalidStoredTheme})
		}
	}

	def, _ := Lookup(resolved)
	if err := m.applier.Apply(def, false); err != nil {
		m.logger.Error("startup theme application failed", "theme", resolved, "err", err)
		m.notify.Notify(signal.Signal{Kind: signal.Application})
		if ferr := m.applier.ApplyFallback(); ferr != nil {
			m.logger.Error("fallback styling failed", "err", ferr)
		}
		m.current = Default
		m.degraded = true
		return InitResult{Theme: m.current, Degraded: true}
	}

	m.current = resolved
	return InitResult{Theme: resolved, FromStorage: fromStorage}
}

// SetTheme validates and applies a theme selection. An unknown name raises
// InvalidTheme and proceeds with the default instead of rejecting, so the
// system always ends in a valid visible state. Re-selecting the active theme
// is an idempotent no-op. On success the selection is persisted (failure is
// a non-fatal PersistenceWarning) and observers are notified.
func (m *Manager) SetTheme(name string) bool {
	parsed, ok := Parse(name)
	if !ok {
		m.logger.Warn("unknown theme requested", "value", name)
		m.notify.Notify(signal.Signal{Kind: signal.Validation, Code: signal.InvalidTheme})
		parsed = Default
	}

	if parsed == m.current && !m.degraded {
		return true
	}

	def, _ := Lookup(parsed)

	snap := m.applier.CaptureInput()

	if err := m.applier.Apply(def, true); err != nil {
		m.logger.Error("theme application failed", "theme", parsed, "err", err)
		m.notify.Notify(signal.Signal{Kind: signal.Application})
		return false
	}

	old := m.current
	m.current = parsed
	m.degraded = false

	if status := m.kv.Set(RecordKey, string(parsed)); status != storage.StatusOK {
		m.logger.Warn("theme selection not persisted", "storage", status)
		m.notify.Notify(signal.Signal{Kind: signal.PersistenceWarning})
	}

	m.applier.RestoreInput(snap)

	for _, observer := range m.observers {
		observer(old, parsed, def)
	}

	return true
}

// Current returns the active theme name. Always a valid member of the set.
func (m *Manager) Current() Name {
	return m.current
}

// CurrentDefinition returns the active theme's definition.
func (m *Manager) CurrentDefinition() Definition {
	def, _ := Lookup(m.current)
	return def
}

// AvailableThemes returns all definitions in selection order.
func (m *Manager) AvailableThemes() []Definition {
	return Definitions()
}

// ThemeConfig returns the definition for a given name.
func (m *Manager) ThemeConfig(name Name) (Definition, bool) {
	return Lookup(name)
}

// Degraded reports whether fallback styling is in effect.
func (m *Manager) Degraded() bool {
	return m.degraded
}

// Subscribe registers an observer for completed transitions.
func (m *Manager) Subscribe(o Observer) {
	m.observers = append(m.observers, o)
}

// Reset clears the persisted selection, discards any degraded markers, and
// re-runs startup resolution. Returns true when a full theme landed.
func (m *Manager) Reset() bool {
	m.kv.Remove(RecordKey)
	m.degraded = false
	res := m.Initialize()
	return !res.Degraded
}
