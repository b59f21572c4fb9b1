// Package storage wraps the durable key-value medium both core subsystems
// persist through. The medium is of uncertain availability (a locked or
// read-only database file, a remote server that went away), so every call
// re-checks it and failures surface as explicit statuses, never as panics
// or propagated driver errors.
package storage

// Status reports the outcome of a write attempt.
type Status int

const (
	StatusOK Status = iota
	StatusUnavailable
	StatusQuotaExceeded
	StatusDenied
)

// String returns the status as a short label for log output.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnavailable:
		return "unavailable"
	case StatusQuotaExceeded:
		return "quota exceeded"
	case StatusDenied:
		return "denied"
	}
	return "unknown"
}

// KV is the durable key-value store contract.
//
// Available performs a live round-trip (write, read, delete of a sentinel
// key) and returns false on any failure instead of propagating it. Callers
// are expected to rely on Get/Set doing this check themselves; the method is
// exposed for one-time startup notices.
//
// Get returns the stored value and true, or ("", false) when the key is
// missing or the medium is unavailable. It never fails loudly.
//
// Set attempts to store the value and reports the outcome. Remove is
// best-effort and swallows errors entirely.
type KV interface {
	Available() bool
	Get(key string) (string, bool)
	Set(key, value string) Status
	Remove(key string)
}

// sentinelKey is used for availability round-trips. It never holds data.
const sentinelKey = "__taskpad_probe__"
