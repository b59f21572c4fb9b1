// Package signal defines the closed set of non-fatal conditions the core
// subsystems raise alongside otherwise-completed operations. The presentation
// layer renders these as status messages; none of them stop the session.
package signal

import "fmt"

// Kind is the broad class of a condition.
type Kind int

const (
	Validation Kind = iota
	Capability
	PersistenceDegraded
	PersistenceFailed
	PersistenceWarning
	DataCorruption
	PartialDataLoss
	Application
)

// Code narrows a Kind down to the specific condition.
type Code int

const (
	CodeNone Code = iota
	MissingName
	NameTooLong
	MissingCategory
	InvalidScheduledTime
	InvalidTheme
	InvalidStoredTheme
	StyleVariables
	StorageUnavailable
)

// Signal is one raised condition. Count is only meaningful for
// PartialDataLoss, where it holds the number of dropped records.
type Signal struct {
	Kind  Kind
	Code  Code
	Count int
}

// Notifier receives signals as they are raised. A nil Notifier is allowed
// everywhere; raising through it is a no-op.
type Notifier func(Signal)

// Notify raises s through n if n is non-nil.
func (n Notifier) Notify(s Signal) {
	if n != nil {
		n(s)
	}
}

// Message returns a short user-facing description of the signal.
func (s Signal) Message() string {
	switch s.Kind {
	case Validation:
		switch s.Code {
		case MissingName:
			return "task name is required"
		case NameTooLong:
			return "task name is too long (max 100 characters)"
		case MissingCategory:
			return "pick a category: work, study or personal"
		case InvalidScheduledTime:
			return "scheduled time must be HH:MM (24-hour)"
		case InvalidTheme:
			return "unknown theme, falling back to white"
		case InvalidStoredTheme:
			return "stored theme was invalid and has been cleared"
		}
		return "invalid input"
	case Capability:
		switch s.Code {
		case StyleVariables:
			return "terminal does not support colors, using plain styling"
		case StorageUnavailable:
			return "storage is unavailable, changes will not survive a restart"
		}
		return "missing capability"
	case PersistenceDegraded:
		return "task saved for this session only, storage write failed"
	case PersistenceFailed:
		return "could not save change, it has been undone"
	case PersistenceWarning:
		return "theme applied but could not be saved"
	case DataCorruption:
		return "stored tasks were corrupted and have been discarded"
	case PartialDataLoss:
		return fmt.Sprintf("dropped %d invalid stored task(s)", s.Count)
	case Application:
		return "could not apply theme"
	}
	return "unknown condition"
}

// String implements fmt.Stringer for log output.
func (s Signal) String() string {
	return s.Message()
}
