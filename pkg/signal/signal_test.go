package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageCoversEveryCondition(t *testing.T) {
	signals := []Signal{
		{Kind: Validation, Code: MissingName},
		{Kind: Validation, Code: NameTooLong},
		{Kind: Validation, Code: MissingCategory},
		{Kind: Validation, Code: InvalidScheduledTime},
		{Kind: Validation, Code: InvalidTheme},
		{Kind: Validation, Code: InvalidStoredTheme},
		{Kind: Capability, Code: StyleVariables},
		{Kind: Capability, Code: StorageUnavailable},
		{Kind: PersistenceDegraded},
		{Kind: PersistenceFailed},
		{Kind: PersistenceWarning},
		{Kind: DataCorruption},
		{Kind: PartialDataLoss, Count: 3},
		{Kind: Application},
	}

	seen := map[string]bool{}
	for _, s := range signals {
		msg := s.Message()
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "duplicate message %q", msg)
		seen[msg] = true
	}
}

func TestPartialDataLossIncludesCount(t *testing.T) {
	s := Signal{Kind: PartialDataLoss, Count: 4}
	assert.Contains(t, s.Message(), "4")
}

func TestNilNotifier(t *testing.T) {
	var n Notifier
	assert.NotPanics(t, func() {
		n.Notify(Signal{Kind: DataCorruption})
	})
}
