package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestStore(ttl time.Duration) *VerificationStore {
	return NewVerificationStore(ttl, zap.NewNop())
}

func TestVerificationStore_StoreAndVerify(t *testing.T) {
	store := newTestStore(5 * time.Minute)

	store.Store("5511999999999", "123456")

	assert.True(t, store.Verify("5511999999999", "123456"))
}

func TestVerificationStore_OneTimeUse(t *testing.T) {
	store := newTestStore(5 * time.Minute)

	store.Store("5511999999999", "123456")

	assert.True(t, store.Verify("5511999999999", "123456"))
	assert.False(t, store.Verify("5511999999999", "123456"),
		"a consumed code must not be replayable")
}

func TestVerificationStore_UnknownPhone(t *testing.T) {
	store := newTestStore(5 * time.Minute)

	assert.False(t, store.Verify("5511999999999", "123456"))
}

func TestVerificationStore_WrongCodeKeepsEntry(t *testing.T) {
	store := newTestStore(5 * time.Minute)

	store.Store("5511999999999", "123456")

	assert.False(t, store.Verify("5511999999999", "654321"))
	assert.True(t, store.Verify("5511999999999", "123456"),
		"a wrong attempt must not consume the entry")
}

func TestVerificationStore_ResendOverwrites(t *testing.T) {
	store := newTestStore(5 * time.Minute)

	store.Store("5511999999999", "111111")
	store.Store("5511999999999", "222222")

	assert.False(t, store.Verify("5511999999999", "111111"),
		"a re-send invalidates the previous code")
	assert.True(t, store.Verify("5511999999999", "222222"))
}

func TestVerificationStore_Expiry(t *testing.T) {
	store := newTestStore(5 * time.Minute)

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Store("5511999999999", "123456")

	// Just inside the window
	current = current.Add(5 * time.Minute)
	assert.True(t, store.Verify("5511999999999", "123456"))

	store.Store("5511999999999", "654321")

	// Past the window: the entry is purged on the first attempt
	current = current.Add(5*time.Minute + time.Second)
	assert.False(t, store.Verify("5511999999999", "654321"))
	assert.False(t, store.Pending("5511999999999"), "expired entry should be removed")

	// Still false with the correct code until a new Store
	assert.False(t, store.Verify("5511999999999", "654321"))
}

func TestVerificationStore_IndependentPhones(t *testing.T) {
	store := newTestStore(5 * time.Minute)

	store.Store("5511999999999", "111111")
	store.Store("595981123456", "222222")

	assert.False(t, store.Verify("5511999999999", "222222"))
	assert.True(t, store.Verify("5511999999999", "111111"))
	assert.True(t, store.Verify("595981123456", "222222"))
}
