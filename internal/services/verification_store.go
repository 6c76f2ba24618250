package services

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/observability"
)

// verificationEntry is one pending code. At most one entry exists per
// phone number; a re-send overwrites the previous code.
type verificationEntry struct {
	code      string
	expiresAt time.Time
}

// VerificationStore keeps pending phone verification codes in process
// memory. Entries are lost on restart, which is acceptable: codes
// expire after a few minutes and a new one can always be requested.
type VerificationStore struct {
	mu      sync.Mutex
	entries map[string]verificationEntry
	ttl     time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

// NewVerificationStore creates a store whose entries expire after ttl
func NewVerificationStore(ttl time.Duration, logger *zap.Logger) *VerificationStore {
	return &VerificationStore{
		entries: make(map[string]verificationEntry),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

// Store saves a code for the given canonical phone number, replacing
// any previous entry. Last writer wins: an unconsumed earlier code
// becomes invalid immediately.
func (s *VerificationStore) Store(phone, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[phone] = verificationEntry{
		code:      code,
		expiresAt: s.now().Add(s.ttl),
	}

	s.logger.Debug("verification code stored",
		zap.String("phone", observability.MaskPhone(phone)),
		zap.Time("expires_at", s.entries[phone].expiresAt),
	)
}

// Verify checks a submitted code against the stored entry. A correct
// code consumes the entry (one-time use); an expired entry is purged on
// this first attempt; a wrong code leaves the entry in place so the
// user may retry until expiry. The caller cannot distinguish "wrong
// code" from "no code was ever sent".
func (s *VerificationStore) Verify(phone, inputCode string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[phone]
	if !ok {
		return false
	}

	if s.now().After(entry.expiresAt) {
		delete(s.entries, phone)
		s.logger.Debug("verification code expired",
			zap.String("phone", observability.MaskPhone(phone)))
		return false
	}

	if entry.code == inputCode {
		delete(s.entries, phone)
		return true
	}

	return false
}

// Pending reports whether a live (possibly expired but not yet purged)
// entry exists for the phone number
func (s *VerificationStore) Pending(phone string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[phone]
	return ok
}
