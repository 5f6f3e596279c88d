// Package storage provides token holders and the in-memory token store.
package storage

import (
	"context"
	"crypto/rand"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/authkit-go/internal/shardmap"
	"github.com/yndnr/authkit-go/pkg/authtoken"
	"github.com/yndnr/authkit-go/pkg/secret"
)

// EntryIDPrefix is the prefix for store entry IDs.
const EntryIDPrefix = "akse-"

// DefaultQuotaPerSubject is the default number of live tokens a single
// subject may hold.
const DefaultQuotaPerSubject = 50

// Store errors.
var (
	// ErrTokenNotFound indicates no entry matches the lookup.
	ErrTokenNotFound = authtoken.NewError("AK-STOR-4040", "token not found")

	// ErrTokenExpired indicates the matching entry has expired.
	ErrTokenExpired = authtoken.NewError("AK-STOR-4041", "token expired")

	// ErrHashConflict indicates the secret hash is already in use.
	ErrHashConflict = authtoken.NewError("AK-STOR-4090", "secret hash conflict")

	// ErrQuotaExceeded indicates the subject reached its token quota.
	ErrQuotaExceeded = authtoken.NewError("AK-STOR-4002", "subject token quota exceeded")

	// ErrInvalidSecretHash indicates a malformed secret hash.
	ErrInvalidSecretHash = authtoken.NewError("AK-STOR-4000", "invalid secret hash")
)

// Entry is a stored token: its state snapshot plus store bookkeeping.
type Entry struct {
	// ID is the unique entry identifier (akse-{ulid_lowercase}).
	ID string `json:"id"`

	// Subject is the identifier of the principal the token was issued for.
	Subject string `json:"subject"`

	// SecretHash is the hash of the secret presented to look the entry up.
	SecretHash string `json:"secret_hash"`

	// State is the token state snapshot.
	State authtoken.State `json:"state"`

	// CreatedAt is the creation timestamp (Unix milliseconds).
	CreatedAt int64 `json:"created_at"`

	// ExpiresAt is the absolute expiration timestamp (Unix milliseconds).
	// Zero means no expiration.
	ExpiresAt int64 `json:"expires_at"`
}

// Expired returns true if the entry has expired.
func (e *Entry) Expired() bool {
	if e.ExpiresAt == 0 {
		return false
	}
	return time.Now().UnixMilli() > e.ExpiresAt
}

// Clone creates a copy with its own role slice and attribute map.
// The principal payload is shared; stored principals are read-only.
func (e *Entry) Clone() *Entry {
	clone := *e

	clone.State.Roles = make([]string, len(e.State.Roles))
	copy(clone.State.Roles, e.State.Roles)

	clone.State.Attributes = make(map[string]any, len(e.State.Attributes))
	for k, v := range e.State.Attributes {
		clone.State.Attributes[k] = v
	}

	return &clone
}

// NewEntryID generates a new entry ID using ULID.
func NewEntryID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
	if err != nil {
		return "", err
	}
	return EntryIDPrefix + strings.ToLower(id.String()), nil
}

// Store is an in-memory token store keyed by secret hash.
//
// Entries carry token state snapshots, not live tokens; a lookup
// rebuilds a fresh token from the stored state.
type Store struct {
	// Primary index: entry ID -> Entry
	entries *shardmap.Map[*Entry]

	// Secondary index: secret hash -> entry ID
	hashes *shardmap.Map[string]

	// Secondary index: subject -> set of entry IDs
	subjects map[string]map[string]struct{}

	ttl     time.Duration
	quota   int
	logger  *slog.Logger
	metrics *Metrics

	// Global lock for operations spanning multiple indexes.
	mu sync.Mutex
}

// Option configures the Store.
type Option func(*Store)

// WithTTL sets the lifetime applied to new entries. Zero disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithQuotaPerSubject sets the maximum live tokens per subject.
func WithQuotaPerSubject(quota int) Option {
	return func(s *Store) {
		s.quota = quota
	}
}

// WithLogger sets the store logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithMetrics attaches a metrics registry to the store.
func WithMetrics(m *Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// NewStore creates an in-memory token store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		entries:  shardmap.New[*Entry](),
		hashes:   shardmap.New[string](),
		subjects: make(map[string]map[string]struct{}),
		quota:    DefaultQuotaPerSubject,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Put stores a token snapshot under the given secret hash.
//
// The subject is the principal identifier the quota is accounted
// against. The secret hash must be in aksh_ form; plaintext secrets
// are never accepted.
func (s *Store) Put(_ context.Context, subject string, tok *authtoken.Token, secretHash string) (*Entry, error) {
	if secret.NormalizeHash(secretHash) == "" {
		return nil, ErrInvalidSecretHash
	}
	secretHash = strings.ToLower(secretHash)

	id, err := NewEntryID()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quota > 0 && len(s.subjects[subject]) >= s.quota {
		return nil, ErrQuotaExceeded
	}
	if s.hashes.Has(secretHash) {
		return nil, ErrHashConflict
	}

	now := time.Now().UnixMilli()
	entry := &Entry{
		ID:         id,
		Subject:    subject,
		SecretHash: secretHash,
		State:      tok.State(),
		CreatedAt:  now,
	}
	if s.ttl > 0 {
		entry.ExpiresAt = now + s.ttl.Milliseconds()
	}

	s.entries.Set(id, entry)
	s.hashes.Set(secretHash, id)
	if s.subjects[subject] == nil {
		s.subjects[subject] = make(map[string]struct{})
	}
	s.subjects[subject][id] = struct{}{}

	s.metrics.recordStored()
	s.metrics.setActive(s.entries.Count())
	s.logger.Debug("token stored", "entry_id", id, "subject", subject)

	return entry.Clone(), nil
}

// GetBySecretHash rebuilds the token stored under the secret hash.
func (s *Store) GetBySecretHash(_ context.Context, secretHash string) (*authtoken.Token, error) {
	id, ok := s.hashes.Get(strings.ToLower(secretHash))
	if !ok {
		s.metrics.recordLookup("miss")
		return nil, ErrTokenNotFound
	}

	entry, ok := s.entries.Get(id)
	if !ok {
		// Index inconsistency - clean up the orphaned hash.
		s.hashes.Delete(strings.ToLower(secretHash))
		s.metrics.recordLookup("miss")
		return nil, ErrTokenNotFound
	}

	if entry.Expired() {
		s.metrics.recordLookup("expired")
		return nil, ErrTokenExpired
	}

	tok := authtoken.New()
	if err := tok.Restore(entry.Clone().State); err != nil {
		return nil, err
	}

	s.metrics.recordLookup("hit")
	return tok, nil
}

// Revoke removes the entry stored under the secret hash.
func (s *Store) Revoke(_ context.Context, secretHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.hashes.Pop(strings.ToLower(secretHash))
	if !ok {
		return ErrTokenNotFound
	}

	entry, ok := s.entries.Pop(id)
	if ok {
		s.removeFromSubject(entry.Subject, id)
	}

	s.metrics.recordRevoked()
	s.metrics.setActive(s.entries.Count())
	s.logger.Debug("token revoked", "entry_id", id)

	return nil
}

// RevokeSubject removes every entry issued for the subject.
// Returns the number of entries removed.
func (s *Store) RevokeSubject(_ context.Context, subject string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.subjects[subject]
	if len(ids) == 0 {
		return 0, nil
	}

	revoked := 0
	for id := range ids {
		entry, ok := s.entries.Pop(id)
		if !ok {
			continue
		}
		s.hashes.Delete(entry.SecretHash)
		revoked++
		s.metrics.recordRevoked()
	}
	delete(s.subjects, subject)

	s.metrics.setActive(s.entries.Count())
	s.logger.Info("subject tokens revoked", "subject", subject, "count", revoked)

	return revoked, nil
}

// PurgeExpired removes all expired entries.
// Returns the number of entries removed.
func (s *Store) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var toDelete []string
	s.entries.Range(func(id string, entry *Entry) bool {
		if entry.Expired() {
			toDelete = append(toDelete, id)
		}
		return true
	})

	for _, id := range toDelete {
		entry, ok := s.entries.Pop(id)
		if !ok {
			continue
		}
		s.hashes.Delete(entry.SecretHash)
		s.removeFromSubject(entry.Subject, id)
		s.metrics.recordExpired()
	}

	s.metrics.setActive(s.entries.Count())
	return len(toDelete)
}

// Count returns the total number of entries, expired included.
func (s *Store) Count() int {
	return s.entries.Count()
}

// CountBySubject returns the number of entries issued for a subject.
func (s *Store) CountBySubject(subject string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subjects[subject])
}

// removeFromSubject drops an entry id from the subject index.
// Caller must hold s.mu.
func (s *Store) removeFromSubject(subject, id string) {
	ids := s.subjects[subject]
	if ids == nil {
		return
	}
	delete(ids, id)
	if len(ids) == 0 {
		delete(s.subjects, subject)
	}
}
