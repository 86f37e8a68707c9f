// Package tokenstore keeps a single SessionToken in a persistent key/value slot.
//
// Persistence is advisory: every storage failure is logged and degrades to
// "no token present", so callers can always continue as an anonymous user.
package tokenstore

import (
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/clientportal/sessionbridge/internal/model"
)

// DefaultKey is the slot holding the bridge token.
const DefaultKey = "portal_auth_token"

// record is the persisted JSON shape. expires_at is unix milliseconds.
type record struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
}

// Store owns the persisted representation of one SessionToken.
type Store struct {
	kv  KV
	key string
	now func() time.Time
	log *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option { return func(s *Store) { s.key = key } }

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithLogger sets the logger used for storage failures.
func WithLogger(l *zap.Logger) Option { return func(s *Store) { s.log = l } }

// New constructs a Store over kv.
func New(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, key: DefaultKey, now: time.Now, log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Key returns the storage key of this store.
func (s *Store) Key() string { return s.key }

// Store overwrites the slot with tok. Tokens without an expiry are refused.
func (s *Store) Store(tok model.SessionToken) {
	if tok.ExpiresAt.IsZero() {
		s.log.Warn("refusing to persist token without expiry", zap.String("key", s.key))
		return
	}
	b, err := json.Marshal(record{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.ExpiresAt.UnixMilli(),
		UserID:       tok.UserID,
		Email:        tok.Email,
	})
	if err != nil {
		s.log.Error("encode auth token", zap.Error(err))
		return
	}
	if err := s.kv.Set(s.key, string(b)); err != nil {
		s.log.Error("store auth token", zap.String("key", s.key), zap.Error(err))
		return
	}
	s.log.Debug("auth token stored", zap.String("key", s.key), zap.String("user_id", tok.UserID))
}

// Get returns the live token. Malformed and expired values are removed.
func (s *Store) Get() (model.SessionToken, bool) {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.log.Warn("read auth token", zap.String("key", s.key), zap.Error(err))
		return model.SessionToken{}, false
	}
	if !ok {
		return model.SessionToken{}, false
	}

	tok, err := decode(raw)
	if err != nil {
		s.log.Warn("discarding malformed auth token", zap.String("key", s.key), zap.Error(err))
		s.Clear()
		return model.SessionToken{}, false
	}
	if tok.Expired(s.now()) {
		s.log.Debug("discarding expired auth token", zap.String("key", s.key))
		s.Clear()
		return model.SessionToken{}, false
	}
	return tok, true
}

// Clear removes the slot. Idempotent.
func (s *Store) Clear() {
	if err := s.kv.Delete(s.key); err != nil {
		s.log.Warn("clear auth token", zap.String("key", s.key), zap.Error(err))
	}
}

func decode(raw string) (model.SessionToken, error) {
	var r record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return model.SessionToken{}, err
	}
	if r.AccessToken == "" || r.UserID == "" || r.ExpiresAt <= 0 {
		return model.SessionToken{}, errors.New("incomplete token record")
	}
	return model.SessionToken{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    time.UnixMilli(r.ExpiresAt),
		UserID:       r.UserID,
		Email:        r.Email,
	}, nil
}
