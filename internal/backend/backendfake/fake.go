// Package backendfake provides an in-memory backend.Backend for tests.
package backendfake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/clientportal/sessionbridge/internal/backend"
	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/model"
)

var _ backend.Backend = (*Backend)(nil)

type account struct {
	id       string
	email    string
	password string
}

// Backend is a scriptable in-memory backend. Exported knobs may be set before use
// or guarded by Lock/Unlock while other goroutines run.
type Backend struct {
	mu sync.Mutex

	accounts map[string]account // by email
	profiles map[string]model.UserProfile
	session  *backend.Session
	nextID   int
	hub      *backend.Hub

	// Knobs.
	ExistsDelay   time.Duration
	ProfileDelay  time.Duration
	ExistsErr     error
	GetProfileErr error
	UpdateErr     error
	SignOutErr    error
	GetSessionErr error
	SetSessionErr error
	SessionTTL    time.Duration

	// Recorded calls.
	SetSessionCalls []string // access tokens adopted
	SignOutCalls    int
	UpdateCalls     []model.ProfileUpdate
}

// New returns an empty fake backend.
func New() *Backend {
	return &Backend{
		accounts:   map[string]account{},
		profiles:   map[string]model.UserProfile{},
		hub:        backend.NewHub(),
		SessionTTL: time.Hour,
	}
}

// Lock guards knob changes while the fake is in use.
func (b *Backend) Lock() { b.mu.Lock() }

// Unlock releases Lock.
func (b *Backend) Unlock() { b.mu.Unlock() }

// AddAccount registers credentials and returns the new user id.
func (b *Backend) AddAccount(email, password string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addAccountLocked(email, password)
}

func (b *Backend) addAccountLocked(email, password string) string {
	b.nextID++
	id := fmt.Sprintf("user-%d", b.nextID)
	b.accounts[strings.ToLower(email)] = account{id: id, email: email, password: password}
	return id
}

// PutProfile stores a profile row.
func (b *Backend) PutProfile(p model.UserProfile) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profiles[p.ID] = p
}

// Profile returns the stored row, if any.
func (b *Backend) Profile(id string) (model.UserProfile, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.profiles[id]
	return p, ok
}

// SetCurrentSession installs a session without emitting an event.
func (b *Backend) SetCurrentSession(s *backend.Session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.session = s
}

// CurrentSession returns the active session.
func (b *Backend) CurrentSession() *backend.Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session
}

// Emit publishes an event as if it came from another tab.
func (b *Backend) Emit(ev backend.Event) { b.hub.Publish(ev) }

func (b *Backend) newSession(id model.Identity, access, refresh string) *backend.Session {
	now := time.Now()
	return &backend.Session{
		AccessToken:      access,
		RefreshToken:     refresh,
		ExpiresAt:        now.Add(b.SessionTTL),
		RefreshExpiresAt: now.Add(30 * 24 * time.Hour),
		User:             id,
	}
}

func (b *Backend) GetSession(context.Context) (*backend.Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.GetSessionErr != nil {
		return nil, b.GetSessionErr
	}
	return b.session, nil
}

// SetSession accepts access tokens of the form "token-<userID>" and anything
// registered through AddAccount's ids.
func (b *Backend) SetSession(_ context.Context, access, refresh string) (*backend.Session, error) {
	b.mu.Lock()
	b.SetSessionCalls = append(b.SetSessionCalls, access)
	if b.SetSessionErr != nil {
		err := b.SetSessionErr
		b.mu.Unlock()
		return nil, err
	}
	id, ok := b.identityForTokenLocked(access)
	if !ok {
		b.mu.Unlock()
		return nil, errs.ErrUnauthorized
	}
	if refresh == "" {
		refresh = "refresh-" + id.ID
	}
	s := b.newSession(id, access, refresh)
	b.session = s
	b.mu.Unlock()

	b.hub.Publish(backend.Event{Kind: backend.EventSignedIn, Session: s})
	return s, nil
}

func (b *Backend) identityForTokenLocked(access string) (model.Identity, bool) {
	userID, ok := strings.CutPrefix(access, "token-")
	if !ok {
		return model.Identity{}, false
	}
	for _, a := range b.accounts {
		if a.id == userID {
			return model.Identity{ID: a.id, Email: a.email}, true
		}
	}
	return model.Identity{}, false
}

func (b *Backend) SignInWithPassword(_ context.Context, email, password string) (*backend.Session, error) {
	b.mu.Lock()
	a, ok := b.accounts[strings.ToLower(email)]
	if !ok || a.password != password {
		b.mu.Unlock()
		return nil, errs.ErrInvalidCredentials
	}
	id := model.Identity{ID: a.id, Email: a.email}
	s := b.newSession(id, "token-"+a.id, "refresh-"+a.id)
	b.session = s
	b.mu.Unlock()

	b.hub.Publish(backend.Event{Kind: backend.EventSignedIn, Session: s})
	return s, nil
}

func (b *Backend) SignUp(_ context.Context, email, password string) (model.Identity, error) {
	if email == "" || password == "" {
		return model.Identity{}, errs.ErrInvalidInput
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.accounts[strings.ToLower(email)]; ok {
		return model.Identity{}, errs.ErrAlreadyExists
	}
	id := b.addAccountLocked(email, password)
	return model.Identity{ID: id, Email: email}, nil
}

func (b *Backend) SignOut(context.Context) error {
	b.mu.Lock()
	b.SignOutCalls++
	err := b.SignOutErr
	if err == nil {
		b.session = nil
	}
	b.mu.Unlock()

	if err != nil {
		return err
	}
	b.hub.Publish(backend.Event{Kind: backend.EventSignedOut})
	return nil
}

func (b *Backend) OnAuthStateChange(fn func(backend.Event)) backend.Subscription {
	return b.hub.Subscribe(fn)
}

func (b *Backend) ProfileExists(ctx context.Context, userID string) (bool, error) {
	b.mu.Lock()
	delay, err := b.ExistsDelay, b.ExistsErr
	b.mu.Unlock()
	if err := sleep(ctx, delay); err != nil {
		return false, err
	}
	if err != nil {
		return false, err
	}
	_, ok := b.Profile(userID)
	return ok, nil
}

func (b *Backend) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	b.mu.Lock()
	delay, err := b.ProfileDelay, b.GetProfileErr
	p, ok := b.profiles[userID] // read before the delay, like a reply still in flight
	b.mu.Unlock()
	if err := sleep(ctx, delay); err != nil {
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &p, nil
}

func (b *Backend) UpdateProfile(_ context.Context, userID string, upd model.ProfileUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.UpdateCalls = append(b.UpdateCalls, upd)
	if b.UpdateErr != nil {
		return b.UpdateErr
	}
	p, ok := b.profiles[userID]
	if !ok {
		return errs.ErrNotFound
	}
	upd.Apply(&p, time.Now())
	b.profiles[userID] = p
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return errors.Join(errs.ErrUnavailable, ctx.Err())
	}
}
