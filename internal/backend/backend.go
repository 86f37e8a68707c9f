// Package backend describes the hosted auth/profile backend the bridge talks to.
package backend

import (
	"context"
	"time"

	"github.com/clientportal/sessionbridge/internal/model"
)

// Session is the backend's own view of an authenticated session.
type Session struct {
	AccessToken      string
	RefreshToken     string
	ExpiresAt        time.Time // access token expiry
	RefreshExpiresAt time.Time
	User             model.Identity
}

// Token converts the session into a bridge token expiring with the access token.
func (s Session) Token() model.SessionToken {
	return model.SessionToken{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt,
		UserID:       s.User.ID,
		Email:        s.User.Email,
	}
}

// EventKind names a session change.
type EventKind string

const (
	EventSignedIn       EventKind = "SIGNED_IN"
	EventTokenRefreshed EventKind = "TOKEN_REFRESHED"
	EventSignedOut      EventKind = "SIGNED_OUT"
)

// Event is a session change. Session is nil when the session ended.
type Event struct {
	Kind    EventKind
	Session *Session
}

// Subscription is returned by OnAuthStateChange. Unsubscribe is safe to call more than once.
type Subscription interface {
	Unsubscribe()
}

// Auth is the session half of the backend.
type Auth interface {
	// GetSession returns the backend's persisted session, or nil when there is none.
	GetSession(ctx context.Context) (*Session, error)
	// SetSession adopts an access/refresh pair as the active session.
	SetSession(ctx context.Context, accessToken, refreshToken string) (*Session, error)
	// SignInWithPassword starts a session for the given credentials.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	// SignUp creates a new identity. It does not start a session.
	SignUp(ctx context.Context, email, password string) (model.Identity, error)
	// SignOut ends the session; best effort.
	SignOut(ctx context.Context) error
	// OnAuthStateChange registers fn for session changes.
	OnAuthStateChange(fn func(Event)) Subscription
}

// Profiles is the profile table half of the backend.
type Profiles interface {
	ProfileExists(ctx context.Context, userID string) (bool, error)
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, upd model.ProfileUpdate) error
}

// Backend is everything the bridge needs from the hosted backend.
type Backend interface {
	Auth
	Profiles
}
