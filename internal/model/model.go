// Package model defines domain entities shared by the bridge, the backend client and the server.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// SessionToken is a transferable proof of authentication.
type SessionToken struct {
	AccessToken  string
	RefreshToken string // empty when the token arrived through a URL transfer
	ExpiresAt    time.Time
	UserID       string
	Email        string
}

// Expired reports whether the token is no longer usable at now.
// A token without ExpiresAt is always expired.
func (t SessionToken) Expired(now time.Time) bool {
	return t.ExpiresAt.IsZero() || !t.ExpiresAt.After(now)
}

// Identity returns the bare identity carried by the token.
func (t SessionToken) Identity() Identity {
	return Identity{ID: t.UserID, Email: t.Email}
}

// Identity is the user id and email a session proves.
type Identity struct {
	ID    string
	Email string
}

// Role is the application role of a profile.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
	RoleCA     Role = "ca" // chartered accountant
)

// ParseRole maps a stored role to a known Role; anything unknown reads as client.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleCA:
		return Role(s)
	default:
		return RoleClient
	}
}

// UserProfile is the application-visible identity record. Empty optional fields are absent.
type UserProfile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	CompanyLogo string    `json:"company_logo,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MinimalProfile synthesises the in-memory profile used when no backend row can be confirmed.
func MinimalProfile(id Identity, now time.Time) UserProfile {
	return UserProfile{
		ID:        id.ID,
		Email:     id.Email,
		Role:      RoleClient,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ProfileUpdate carries the user-editable profile fields. Nil fields are left unchanged.
type ProfileUpdate struct {
	FullName    *string `json:"full_name,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.FullName == nil && u.CompanyName == nil && u.Phone == nil
}

// Apply merges the update into p and stamps UpdatedAt.
func (u ProfileUpdate) Apply(p *UserProfile, now time.Time) {
	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.CompanyName != nil {
		p.CompanyName = *u.CompanyName
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	p.UpdatedAt = now
}

// Account is a credential record stored on the server.
type Account struct {
	ID        uuid.UUID // PK
	Email     string    // unique, lower-cased
	PwdHash   string    // encoded Argon2id hash
	CreatedAt time.Time
}

// RefreshSession is a server-side refresh token record. Only the token hash is stored.
type RefreshSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash []byte
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Active reports whether the session can still mint access tokens at now.
func (s RefreshSession) Active(now time.Time) bool {
	return s.RevokedAt == nil && s.ExpiresAt.After(now)
}

// Tokens collects issued access/refresh tokens.
type Tokens struct {
	AccessToken      string
	RefreshToken     string
	ExpiresAt        time.Time // access token expiry
	RefreshExpiresAt time.Time
}
