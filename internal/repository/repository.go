// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/clientportal/sessionbridge/internal/model"
)

// AccountRepository stores credentials.
type AccountRepository interface {
	// Create inserts a new account. A taken email yields errs.ErrAlreadyExists.
	Create(ctx context.Context, a *model.Account) error
	// GetByID loads an account by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
	// GetByEmail loads an account by its lower-cased email.
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
}

// SessionRepository stores refresh sessions by token hash.
type SessionRepository interface {
	// Create inserts a new refresh session.
	Create(ctx context.Context, s *model.RefreshSession) error
	// GetByHash loads a session, revoked or not, by token hash.
	GetByHash(ctx context.Context, hash []byte) (*model.RefreshSession, error)
	// Rotate revokes oldID and inserts next atomically. Fails with
	// errs.ErrUnauthorized if oldID was already revoked.
	Rotate(ctx context.Context, oldID uuid.UUID, next *model.RefreshSession) error
	// Revoke marks a session revoked. Revoking twice is not an error.
	Revoke(ctx context.Context, id uuid.UUID) error
}

// ProfileRepository reads and writes application profile rows.
type ProfileRepository interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
	Get(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error)
	// Update writes the non-nil fields; errs.ErrNotFound if the row is missing.
	Update(ctx context.Context, userID uuid.UUID, upd model.ProfileUpdate) error
}
