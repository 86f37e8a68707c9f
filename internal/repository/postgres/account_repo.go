package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/model"
)

// AccountRepo implements repository.AccountRepository using PostgreSQL.
type AccountRepo struct{ db *DB }

// NewAccountRepo constructs an account repository.
func NewAccountRepo(db *DB) *AccountRepo { return &AccountRepo{db: db} }

// Create inserts a new account row. The profile row follows from a trigger.
func (r *AccountRepo) Create(ctx context.Context, a *model.Account) error {
	const q = `
INSERT INTO accounts (id, email, pwd_hash)
VALUES ($1, $2, $3)
RETURNING created_at`
	err := r.db.Pool.QueryRow(ctx, q, a.ID, a.Email, a.PwdHash).Scan(&a.CreatedAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// GetByID selects an account by ID.
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	const q = `
SELECT id, email, pwd_hash, created_at
FROM accounts WHERE id=$1`
	var a model.Account
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&a.ID, &a.Email, &a.PwdHash, &a.CreatedAt); err != nil {
		return nil, notFound(err, errs.ErrNotFound)
	}
	return &a, nil
}

// GetByEmail selects an account by email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	const q = `
SELECT id, email, pwd_hash, created_at
FROM accounts WHERE email=$1`
	var a model.Account
	if err := r.db.Pool.QueryRow(ctx, q, email).Scan(&a.ID, &a.Email, &a.PwdHash, &a.CreatedAt); err != nil {
		return nil, notFound(err, errs.ErrNotFound)
	}
	return &a, nil
}
