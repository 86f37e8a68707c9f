package postgres

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/model"
)

// SessionRepo implements repository.SessionRepository using PostgreSQL.
type SessionRepo struct{ db *DB }

// NewSessionRepo constructs a refresh-session repository.
func NewSessionRepo(db *DB) *SessionRepo { return &SessionRepo{db: db} }

const insertSession = `
INSERT INTO refresh_sessions (id, user_id, token_hash, expires_at)
VALUES ($1, $2, $3, $4)`

// Create inserts a refresh session.
func (r *SessionRepo) Create(ctx context.Context, s *model.RefreshSession) error {
	_, err := r.db.Pool.Exec(ctx, insertSession, s.ID, s.UserID, s.TokenHash, s.ExpiresAt)
	return err
}

// GetByHash selects a session by token hash.
func (r *SessionRepo) GetByHash(ctx context.Context, hash []byte) (*model.RefreshSession, error) {
	const q = `
SELECT id, user_id, token_hash, expires_at, revoked_at, created_at
FROM refresh_sessions WHERE token_hash=$1`
	var s model.RefreshSession
	err := r.db.Pool.QueryRow(ctx, q, hash).
		Scan(&s.ID, &s.UserID, &s.TokenHash, &s.ExpiresAt, &s.RevokedAt, &s.CreatedAt)
	if err != nil {
		return nil, notFound(err, errs.ErrNotFound)
	}
	return &s, nil
}

// Rotate revokes oldID and inserts next in one transaction. A concurrent
// rotation of the same token loses with errs.ErrUnauthorized.
func (r *SessionRepo) Rotate(ctx context.Context, oldID uuid.UUID, next *model.RefreshSession) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const revoke = `UPDATE refresh_sessions SET revoked_at=$2 WHERE id=$1 AND revoked_at IS NULL`
	tag, err := tx.Exec(ctx, revoke, oldID, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrUnauthorized
	}
	_, err = tx.Exec(ctx, insertSession, next.ID, next.UserID, next.TokenHash, next.ExpiresAt)
	return err
}

// Revoke marks a session revoked; already revoked sessions are left untouched.
func (r *SessionRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE refresh_sessions SET revoked_at=now() WHERE id=$1 AND revoked_at IS NULL`
	_, err := r.db.Pool.Exec(ctx, q, id)
	return err
}
