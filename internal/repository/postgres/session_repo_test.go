package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/model"
)

func TestSessionRepo_GetByHash(t *testing.T) {
	db, mock := newDB(t)
	r := NewSessionRepo(db)
	ctx := context.Background()
	id, uid := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	exp := time.Now().Add(time.Hour)
	revoked := time.Now()

	mock.ExpectQuery(`SELECT id, user_id, token_hash, expires_at, revoked_at, created_at FROM refresh_sessions WHERE token_hash=\$1`).
		WithArgs([]byte("h")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "revoked_at", "created_at"}).
			AddRow(id, uid, []byte("h"), exp, &revoked, time.Now()))
	s, err := r.GetByHash(ctx, []byte("h"))
	require.NoError(t, err)
	require.Equal(t, uid, s.UserID)
	require.False(t, s.Active(time.Now()))

	mock.ExpectQuery(`FROM refresh_sessions WHERE token_hash=\$1`).
		WithArgs([]byte("x")).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByHash(ctx, []byte("x"))
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSessionRepo_Rotate(t *testing.T) {
	db, mock := newDB(t)
	r := NewSessionRepo(db)
	ctx := context.Background()
	old := uuid.Must(uuid.NewV4())
	next := &model.RefreshSession{
		ID: uuid.Must(uuid.NewV4()), UserID: uuid.Must(uuid.NewV4()),
		TokenHash: []byte("n"), ExpiresAt: time.Now().Add(time.Hour),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE refresh_sessions SET revoked_at=\$2 WHERE id=\$1 AND revoked_at IS NULL`).
		WithArgs(old, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`INSERT INTO refresh_sessions \(id, user_id, token_hash, expires_at\) VALUES \(\$1, \$2, \$3, \$4\)`).
		WithArgs(next.ID, next.UserID, next.TokenHash, next.ExpiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	require.NoError(t, r.Rotate(ctx, old, next))
}

func TestSessionRepo_Rotate_AlreadyRevoked(t *testing.T) {
	db, mock := newDB(t)
	r := NewSessionRepo(db)
	old := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE refresh_sessions SET revoked_at=\$2`).
		WithArgs(old, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := r.Rotate(context.Background(), old, &model.RefreshSession{ID: uuid.Must(uuid.NewV4())})
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestSessionRepo_Revoke(t *testing.T) {
	db, mock := newDB(t)
	r := NewSessionRepo(db)
	id := uuid.Must(uuid.NewV4())

	mock.ExpectExec(`UPDATE refresh_sessions SET revoked_at=now\(\) WHERE id=\$1 AND revoked_at IS NULL`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	require.NoError(t, r.Revoke(context.Background(), id))
}
