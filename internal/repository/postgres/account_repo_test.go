package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/model"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return &DB{Pool: mock}, mock
}

func TestAccountRepo_Create_OK_and_UniqueViolation(t *testing.T) {
	db, mock := newDB(t)
	r := NewAccountRepo(db)
	ctx := context.Background()
	a := &model.Account{ID: uuid.Must(uuid.NewV4()), Email: "a@b.com", PwdHash: "argon2id$s$h"}
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO accounts \(id, email, pwd_hash\) VALUES \(\$1, \$2, \$3\) RETURNING created_at`).
		WithArgs(a.ID, a.Email, a.PwdHash).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))
	require.NoError(t, r.Create(ctx, a))
	require.Equal(t, created, a.CreatedAt)

	mock.ExpectQuery(`INSERT INTO accounts`).
		WithArgs(a.ID, a.Email, a.PwdHash).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Create(ctx, a), errs.ErrAlreadyExists)
}

func TestAccountRepo_GetByEmail(t *testing.T) {
	db, mock := newDB(t)
	r := NewAccountRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT id, email, pwd_hash, created_at FROM accounts WHERE email=\$1`).
		WithArgs("a@b.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "pwd_hash", "created_at"}).
			AddRow(id, "a@b.com", "h", time.Now()))
	a, err := r.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, id, a.ID)

	mock.ExpectQuery(`SELECT id, email, pwd_hash, created_at FROM accounts WHERE email=\$1`).
		WithArgs("none@b.com").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByEmail(ctx, "none@b.com")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAccountRepo_GetByID_ErrorPassesThrough(t *testing.T) {
	db, mock := newDB(t)
	r := NewAccountRepo(db)
	id := uuid.Must(uuid.NewV4())
	boom := errors.New("conn reset")

	mock.ExpectQuery(`SELECT id, email, pwd_hash, created_at FROM accounts WHERE id=\$1`).
		WithArgs(id).
		WillReturnError(boom)
	_, err := r.GetByID(context.Background(), id)
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, errs.ErrNotFound)
}
