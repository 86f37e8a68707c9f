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

func TestProfileRepo_Exists(t *testing.T) {
	db, mock := newDB(t)
	r := NewProfileRepo(db)
	id := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM profiles WHERE id=\$1\)`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	ok, err := r.Exists(context.Background(), id)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProfileRepo_Get(t *testing.T) {
	db, mock := newDB(t)
	r := NewProfileRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	ts := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "email", "full_name", "company_name", "company_logo", "phone", "avatar_url", "role", "created_at", "updated_at"}

	mock.ExpectQuery(`FROM profiles WHERE id=\$1`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(id, "a@b.com", "Ada", "", "", "", "", "superuser", ts, ts))
	p, err := r.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, model.UserProfile{
		ID: id.String(), Email: "a@b.com", FullName: "Ada", Role: model.RoleClient, CreatedAt: ts, UpdatedAt: ts,
	}, *p)

	mock.ExpectQuery(`FROM profiles WHERE id=\$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Get(ctx, id)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestProfileRepo_Update(t *testing.T) {
	db, mock := newDB(t)
	r := NewProfileRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	name := "Ada"
	upd := model.ProfileUpdate{FullName: &name}

	mock.ExpectExec(`UPDATE profiles SET full_name = COALESCE\(\$2, full_name\)`).
		WithArgs(id, upd.FullName, upd.CompanyName, upd.Phone).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.Update(ctx, id, upd))

	mock.ExpectExec(`UPDATE profiles SET`).
		WithArgs(id, upd.FullName, upd.CompanyName, upd.Phone).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	require.ErrorIs(t, r.Update(ctx, id, upd), errs.ErrNotFound)
}
