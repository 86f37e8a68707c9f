package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/model"
)

// ProfileRepo implements repository.ProfileRepository using PostgreSQL.
type ProfileRepo struct{ db *DB }

// NewProfileRepo constructs a profile repository.
func NewProfileRepo(db *DB) *ProfileRepo { return &ProfileRepo{db: db} }

// Exists reports whether the profile row has been created yet.
func (r *ProfileRepo) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM profiles WHERE id=$1)`
	var ok bool
	err := r.db.Pool.QueryRow(ctx, q, userID).Scan(&ok)
	return ok, err
}

// Get selects a profile row. NULL optional columns read as empty strings.
func (r *ProfileRepo) Get(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	const q = `
SELECT id, email, COALESCE(full_name, ''), COALESCE(company_name, ''), COALESCE(company_logo, ''),
       COALESCE(phone, ''), COALESCE(avatar_url, ''), role, created_at, updated_at
FROM profiles WHERE id=$1`
	var (
		p    model.UserProfile
		id   uuid.UUID
		role string
	)
	err := r.db.Pool.QueryRow(ctx, q, userID).Scan(
		&id, &p.Email, &p.FullName, &p.CompanyName, &p.CompanyLogo,
		&p.Phone, &p.AvatarURL, &role, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, errs.ErrNotFound)
	}
	p.ID = id.String()
	p.Role = model.ParseRole(role)
	return &p, nil
}

// Update writes the non-nil fields of upd and stamps updated_at.
func (r *ProfileRepo) Update(ctx context.Context, userID uuid.UUID, upd model.ProfileUpdate) error {
	const q = `
UPDATE profiles SET
  full_name    = COALESCE($2, full_name),
  company_name = COALESCE($3, company_name),
  phone        = COALESCE($4, phone),
  updated_at   = now()
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, userID, upd.FullName, upd.CompanyName, upd.Phone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
