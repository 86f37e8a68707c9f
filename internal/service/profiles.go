package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/model"
	"github.com/clientportal/sessionbridge/internal/repository"
)

// ProfileService exposes profile rows to their owner.
type ProfileService interface {
	Exists(ctx context.Context, userID string) (bool, error)
	Get(ctx context.Context, userID string) (*model.UserProfile, error)
	Update(ctx context.Context, userID string, upd model.ProfileUpdate) error
}

type ProfileServiceImpl struct {
	profiles repository.ProfileRepository
}

// NewProfileService constructs ProfileService.
func NewProfileService(profiles repository.ProfileRepository) *ProfileServiceImpl {
	return &ProfileServiceImpl{profiles: profiles}
}

func parseUserID(s string) (uuid.UUID, error) {
	id, err := uuid.FromString(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: user id", errs.ErrInvalidInput)
	}
	return id, nil
}

func (s *ProfileServiceImpl) Exists(ctx context.Context, userID string) (bool, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return false, err
	}
	return s.profiles.Exists(ctx, id)
}

func (s *ProfileServiceImpl) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.profiles.Get(ctx, id)
}

// Update rejects an empty update; nil fields are left as stored.
func (s *ProfileServiceImpl) Update(ctx context.Context, userID string, upd model.ProfileUpdate) error {
	id, err := parseUserID(userID)
	if err != nil {
		return err
	}
	if upd.Empty() {
		return fmt.Errorf("%w: nothing to update", errs.ErrInvalidInput)
	}
	return s.profiles.Update(ctx, id, upd)
}
