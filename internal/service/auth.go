// Package service contains the backend's application services: accounts,
// refresh sessions and profile rows.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	pkgcrypto "github.com/clientportal/sessionbridge/internal/crypto"
	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/limiter"
	"github.com/clientportal/sessionbridge/internal/model"
	"github.com/clientportal/sessionbridge/internal/repository"
)

const (
	minPasswordLen = 6
	tokenLeeway    = 30 * time.Second
)

// AuthService defines authentication operations.
type AuthService interface {
	// SignUp creates an account. The profile row is created by the database.
	SignUp(ctx context.Context, email, password string) (model.Identity, error)
	// SignIn applies rate limiting and issues a fresh session.
	SignIn(ctx context.Context, email, password, ip string) (model.Tokens, model.Identity, error)
	// Adopt installs a session minted elsewhere; an empty refresh token gets a
	// new refresh session bounded by AuthConfig.AdoptTTL.
	Adopt(ctx context.Context, access, refresh string) (model.Tokens, model.Identity, error)
	// Refresh rotates a refresh token and issues a new access token.
	Refresh(ctx context.Context, refresh string) (model.Tokens, model.Identity, error)
	// SignOut revokes a refresh token; unknown or empty tokens are ignored.
	SignOut(ctx context.Context, refresh string) error
	// VerifyAccess validates an access token and returns its identity and expiry.
	VerifyAccess(access string) (model.Identity, time.Time, error)
}

// AuthConfig holds token parameters.
type AuthConfig struct {
	SignKey    []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	// AdoptTTL caps refresh sessions minted for a bare access token. Zero means RefreshTTL.
	AdoptTTL time.Duration
}

func (c AuthConfig) adoptTTL() time.Duration {
	if c.AdoptTTL > 0 && c.AdoptTTL < c.RefreshTTL {
		return c.AdoptTTL
	}
	return c.RefreshTTL
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type AuthServiceImpl struct {
	accounts repository.AccountRepository
	sessions repository.SessionRepository
	lim      limiter.Limiter
	cfg      AuthConfig
	now      func() time.Time
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(accounts repository.AccountRepository, sessions repository.SessionRepository, lim limiter.Limiter, cfg AuthConfig) *AuthServiceImpl {
	return &AuthServiceImpl{accounts: accounts, sessions: sessions, lim: lim, cfg: cfg, now: time.Now}
}

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

func validateCredentials(email, password string) error {
	if a, err := mail.ParseAddress(email); err != nil || a.Address != email {
		return fmt.Errorf("%w: email", errs.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", errs.ErrInvalidInput, minPasswordLen)
	}
	return nil
}

// SignUp creates a new account with an Argon2id password hash.
func (s *AuthServiceImpl) SignUp(ctx context.Context, email, password string) (model.Identity, error) {
	email = normalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return model.Identity{}, err
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return model.Identity{}, err
	}
	hash, err := pkgcrypto.HashPassword(password)
	if err != nil {
		return model.Identity{}, err
	}
	if err := s.accounts.Create(ctx, &model.Account{ID: uid, Email: email, PwdHash: hash}); err != nil {
		return model.Identity{}, err
	}
	return model.Identity{ID: uid.String(), Email: email}, nil
}

// SignIn authenticates with rate limiting by (email, ip).
func (s *AuthServiceImpl) SignIn(ctx context.Context, email, password, ip string) (model.Tokens, model.Identity, error) {
	email = normalizeEmail(email)
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, email, ipHash)
	if err != nil {
		return model.Tokens{}, model.Identity{}, err
	}
	if !allowed {
		return model.Tokens{}, model.Identity{}, errs.ErrRateLimited
	}

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil || !pkgcrypto.VerifyPassword(password, a.PwdHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, email, ipHash); ferr == nil && blocked {
			return model.Tokens{}, model.Identity{}, errs.ErrRateLimited
		}
		// unknown email and wrong password look the same
		return model.Tokens{}, model.Identity{}, errs.ErrInvalidCredentials
	}

	_ = s.lim.Success(ctx, email, ipHash)

	id := model.Identity{ID: a.ID.String(), Email: a.Email}
	tok, err := s.issue(ctx, a.ID, a.Email)
	return tok, id, err
}

// Adopt verifies a transferred access token and attaches a refresh session to it.
func (s *AuthServiceImpl) Adopt(ctx context.Context, access, refresh string) (model.Tokens, model.Identity, error) {
	id, exp, err := s.VerifyAccess(access)
	if err != nil {
		return model.Tokens{}, model.Identity{}, err
	}
	uid := uuid.FromStringOrNil(id.ID)

	if refresh != "" {
		rs, err := s.sessions.GetByHash(ctx, pkgcrypto.HashToken(refresh))
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return model.Tokens{}, model.Identity{}, errs.ErrUnauthorized
			}
			return model.Tokens{}, model.Identity{}, err
		}
		if !rs.Active(s.now()) || rs.UserID != uid {
			return model.Tokens{}, model.Identity{}, errs.ErrUnauthorized
		}
		return model.Tokens{AccessToken: access, RefreshToken: refresh, ExpiresAt: exp, RefreshExpiresAt: rs.ExpiresAt}, id, nil
	}

	// A leaked access token must not buy a full-length session.
	rs, plain, err := s.newRefreshSession(uid, s.cfg.adoptTTL())
	if err != nil {
		return model.Tokens{}, model.Identity{}, err
	}
	if err := s.sessions.Create(ctx, rs); err != nil {
		return model.Tokens{}, model.Identity{}, err
	}
	return model.Tokens{AccessToken: access, RefreshToken: plain, ExpiresAt: exp, RefreshExpiresAt: rs.ExpiresAt}, id, nil
}

// Refresh rotates the refresh token; a token can be used once.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refresh string) (model.Tokens, model.Identity, error) {
	if refresh == "" {
		return model.Tokens{}, model.Identity{}, errs.ErrUnauthorized
	}
	rs, err := s.sessions.GetByHash(ctx, pkgcrypto.HashToken(refresh))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Tokens{}, model.Identity{}, errs.ErrUnauthorized
		}
		return model.Tokens{}, model.Identity{}, err
	}
	if !rs.Active(s.now()) {
		return model.Tokens{}, model.Identity{}, errs.ErrUnauthorized
	}
	a, err := s.accounts.GetByID(ctx, rs.UserID)
	if err != nil {
		return model.Tokens{}, model.Identity{}, fmt.Errorf("load account: %w", err)
	}

	next, plain, err := s.newRefreshSession(a.ID, s.cfg.RefreshTTL)
	if err != nil {
		return model.Tokens{}, model.Identity{}, err
	}
	if err := s.sessions.Rotate(ctx, rs.ID, next); err != nil {
		return model.Tokens{}, model.Identity{}, err
	}
	access, exp, err := s.issueAccessToken(a.ID, a.Email)
	if err != nil {
		return model.Tokens{}, model.Identity{}, err
	}
	id := model.Identity{ID: a.ID.String(), Email: a.Email}
	return model.Tokens{AccessToken: access, RefreshToken: plain, ExpiresAt: exp, RefreshExpiresAt: next.ExpiresAt}, id, nil
}

// SignOut revokes the refresh session behind refresh.
func (s *AuthServiceImpl) SignOut(ctx context.Context, refresh string) error {
	if refresh == "" {
		return nil
	}
	rs, err := s.sessions.GetByHash(ctx, pkgcrypto.HashToken(refresh))
	if errors.Is(err, errs.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.sessions.Revoke(ctx, rs.ID)
}

// VerifyAccess checks an HS256 access token.
func (s *AuthServiceImpl) VerifyAccess(access string) (model.Identity, time.Time, error) {
	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(access, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.cfg.SignKey, nil
	}, jwt.WithLeeway(tokenLeeway), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return model.Identity{}, time.Time{}, errs.ErrUnauthorized
	}
	if _, err := uuid.FromString(claims.Subject); err != nil {
		return model.Identity{}, time.Time{}, errs.ErrUnauthorized
	}
	return model.Identity{ID: claims.Subject, Email: claims.Email}, claims.ExpiresAt.Time, nil
}

func (s *AuthServiceImpl) issue(ctx context.Context, userID uuid.UUID, email string) (model.Tokens, error) {
	access, exp, err := s.issueAccessToken(userID, email)
	if err != nil {
		return model.Tokens{}, err
	}
	rs, plain, err := s.newRefreshSession(userID, s.cfg.RefreshTTL)
	if err != nil {
		return model.Tokens{}, err
	}
	if err := s.sessions.Create(ctx, rs); err != nil {
		return model.Tokens{}, err
	}
	return model.Tokens{AccessToken: access, RefreshToken: plain, ExpiresAt: exp, RefreshExpiresAt: rs.ExpiresAt}, nil
}

// issueAccessToken creates a signed HS256 JWT for the given subject.
func (s *AuthServiceImpl) issueAccessToken(userID uuid.UUID, email string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.cfg.AccessTTL)
	claims := accessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.SignKey)
	// NumericDate has second precision
	return signed, exp.Truncate(time.Second), err
}

func (s *AuthServiceImpl) newRefreshSession(userID uuid.UUID, ttl time.Duration) (*model.RefreshSession, string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, "", err
	}
	plain, hash, err := pkgcrypto.NewRefreshToken()
	if err != nil {
		return nil, "", err
	}
	return &model.RefreshSession{
		ID:        id,
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: s.now().Add(ttl),
	}, plain, nil
}
