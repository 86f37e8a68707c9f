// Package transfer carries a session token across origins as URL query parameters.
//
// Tokens in a URL end up in history, referrer headers and server logs. This is
// only meant for redirects between the two first-party applications.
package transfer

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/clientportal/sessionbridge/internal/model"
)

// Query parameters of a transfer.
const (
	ParamAccessToken = "auth_token"
	ParamUserID      = "user_id"
	ParamEmail       = "email"
)

// DefaultWindow is the validity assigned to a token rebuilt from a transfer URL.
const DefaultWindow = 24 * time.Hour

var (
	// ErrRelativeURL is returned when the transfer target is not an absolute URL.
	ErrRelativeURL = errors.New("transfer target must be an absolute URL")
	// ErrHostNotAllowed is returned when the target host is outside the allow-list.
	ErrHostNotAllowed = errors.New("transfer target host not allowed")
	// ErrIncompleteToken is returned when the token lacks a field the transfer needs.
	ErrIncompleteToken = errors.New("token lacks access token, user id or email")
)

// Builder produces transfer URLs.
type Builder struct {
	allowed map[string]struct{}
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithAllowedHosts restricts targets to the given host[:port] values.
func WithAllowedHosts(hosts ...string) BuilderOption {
	return func(b *Builder) {
		for _, h := range hosts {
			if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
				b.allowed[h] = struct{}{}
			}
		}
	}
}

// NewBuilder constructs a Builder. Without WithAllowedHosts any absolute target is accepted.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{allowed: map[string]struct{}{}}
	for _, o := range opts {
		o(b)
	}
	return b
}

// BuildURL returns base with the access token, user id and email appended.
// The refresh token is never written into the URL.
func (b *Builder) BuildURL(base string, tok model.SessionToken) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse transfer target: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", ErrRelativeURL
	}
	if len(b.allowed) > 0 {
		if _, ok := b.allowed[strings.ToLower(u.Host)]; !ok {
			return "", fmt.Errorf("%w: %s", ErrHostNotAllowed, u.Host)
		}
	}
	if tok.AccessToken == "" || tok.UserID == "" || tok.Email == "" {
		return "", ErrIncompleteToken
	}

	q := u.Query()
	q.Set(ParamAccessToken, tok.AccessToken)
	q.Set(ParamUserID, tok.UserID)
	q.Set(ParamEmail, tok.Email)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// BuildURL is Builder.BuildURL without a host allow-list.
func BuildURL(base string, tok model.SessionToken) (string, error) {
	return NewBuilder().BuildURL(base, tok)
}

// ReadParams rebuilds a token from u when all three parameters are present.
// The token expires window after now and carries no refresh token.
func ReadParams(u *url.URL, now time.Time, window time.Duration) (model.SessionToken, bool) {
	if u == nil {
		return model.SessionToken{}, false
	}
	q := u.Query()
	access, userID, email := q.Get(ParamAccessToken), q.Get(ParamUserID), q.Get(ParamEmail)
	if access == "" || userID == "" || email == "" {
		return model.SessionToken{}, false
	}
	return model.SessionToken{
		AccessToken: access,
		ExpiresAt:   now.Add(window),
		UserID:      userID,
		Email:       email,
	}, true
}

// StripParams replaces the current location with the transfer parameters
// removed. The remaining pairs keep their order and their original escaping.
func StripParams(loc Location) error {
	cur := loc.URL()
	if cur == nil {
		return errors.New("no current location")
	}
	next := *cur
	next.RawQuery = stripQuery(cur.RawQuery)
	next.ForceQuery = false
	loc.Replace(&next)
	return nil
}

func stripQuery(raw string) string {
	if raw == "" {
		return ""
	}
	pairs := strings.Split(raw, "&")
	kept := pairs[:0]
	for _, pair := range pairs {
		key, _, _ := strings.Cut(pair, "=")
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		switch key {
		case ParamAccessToken, ParamUserID, ParamEmail:
			continue
		}
		kept = append(kept, pair)
	}
	return strings.Join(kept, "&")
}

// TokenSource yields the live session token of the sending application.
type TokenSource interface {
	Get() (model.SessionToken, bool)
}

// ErrNoToken is returned by Handoff when the sender has no live token.
var ErrNoToken = errors.New("no valid auth token found")

// Handoff builds the redirect into the receiving application's entry route
// from the sender's stored token.
func (b *Builder) Handoff(src TokenSource, targetOrigin, entryPath string) (string, error) {
	tok, ok := src.Get()
	if !ok {
		return "", ErrNoToken
	}
	origin, err := url.Parse(targetOrigin)
	if err != nil {
		return "", fmt.Errorf("parse target origin: %w", err)
	}
	entry, err := url.Parse(entryPath)
	if err != nil {
		return "", fmt.Errorf("parse entry path: %w", err)
	}
	return b.BuildURL(origin.ResolveReference(entry).String(), tok)
}
