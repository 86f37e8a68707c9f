// Package grpcclient implements backend.Backend over the sessionbridge gRPC API.
//
// The client keeps its own session (access and refresh token) in a KV slot
// separate from the bridge token, refreshes an expired access token on
// GetSession and publishes SIGNED_IN, TOKEN_REFRESHED and SIGNED_OUT events.
package grpcclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "github.com/clientportal/sessionbridge/gen/go/sessionbridge/v1"
	"github.com/clientportal/sessionbridge/internal/backend"
	"github.com/clientportal/sessionbridge/internal/bridge/tokenstore"
	"github.com/clientportal/sessionbridge/internal/convert"
	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/model"
)

// SessionKey is the KV slot holding the backend session.
const SessionKey = "sb_backend_session"

// refreshSkew refreshes access tokens slightly before they expire.
const refreshSkew = 10 * time.Second

var _ backend.Backend = (*Client)(nil)

// Client is a backend.Backend talking to cmd/server.
type Client struct {
	api       pb.BridgeClient
	slot      *tokenstore.Store
	hub       *backend.Hub
	now       func() time.Time
	log       *zap.Logger
	secureTLS bool

	// mu serialises session reads and writes; refresh tokens are single use.
	mu sync.Mutex
}

// Option configures a Client.
type Option func(*Client)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option { return func(c *Client) { c.now = now } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(c *Client) { c.log = l } }

// WithPlaintext allows bearer tokens over a connection without TLS (dev and tests).
func WithPlaintext() Option { return func(c *Client) { c.secureTLS = false } }

// New returns a client over cc persisting its session in kv.
func New(cc grpc.ClientConnInterface, kv tokenstore.KV, opts ...Option) *Client {
	c := &Client{
		api:       pb.NewBridgeClient(cc),
		hub:       backend.NewHub(),
		now:       time.Now,
		log:       zap.NewNop(),
		secureTLS: true,
	}
	for _, o := range opts {
		o(c)
	}
	c.slot = tokenstore.New(kv, tokenstore.WithKey(SessionKey), tokenstore.WithClock(c.now), tokenstore.WithLogger(c.log))
	return c
}

// Close stops event delivery.
func (c *Client) Close() { c.hub.Close() }

// OnAuthStateChange registers fn for session changes.
func (c *Client) OnAuthStateChange(fn func(backend.Event)) backend.Subscription {
	return c.hub.Subscribe(fn)
}

// accessExpiry reads exp from an access token without verifying it; the
// server verifies on every call.
func accessExpiry(access string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(access, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("access token without exp")
	}
	return claims.ExpiresAt.Time, nil
}

func fromProto(s *pb.Session) *backend.Session {
	tok, id := convert.FromProtoSession(s)
	return &backend.Session{
		AccessToken:      tok.AccessToken,
		RefreshToken:     tok.RefreshToken,
		ExpiresAt:        tok.ExpiresAt,
		RefreshExpiresAt: tok.RefreshExpiresAt,
		User:             id,
	}
}

// persist stores s; the slot lives as long as the refresh token does.
func (c *Client) persist(s *backend.Session) {
	c.slot.Store(model.SessionToken{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.RefreshExpiresAt,
		UserID:       s.User.ID,
		Email:        s.User.Email,
	})
}

// event builds an event carrying a copy of s. Events are published after mu
// is released.
func event(kind backend.EventKind, s *backend.Session) *backend.Event {
	ev := &backend.Event{Kind: kind}
	if s != nil {
		v := *s
		ev.Session = &v
	}
	return ev
}

func (c *Client) emit(ev *backend.Event) {
	if ev != nil {
		c.hub.Publish(*ev)
	}
}

// GetSession returns the persisted session, refreshing the access token when
// it has expired. A rejected refresh ends the session.
func (c *Client) GetSession(ctx context.Context) (*backend.Session, error) {
	c.mu.Lock()
	s, ev, err := c.sessionLocked(ctx)
	c.mu.Unlock()
	c.emit(ev)
	return s, err
}

func (c *Client) sessionLocked(ctx context.Context) (*backend.Session, *backend.Event, error) {
	tok, ok := c.slot.Get()
	if !ok {
		return nil, nil, nil
	}
	exp, err := accessExpiry(tok.AccessToken)
	if err != nil {
		c.log.Warn("discarding backend session with unreadable access token", zap.Error(err))
		c.slot.Clear()
		return nil, nil, nil
	}
	if exp.After(c.now().Add(refreshSkew)) {
		return &backend.Session{
			AccessToken:      tok.AccessToken,
			RefreshToken:     tok.RefreshToken,
			ExpiresAt:        exp,
			RefreshExpiresAt: tok.ExpiresAt,
			User:             tok.Identity(),
		}, nil, nil
	}

	resp, err := c.api.Refresh(ctx, &pb.RefreshRequest{RefreshToken: tok.RefreshToken})
	if err != nil {
		err = fromStatus(err)
		if errors.Is(err, errs.ErrUnauthorized) {
			c.log.Info("refresh rejected, session ended", zap.String("user_id", tok.UserID))
			c.slot.Clear()
			return nil, event(backend.EventSignedOut, nil), nil
		}
		return nil, nil, err
	}
	s := fromProto(resp)
	c.persist(s)
	c.log.Debug("access token refreshed", zap.String("user_id", s.User.ID))
	return s, event(backend.EventTokenRefreshed, s), nil
}

// SetSession adopts an access/refresh pair minted elsewhere.
func (c *Client) SetSession(ctx context.Context, accessToken, refreshToken string) (*backend.Session, error) {
	c.mu.Lock()
	resp, err := c.api.AdoptSession(ctx, &pb.AdoptSessionRequest{AccessToken: accessToken, RefreshToken: refreshToken})
	if err != nil {
		c.mu.Unlock()
		return nil, fromStatus(err)
	}
	s := fromProto(resp)
	c.persist(s)
	c.mu.Unlock()

	c.emit(event(backend.EventSignedIn, s))
	return s, nil
}

// SignInWithPassword starts a session for the credentials.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*backend.Session, error) {
	c.mu.Lock()
	resp, err := c.api.SignIn(ctx, &pb.Credentials{Email: email, Password: password})
	if err != nil {
		c.mu.Unlock()
		return nil, fromStatus(err)
	}
	s := fromProto(resp)
	c.persist(s)
	c.mu.Unlock()

	c.emit(event(backend.EventSignedIn, s))
	return s, nil
}

// SignUp registers an account. No session is started.
func (c *Client) SignUp(ctx context.Context, email, password string) (model.Identity, error) {
	u, err := c.api.SignUp(ctx, &pb.Credentials{Email: email, Password: password})
	if err != nil {
		return model.Identity{}, fromStatus(err)
	}
	return convert.FromProtoUser(u), nil
}

// SignOut forgets the local session and revokes its refresh token. The local
// session is gone even when the revoke fails.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	tok, ok := c.slot.Get()
	c.slot.Clear()
	c.mu.Unlock()

	c.emit(event(backend.EventSignedOut, nil))
	if !ok || tok.RefreshToken == "" {
		return nil
	}
	if _, err := c.api.SignOut(ctx, &pb.SignOutRequest{RefreshToken: tok.RefreshToken}); err != nil {
		return fromStatus(err)
	}
	return nil
}

// bearer returns the call option authenticating a profile RPC.
func (c *Client) bearer(ctx context.Context) (grpc.CallOption, error) {
	s, err := c.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errs.ErrUnauthorized
	}
	return grpc.PerRPCCredentials(bearerCreds{token: s.AccessToken, secure: c.secureTLS}), nil
}

// ProfileExists reports whether the profile row of userID exists.
func (c *Client) ProfileExists(ctx context.Context, userID string) (bool, error) {
	auth, err := c.bearer(ctx)
	if err != nil {
		return false, err
	}
	resp, err := c.api.ProfileExists(ctx, &pb.ProfileRequest{UserId: userID}, auth)
	if err != nil {
		return false, fromStatus(err)
	}
	return resp.GetExists(), nil
}

// GetProfile reads the full profile row; errs.ErrNotFound when there is none.
func (c *Client) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	auth, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.GetProfile(ctx, &pb.ProfileRequest{UserId: userID}, auth)
	if err != nil {
		return nil, fromStatus(err)
	}
	if resp.GetProfile() == nil {
		return nil, errs.ErrNotFound
	}
	p := convert.FromProtoProfile(resp.GetProfile())
	return &p, nil
}

// UpdateProfile writes the non-nil fields of upd.
func (c *Client) UpdateProfile(ctx context.Context, userID string, upd model.ProfileUpdate) error {
	auth, err := c.bearer(ctx)
	if err != nil {
		return err
	}
	if _, err := c.api.UpdateProfile(ctx, convert.ToProtoUpdate(userID, upd), auth); err != nil {
		return fromStatus(err)
	}
	return nil
}
