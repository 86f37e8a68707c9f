// Package reconcile decides, once per load, which session is authoritative.
package reconcile

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/clientportal/sessionbridge/internal/backend"
	"github.com/clientportal/sessionbridge/internal/bridge/tokenstore"
	"github.com/clientportal/sessionbridge/internal/bridge/transfer"
	"github.com/clientportal/sessionbridge/internal/model"
)

// Source tells where the authoritative session came from.
type Source int

const (
	SourceNone Source = iota
	SourceTransfer
	SourceBackend
)

func (s Source) String() string {
	switch s {
	case SourceTransfer:
		return "transfer"
	case SourceBackend:
		return "backend"
	default:
		return "none"
	}
}

// Outcome is the result of a reconciliation. Identity is nil for an anonymous user.
type Outcome struct {
	Source   Source
	Identity *model.Identity
}

// Hydrator turns an identity into an application profile.
type Hydrator interface {
	Hydrate(ctx context.Context, id model.Identity)
}

// HydratorFunc adapts a function to Hydrator.
type HydratorFunc func(ctx context.Context, id model.Identity)

func (f HydratorFunc) Hydrate(ctx context.Context, id model.Identity) { f(ctx, id) }

// Reconciler runs the startup session decision.
type Reconciler struct {
	store  *tokenstore.Store
	loc    transfer.Location
	auth   backend.Auth
	window time.Duration
	now    func() time.Time
	log    *zap.Logger
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithTransferWindow overrides the validity of transferred tokens.
func WithTransferWindow(d time.Duration) Option { return func(r *Reconciler) { r.window = d } }

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option { return func(r *Reconciler) { r.now = now } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(r *Reconciler) { r.log = l } }

// New constructs a Reconciler.
func New(store *tokenstore.Store, loc transfer.Location, auth backend.Auth, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:  store,
		loc:    loc,
		auth:   auth,
		window: transfer.DefaultWindow,
		now:    time.Now,
		log:    zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run establishes at most one session and hydrates its identity through h.
// An incoming transfer always wins over the backend's own session.
// Failures are logged and leave the user anonymous.
func (r *Reconciler) Run(ctx context.Context, h Hydrator) Outcome {
	if tok, ok := transfer.ReadParams(r.loc.URL(), r.now(), r.window); ok {
		return r.adoptTransfer(ctx, tok, h)
	}

	sess, err := r.auth.GetSession(ctx)
	if err != nil {
		r.log.Warn("read backend session", zap.Error(err))
		return Outcome{}
	}
	if sess == nil {
		return Outcome{}
	}
	id := sess.User
	h.Hydrate(ctx, id)
	return Outcome{Source: SourceBackend, Identity: &id}
}

func (r *Reconciler) adoptTransfer(ctx context.Context, tok model.SessionToken, h Hydrator) Outcome {
	r.store.Store(tok)

	_, err := r.auth.SetSession(ctx, tok.AccessToken, tok.RefreshToken)

	// Strip even on failure so a bad transfer is not re-processed on reload.
	if serr := transfer.StripParams(r.loc); serr != nil {
		r.log.Warn("strip transfer params", zap.Error(serr))
	}

	if err != nil {
		r.log.Warn("adopt transferred session", zap.String("user_id", tok.UserID), zap.Error(err))
		r.store.Clear()
		return Outcome{}
	}

	r.log.Info("transferred session adopted", zap.String("user_id", tok.UserID))
	id := tok.Identity()
	h.Hydrate(ctx, id)
	return Outcome{Source: SourceTransfer, Identity: &id}
}
