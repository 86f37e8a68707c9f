// Package authstate owns the per-process "who is the current user" state.
//
// The lifecycle starts Initializing, resolves to Anonymous or Authenticated
// once the startup reconciliation finishes or the init timeout fires, and
// from then on follows sign-in, sign-up, sign-out, profile completion and
// session events emitted by the backend.
package authstate

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/clientportal/sessionbridge/internal/backend"
	"github.com/clientportal/sessionbridge/internal/bridge/reconcile"
	"github.com/clientportal/sessionbridge/internal/bridge/tokenstore"
	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/model"
)

// Default timeouts.
const (
	DefaultInitTimeout    = 5 * time.Second
	DefaultProfileTimeout = 2 * time.Second
)

var errAlreadyStarted = errors.New("auth lifecycle already started")

var _ Reader = (*Lifecycle)(nil)

// Lifecycle is the single owner of the current user.
type Lifecycle struct {
	backend        backend.Backend
	store          *tokenstore.Store
	rec            *reconcile.Reconciler
	initTimeout    time.Duration
	profileTimeout time.Duration
	now            func() time.Time
	log            *zap.Logger

	mu       sync.Mutex
	state    State
	gen      uint64 // bumped by every write to state.User; stale hydrations compare against it
	watchers map[chan State]struct{}
	started  bool
	closed   bool
	sub      backend.Subscription

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Option configures a Lifecycle.
type Option func(*Lifecycle)

// WithInitTimeout bounds the Initializing phase.
func WithInitTimeout(d time.Duration) Option { return func(l *Lifecycle) { l.initTimeout = d } }

// WithProfileTimeout bounds each profile read during hydration.
func WithProfileTimeout(d time.Duration) Option { return func(l *Lifecycle) { l.profileTimeout = d } }

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option { return func(l *Lifecycle) { l.now = now } }

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option { return func(l *Lifecycle) { l.log = log } }

// New constructs a Lifecycle in the Initializing phase.
func New(b backend.Backend, store *tokenstore.Store, rec *reconcile.Reconciler, opts ...Option) *Lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	l := &Lifecycle{
		backend:        b,
		store:          store,
		rec:            rec,
		initTimeout:    DefaultInitTimeout,
		profileTimeout: DefaultProfileTimeout,
		now:            time.Now,
		log:            zap.NewNop(),
		state:          State{Loading: true},
		watchers:       map[chan State]struct{}{},
		ctx:            ctx,
		cancel:         cancel,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Start runs the startup reconciliation and returns once Loading is false,
// at the latest after the init timeout. It subscribes to backend session
// events before leaving the Initializing phase.
func (l *Lifecycle) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.started || l.closed {
		l.mu.Unlock()
		return errAlreadyStarted
	}
	l.started = true
	initGen := l.gen
	l.wg.Add(1)
	l.mu.Unlock()

	// Cancelled only after the generation bump below, so an abandoned
	// reconciliation can never publish.
	initCtx, cancel := context.WithCancel(l.ctx)
	defer cancel()

	done := make(chan reconcile.Outcome, 1)
	go func() {
		defer l.wg.Done()
		done <- l.rec.Run(initCtx, reconcile.HydratorFunc(func(ctx context.Context, id model.Identity) {
			l.hydrateAt(ctx, id, initGen)
		}))
	}()

	timer := time.NewTimer(l.initTimeout)
	defer timer.Stop()

	var err error
	select {
	case out := <-done:
		l.log.Info("auth initialized", zap.Stringer("source", out.Source))
	case <-timer.C:
		l.log.Warn("auth initialization timed out", zap.Duration("timeout", l.initTimeout))
	case <-ctx.Done():
		err = ctx.Err()
	}

	sub := l.backend.OnAuthStateChange(l.onAuthEvent)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		sub.Unsubscribe()
	} else {
		l.sub = sub
	}
	l.gen++ // anything still running under initGen is now stale
	l.state.Loading = false
	l.publishLocked()
	return err
}

func (l *Lifecycle) onAuthEvent(ev backend.Event) {
	if ev.Session == nil {
		l.log.Info("session ended", zap.String("event", string(ev.Kind)))
		l.store.Clear()
		l.mu.Lock()
		l.gen++
		l.state.User = nil
		l.publishLocked()
		l.mu.Unlock()
		return
	}

	l.store.Store(ev.Session.Token())

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.gen++
	gen := l.gen
	l.wg.Add(1)
	l.mu.Unlock()

	id := ev.Session.User
	l.log.Info("session event", zap.String("event", string(ev.Kind)), zap.String("user_id", id.ID))
	go func() {
		defer l.wg.Done()
		l.hydrateAt(l.ctx, id, gen)
	}()
}

// SignIn authenticates with the backend. The Authenticated transition follows
// from the backend's session event, not from this call.
func (l *Lifecycle) SignIn(ctx context.Context, email, password string) error {
	if _, err := l.backend.SignInWithPassword(ctx, email, password); err != nil {
		l.log.Info("sign in rejected", zap.String("email", email), zap.Error(err))
		return err
	}
	return nil
}

// SignUp registers a new identity and publishes a minimal profile right away;
// the backend creates the profile row on its own schedule.
func (l *Lifecycle) SignUp(ctx context.Context, email, password string) error {
	id, err := l.backend.SignUp(ctx, email, password)
	if err != nil {
		l.log.Info("sign up rejected", zap.String("email", email), zap.Error(err))
		return err
	}
	p := model.MinimalProfile(id, l.now())

	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.state.User = &p
	l.publishLocked()
	return nil
}

// SignOut always ends logged out locally, whatever the backend answers.
func (l *Lifecycle) SignOut(ctx context.Context) {
	if err := l.backend.SignOut(ctx); err != nil {
		l.log.Warn("backend sign out failed, clearing local state anyway", zap.Error(err))
	}
	l.store.Clear()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.state.User = nil
	l.publishLocked()
}

// CompleteProfile writes the given fields to the backend and merges them into
// the in-memory profile without refetching it.
func (l *Lifecycle) CompleteProfile(ctx context.Context, upd model.ProfileUpdate) error {
	l.mu.Lock()
	if l.state.User == nil {
		l.mu.Unlock()
		return errs.ErrNoActiveSession
	}
	userID := l.state.User.ID
	l.mu.Unlock()

	if err := l.backend.UpdateProfile(ctx, userID, upd); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state.User == nil || l.state.User.ID != userID {
		return nil
	}
	u := *l.state.User
	upd.Apply(&u, l.now())
	l.gen++ // a hydration that read the row before the write is now stale
	l.state.User = &u
	l.publishLocked()
	return nil
}

// State returns a snapshot of the current state.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.clone()
}

// Watch returns a channel carrying the latest state (the current one first)
// and a cancel func. Slow readers only ever see the newest snapshot.
func (l *Lifecycle) Watch() (<-chan State, func()) {
	ch := make(chan State, 1)
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	l.watchers[ch] = struct{}{}
	ch <- l.state.clone()
	l.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if _, ok := l.watchers[ch]; ok {
				delete(l.watchers, ch)
				close(ch)
			}
		})
	}
}

// WaitFor blocks until cond holds for the current state or ctx ends.
func (l *Lifecycle) WaitFor(ctx context.Context, cond func(State) bool) (State, error) {
	ch, cancel := l.Watch()
	defer cancel()
	for {
		select {
		case s, ok := <-ch:
			if !ok {
				return l.State(), errors.New("auth lifecycle closed")
			}
			if cond(s) {
				return s, nil
			}
		case <-ctx.Done():
			return l.State(), ctx.Err()
		}
	}
}

func (l *Lifecycle) publishLocked() {
	for ch := range l.watchers {
		select {
		case <-ch:
		default:
		}
		ch <- l.state.clone()
	}
}

// Close tears down the event subscription once, cancels in-flight hydrations
// and waits for them.
func (l *Lifecycle) Close() {
	l.closeOnce.Do(func() {
		l.mu.Lock()
		l.closed = true
		sub := l.sub
		l.mu.Unlock()

		if sub != nil {
			sub.Unsubscribe()
		}
		l.cancel()
		l.wg.Wait()

		l.mu.Lock()
		for ch := range l.watchers {
			delete(l.watchers, ch)
			close(ch)
		}
		l.mu.Unlock()
	})
}
