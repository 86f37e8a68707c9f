package authstate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/clientportal/sessionbridge/internal/backend"
	"github.com/clientportal/sessionbridge/internal/backend/backendfake"
	"github.com/clientportal/sessionbridge/internal/bridge/reconcile"
	"github.com/clientportal/sessionbridge/internal/bridge/tokenstore"
	"github.com/clientportal/sessionbridge/internal/bridge/transfer"
	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/model"
)

const (
	testProfileTimeout = 100 * time.Millisecond
	testInitTimeout    = 500 * time.Millisecond
)

type harness struct {
	be    *backendfake.Backend
	store *tokenstore.Store
	loc   *transfer.MemoryLocation
	lc    *Lifecycle
}

func newHarness(t *testing.T, be *backendfake.Backend, rawURL string, opts ...Option) *harness {
	t.Helper()
	log := zaptest.NewLogger(t)
	store := tokenstore.New(tokenstore.NewMemoryKV(), tokenstore.WithLogger(log))
	loc, err := transfer.NewMemoryLocation(rawURL)
	require.NoError(t, err)
	rec := reconcile.New(store, loc, be, reconcile.WithLogger(log))

	base := []Option{WithProfileTimeout(testProfileTimeout), WithInitTimeout(testInitTimeout), WithLogger(log)}
	lc := New(be, store, rec, append(base, opts...)...)
	t.Cleanup(lc.Close)
	return &harness{be: be, store: store, loc: loc, lc: lc}
}

func transferURL(t *testing.T, userID, email string) string {
	t.Helper()
	raw, err := transfer.BuildURL("http://localhost:3000/landing", model.SessionToken{
		AccessToken: "token-" + userID, UserID: userID, Email: email, ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	return raw
}

var ignoreTimes = cmpopts.IgnoreFields(model.UserProfile{}, "CreatedAt", "UpdatedAt")

func TestLifecycle_StartsInitializing(t *testing.T) {
	t.Parallel()

	h := newHarness(t, backendfake.New(), "http://localhost:3000/landing")
	require.Equal(t, PhaseInitializing, h.lc.State().Phase())

	require.NoError(t, h.lc.Start(context.Background()))
	require.Equal(t, PhaseAnonymous, h.lc.State().Phase())
	require.ErrorIs(t, h.lc.Start(context.Background()), errAlreadyStarted)
}

func TestLifecycle_TransferHandoffHydratesFullProfile(t *testing.T) {
	t.Parallel()

	be := backendfake.New()
	uid := be.AddAccount("a@b.com", "pw")
	be.PutProfile(model.UserProfile{ID: uid, Email: "a@b.com", FullName: "Ada", Role: model.RoleCA})

	h := newHarness(t, be, transferURL(t, uid, "a@b.com"))
	require.NoError(t, h.lc.Start(context.Background()))

	st := h.lc.State()
	require.Equal(t, PhaseAuthenticated, st.Phase())
	require.Equal(t, "Ada", st.User.FullName)
	require.Equal(t, model.RoleCA, st.User.Role)
	require.Equal(t, "http://localhost:3000/landing", h.loc.String())

	tok, ok := h.store.Get()
	require.True(t, ok)
	require.Equal(t, uid, tok.UserID)
}

func TestLifecycle_MissingProfileRowYieldsMinimalProfile(t *testing.T) {
	t.Parallel()

	be := backendfake.New()
	uid := be.AddAccount("a@b.com", "pw")

	h := newHarness(t, be, transferURL(t, uid, "a@b.com"))
	start := time.Now()
	require.NoError(t, h.lc.Start(context.Background()))
	require.Less(t, time.Since(start), testProfileTimeout*2)

	want := model.UserProfile{ID: uid, Email: "a@b.com", Role: model.RoleClient}
	got := h.lc.State().User
	require.NotNil(t, got)
	if diff := cmp.Diff(want, *got, ignoreTimes); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestLifecycle_SlowExistenceCheckFallsBack(t *testing.T) {
	t.Parallel()

	be := backendfake.New()
	uid := be.AddAccount("a@b.com", "pw")
	be.PutProfile(model.UserProfile{ID: uid, Email: "a@b.com", FullName: "Ada", Role: model.RoleClient})
	be.ExistsDelay = 10 * testProfileTimeout

	h := newHarness(t, be, transferURL(t, uid, "a@b.com"))
	start := time.Now()
	require.NoError(t, h.lc.Start(context.Background()))
	require.Less(t, time.Since(start), testInitTimeout)

	st := h.lc.State()
	require.False(t, st.Loading)
	require.Equal(t, PhaseAuthenticated, st.Phase())
	require.Empty(t, st.User.FullName, "minimal profile expected")
}

func TestLifecycle_FullProfileErrorFallsBack(t *testing.T) {
	t.Parallel()

	be := backendfake.New()
	uid := be.AddAccount("a@b.com", "pw")
	be.PutProfile(model.UserProfile{ID: uid, Email: "a@b.com", FullName: "Ada"})
	be.GetProfileErr = errors.New("db down")

	h := newHarness(t, be, transferURL(t, uid, "a@b.com"))
	require.NoError(t, h.lc.Start(context.Background()))
	require.Empty(t, h.lc.State().User.FullName)
	require.Equal(t, model.RoleClient, h.lc.State().User.Role)
}

func TestLifecycle_InitTimeoutDiscardsLateHydration(t *testing.T) {
	t.Parallel()

	be := backendfake.New()
	uid := be.AddAccount("a@b.com", "pw")
	be.PutProfile(model.UserProfile{ID: uid, Email: "a@b.com"})
	be.ExistsDelay = time.Second

	h := newHarness(t, be, transferURL(t, uid, "a@b.com"),
		WithInitTimeout(50*time.Millisecond), WithProfileTimeout(time.Second))

	start := time.Now()
	require.NoError(t, h.lc.Start(context.Background()))
	require.Less(t, time.Since(start), 500*time.Millisecond)
	require.Equal(t, PhaseAnonymous, h.lc.State().Phase())

	time.Sleep(100 * time.Millisecond)
	require.Nil(t, h.lc.State().User, "late hydration must not overwrite the timed-out decision")
}

func TestLifecycle_BackendSessionOnLoad(t *testing.T) {
	t.Parallel()

	be := backendfake.New()
	be.SetCurrentSession(&backend.Session{AccessToken: "x", ExpiresAt: time.Now().Add(time.Hour), User: model.Identity{ID: "u2", Email: "u2@b.com"}})

	h := newHarness(t, be, "http://localhost:3000/landing")
	require.NoError(t, h.lc.Start(context.Background()))
	require.Equal(t, "u2", h.lc.State().User.ID)
}

func TestLifecycle_SignIn(t *testing.T) {
	t.Parallel()

	be := backendfake.New()
	uid := be.AddAccount("a@b.com", "pw")
	h := newHarness(t, be, "http://localhost:8080/")
	require.NoError(t, h.lc.Start(context.Background()))

	err := h.lc.SignIn(context.Background(), "a@b.com", "nope")
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	require.Equal(t, PhaseAnonymous, h.lc.State().Phase())

	require.NoError(t, h.lc.SignIn(context.Background(), "a@b.com", "pw"))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	st, err := h.lc.WaitFor(ctx, func(s State) bool { return s.Phase() == PhaseAuthenticated })
	require.NoError(t, err)
	require.Equal(t, uid, st.User.ID)

	tok, ok := h.store.Get()
	require.True(t, ok, "sign-in issues the bridge token")
	require.Equal(t, "refresh-"+uid, tok.RefreshToken)
}

func TestLifecycle_SignUpPublishesMinimalProfileImmediately(t *testing.T) {
	t.Parallel()

	h := newHarness(t, backendfake.New(), "http://localhost:8080/")
	require.NoError(t, h.lc.Start(context.Background()))

	require.NoError(t, h.lc.SignUp(context.Background(), "new@b.com", "pw"))
	st := h.lc.State()
	require.Equal(t, PhaseAuthenticated, st.Phase())
	require.Equal(t, "new@b.com", st.User.Email)
	require.Equal(t, model.RoleClient, st.User.Role)

	require.ErrorIs(t, h.lc.SignUp(context.Background(), "new@b.com", "pw"), errs.ErrAlreadyExists)
}

func TestLifecycle_SignOutUnderBackendFailure(t *testing.T) {
	t.Parallel()

	be := backendfake.New()
	uid := be.AddAccount("a@b.com", "pw")
	h := newHarness(t, be, transferURL(t, uid, "a@b.com"))
	require.NoError(t, h.lc.Start(context.Background()))
	require.Equal(t, PhaseAuthenticated, h.lc.State().Phase())

	be.Lock()
	be.SignOutErr = errors.New("network down")
	be.Unlock()

	h.lc.SignOut(context.Background())
	require.Nil(t, h.lc.State().User)
	_, ok := h.store.Get()
	require.False(t, ok)
	require.Equal(t, 1, be.SignOutCalls)
}

func TestLifecycle_CompleteProfile(t *testing.T) {
	t.Parallel()

	be := backendfake.New()
	uid := be.AddAccount("a@b.com", "pw")
	be.PutProfile(model.UserProfile{ID: uid, Email: "a@b.com", Phone: "111"})

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newHarness(t, be, "http://localhost:3000/landing", WithClock(func() time.Time { return clock }))
	require.NoError(t, h.lc.Start(context.Background()))

	name := "X"
	err := h.lc.CompleteProfile(context.Background(), model.ProfileUpdate{FullName: &name})
	require.ErrorIs(t, err, errs.ErrNoActiveSession)
	require.Equal(t, "NoActiveSession", err.Error())
	require.Empty(t, be.UpdateCalls)
	require.Nil(t, h.lc.State().User)

	be.SetCurrentSession(&backend.Session{User: model.Identity{ID: uid, Email: "a@b.com"}})
	be.Emit(backend.Event{Kind: backend.EventSignedIn, Session: be.CurrentSession()})
	_, err = h.lc.WaitFor(context.Background(), func(s State) bool { return s.User != nil && s.User.Phone == "111" })
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	company := "Acme"
	require.NoError(t, h.lc.CompleteProfile(context.Background(), model.ProfileUpdate{FullName: &name, CompanyName: &company}))

	u := h.lc.State().User
	require.Equal(t, "X", u.FullName)
	require.Equal(t, "Acme", u.CompanyName)
	require.Equal(t, "111", u.Phone, "fields not in the update are kept")
	require.Equal(t, clock, u.UpdatedAt)

	be.UpdateErr = errors.New("row locked")
	require.Error(t, h.lc.CompleteProfile(context.Background(), model.ProfileUpdate{Phone: &name}))
	require.Equal(t, "111", h.lc.State().User.Phone)
}

func TestLifecycle_CompleteProfileSurvivesInFlightHydration(t *testing.T) {
	t.Parallel()

	be := backendfake.New()
	uid := be.AddAccount("a@b.com", "pw")
	be.PutProfile(model.UserProfile{ID: uid, Email: "a@b.com", FullName: "Ada"})

	h := newHarness(t, be, transferURL(t, uid, "a@b.com"))
	require.NoError(t, h.lc.Start(context.Background()))
	require.Equal(t, "Ada", h.lc.State().User.FullName)

	be.Lock()
	be.ProfileDelay = 50 * time.Millisecond
	be.Unlock()
	be.Emit(backend.Event{Kind: backend.EventTokenRefreshed, Session: &backend.Session{
		AccessToken: "t2", ExpiresAt: time.Now().Add(time.Hour), User: model.Identity{ID: uid, Email: "a@b.com"},
	}})
	time.Sleep(10 * time.Millisecond) // the refresh hydration has read the old row

	name := "X"
	require.NoError(t, h.lc.CompleteProfile(context.Background(), model.ProfileUpdate{FullName: &name}))
	require.Equal(t, "X", h.lc.State().User.FullName)

	time.Sleep(150 * time.Millisecond)
	require.Equal(t, "X", h.lc.State().User.FullName)
	p, ok := be.Profile(uid)
	require.True(t, ok)
	require.Equal(t, "X", p.FullName)
}

func TestLifecycle_ExternalEvents(t *testing.T) {
	t.Parallel()

	be := backendfake.New()
	h := newHarness(t, be, "http://localhost:3000/landing")
	require.NoError(t, h.lc.Start(context.Background()))

	be.Emit(backend.Event{Kind: backend.EventTokenRefreshed, Session: &backend.Session{
		AccessToken: "t", ExpiresAt: time.Now().Add(time.Hour), User: model.Identity{ID: "u5", Email: "u5@b.com"},
	}})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := h.lc.WaitFor(ctx, func(s State) bool { return s.Phase() == PhaseAuthenticated })
	require.NoError(t, err)

	be.Emit(backend.Event{Kind: backend.EventSignedOut})
	_, err = h.lc.WaitFor(ctx, func(s State) bool { return s.Phase() == PhaseAnonymous })
	require.NoError(t, err)
	_, ok := h.store.Get()
	require.False(t, ok)
}

func TestLifecycle_SignOutWinsOverInFlightHydration(t *testing.T) {
	t.Parallel()

	be := backendfake.New()
	be.PutProfile(model.UserProfile{ID: "u6", Email: "u6@b.com"})
	be.ProfileDelay = 50 * time.Millisecond
	h := newHarness(t, be, "http://localhost:3000/landing")
	require.NoError(t, h.lc.Start(context.Background()))

	be.Emit(backend.Event{Kind: backend.EventSignedIn, Session: &backend.Session{
		AccessToken: "t", ExpiresAt: time.Now().Add(time.Hour), User: model.Identity{ID: "u6", Email: "u6@b.com"},
	}})
	time.Sleep(10 * time.Millisecond) // hydration is now waiting on the profile read
	h.lc.SignOut(context.Background())

	time.Sleep(150 * time.Millisecond)
	require.Nil(t, h.lc.State().User)
}

func TestLifecycle_CloseIsIdempotentAndClosesWatchers(t *testing.T) {
	t.Parallel()

	h := newHarness(t, backendfake.New(), "http://localhost:3000/landing")
	require.NoError(t, h.lc.Start(context.Background()))

	ch, cancel := h.lc.Watch()
	defer cancel()
	first := <-ch
	require.Equal(t, PhaseAnonymous, first.Phase())

	h.lc.Close()
	h.lc.Close()
	_, ok := <-ch
	require.False(t, ok)
}
