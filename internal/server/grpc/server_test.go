package grpcserver

import (
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	pb "github.com/clientportal/sessionbridge/gen/go/sessionbridge/v1"
	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/model"
)

// fakeAuth accepts "access-<id>" as access tokens and "refresh-<id>" as refresh tokens.
type fakeAuth struct {
	mu      sync.Mutex
	users   map[string]model.Identity // by email
	lastIP  string
	revoked []string
}

func newFakeAuth() *fakeAuth { return &fakeAuth{users: map[string]model.Identity{}} }

func (f *fakeAuth) SignUp(_ context.Context, email, password string) (model.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[email]; ok {
		return model.Identity{}, errs.ErrAlreadyExists
	}
	id := model.Identity{ID: "u" + password, Email: email}
	f.users[email] = id
	return id, nil
}

func (f *fakeAuth) SignIn(_ context.Context, email, password, ip string) (model.Tokens, model.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastIP = ip
	id, ok := f.users[email]
	if !ok || id.ID != "u"+password {
		return model.Tokens{}, model.Identity{}, errs.ErrInvalidCredentials
	}
	return tokensFor(id), id, nil
}

func (f *fakeAuth) Adopt(_ context.Context, access, _ string) (model.Tokens, model.Identity, error) {
	id, _, err := f.VerifyAccess(access)
	if err != nil {
		return model.Tokens{}, model.Identity{}, err
	}
	return tokensFor(id), id, nil
}

func (f *fakeAuth) Refresh(_ context.Context, refresh string) (model.Tokens, model.Identity, error) {
	uid, ok := strings.CutPrefix(refresh, "refresh-")
	if !ok {
		return model.Tokens{}, model.Identity{}, errs.ErrUnauthorized
	}
	id := model.Identity{ID: uid}
	return tokensFor(id), id, nil
}

func (f *fakeAuth) SignOut(_ context.Context, refresh string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, refresh)
	return nil
}

func (f *fakeAuth) VerifyAccess(access string) (model.Identity, time.Time, error) {
	uid, ok := strings.CutPrefix(access, "access-")
	if !ok || uid == "" {
		return model.Identity{}, time.Time{}, errs.ErrUnauthorized
	}
	return model.Identity{ID: uid, Email: uid + "@b.com"}, time.Now().Add(time.Minute), nil
}

func tokensFor(id model.Identity) model.Tokens {
	return model.Tokens{
		AccessToken:      "access-" + id.ID,
		RefreshToken:     "refresh-" + id.ID,
		ExpiresAt:        time.Now().Add(time.Minute).Truncate(time.Second),
		RefreshExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second),
	}
}

type fakeProfiles struct {
	mu   sync.Mutex
	rows map[string]model.UserProfile
}

func (f *fakeProfiles) Exists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeProfiles) Get(_ context.Context, id string) (*model.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProfiles) Update(_ context.Context, id string, upd model.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return errs.ErrNotFound
	}
	upd.Apply(&p, time.Now())
	f.rows[id] = p
	return nil
}

const bufSize = 1 << 20

func startBufGRPC(t *testing.T, srv *Server, opts ...grpc.ServerOption) pb.BridgeClient {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer(opts...)
	pb.RegisterBridgeServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() })
	return pb.NewBridgeClient(cc)
}

func bearer(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func requireCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, status.Code(err), err.Error())
}

func TestServer_E2E_BasicFlow(t *testing.T) {
	t.Parallel()

	auth := newFakeAuth()
	profiles := &fakeProfiles{rows: map[string]model.UserProfile{}}
	srv := New(auth, profiles)
	log := zaptest.NewLogger(t)
	cl := startBufGRPC(t, srv, grpc.ChainUnaryInterceptor(
		RecoverUnary(log),
		LoggingUnary(log),
		NewMetrics(prometheus.NewRegistry()).Unary(),
		AuthUnary(srv.Verify, ProtectedMethods...),
	))
	ctx := context.Background()

	u, err := cl.SignUp(ctx, &pb.Credentials{Email: "a@b.com", Password: "1"})
	require.NoError(t, err)
	require.True(t, proto.Equal(&pb.User{Id: "u1", Email: "a@b.com"}, u), u.String())

	_, err = cl.SignUp(ctx, &pb.Credentials{Email: "a@b.com", Password: "1"})
	requireCode(t, err, codes.AlreadyExists)
	require.Equal(t, errs.ErrAlreadyExists.Error(), status.Convert(err).Message())

	_, err = cl.SignIn(ctx, &pb.Credentials{Email: "a@b.com", Password: "2"})
	requireCode(t, err, codes.Unauthenticated)
	require.Equal(t, "invalid login credentials", status.Convert(err).Message())

	sess, err := cl.SignIn(ctx, &pb.Credentials{Email: "a@b.com", Password: "1"})
	require.NoError(t, err)
	require.Equal(t, "access-u1", sess.AccessToken)
	require.Equal(t, "u1", sess.GetUser().GetId())
	require.NotNil(t, sess.GetExpiresAt())
	require.True(t, sess.GetRefreshExpiresAt().AsTime().After(sess.GetExpiresAt().AsTime()))

	_, err = cl.GetUser(ctx, &pb.GetUserRequest{})
	requireCode(t, err, codes.Unauthenticated)

	authed := bearer(ctx, sess.AccessToken)
	me, err := cl.GetUser(authed, &pb.GetUserRequest{})
	require.NoError(t, err)
	require.Equal(t, "u1", me.GetId())

	ex, err := cl.ProfileExists(authed, &pb.ProfileRequest{UserId: "u1"})
	require.NoError(t, err)
	require.False(t, ex.GetExists())

	_, err = cl.GetProfile(authed, &pb.ProfileRequest{UserId: "u1"})
	requireCode(t, err, codes.NotFound)

	_, err = cl.ProfileExists(authed, &pb.ProfileRequest{UserId: "u2"})
	requireCode(t, err, codes.PermissionDenied)

	profiles.mu.Lock()
	profiles.rows["u1"] = model.UserProfile{ID: "u1", Email: "a@b.com", Phone: "111", Role: model.RoleCA}
	profiles.mu.Unlock()
	_, err = cl.UpdateProfile(authed, &pb.UpdateProfileRequest{UserId: "u1", FullName: proto.String("Ada")})
	require.NoError(t, err)

	p, err := cl.GetProfile(authed, &pb.ProfileRequest{UserId: "u1"})
	require.NoError(t, err)
	require.Equal(t, "Ada", p.GetProfile().GetFullName())
	require.Equal(t, "111", p.GetProfile().GetPhone(), "absent fields are left alone")
	require.Equal(t, string(model.RoleCA), p.GetProfile().GetRole())

	// an explicitly empty field is a write
	_, err = cl.UpdateProfile(authed, &pb.UpdateProfileRequest{UserId: "u1", Phone: proto.String("")})
	require.NoError(t, err)
	p, err = cl.GetProfile(authed, &pb.ProfileRequest{UserId: "u1"})
	require.NoError(t, err)
	require.Empty(t, p.GetProfile().GetPhone())
	require.Equal(t, "Ada", p.GetProfile().GetFullName())

	adopted, err := cl.AdoptSession(ctx, &pb.AdoptSessionRequest{AccessToken: sess.AccessToken})
	require.NoError(t, err)
	require.Equal(t, "refresh-u1", adopted.GetRefreshToken())

	_, err = cl.AdoptSession(ctx, &pb.AdoptSessionRequest{AccessToken: "forged"})
	requireCode(t, err, codes.Unauthenticated)

	_, err = cl.Refresh(ctx, &pb.RefreshRequest{RefreshToken: "bogus"})
	requireCode(t, err, codes.Unauthenticated)

	_, err = cl.SignOut(ctx, &pb.SignOutRequest{RefreshToken: sess.RefreshToken})
	require.NoError(t, err)
	require.Equal(t, []string{"refresh-u1"}, auth.revoked)
}

func TestServer_HandlersWithoutInterceptor(t *testing.T) {
	t.Parallel()

	srv := New(newFakeAuth(), &fakeProfiles{rows: map[string]model.UserProfile{"u7": {ID: "u7"}}})

	_, err := srv.SignUp(context.Background(), &pb.Credentials{Email: "", Password: "x"})
	requireCode(t, err, codes.InvalidArgument)
	_, err = srv.SignIn(context.Background(), &pb.Credentials{Email: "a@b.com"})
	requireCode(t, err, codes.InvalidArgument)
	_, err = srv.AdoptSession(context.Background(), &pb.AdoptSessionRequest{})
	requireCode(t, err, codes.InvalidArgument)

	_, err = srv.GetProfile(context.Background(), &pb.ProfileRequest{UserId: "u7"})
	requireCode(t, err, codes.Unauthenticated)

	// falls back to the bearer token when no identity was stored
	resp, err := srv.ProfileExists(ctxAuth("access-u7"), &pb.ProfileRequest{UserId: "u7"})
	require.NoError(t, err)
	require.True(t, resp.GetExists())

	// identity stored by the interceptor wins
	ctx := WithIdentity(context.Background(), model.Identity{ID: "u7"})
	_, err = srv.GetProfile(ctx, &pb.ProfileRequest{UserId: "u7"})
	require.NoError(t, err)
}
