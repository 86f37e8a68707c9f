// Package grpcserver exposes the session bridge backend as gRPC handlers.
package grpcserver

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "github.com/clientportal/sessionbridge/gen/go/sessionbridge/v1"
	"github.com/clientportal/sessionbridge/internal/convert"
	"github.com/clientportal/sessionbridge/internal/errs"
	"github.com/clientportal/sessionbridge/internal/model"
	"github.com/clientportal/sessionbridge/internal/service"
)

// Verifier validates an access token.
type Verifier func(access string) (model.Identity, time.Time, error)

var _ pb.BridgeServer = (*Server)(nil)

// ProtectedMethods lists the RPCs that require a bearer access token.
var ProtectedMethods = []string{
	pb.Bridge_GetUser_FullMethodName,
	pb.Bridge_ProfileExists_FullMethodName,
	pb.Bridge_GetProfile_FullMethodName,
	pb.Bridge_UpdateProfile_FullMethodName,
}

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedBridgeServer
	auth     service.AuthService
	profiles service.ProfileService
}

// New constructs a gRPC server with injected services.
func New(auth service.AuthService, profiles service.ProfileService) *Server {
	return &Server{auth: auth, profiles: profiles}
}

// Verify is the Verifier backed by the auth service, for AuthUnary.
func (s *Server) Verify(access string) (model.Identity, time.Time, error) {
	return s.auth.VerifyAccess(access)
}

// --- Auth ---

// SignUp creates a new account.
func (s *Server) SignUp(ctx context.Context, req *pb.Credentials) (*pb.User, error) {
	if req.GetEmail() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty email/password")
	}
	id, err := s.auth.SignUp(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err, "sign up")
	}
	return convert.ToProtoUser(id), nil
}

func remoteIP(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// SignIn authenticates with email and password and issues a session.
func (s *Server) SignIn(ctx context.Context, req *pb.Credentials) (*pb.Session, error) {
	if req.GetEmail() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty email/password")
	}
	tok, id, err := s.auth.SignIn(ctx, req.GetEmail(), req.GetPassword(), remoteIP(ctx))
	if err != nil {
		return nil, toStatus(err, "sign in")
	}
	return convert.ToProtoSession(tok, id), nil
}

// AdoptSession installs a session minted elsewhere, e.g. handed over in a URL.
func (s *Server) AdoptSession(ctx context.Context, req *pb.AdoptSessionRequest) (*pb.Session, error) {
	if req.GetAccessToken() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty access_token")
	}
	tok, id, err := s.auth.Adopt(ctx, req.GetAccessToken(), req.GetRefreshToken())
	if err != nil {
		return nil, toStatus(err, "adopt session")
	}
	return convert.ToProtoSession(tok, id), nil
}

// Refresh rotates the refresh token.
func (s *Server) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.Session, error) {
	tok, id, err := s.auth.Refresh(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, toStatus(err, "refresh")
	}
	return convert.ToProtoSession(tok, id), nil
}

// SignOut revokes the refresh token.
func (s *Server) SignOut(ctx context.Context, req *pb.SignOutRequest) (*pb.SignOutResponse, error) {
	if err := s.auth.SignOut(ctx, req.GetRefreshToken()); err != nil {
		return nil, toStatus(err, "sign out")
	}
	return &pb.SignOutResponse{}, nil
}

// GetUser returns the identity behind the bearer token.
func (s *Server) GetUser(ctx context.Context, _ *pb.GetUserRequest) (*pb.User, error) {
	id, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	return convert.ToProtoUser(id), nil
}

// --- Profiles ---

// ProfileExists reports whether the caller's profile row exists yet.
func (s *Server) ProfileExists(ctx context.Context, req *pb.ProfileRequest) (*pb.ProfileExistsResponse, error) {
	if err := s.owner(ctx, req.GetUserId()); err != nil {
		return nil, err
	}
	ok, err := s.profiles.Exists(ctx, req.GetUserId())
	if err != nil {
		return nil, toStatus(err, "profile exists")
	}
	return &pb.ProfileExistsResponse{Exists: ok}, nil
}

// GetProfile returns the caller's full profile row.
func (s *Server) GetProfile(ctx context.Context, req *pb.ProfileRequest) (*pb.GetProfileResponse, error) {
	if err := s.owner(ctx, req.GetUserId()); err != nil {
		return nil, err
	}
	p, err := s.profiles.Get(ctx, req.GetUserId())
	if err != nil {
		return nil, toStatus(err, "get profile")
	}
	return &pb.GetProfileResponse{Profile: convert.ToProtoProfile(*p)}, nil
}

// UpdateProfile writes user-editable fields of the caller's profile.
func (s *Server) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	if err := s.owner(ctx, req.GetUserId()); err != nil {
		return nil, err
	}
	if err := s.profiles.Update(ctx, req.GetUserId(), convert.FromProtoUpdate(req)); err != nil {
		return nil, toStatus(err, "update profile")
	}
	return &pb.UpdateProfileResponse{}, nil
}

// caller returns the identity stored by AuthUnary, or verifies the bearer
// token itself when the interceptor is not installed.
func (s *Server) caller(ctx context.Context) (model.Identity, error) {
	if id, ok := IdentityFromCtx(ctx); ok {
		return id, nil
	}
	id, err := identityFromBearer(ctx, s.Verify)
	if err != nil {
		return model.Identity{}, status.Error(codes.Unauthenticated, "no auth")
	}
	return id, nil
}

func (s *Server) owner(ctx context.Context, userID string) error {
	id, err := s.caller(ctx)
	if err != nil {
		return err
	}
	if id.ID != userID {
		return toStatus(errs.ErrForbidden, "profile")
	}
	return nil
}

// identityFromBearer: extract "authorization: Bearer <JWT>" and verify it.
func identityFromBearer(ctx context.Context, verify Verifier) (model.Identity, error) {
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return model.Identity{}, err
	}
	id, _, err := verify(tok)
	return id, err
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}

// toStatus maps sentinel errors to status codes. The sentinel's text travels
// as the status message so clients can show it.
func toStatus(err error, op string) error {
	var code codes.Code
	switch {
	case errors.Is(err, errs.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, errs.ErrInvalidCredentials.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		code = codes.Unauthenticated
	case errors.Is(err, errs.ErrRateLimited):
		code = codes.ResourceExhausted
	case errors.Is(err, errs.ErrAlreadyExists):
		code = codes.AlreadyExists
	case errors.Is(err, errs.ErrInvalidInput):
		code = codes.InvalidArgument
	case errors.Is(err, errs.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, errs.ErrForbidden):
		code = codes.PermissionDenied
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
	return status.Error(code, err.Error())
}
