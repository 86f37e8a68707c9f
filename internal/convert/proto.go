// Package convert maps domain types to the sessionbridge.v1 wire messages and back.
package convert

import (
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/clientportal/sessionbridge/gen/go/sessionbridge/v1"
	"github.com/clientportal/sessionbridge/internal/model"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// fromTS is the inverse of ts; AsTime on nil would yield the Unix epoch.
func fromTS(t *timestamppb.Timestamp) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.AsTime()
}

// --- identity / session ---

// ToProtoUser wraps an identity.
func ToProtoUser(id model.Identity) *pb.User {
	return &pb.User{Id: id.ID, Email: id.Email}
}

// FromProtoUser unwraps a user; nil yields the zero identity.
func FromProtoUser(u *pb.User) model.Identity {
	return model.Identity{ID: u.GetId(), Email: u.GetEmail()}
}

// ToProtoSession converts an issued token pair and its owner.
func ToProtoSession(tok model.Tokens, id model.Identity) *pb.Session {
	return &pb.Session{
		AccessToken:      tok.AccessToken,
		RefreshToken:     tok.RefreshToken,
		ExpiresAt:        ts(tok.ExpiresAt),
		RefreshExpiresAt: ts(tok.RefreshExpiresAt),
		User:             ToProtoUser(id),
	}
}

// FromProtoSession splits a session into its tokens and owner.
func FromProtoSession(s *pb.Session) (model.Tokens, model.Identity) {
	return model.Tokens{
		AccessToken:      s.GetAccessToken(),
		RefreshToken:     s.GetRefreshToken(),
		ExpiresAt:        fromTS(s.GetExpiresAt()),
		RefreshExpiresAt: fromTS(s.GetRefreshExpiresAt()),
	}, FromProtoUser(s.GetUser())
}

// --- profiles ---

// ToProtoProfile converts a profile row.
func ToProtoProfile(p model.UserProfile) *pb.Profile {
	return &pb.Profile{
		Id:          p.ID,
		Email:       p.Email,
		FullName:    p.FullName,
		CompanyName: p.CompanyName,
		CompanyLogo: p.CompanyLogo,
		Phone:       p.Phone,
		AvatarUrl:   p.AvatarURL,
		Role:        string(p.Role),
		CreatedAt:   ts(p.CreatedAt),
		UpdatedAt:   ts(p.UpdatedAt),
	}
}

// FromProtoProfile converts a profile message. Unknown roles become client.
func FromProtoProfile(p *pb.Profile) model.UserProfile {
	return model.UserProfile{
		ID:          p.GetId(),
		Email:       p.GetEmail(),
		FullName:    p.GetFullName(),
		CompanyName: p.GetCompanyName(),
		CompanyLogo: p.GetCompanyLogo(),
		Phone:       p.GetPhone(),
		AvatarURL:   p.GetAvatarUrl(),
		Role:        model.ParseRole(p.GetRole()),
		CreatedAt:   fromTS(p.GetCreatedAt()),
		UpdatedAt:   fromTS(p.GetUpdatedAt()),
	}
}

// ToProtoUpdate builds the request writing the non-nil fields of upd.
func ToProtoUpdate(userID string, upd model.ProfileUpdate) *pb.UpdateProfileRequest {
	req := &pb.UpdateProfileRequest{UserId: userID}
	if upd.FullName != nil {
		req.FullName = proto.String(*upd.FullName)
	}
	if upd.CompanyName != nil {
		req.CompanyName = proto.String(*upd.CompanyName)
	}
	if upd.Phone != nil {
		req.Phone = proto.String(*upd.Phone)
	}
	return req
}

// FromProtoUpdate reads the fields present in req; absent ones stay nil.
func FromProtoUpdate(req *pb.UpdateProfileRequest) model.ProfileUpdate {
	var upd model.ProfileUpdate
	if req.FullName != nil {
		upd.FullName = proto.String(req.GetFullName())
	}
	if req.CompanyName != nil {
		upd.CompanyName = proto.String(req.GetCompanyName())
	}
	if req.Phone != nil {
		upd.Phone = proto.String(req.GetPhone())
	}
	return upd
}
