package grpcserver

import (
	"context"
	"testing"

	"github.com/clientportal/sessionbridge/internal/model"
)

func TestWithIdentity_And_IdentityFromCtx(t *testing.T) {
	t.Parallel()

	if _, ok := IdentityFromCtx(context.Background()); ok {
		t.Fatalf("expected no identity in empty ctx")
	}

	want := model.Identity{ID: "u1", Email: "a@b.com"}
	got, ok := IdentityFromCtx(WithIdentity(context.Background(), want))
	if !ok || got != want {
		t.Fatalf("mismatch: got %+v ok=%v, want %+v", got, ok, want)
	}

	if _, ok := IdentityFromCtx(WithIdentity(context.Background(), model.Identity{})); ok {
		t.Fatalf("empty identity must not count as authenticated")
	}

	bad := context.WithValue(context.Background(), identityKey, "u1")
	if _, ok := IdentityFromCtx(bad); ok {
		t.Fatalf("expected miss on wrong typed value")
	}
}
