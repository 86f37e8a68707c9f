package grpcclient

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clientportal/sessionbridge/internal/errs"
)

// remoteError keeps the server's message while matching a local sentinel.
type remoteError struct {
	msg      string
	sentinel error
}

func (e *remoteError) Error() string { return e.msg }
func (e *remoteError) Unwrap() error { return e.sentinel }

func remote(sentinel error, msg string) error {
	if msg == "" || msg == sentinel.Error() {
		return sentinel
	}
	return &remoteError{msg: msg, sentinel: sentinel}
}

// fromStatus maps a gRPC status back to the sentinel the server started from.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	msg := st.Message()
	switch st.Code() {
	case codes.Unauthenticated:
		if msg == errs.ErrInvalidCredentials.Error() {
			return errs.ErrInvalidCredentials
		}
		return remote(errs.ErrUnauthorized, msg)
	case codes.AlreadyExists:
		return remote(errs.ErrAlreadyExists, msg)
	case codes.ResourceExhausted:
		return remote(errs.ErrRateLimited, msg)
	case codes.InvalidArgument:
		return remote(errs.ErrInvalidInput, msg)
	case codes.NotFound:
		return remote(errs.ErrNotFound, msg)
	case codes.PermissionDenied:
		return remote(errs.ErrForbidden, msg)
	case codes.Unavailable:
		return remote(errs.ErrUnavailable, msg)
	case codes.Canceled:
		return context.Canceled
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	default:
		return err
	}
}
