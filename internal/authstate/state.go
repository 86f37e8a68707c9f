package authstate

import "github.com/clientportal/sessionbridge/internal/model"

// Phase is the coarse lifecycle position.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseAnonymous
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseAnonymous:
		return "anonymous"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the auth state.
type State struct {
	Loading bool
	User    *model.UserProfile
}

// Phase derives the lifecycle phase.
func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseInitializing
	case s.User != nil:
		return PhaseAuthenticated
	default:
		return PhaseAnonymous
	}
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Reader is the read-only view handed to consumers.
type Reader interface {
	State() State
	Watch() (<-chan State, func())
}
