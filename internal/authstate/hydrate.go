package authstate

import (
	"context"

	"go.uber.org/zap"

	"github.com/clientportal/sessionbridge/internal/model"
	"github.com/clientportal/sessionbridge/internal/settle"
)

// resolveProfile turns an identity into a profile without ever blocking longer
// than two profile timeouts. Any failure yields the minimal profile.
func (l *Lifecycle) resolveProfile(ctx context.Context, id model.Identity) model.UserProfile {
	log := l.log.With(zap.String("user_id", id.ID))

	exists, err := settle.Within(ctx, l.profileTimeout, func(ctx context.Context) (bool, error) {
		return l.backend.ProfileExists(ctx, id.ID)
	})
	if err != nil {
		log.Info("profile store not reachable, using memory profile", zap.Error(err))
		return model.MinimalProfile(id, l.now())
	}
	if !exists {
		log.Info("profile row not found, using memory profile")
		return model.MinimalProfile(id, l.now())
	}

	p, err := settle.Within(ctx, l.profileTimeout, func(ctx context.Context) (*model.UserProfile, error) {
		return l.backend.GetProfile(ctx, id.ID)
	})
	if err != nil || p == nil {
		log.Info("fetch full profile failed, using memory profile", zap.Error(err))
		return model.MinimalProfile(id, l.now())
	}

	prof := *p
	if prof.Email == "" {
		prof.Email = id.Email
	}
	prof.Role = model.ParseRole(string(prof.Role))
	return prof
}

// hydrateAt resolves the profile and publishes it unless a newer generation
// has taken over in the meantime.
func (l *Lifecycle) hydrateAt(ctx context.Context, id model.Identity, gen uint64) {
	p := l.resolveProfile(ctx, id)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		l.log.Debug("dropping stale hydration", zap.String("user_id", id.ID), zap.Uint64("gen", gen))
		return
	}
	l.state.User = &p
	l.publishLocked()
}
