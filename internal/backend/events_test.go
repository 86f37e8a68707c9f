package backend

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clientportal/sessionbridge/internal/model"
)

type recorder struct {
	mu    sync.Mutex
	kinds []EventKind
}

func (r *recorder) add(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = append(r.kinds, ev.Kind)
}

func (r *recorder) snapshot() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]EventKind(nil), r.kinds...)
}

func TestHub_DeliversInPublishOrder(t *testing.T) {
	t.Parallel()

	h := NewHub()
	var rec recorder
	sub := h.Subscribe(rec.add)
	defer sub.Unsubscribe()

	want := []EventKind{}
	for i := 0; i < 100; i++ {
		k := EventSignedIn
		if i%2 == 1 {
			k = EventSignedOut
		}
		want = append(want, k)
		h.Publish(Event{Kind: k})
	}

	require.Eventually(t, func() bool { return len(rec.snapshot()) == len(want) }, time.Second, 5*time.Millisecond)
	require.Equal(t, want, rec.snapshot())
}

func TestHub_UnsubscribeStopsDeliveryAndIsIdempotent(t *testing.T) {
	t.Parallel()

	h := NewHub()
	var rec recorder
	sub := h.Subscribe(rec.add)
	h.Publish(Event{Kind: EventSignedIn})
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)

	sub.Unsubscribe()
	sub.Unsubscribe()
	h.Publish(Event{Kind: EventSignedOut})
	time.Sleep(20 * time.Millisecond)
	require.Len(t, rec.snapshot(), 1)
}

func TestHub_CloseMakesLaterSubscriptionsInert(t *testing.T) {
	t.Parallel()

	h := NewHub()
	var a, b recorder
	h.Subscribe(a.add)
	h.Close()
	sub := h.Subscribe(b.add)
	h.Publish(Event{Kind: EventSignedIn})
	time.Sleep(20 * time.Millisecond)

	require.Empty(t, a.snapshot())
	require.Empty(t, b.snapshot())
	require.NotPanics(t, sub.Unsubscribe)
}

func TestSession_Token(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Minute)
	s := Session{AccessToken: "a", RefreshToken: "r", ExpiresAt: exp, User: model.Identity{ID: "u1", Email: "a@b.com"}}
	require.Equal(t, model.SessionToken{AccessToken: "a", RefreshToken: "r", ExpiresAt: exp, UserID: "u1", Email: "a@b.com"}, s.Token())
}
