package settle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithin_FastCallWins(t *testing.T) {
	t.Parallel()

	v, err := Within(context.Background(), time.Second, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	require.Equal(t, 7, v)

	boom := errors.New("boom")
	_, err = Within(context.Background(), time.Second, func(context.Context) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
}

func TestWithin_TimerWinsAndCancelsCall(t *testing.T) {
	t.Parallel()

	cancelled := make(chan struct{})
	start := time.Now()
	v, err := Within(context.Background(), 20*time.Millisecond, func(ctx context.Context) (string, error) {
		<-ctx.Done()
		close(cancelled)
		return "late", nil
	})
	require.ErrorIs(t, err, ErrTimeout)
	require.Empty(t, v, "late result must be dropped")
	require.Less(t, time.Since(start), time.Second)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("call context was not cancelled")
	}
}

func TestWithin_ParentCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	_, err := Within(ctx, time.Second, func(context.Context) (int, error) { called = true; return 1, nil })
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}
