package limiter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/************ fake pgx ************/
type fakeRow struct{ scan func(dest ...any) error }

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

type fakePool struct {
	qrErr         error
	qrBlockedTill time.Time
	qrFailsRet    int

	lastExecSQL  string
	lastExecArgs []any
	execErr      error
}

func (f *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastExecSQL = sql
	f.lastExecArgs = args
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakePool) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	switch {
	case strings.Contains(sql, "SELECT blocked_until"):
		return fakeRow{scan: func(dest ...any) error {
			if f.qrErr != nil {
				return f.qrErr
			}
			*(dest[0].(*time.Time)) = f.qrBlockedTill
			return nil
		}}
	case strings.Contains(sql, "RETURNING fail_count"):
		return fakeRow{scan: func(dest ...any) error {
			if f.qrErr != nil {
				return f.qrErr
			}
			*(dest[0].(*int)) = f.qrFailsRet
			return nil
		}}
	default:
		return fakeRow{scan: func(...any) error { return errors.New("unexpected query") }}
	}
}

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPG(fp *fakePool, maxFails int, blockFor time.Duration) *PG {
	l := NewPG(fp, 15*time.Minute, maxFails, blockFor)
	l.now = func() time.Time { return t0 }
	return l
}

func TestAllow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pool    *fakePool
		wantOK  bool
		wantDur time.Duration
		wantErr bool
	}{
		{name: "no row", pool: &fakePool{qrErr: pgx.ErrNoRows}, wantOK: true},
		{name: "blocked", pool: &fakePool{qrBlockedTill: t0.Add(10 * time.Minute)}, wantDur: 10 * time.Minute},
		{name: "block expired", pool: &fakePool{qrBlockedTill: t0.Add(-time.Minute)}, wantOK: true},
		{name: "epoch", pool: &fakePool{qrBlockedTill: time.Unix(0, 0)}, wantOK: true},
		{name: "db error", pool: &fakePool{qrErr: errors.New("db boom")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, dur, err := newTestPG(tt.pool, 5, time.Minute).Allow(context.Background(), "a@b.com", []byte("h"))
			if tt.wantErr {
				require.Error(t, err)
				require.False(t, ok)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantDur, dur)
		})
	}
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	fp := &fakePool{}
	require.NoError(t, newTestPG(fp, 5, time.Minute).Success(context.Background(), "a@b.com", []byte("h")))
	require.Contains(t, fp.lastExecSQL, "INSERT INTO auth_limiter")

	fp.execErr = errors.New("exec fail")
	require.Error(t, newTestPG(fp, 5, time.Minute).Success(context.Background(), "a@b.com", []byte("h")))
}

func TestFailure_Increments_NoBlock(t *testing.T) {
	t.Parallel()

	fp := &fakePool{qrFailsRet: 2}
	blocked, dur, err := newTestPG(fp, 5, 15*time.Minute).Failure(context.Background(), "a@b.com", []byte("h"))
	require.NoError(t, err)
	require.False(t, blocked)
	require.Zero(t, dur)
	require.Empty(t, fp.lastExecSQL)
}

func TestFailure_BlocksAtThreshold(t *testing.T) {
	t.Parallel()

	fp := &fakePool{qrFailsRet: 5}
	blocked, dur, err := newTestPG(fp, 5, 10*time.Minute).Failure(context.Background(), "a@b.com", []byte("h"))
	require.NoError(t, err)
	require.True(t, blocked)
	require.Equal(t, 10*time.Minute, dur)
	require.Contains(t, fp.lastExecSQL, "UPDATE auth_limiter SET blocked_until")
	require.Equal(t, t0.Add(10*time.Minute), fp.lastExecArgs[2])
}

func TestFailure_DBErrorOnReturning(t *testing.T) {
	t.Parallel()

	fp := &fakePool{qrErr: errors.New("query error")}
	_, _, err := newTestPG(fp, 5, 10*time.Minute).Failure(context.Background(), "a@b.com", []byte("h"))
	require.Error(t, err)
}

func TestHashIP_Determinism(t *testing.T) {
	t.Parallel()

	a := HashIP("1.2.3.4")
	require.Equal(t, a, HashIP("1.2.3.4"))
	require.NotEqual(t, a, HashIP("5.6.7.8"))
	require.Len(t, a, 32)
}

func TestNop(t *testing.T) {
	t.Parallel()

	var l Limiter = Nop{}
	ok, _, err := l.Allow(context.Background(), "x", nil)
	require.NoError(t, err)
	require.True(t, ok)
	blocked, _, err := l.Failure(context.Background(), "x", nil)
	require.NoError(t, err)
	require.False(t, blocked)
}
