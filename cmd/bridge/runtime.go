package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/clientportal/sessionbridge/internal/authstate"
	"github.com/clientportal/sessionbridge/internal/backend"
	"github.com/clientportal/sessionbridge/internal/backend/grpcclient"
	"github.com/clientportal/sessionbridge/internal/bridge/reconcile"
	"github.com/clientportal/sessionbridge/internal/bridge/tokenstore"
	"github.com/clientportal/sessionbridge/internal/bridge/transfer"
	"github.com/clientportal/sessionbridge/internal/config"
	"github.com/clientportal/sessionbridge/internal/model"
)

// commandTimeout bounds a single CLI invocation.
const commandTimeout = 30 * time.Second

// connector opens the backend for one invocation; the returned func releases it.
type connector func(cfg *config.BridgeConfig, kv tokenstore.KV, log *zap.Logger) (backend.Backend, func(), error)

func dialBackend(cfg *config.BridgeConfig, kv tokenstore.KV, log *zap.Logger) (backend.Backend, func(), error) {
	cc, err := grpcclient.Dial(grpcclient.DialConfig{
		Addr:      cfg.Backend,
		CACert:    cfg.CACert,
		Insecure:  cfg.Insecure,
		Plaintext: cfg.Plaintext,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", cfg.Backend, err)
	}
	opts := []grpcclient.Option{grpcclient.WithLogger(log.Named("backend"))}
	if cfg.Plaintext {
		opts = append(opts, grpcclient.WithPlaintext())
	}
	c := grpcclient.New(cc, kv, opts...)
	return c, func() {
		c.Close()
		_ = cc.Close()
	}, nil
}

// bridge is the wired client runtime of one application.
type bridge struct {
	store     *tokenstore.Store
	backend   backend.Backend
	lifecycle *authstate.Lifecycle
	loc       *transfer.MemoryLocation
	release   func()
}

// startBridge wires the token store, reconciler and lifecycle and runs the
// startup reconciliation against rawURL, the location the app was opened at.
func startBridge(ctx context.Context, cfg *config.BridgeConfig, connect connector, log *zap.Logger, rawURL string) (*bridge, error) {
	dir := cfg.StateDir
	if dir == "" {
		dir = tokenstore.DefaultDir(cfg.App)
	}
	kv := tokenstore.NewFileKV(dir)

	if rawURL == "" {
		rawURL = "app://" + cfg.App + "/"
	}
	loc, err := transfer.NewMemoryLocation(rawURL)
	if err != nil {
		return nil, err
	}

	be, release, err := connect(cfg, kv, log)
	if err != nil {
		return nil, err
	}
	store := tokenstore.New(kv, tokenstore.WithLogger(log.Named("tokenstore")))
	rec := reconcile.New(store, loc, be,
		reconcile.WithTransferWindow(cfg.TransferWindow),
		reconcile.WithLogger(log.Named("reconcile")),
	)
	lc := authstate.New(be, store, rec,
		authstate.WithInitTimeout(cfg.InitTimeout),
		authstate.WithProfileTimeout(cfg.ProfileTimeout),
		authstate.WithLogger(log.Named("auth")),
	)

	b := &bridge{store: store, backend: be, lifecycle: lc, loc: loc, release: release}
	if err := lc.Start(ctx); err != nil {
		b.Close()
		return nil, err
	}
	return b, nil
}

// Close stops the lifecycle and releases the backend.
func (b *bridge) Close() {
	b.lifecycle.Close()
	b.release()
}

// Get implements transfer.TokenSource: the stored bridge token, or else the
// backend's own session, which may have been refreshed meanwhile.
func (b *bridge) Get() (model.SessionToken, bool) {
	if tok, ok := b.store.Get(); ok {
		return tok, true
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	s, err := b.backend.GetSession(ctx)
	if err != nil || s == nil {
		return model.SessionToken{}, false
	}
	tok := s.Token()
	b.store.Store(tok)
	return tok, true
}

type stateView struct {
	Phase string             `json:"phase"`
	User  *model.UserProfile `json:"user,omitempty"`
	URL   string             `json:"url,omitempty"`
}

func viewOf(s authstate.State) stateView {
	return stateView{Phase: s.Phase().String(), User: s.User}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
