// Command sessionbridge-server starts the auth/profile backend gRPC server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/clientportal/sessionbridge/gen/go/sessionbridge/v1"
	"github.com/clientportal/sessionbridge/internal/config"
	"github.com/clientportal/sessionbridge/internal/limiter"
	"github.com/clientportal/sessionbridge/internal/logger"
	"github.com/clientportal/sessionbridge/internal/migrate"
	"github.com/clientportal/sessionbridge/internal/repository/postgres"
	grpcserver "github.com/clientportal/sessionbridge/internal/server/grpc"
	"github.com/clientportal/sessionbridge/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

const shutdownGrace = 5 * time.Second

// main parses configuration, runs migrations, and serves until SIGINT/SIGTERM.
func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flags := pflag.NewFlagSet("sessionbridge-server", pflag.ExitOnError)
	config.RegisterServerFlags(flags)
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.LoadServer(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	log, err := logger.New(cfg.Logging, "stdout")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.ServerConfig, log *zap.Logger) error {
	var opts []grpc.ServerOption
	if cfg.Plaintext {
		log.Warn("serving without TLS")
	} else {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			return fmt.Errorf("load TLS cert/key: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}

	if err := migrate.Up(ctx, cfg.DSN, log); err != nil {
		return err
	}
	db, err := postgres.New(ctx, cfg.DSN, cfg.MaxConns)
	if err != nil {
		return err
	}
	defer db.Close()

	// Repositories
	accounts := postgres.NewAccountRepo(db)
	sessions := postgres.NewSessionRepo(db)
	profiles := postgres.NewProfileRepo(db)

	lim := limiter.NewPG(db.Pool, cfg.Limiter.Window, cfg.Limiter.MaxFails, cfg.Limiter.BlockFor)

	// Services
	authSvc := service.NewAuthService(accounts, sessions, lim, service.AuthConfig{
		SignKey:    []byte(cfg.JWTKey),
		AccessTTL:  cfg.AccessTTL,
		RefreshTTL: cfg.RefreshTTL,
		AdoptTTL:   cfg.AdoptTTL,
	})
	profileSvc := service.NewProfileService(profiles)
	app := grpcserver.New(authSvc, profileSvc)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := grpcserver.NewMetrics(reg)

	opts = append(opts, grpc.ChainUnaryInterceptor(
		grpcserver.RecoverUnary(log),
		grpcserver.LoggingUnary(log),
		metrics.Unary(),
		grpcserver.AuthUnary(app.Verify, grpcserver.ProtectedMethods...),
	))
	s := grpc.NewServer(opts...)
	pb.RegisterBridgeServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus(pb.Bridge_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	if cfg.Reflection {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr), zap.Bool("tls", !cfg.Plaintext))
		errCh <- s.Serve(lis)
	}()

	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		metricsSrv = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			log.Info("metrics listening", zap.String("addr", cfg.MetricsAddr))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics: %w", err)
			}
		}()
	}

	// Wait for stop
	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	hs.Shutdown()
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownGrace):
		s.Stop()
	}
	if metricsSrv != nil {
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = metricsSrv.Shutdown(shCtx)
	}
	return serveErr
}
