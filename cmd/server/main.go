// Command server is ptyd, the daemon that hosts terminal sessions for
// remote clients over gRPC.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "github.com/monotykamary/openmux-pty/gen/proto"
	"github.com/monotykamary/openmux-pty/internal/config"
	"github.com/monotykamary/openmux-pty/internal/journal"
	"github.com/monotykamary/openmux-pty/internal/logging"
	"github.com/monotykamary/openmux-pty/internal/metrics"
	"github.com/monotykamary/openmux-pty/internal/rpc"
	"github.com/monotykamary/openmux-pty/internal/session"
	"github.com/monotykamary/openmux-pty/internal/storage"
)

// version and build are injected at link time:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.build=$(git rev-parse --short HEAD)" ./cmd/server
var (
	version = "dev"
	build   = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.NewDefault().Fatal("invalid configuration", zap.Error(err))
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDev})
	if err != nil {
		logging.NewDefault().Fatal("failed to build logger", zap.Error(err))
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("ptyd failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return err
	}

	// --- Metrics ----------------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// --- Journal ----------------------------------------------------------
	var observer session.Observer
	var journalSvc *journal.Service
	var db *storage.DB

	path, err := cfg.JournalFile()
	if err != nil {
		return err
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return err
		}
		db, err = storage.NewDB(path)
		if err != nil {
			return err
		}
		if n, err := db.CloseDangling(context.Background(), time.Now()); err != nil {
			logger.Warn("failed to close stale journal entries", zap.Error(err))
		} else if n > 0 {
			logger.Info("closed stale journal entries", zap.Int64("count", n))
		}
		journalSvc = journal.NewService(db, logger)
		observer = journalSvc
		logger.Info("journal enabled", zap.String("path", path))
	}

	// --- Sessions ---------------------------------------------------------
	registry := session.NewRegistry(session.Options{
		Logger:      logger.Named("session"),
		Metrics:     m,
		Observer:    observer,
		KillOnClose: true,
	})

	grpcServer := grpc.NewServer()
	pb.RegisterPtyServiceServer(grpcServer, rpc.NewPtyService(registry, rpc.PtyOptions{
		DefaultSize: session.Size{Cols: cfg.DefaultCols, Rows: cfg.DefaultRows},
		Poll:        cfg.StreamPoll,
		Logger:      logger,
	}))
	pb.RegisterSystemServiceServer(grpcServer, rpc.NewSystemService(version, build, logger))
	if journalSvc != nil {
		pb.RegisterJournalServiceServer(grpcServer, rpc.NewJournalService(journalSvc))
	}

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logger.Info("metrics listening", zap.String("addr", cfg.MetricsAddr))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()), zap.String("version", version))
		serveErr <- grpcServer.Serve(lis)
	}()

	var serveFailure error
	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case serveFailure = <-serveErr:
		logger.Error("gRPC server stopped", zap.Error(serveFailure))
	}

	// Streams end once their sessions are gone, so sessions go first.
	registry.CloseAll()
	grpcServer.GracefulStop()

	if metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown error", zap.Error(err))
		}
		cancel()
	}
	if journalSvc != nil {
		if err := journalSvc.Close(); err != nil {
			logger.Warn("journal close error", zap.Error(err))
		}
	}
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Warn("db close error", zap.Error(err))
		}
	}
	logger.Info("server stopped")
	return serveFailure
}
