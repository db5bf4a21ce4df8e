package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bakert/manabase/internal/config"
	"github.com/bakert/manabase/internal/server"
	"github.com/bakert/manabase/internal/store"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting manabase-server",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	if cfg.Auth.TokenHash == "" {
		logger.Warn("auth token hash not configured; catalog-override endpoints are open")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var st *store.Store
	if cfg.Database.URL != "" {
		st, err = store.Open(ctx, cfg.Database, logger)
		if err != nil {
			logger.Warn("failed to connect to database; running without solve history", zap.Error(err))
			st = nil
		} else {
			defer st.Close()
			stats := st.Stats()
			logger.Info("database connection pool initialized",
				zap.Int32("total_conns", stats.TotalConns()),
				zap.Int32("idle_conns", stats.IdleConns()),
			)
		}
	}

	srv, err := server.New(cfg, st, logger)
	if err != nil {
		logger.Fatal("failed to initialize server", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: srv.Handler(),
	}

	go func() {
		logger.Info("listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", zap.Error(err))
		}
	}()

	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during graceful shutdown", zap.Error(err))
	}

	cancel()
	logger.Info("manabase-server stopped")
}

// buildZapConfig picks the production (structured JSON) or development
// (colorized console) base config per cfg.Format, then pins the level.
func buildZapConfig(cfg config.LoggingConfig) zap.Config {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	return buildZapConfig(cfg).Build()
}
