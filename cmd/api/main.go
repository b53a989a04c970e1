package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"breed-registry/internal/adapters/cache/rediscache"
	"breed-registry/internal/adapters/storage/postgres"
	"breed-registry/internal/config"
	"breed-registry/internal/domain/public"
	"breed-registry/internal/platform/logger"
	"breed-registry/internal/platform/metrics"
	"breed-registry/internal/router"
)

// @title Breed Registry API
// @version 1.0
// @description Registro de criadores, animales y eventos de cría, con aprobación por admins y consultas públicas de genealogía.
// @BasePath /
// @securityDefinitions.basic BasicAuth
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "breed-registry: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})

	if cfg.Auth.Mode == config.AuthModeDev {
		log.Warn("AUTH_MODE=dev: admin endpoints trust the X-Debug-User-ID header without credentials, do not expose this server", map[string]any{
			"allow_dev": cfg.Auth.AllowDev,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		AuthMode:    cfg.Auth.Mode,
		Logger:      log,
		Metrics:     metrics.New(),
		CacheTTL:    cfg.Redis.TTL,
		StaticDir:   cfg.StaticDir,
		CORSOrigins: cfg.CORS.AllowedOrigins,
		BcryptCost:  cfg.Auth.BcryptCost,
	}

	// Sin DSN se usa el store in-memory (modo dev).
	if cfg.Database.DSN != "" {
		db, err := postgres.Open(ctx, cfg.Database.DSN, postgres.PoolOptions{})
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer db.Close()

		if cfg.Database.Migrate {
			if err := postgres.Migrate(ctx, db, log); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		opts.DB = db
		log.Info("storage: postgres", nil)
	} else {
		log.Warn("storage: in-memory, data is lost on restart", nil)
	}

	if cfg.Redis.Addr != "" {
		rc := rediscache.New(rediscache.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rc.Close()

		if err := rc.Ping(ctx); err != nil {
			// Sin cache el servicio sigue; solo se pierden los hits.
			log.Warn("redis unavailable, public cache disabled", map[string]any{"addr": cfg.Redis.Addr, "error": err})
		} else {
			opts.Cache = public.Cache(rc)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "auth_mode": cfg.Auth.Mode})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
