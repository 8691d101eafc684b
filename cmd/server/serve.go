package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/actuallystonmai/nutrisathi-service/internal/cache"
	"github.com/actuallystonmai/nutrisathi-service/internal/catalog"
	"github.com/actuallystonmai/nutrisathi-service/internal/handler"
	"github.com/actuallystonmai/nutrisathi-service/internal/logging"
	"github.com/actuallystonmai/nutrisathi-service/internal/recommender"
	"github.com/actuallystonmai/nutrisathi-service/internal/repository"
	"github.com/actuallystonmai/nutrisathi-service/internal/router"
	"github.com/actuallystonmai/nutrisathi-service/internal/service"
	"github.com/actuallystonmai/nutrisathi-service/migrations"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		noSeed, _ := cmd.Flags().GetBool("no-seed")
		return serve(noSeed)
	},
}

func serve(noSeed bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ------------ PostgreSQL ---------------
	pool, err := openPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := migrations.Up(ctx, pool, logging.With("migrations")); err != nil {
		return fmt.Errorf("failed to migrate up: %w", err)
	}

	// ------------ Catalog ---------------
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load dish catalog: %w", err)
	}
	logging.Info().Int("dishes", cat.Len()).Str("source", cat.Source()).Msg("dish catalog loaded")

	repo := repository.New(pool)
	if !noSeed {
		if err := seedIfEmpty(ctx, pool, repo, cat, time.Now().In(cfg.Location())); err != nil {
			return fmt.Errorf("failed to seed: %w", err)
		}
	}

	// ------------ Redis ---------------
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	defer client.Close()

	rc := cache.NewCache(client, cfg.Redis.CacheTTL)
	if err := rc.Ping(ctx); err != nil {
		// Sessions and cached plans need redis; keep serving and report it on /health.
		logging.Warn().Err(err).Msg("redis unreachable at startup")
	} else {
		logging.Info().Msg("connected to Redis")
	}

	// ------------ Service ---------------
	engine := recommender.New(cat.Dishes(), nil, recommender.NewPicker(cfg.Catalog.Seed))
	svc := service.NewService(repo, rc, engine, cat, service.Settings{
		SessionTTL: cfg.Redis.SessionTTL,
		Location:   cfg.Location(),
	})
	h := handler.NewHandler(svc, map[string]handler.Pinger{
		"postgres": repo,
		"redis":    rc,
	})

	// ---------------- Server --------------------
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.Setup(h, cfg.Server),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return <-errCh
}
