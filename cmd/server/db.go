package main

import (
	"context"
	"fmt"
	"time"

	"github.com/actuallystonmai/nutrisathi-service/internal/catalog"
	"github.com/actuallystonmai/nutrisathi-service/internal/config"
	"github.com/actuallystonmai/nutrisathi-service/internal/logging"
	"github.com/actuallystonmai/nutrisathi-service/internal/repository"
	"github.com/actuallystonmai/nutrisathi-service/migrations"
	"github.com/actuallystonmai/nutrisathi-service/seeds"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create the tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd.Context(), func(ctx context.Context, _ *config.Config, pool *pgxpool.Pool) error {
			return migrations.Up(ctx, pool, logging.With("migrations"))
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop the tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd.Context(), func(ctx context.Context, _ *config.Config, pool *pgxpool.Pool) error {
			return migrations.Down(ctx, pool, logging.With("migrations"))
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with demo users and meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, _ := cmd.Flags().GetInt("users")
		days, _ := cmd.Flags().GetInt("days")
		seed, _ := cmd.Flags().GetInt64("seed")

		return withPool(cmd.Context(), func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
			if err := migrations.Up(ctx, pool, logging.With("migrations")); err != nil {
				return err
			}
			cat, err := catalog.Load(cfg.Catalog.Path)
			if err != nil {
				return err
			}
			return seeds.Setup(ctx, pool, seeds.Options{
				Users:  users,
				Days:   days,
				Seed:   seed,
				Dishes: cat.Dishes(),
				Now:    time.Now().In(cfg.Location()),
				Logger: logging.With("seeds"),
			})
		})
	},
}

func withPool(ctx context.Context, fn func(context.Context, *config.Config, *pgxpool.Pool) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pool, err := openPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(ctx, cfg, pool)
}

func openPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.PoolSize)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := waitForDB(ctx, pool, cfg.ConnectRetries, cfg.ConnectTimeout); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	logging.Info().Msg("connected to PostgreSQL")
	return pool, nil
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool, retries int, interval time.Duration) error {
	for i := 0; i < retries; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		logging.Info().Int("attempt", i+1).Int("max", retries).Msg("waiting for database")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return fmt.Errorf("database connection timeout after %d attempts", retries)
}

// seedIfEmpty seeds only a database without users.
func seedIfEmpty(ctx context.Context, pool *pgxpool.Pool, repo *repository.Repository, cat *catalog.Catalog, now time.Time) error {
	count, err := repo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("check users count: %w", err)
	}
	if count > 0 {
		logging.Info().Int("users", count).Msg("database already seeded, skipping")
		return nil
	}
	return seeds.Setup(ctx, pool, seeds.Options{
		Dishes: cat.Dishes(),
		Now:    now,
		Logger: logging.With("seeds"),
	})
}
