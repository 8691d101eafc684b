// Package migrations applies the embedded schema files.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

//go:embed *.sql
var files embed.FS

// Names lists the migration files for a direction ("up" or "down"). Up
// files run in name order, down files in reverse.
func Names(direction string) ([]string, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, err
	}
	suffix := "." + direction + ".sql"
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	if direction == "down" {
		slices.Reverse(names)
	}
	return names, nil
}

func Up(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	return run(ctx, pool, log, "up")
}

func Down(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	return run(ctx, pool, log, "down")
}

func run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, direction string) error {
	names, err := Names(direction)
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	for _, name := range names {
		sql, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("execute migration %s: %w", name, err)
		}
		log.Info().Str("file", name).Msg("migration applied")
	}
	return nil
}
