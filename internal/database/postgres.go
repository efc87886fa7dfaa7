package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/temitayo1239/student-information-portal-main/internal/config"
)

// ErrCatalogSchema is returned when the catalog tables have not been migrated.
var ErrCatalogSchema = errors.New("catalog schema missing, run the migrate command")

// catalogTables are the tables the catalog repository reads and seeds.
var catalogTables = []string{
	"students",
	"courses",
	"registered_courses",
	"notifications",
	"semester_results",
	"course_results",
	"timetable_slots",
	"fee_statements",
	"fee_payments",
	"fee_items",
}

// NewPostgresPool connects to the catalog database and refuses to return a
// pool until every catalog table exists.
func NewPostgresPool(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	// The catalog is read once at startup; a small pool is enough.
	poolCfg.MaxConns = cfg.MaxDBConns
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "student-portal-catalog"

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	missing, err := missingTables(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	if len(missing) > 0 {
		pool.Close()
		return nil, fmt.Errorf("%w: %s", ErrCatalogSchema, strings.Join(missing, ", "))
	}

	log.Info().
		Int32("max_conns", cfg.MaxDBConns).
		Str("database", poolCfg.ConnConfig.Database).
		Int("catalog_tables", len(catalogTables)).
		Msg("PostgreSQL connected")

	return pool, nil
}

func missingTables(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	rows, err := pool.Query(ctx,
		`SELECT t FROM unnest($1::text[]) AS t WHERE to_regclass(t) IS NULL`,
		catalogTables)
	if err != nil {
		return nil, fmt.Errorf("check catalog schema: %w", err)
	}
	missing, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("check catalog schema: %w", err)
	}
	return missing, nil
}
