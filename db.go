package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is a read-side pool over the conversion records table.
type DB struct {
	pool *pgxpool.Pool
}

// postgresDSN builds the connection URL from the POSTGRES_* settings.
func postgresDSN(cfg Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresDB,
	)
}

// NewDB opens and pings a pool for dsn.
func NewDB(ctx context.Context, dsn string) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.HealthCheckPeriod = 5 * time.Minute
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close releases the database connection pool resources
func (db *DB) Close() {
	db.pool.Close()
}

// UsageRow is one line of the usage summary.
type UsageRow struct {
	Operation string `json:"operation"`
	Coding    string `json:"coding"`
	Requests  int64  `json:"requests"`
	Octets    int64  `json:"octets"`
	Missed    int64  `json:"missed"`
}

const usageQuery = `
SELECT operation, coding, count(*), coalesce(sum(octets), 0), coalesce(sum(missed), 0)
FROM conversion_records
WHERE created_at >= $1
GROUP BY operation, coding
ORDER BY operation, coding`

// UsageSummary aggregates the records written since since.
func (db *DB) UsageSummary(ctx context.Context, since time.Time) ([]UsageRow, error) {
	rows, err := db.pool.Query(ctx, usageQuery, since)
	if err != nil {
		return nil, fmt.Errorf("usage query failed: %w", err)
	}
	defer rows.Close()

	var out []UsageRow
	for rows.Next() {
		var r UsageRow
		if err := rows.Scan(&r.Operation, &r.Coding, &r.Requests, &r.Octets, &r.Missed); err != nil {
			return nil, fmt.Errorf("usage scan failed: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
