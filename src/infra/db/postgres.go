// Package db owns the PostgreSQL connection pool. Repositories receive the
// pool through Postgres rather than opening connections themselves.
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"recruitadmin/src/infra/config"
)

// Postgres holds the shared pgx pool for the process.
type Postgres struct {
	Pool *pgxpool.Pool
	log  *slog.Logger
}

// New builds the pool from DatabaseConfig and pings it once, so a wrong DSN
// fails at startup instead of on the first request.
func New(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("database pool ready",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Name,
		"max_conns", poolCfg.MaxConns,
	)
	return &Postgres{Pool: pool, log: log}, nil
}

// Close releases the pool during shutdown. Safe on a zero-value receiver.
func (p *Postgres) Close() {
	if p.Pool == nil {
		return
	}
	p.Pool.Close()
	if p.log != nil {
		p.log.Info("database pool closed")
	}
}

// Health reports whether the database currently answers a ping.
func (p *Postgres) Health(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}
