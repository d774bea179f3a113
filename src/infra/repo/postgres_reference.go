package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruitadmin/src/core/ports"
	"recruitadmin/src/infra/db"
)

// PostgresReferenceReader implements ports.ReferenceReader. It is the
// read-model lookup used to verify referenced aggregates exist before a
// write; it never writes.
type PostgresReferenceReader struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresReferenceReader constructs a reference reader backed by Postgres.
func NewPostgresReferenceReader(pg *db.Postgres, log *slog.Logger) *PostgresReferenceReader {
	return &PostgresReferenceReader{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresReferenceReader) FindEventMaster(ctx context.Context, id int64) (*ports.Ref, error) {
	const q = `SELECT event_master_id, name FROM event_masters WHERE event_master_id = $1`
	return r.scanRef(r.pool.QueryRow(ctx, q, id))
}

func (r *PostgresReferenceReader) FindLocation(ctx context.Context, id int64) (*ports.Ref, error) {
	const q = `SELECT location_id, name FROM locations WHERE location_id = $1`
	return r.scanRef(r.pool.QueryRow(ctx, q, id))
}

func (r *PostgresReferenceReader) scanRef(row pgx.Row) (*ports.Ref, error) {
	var ref ports.Ref
	if err := row.Scan(&ref.ID, &ref.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ref, nil
}
