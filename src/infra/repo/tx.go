package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruitadmin/src/core/domain"
)

// withTx is the unit of work: begin, run fn with a transaction-scoped handle,
// commit on success. Any error from fn rolls the whole transaction back.
func withTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// insertOutbox queues one pending outbox row inside the caller's transaction.
func insertOutbox(ctx context.Context, tx pgx.Tx, evt *domain.OutboxEvent) error {
	const q = `
		INSERT INTO outbox_events (event_type, payload, status, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := tx.Exec(ctx, q, string(evt.EventType), evt.Payload, string(evt.Status), evt.CreatedAt)
	return err
}
