package repo

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/usecase"
	"recruitadmin/src/infra/db"
)

// Integration tests for the transactional-outbox adapter. They need a real
// Postgres: set TEST_DATABASE_URL to run them, otherwise they skip. Each run
// rebuilds its own schema so no fixtures are required.
const integrationSchema = "recruitadmin_it"

func integrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = integrationSchema

	ctx := context.Background()
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Skipf("cannot connect to test database: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("cannot ping test database: %v", err)
	}
	t.Cleanup(pool.Close)

	setupRecruitYearSchema(t, pool)
	return pool
}

func setupRecruitYearSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	statements := []string{
		`DROP SCHEMA IF EXISTS ` + integrationSchema + ` CASCADE`,
		`CREATE SCHEMA ` + integrationSchema,
		`CREATE TABLE recruit_years (
			recruit_year_id bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			year            int NOT NULL UNIQUE,
			display_name    text NOT NULL,
			created_at      timestamptz NOT NULL,
			created_by      text NOT NULL,
			updated_at      timestamptz NOT NULL,
			updated_by      text NOT NULL
		)`,
		`CREATE TABLE outbox_events (
			outbox_event_id bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			event_type      text NOT NULL,
			payload         jsonb NOT NULL,
			status          text NOT NULL,
			created_at      timestamptz NOT NULL
		)`,
		`CREATE TABLE companies (
			company_id      bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			recruit_year_id bigint NOT NULL REFERENCES recruit_years (recruit_year_id),
			name            text NOT NULL,
			created_at      timestamptz NOT NULL,
			created_by      text NOT NULL,
			updated_at      timestamptz NOT NULL,
			updated_by      text NOT NULL
		)`,
	}
	for _, stmt := range statements {
		_, err := pool.Exec(ctx, stmt)
		require.NoError(t, err)
	}
}

func integrationRepo(pool *pgxpool.Pool) *PostgresRecruitYearRepository {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPostgresRecruitYearRepository(&db.Postgres{Pool: pool}, log)
}

func countRows(t *testing.T, pool *pgxpool.Pool, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func TestRecruitYearOutboxRollback(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()
	repo := integrationRepo(pool)

	// Make the outbox insert fail after the aggregate row is written: the
	// whole transaction must roll back and leave neither row behind.
	_, err := pool.Exec(ctx, `ALTER TABLE outbox_events ADD CONSTRAINT outbox_events_block CHECK (status <> 'pending')`)
	require.NoError(t, err)

	year, err := domain.NewRecruitYear(domain.RecruitYearParams{
		Year:        2030,
		DisplayName: "2030 New Graduates",
		Actor:       "it-admin",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, year)
	require.Error(t, err)

	assert.Equal(t, 0, countRows(t, pool, `SELECT count(*) FROM recruit_years WHERE year = $1`, 2030))
	assert.Equal(t, 0, countRows(t, pool, `SELECT count(*) FROM outbox_events`))

	// With the outbox writable again the same create goes through whole.
	_, err = pool.Exec(ctx, `ALTER TABLE outbox_events DROP CONSTRAINT outbox_events_block`)
	require.NoError(t, err)

	created, err := repo.Create(ctx, year)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 1, countRows(t, pool, `SELECT count(*) FROM recruit_years WHERE year = $1`, 2030))
	assert.Equal(t, 1, countRows(t, pool, `SELECT count(*) FROM outbox_events`))
}

func TestRecruitYearUpsertOutboxEventTypes(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()
	repo := integrationRepo(pool)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := usecase.NewRecruitYearService(repo, log)

	first, err := svc.Upsert(ctx, usecase.RecruitYearInput{Year: 2031, DisplayName: "First"}, "it-admin")
	require.NoError(t, err)
	second, err := svc.Upsert(ctx, usecase.RecruitYearInput{Year: 2031, DisplayName: "Second"}, "it-admin")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// Exactly one row for the natural key, carrying the second call's values.
	assert.Equal(t, 1, countRows(t, pool, `SELECT count(*) FROM recruit_years WHERE year = $1`, 2031))
	var displayName string
	require.NoError(t, pool.QueryRow(ctx, `SELECT display_name FROM recruit_years WHERE year = $1`, 2031).Scan(&displayName))
	assert.Equal(t, "Second", displayName)

	// One pending outbox row per call, typed by operation kind, in order.
	rows, err := pool.Query(ctx, `SELECT event_type, status FROM outbox_events ORDER BY outbox_event_id`)
	require.NoError(t, err)
	defer rows.Close()

	var eventTypes []string
	for rows.Next() {
		var eventType, status string
		require.NoError(t, rows.Scan(&eventType, &status))
		assert.Equal(t, "pending", status)
		eventTypes = append(eventTypes, eventType)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"RecruitYearCreated", "RecruitYearUpdated"}, eventTypes)
}

func TestRecruitYearReferencedDeleteRejected(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()
	repo := integrationRepo(pool)

	year, err := domain.NewRecruitYear(domain.RecruitYearParams{
		Year:        2032,
		DisplayName: "2032 New Graduates",
		Actor:       "it-admin",
	})
	require.NoError(t, err)
	created, err := repo.Create(ctx, year)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
		INSERT INTO companies (recruit_year_id, name, created_at, created_by, updated_at, updated_by)
		VALUES ($1, 'Acme Corp', now(), 'it-admin', now(), 'it-admin')
	`, created.ID)
	require.NoError(t, err)

	err = repo.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, domain.IsBadRequest(err))

	// The rejected delete leaves the row untouched.
	assert.Equal(t, 1, countRows(t, pool, `SELECT count(*) FROM recruit_years WHERE recruit_year_id = $1`, created.ID))
}
