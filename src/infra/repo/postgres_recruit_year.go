package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruitadmin/src/core/domain"
	"recruitadmin/src/infra/db"
)

// PostgresRecruitYearRepository persists recruit years with the transactional
// outbox: Create and Update commit the aggregate row and its pending event in
// one transaction.
type PostgresRecruitYearRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRecruitYearRepository constructs a repository backed by Postgres.
func NewPostgresRecruitYearRepository(pg *db.Postgres, log *slog.Logger) *PostgresRecruitYearRepository {
	return &PostgresRecruitYearRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRecruitYearRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresRecruitYearRepository) Create(ctx context.Context, year *domain.RecruitYear) (*domain.RecruitYear, error) {
	created := *year
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		const q = `
			INSERT INTO recruit_years (year, display_name, created_at, created_by, updated_at, updated_by)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING recruit_year_id
		`
		if err := tx.QueryRow(ctx, q,
			year.Year, year.DisplayName,
			year.CreatedAt, year.CreatedBy, year.UpdatedAt, year.UpdatedBy,
		).Scan(&created.ID); err != nil {
			return err
		}

		evt, err := domain.NewRecruitYearEvent(domain.EventTypeRecruitYearCreated, &created)
		if err != nil {
			return err
		}
		return insertOutbox(ctx, tx, evt)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewBadRequestError("recruit year already exists")
		}
		return nil, err
	}
	return &created, nil
}

func (r *PostgresRecruitYearRepository) Update(ctx context.Context, year *domain.RecruitYear) (*domain.RecruitYear, error) {
	updated := *year
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		const q = `
			UPDATE recruit_years
			SET display_name = $2, updated_at = $3, updated_by = $4
			WHERE recruit_year_id = $1
		`
		res, err := tx.Exec(ctx, q, year.ID, year.DisplayName, year.UpdatedAt, year.UpdatedBy)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return domain.NewNotFoundError("recruit year")
		}

		evt, err := domain.NewRecruitYearEvent(domain.EventTypeRecruitYearUpdated, &updated)
		if err != nil {
			return err
		}
		return insertOutbox(ctx, tx, evt)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewBadRequestError("recruit year already exists")
		}
		return nil, err
	}
	return &updated, nil
}

func (r *PostgresRecruitYearRepository) FindByID(ctx context.Context, id int64) (*domain.RecruitYear, error) {
	const q = `
		SELECT recruit_year_id, year, display_name, created_at, created_by, updated_at, updated_by
		FROM recruit_years
		WHERE recruit_year_id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, q, id))
}

func (r *PostgresRecruitYearRepository) FindByYear(ctx context.Context, year int) (*domain.RecruitYear, error) {
	const q = `
		SELECT recruit_year_id, year, display_name, created_at, created_by, updated_at, updated_by
		FROM recruit_years
		WHERE year = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, q, year))
}

func (r *PostgresRecruitYearRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM recruit_years WHERE recruit_year_id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewBadRequestError("cannot delete recruit year: still referenced by other records")
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("recruit year")
	}
	return nil
}

func (r *PostgresRecruitYearRepository) scanOne(row pgx.Row) (*domain.RecruitYear, error) {
	var year domain.RecruitYear
	if err := row.Scan(
		&year.ID, &year.Year, &year.DisplayName,
		&year.CreatedAt, &year.CreatedBy, &year.UpdatedAt, &year.UpdatedBy,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &year, nil
}
