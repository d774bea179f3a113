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

// PostgresEventMasterRepository implements ports.EventMasterRepository using pgx.
type PostgresEventMasterRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresEventMasterRepository constructs a repository backed by Postgres.
func NewPostgresEventMasterRepository(pg *db.Postgres, log *slog.Logger) *PostgresEventMasterRepository {
	return &PostgresEventMasterRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresEventMasterRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresEventMasterRepository) Create(ctx context.Context, master *domain.EventMaster) (*domain.EventMaster, error) {
	const q = `
		INSERT INTO event_masters (recruit_year_id, name, description, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING event_master_id
	`
	created := *master
	if err := r.pool.QueryRow(ctx, q,
		master.RecruitYearID, master.Name, master.Description,
		master.CreatedAt, master.CreatedBy, master.UpdatedAt, master.UpdatedBy,
	).Scan(&created.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewBadRequestError("event master name already exists for this recruit year")
		}
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("recruit year")
		}
		return nil, err
	}
	return &created, nil
}

func (r *PostgresEventMasterRepository) Update(ctx context.Context, master *domain.EventMaster) (*domain.EventMaster, error) {
	const q = `
		UPDATE event_masters
		SET name = $2, description = $3, updated_at = $4, updated_by = $5
		WHERE event_master_id = $1
	`
	res, err := r.pool.Exec(ctx, q,
		master.ID, master.Name, master.Description, master.UpdatedAt, master.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewBadRequestError("event master name already exists for this recruit year")
		}
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, domain.NewNotFoundError("event master")
	}
	updated := *master
	return &updated, nil
}

func (r *PostgresEventMasterRepository) FindByID(ctx context.Context, id int64) (*domain.EventMaster, error) {
	const q = `
		SELECT event_master_id, recruit_year_id, name, description,
		       created_at, created_by, updated_at, updated_by
		FROM event_masters
		WHERE event_master_id = $1
	`
	var master domain.EventMaster
	if err := r.pool.QueryRow(ctx, q, id).Scan(
		&master.ID, &master.RecruitYearID, &master.Name, &master.Description,
		&master.CreatedAt, &master.CreatedBy, &master.UpdatedAt, &master.UpdatedBy,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &master, nil
}

func (r *PostgresEventMasterRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM event_masters WHERE event_master_id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewBadRequestError("cannot delete event master: still referenced by other records")
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("event master")
	}
	return nil
}
