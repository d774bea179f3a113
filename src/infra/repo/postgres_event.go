package repo

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruitadmin/src/core/domain"
	"recruitadmin/src/infra/db"
)

// PostgresEventRepository implements ports.EventRepository using pgx.
// The event row and its interviewer join rows are always written in one
// transaction.
type PostgresEventRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresEventRepository constructs a repository backed by Postgres.
func NewPostgresEventRepository(pg *db.Postgres, log *slog.Logger) *PostgresEventRepository {
	return &PostgresEventRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresEventRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	created := *event
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		const q = `
			INSERT INTO events (event_master_id, location_id, event_master_name, location_name,
			                    starts_at, ends_at, capacity,
			                    created_at, created_by, updated_at, updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING event_id
		`
		if err := tx.QueryRow(ctx, q,
			event.EventMasterID, event.LocationID, event.EventMasterName, event.LocationName,
			event.StartsAt, event.EndsAt, event.Capacity,
			event.CreatedAt, event.CreatedBy, event.UpdatedAt, event.UpdatedBy,
		).Scan(&created.ID); err != nil {
			return err
		}
		return insertEventInterviewers(ctx, tx, created.ID, event.InterviewerIDs)
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError(eventFKTarget(err))
		}
		return nil, err
	}
	return &created, nil
}

func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	updated := *event
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		const q = `
			UPDATE events
			SET starts_at = $2, ends_at = $3, capacity = $4, updated_at = $5, updated_by = $6
			WHERE event_id = $1
		`
		res, err := tx.Exec(ctx, q,
			event.ID, event.StartsAt, event.EndsAt, event.Capacity, event.UpdatedAt, event.UpdatedBy,
		)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return domain.NewNotFoundError("event")
		}

		// Replace the interviewer set wholesale; the entity already deduplicated it.
		if _, err := tx.Exec(ctx, `DELETE FROM event_interviewers WHERE event_id = $1`, event.ID); err != nil {
			return err
		}
		return insertEventInterviewers(ctx, tx, event.ID, event.InterviewerIDs)
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError(eventFKTarget(err))
		}
		return nil, err
	}
	return &updated, nil
}

func (r *PostgresEventRepository) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	events, err := r.FindByIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return events[0], nil
}

func (r *PostgresEventRepository) FindByIDs(ctx context.Context, ids []int64) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return []*domain.Event{}, nil
	}

	const q = `
		SELECT event_id, event_master_id, location_id, event_master_name, location_name,
		       starts_at, ends_at, capacity,
		       created_at, created_by, updated_at, updated_by
		FROM events
		WHERE event_id = ANY($1)
		ORDER BY event_id
	`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[int64]*domain.Event, len(ids))
	events := make([]*domain.Event, 0, len(ids))
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.EventMasterID, &e.LocationID, &e.EventMasterName, &e.LocationName,
			&e.StartsAt, &e.EndsAt, &e.Capacity,
			&e.CreatedAt, &e.CreatedBy, &e.UpdatedAt, &e.UpdatedBy,
		); err != nil {
			return nil, err
		}
		e.InterviewerIDs = []int64{}
		byID[e.ID] = &e
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return events, nil
	}

	const joinQ = `
		SELECT event_id, interviewer_id
		FROM event_interviewers
		WHERE event_id = ANY($1)
		ORDER BY event_id, interviewer_id
	`
	joinRows, err := r.pool.Query(ctx, joinQ, ids)
	if err != nil {
		return nil, err
	}
	defer joinRows.Close()

	for joinRows.Next() {
		var eventID, interviewerID int64
		if err := joinRows.Scan(&eventID, &interviewerID); err != nil {
			return nil, err
		}
		if e, ok := byID[eventID]; ok {
			e.InterviewerIDs = append(e.InterviewerIDs, interviewerID)
		}
	}
	if err := joinRows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *PostgresEventRepository) Delete(ctx context.Context, id int64) error {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM event_interviewers WHERE event_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.Exec(ctx, `DELETE FROM events WHERE event_id = $1`, id)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return domain.NewNotFoundError("event")
		}
		return nil
	})
	if err != nil && isForeignKeyViolation(err) {
		return domain.NewBadRequestError("cannot delete event: still referenced by other records")
	}
	return err
}

func insertEventInterviewers(ctx context.Context, tx pgx.Tx, eventID int64, interviewerIDs []int64) error {
	const q = `
		INSERT INTO event_interviewers (event_id, interviewer_id)
		VALUES ($1, $2)
	`
	for _, interviewerID := range interviewerIDs {
		if _, err := tx.Exec(ctx, q, eventID, interviewerID); err != nil {
			return err
		}
	}
	return nil
}

// eventFKTarget names the missing related entity from the violated constraint.
func eventFKTarget(err error) string {
	constraint := pgConstraintName(err)
	switch {
	case strings.Contains(constraint, "event_master"):
		return "event master"
	case strings.Contains(constraint, "location"):
		return "location"
	case strings.Contains(constraint, "interviewer"):
		return "interviewer"
	}
	return "referenced record"
}
