package repo

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruitadmin/src/core/domain"
	"recruitadmin/src/infra/db"
)

// PostgresEducationalBackgroundRepository implements
// ports.EducationalBackgroundRepository using pgx.
type PostgresEducationalBackgroundRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresEducationalBackgroundRepository constructs a repository backed by Postgres.
func NewPostgresEducationalBackgroundRepository(pg *db.Postgres, log *slog.Logger) *PostgresEducationalBackgroundRepository {
	return &PostgresEducationalBackgroundRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresEducationalBackgroundRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresEducationalBackgroundRepository) Create(ctx context.Context, background *domain.EducationalBackground) (*domain.EducationalBackground, error) {
	const q = `
		INSERT INTO educational_backgrounds (student_id, education_type, university_id, faculty_id,
		                                     graduation_year, graduation_month, deviation_score,
		                                     created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING educational_background_id
	`
	created := *background
	if err := r.pool.QueryRow(ctx, q,
		background.StudentID, string(background.EducationType),
		background.UniversityID, background.FacultyID,
		background.GraduationYear, monthValue(background.GraduationMonth),
		deviationScoreValue(background.DeviationScore),
		background.CreatedAt, background.CreatedBy, background.UpdatedAt, background.UpdatedBy,
	).Scan(&created.ID); err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError(educationFKTarget(err))
		}
		return nil, err
	}
	return &created, nil
}

func (r *PostgresEducationalBackgroundRepository) Update(ctx context.Context, background *domain.EducationalBackground) (*domain.EducationalBackground, error) {
	const q = `
		UPDATE educational_backgrounds
		SET education_type = $2, university_id = $3, faculty_id = $4,
		    graduation_year = $5, graduation_month = $6, deviation_score = $7,
		    updated_at = $8, updated_by = $9
		WHERE educational_background_id = $1
	`
	res, err := r.pool.Exec(ctx, q,
		background.ID, string(background.EducationType),
		background.UniversityID, background.FacultyID,
		background.GraduationYear, monthValue(background.GraduationMonth),
		deviationScoreValue(background.DeviationScore),
		background.UpdatedAt, background.UpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError(educationFKTarget(err))
		}
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, domain.NewNotFoundError("educational background")
	}
	updated := *background
	return &updated, nil
}

func (r *PostgresEducationalBackgroundRepository) FindByID(ctx context.Context, id int64) (*domain.EducationalBackground, error) {
	const q = `
		SELECT educational_background_id, student_id, education_type, university_id, faculty_id,
		       graduation_year, graduation_month, deviation_score,
		       created_at, created_by, updated_at, updated_by
		FROM educational_backgrounds
		WHERE educational_background_id = $1
	`
	var (
		background     domain.EducationalBackground
		educationType  string
		month          *int
		deviationScore *float64
	)
	if err := r.pool.QueryRow(ctx, q, id).Scan(
		&background.ID, &background.StudentID, &educationType,
		&background.UniversityID, &background.FacultyID,
		&background.GraduationYear, &month, &deviationScore,
		&background.CreatedAt, &background.CreatedBy, &background.UpdatedAt, &background.UpdatedBy,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	background.EducationType = domain.EducationType(educationType)
	var err error
	if background.GraduationMonth, err = domain.NewOptionalMonth(month); err != nil {
		return nil, err
	}
	if background.DeviationScore, err = domain.NewOptionalDeviationScore(deviationScore); err != nil {
		return nil, err
	}
	return &background, nil
}

func (r *PostgresEducationalBackgroundRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM educational_backgrounds WHERE educational_background_id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewBadRequestError("cannot delete educational background: still referenced by other records")
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("educational background")
	}
	return nil
}

func educationFKTarget(err error) string {
	constraint := pgConstraintName(err)
	switch {
	case strings.Contains(constraint, "student"):
		return "student"
	case strings.Contains(constraint, "university"):
		return "university"
	case strings.Contains(constraint, "faculty"):
		return "faculty"
	}
	return "referenced record"
}
