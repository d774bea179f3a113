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

// PostgresCompanyRepository implements ports.CompanyRepository using pgx.
type PostgresCompanyRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresCompanyRepository constructs a repository backed by Postgres.
func NewPostgresCompanyRepository(pg *db.Postgres, log *slog.Logger) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresCompanyRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	const q = `
		INSERT INTO companies (recruit_year_id, name, contact_name, email, phone_number, website_url,
		                       created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING company_id
	`
	created := *company
	if err := r.pool.QueryRow(ctx, q,
		company.RecruitYearID, company.Name,
		personNameValue(company.ContactName), emailValue(company.Email),
		phoneValue(company.Phone), urlValue(company.WebsiteURL),
		company.CreatedAt, company.CreatedBy, company.UpdatedAt, company.UpdatedBy,
	).Scan(&created.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewBadRequestError("company name already exists for this recruit year")
		}
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("recruit year")
		}
		return nil, err
	}
	return &created, nil
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	const q = `
		UPDATE companies
		SET name = $2, contact_name = $3, email = $4, phone_number = $5, website_url = $6,
		    updated_at = $7, updated_by = $8
		WHERE company_id = $1
	`
	res, err := r.pool.Exec(ctx, q,
		company.ID, company.Name,
		personNameValue(company.ContactName), emailValue(company.Email),
		phoneValue(company.Phone), urlValue(company.WebsiteURL),
		company.UpdatedAt, company.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewBadRequestError("company name already exists for this recruit year")
		}
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, domain.NewNotFoundError("company")
	}
	updated := *company
	return &updated, nil
}

func (r *PostgresCompanyRepository) FindByID(ctx context.Context, id int64) (*domain.Company, error) {
	const q = `
		SELECT company_id, recruit_year_id, name, contact_name, email, phone_number, website_url,
		       created_at, created_by, updated_at, updated_by
		FROM companies
		WHERE company_id = $1
	`
	var (
		company                         domain.Company
		contactName, email, phone, site *string
	)
	if err := r.pool.QueryRow(ctx, q, id).Scan(
		&company.ID, &company.RecruitYearID, &company.Name,
		&contactName, &email, &phone, &site,
		&company.CreatedAt, &company.CreatedBy, &company.UpdatedAt, &company.UpdatedBy,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := hydrateCompanyValues(&company, contactName, email, phone, site); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *PostgresCompanyRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM companies WHERE company_id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewBadRequestError("cannot delete company: still referenced by other records")
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("company")
	}
	return nil
}

// hydrateCompanyValues rebuilds the optional value objects from their stored
// representations. Stored values already passed validation at write time.
func hydrateCompanyValues(company *domain.Company, contactName, email, phone, site *string) error {
	var err error
	if company.ContactName, err = domain.NewOptionalPersonName(deref(contactName)); err != nil {
		return err
	}
	if company.Email, err = domain.NewOptionalEmail(deref(email)); err != nil {
		return err
	}
	if company.Phone, err = domain.NewOptionalPhoneNumber(deref(phone)); err != nil {
		return err
	}
	if company.WebsiteURL, err = domain.NewOptionalWebURL(deref(site)); err != nil {
		return err
	}
	return nil
}
