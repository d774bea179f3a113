package usecase

import (
	"context"
	"log/slog"

	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/ports"
)

// CompanyService handles company write workflows.
type CompanyService struct {
	repo ports.CompanyRepository
	log  *slog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, log *slog.Logger) *CompanyService {
	return &CompanyService{repo: repo, log: log}
}

// CompanyInput carries the caller-supplied fields for create.
type CompanyInput struct {
	RecruitYearID int64
	Name          string
	ContactName   string
	Email         string
	Phone         string
	WebsiteURL    string
}

// Create builds and persists a new company.
func (s *CompanyService) Create(ctx context.Context, input CompanyInput, actor string) (*domain.Company, error) {
	company, err := domain.NewCompany(domain.CompanyParams{
		RecruitYearID: input.RecruitYearID,
		Name:          input.Name,
		ContactName:   input.ContactName,
		Email:         input.Email,
		Phone:         input.Phone,
		WebsiteURL:    input.WebsiteURL,
		Actor:         actor,
	})
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, company)
	if err != nil {
		return nil, err
	}
	if err := created.EnsureID(); err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces the contact fields of an existing company.
func (s *CompanyService) Update(ctx context.Context, id int64, change domain.CompanyChange, actor string) (*domain.Company, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFoundError("company")
	}
	changed, err := existing.ChangeInfo(change, actor)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, changed)
	if err != nil {
		return nil, err
	}
	if err := updated.EnsureID(); err != nil {
		return nil, err
	}
	return updated, nil
}

// Get returns a company by id.
func (s *CompanyService) Get(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NewNotFoundError("company")
	}
	return company, nil
}

// Delete removes a company.
func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
