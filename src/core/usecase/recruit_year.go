package usecase

import (
	"context"
	"log/slog"

	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/ports"
)

// RecruitYearService handles recruit year write workflows. Every state change
// goes through the transactional-outbox repository, so a committed change
// always has its integration event queued.
type RecruitYearService struct {
	repo ports.RecruitYearRepository
	log  *slog.Logger
}

func NewRecruitYearService(repo ports.RecruitYearRepository, log *slog.Logger) *RecruitYearService {
	return &RecruitYearService{repo: repo, log: log}
}

// RecruitYearInput carries the caller-supplied fields for create and upsert.
type RecruitYearInput struct {
	Year        int
	DisplayName string
}

// Create builds and persists a new recruit year.
func (s *RecruitYearService) Create(ctx context.Context, input RecruitYearInput, actor string) (*domain.RecruitYear, error) {
	year, err := domain.NewRecruitYear(domain.RecruitYearParams{
		Year:        input.Year,
		DisplayName: input.DisplayName,
		Actor:       actor,
	})
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, year)
	if err != nil {
		return nil, err
	}
	if err := created.EnsureID(); err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces the display name of an existing recruit year.
func (s *RecruitYearService) Update(ctx context.Context, id int64, displayName, actor string) (*domain.RecruitYear, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFoundError("recruit year")
	}
	changed, err := existing.ChangeDisplayName(displayName, actor)
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

// Upsert probes the year's natural key: absent creates, present updates.
// Both paths share the transactional-outbox write, so each call queues
// exactly one event with the type matching the operation kind.
func (s *RecruitYearService) Upsert(ctx context.Context, input RecruitYearInput, actor string) (*domain.RecruitYear, error) {
	existing, err := s.repo.FindByYear(ctx, input.Year)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.Create(ctx, input, actor)
	}
	return s.Update(ctx, existing.ID, input.DisplayName, actor)
}

// Get returns a recruit year by id.
func (s *RecruitYearService) Get(ctx context.Context, id int64) (*domain.RecruitYear, error) {
	year, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if year == nil {
		return nil, domain.NewNotFoundError("recruit year")
	}
	return year, nil
}

// Delete removes a recruit year. The repository rejects the delete while
// companies or event masters still reference it.
func (s *RecruitYearService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
