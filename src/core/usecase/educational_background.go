package usecase

import (
	"context"
	"log/slog"

	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/ports"
)

// EducationalBackgroundService handles educational background write workflows.
type EducationalBackgroundService struct {
	repo ports.EducationalBackgroundRepository
	log  *slog.Logger
}

func NewEducationalBackgroundService(repo ports.EducationalBackgroundRepository, log *slog.Logger) *EducationalBackgroundService {
	return &EducationalBackgroundService{repo: repo, log: log}
}

// Create builds and persists a new educational background entry.
func (s *EducationalBackgroundService) Create(ctx context.Context, params domain.EducationalBackgroundParams) (*domain.EducationalBackground, error) {
	background, err := domain.NewEducationalBackground(params)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, background)
	if err != nil {
		return nil, err
	}
	if err := created.EnsureID(); err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces the profile fields of an existing entry. The education-type
// consistency rule is enforced by the entity on every update.
func (s *EducationalBackgroundService) Update(ctx context.Context, id int64, change domain.EducationalBackgroundChange, actor string) (*domain.EducationalBackground, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFoundError("educational background")
	}
	changed, err := existing.UpdateProfile(change, actor)
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

// Get returns an educational background entry by id.
func (s *EducationalBackgroundService) Get(ctx context.Context, id int64) (*domain.EducationalBackground, error) {
	background, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if background == nil {
		return nil, domain.NewNotFoundError("educational background")
	}
	return background, nil
}

// Delete removes an educational background entry.
func (s *EducationalBackgroundService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
