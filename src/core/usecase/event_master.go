package usecase

import (
	"context"
	"log/slog"

	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/ports"
)

// EventMasterService handles event master write workflows.
type EventMasterService struct {
	repo ports.EventMasterRepository
	log  *slog.Logger
}

func NewEventMasterService(repo ports.EventMasterRepository, log *slog.Logger) *EventMasterService {
	return &EventMasterService{repo: repo, log: log}
}

// EventMasterInput carries the caller-supplied fields for create.
type EventMasterInput struct {
	RecruitYearID int64
	Name          string
	Description   string
}

// Create builds and persists a new event master.
func (s *EventMasterService) Create(ctx context.Context, input EventMasterInput, actor string) (*domain.EventMaster, error) {
	master, err := domain.NewEventMaster(domain.EventMasterParams{
		RecruitYearID: input.RecruitYearID,
		Name:          input.Name,
		Description:   input.Description,
		Actor:         actor,
	})
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, master)
	if err != nil {
		return nil, err
	}
	if err := created.EnsureID(); err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces name and description of an existing event master.
func (s *EventMasterService) Update(ctx context.Context, id int64, change domain.EventMasterChange, actor string) (*domain.EventMaster, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFoundError("event master")
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

// Get returns an event master by id.
func (s *EventMasterService) Get(ctx context.Context, id int64) (*domain.EventMaster, error) {
	master, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if master == nil {
		return nil, domain.NewNotFoundError("event master")
	}
	return master, nil
}

// Delete removes an event master.
func (s *EventMasterService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
