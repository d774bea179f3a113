// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
//
// Find methods return (nil, nil) when the row is absent: the upsert path needs
// absence as a non-error outcome. Update and Delete of a missing row return
// domain.ErrNotFound.
package ports

import (
	"context"

	"recruitadmin/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// RecruitYearRepository persists recruit years. Create and Update write the
// aggregate row and one outbox row in a single transaction; neither is
// visible unless both committed.
type RecruitYearRepository interface {
	Create(ctx context.Context, year *domain.RecruitYear) (*domain.RecruitYear, error)
	Update(ctx context.Context, year *domain.RecruitYear) (*domain.RecruitYear, error)
	FindByID(ctx context.Context, id int64) (*domain.RecruitYear, error)
	// FindByYear probes the natural key for the upsert path.
	FindByYear(ctx context.Context, year int) (*domain.RecruitYear, error)
	Delete(ctx context.Context, id int64) error
}

// CompanyRepository persists companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
	Delete(ctx context.Context, id int64) error
}

// EventMasterRepository persists event masters.
type EventMasterRepository interface {
	Create(ctx context.Context, master *domain.EventMaster) (*domain.EventMaster, error)
	Update(ctx context.Context, master *domain.EventMaster) (*domain.EventMaster, error)
	FindByID(ctx context.Context, id int64) (*domain.EventMaster, error)
	Delete(ctx context.Context, id int64) error
}

// EventRepository persists events. Create writes the event row and its
// interviewer join rows atomically. FindByIDs hydrates a batch of events in
// one round trip for the bulk-create result set.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id int64) (*domain.Event, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*domain.Event, error)
	Delete(ctx context.Context, id int64) error
}

// EducationalBackgroundRepository persists educational background entries.
type EducationalBackgroundRepository interface {
	Create(ctx context.Context, background *domain.EducationalBackground) (*domain.EducationalBackground, error)
	Update(ctx context.Context, background *domain.EducationalBackground) (*domain.EducationalBackground, error)
	FindByID(ctx context.Context, id int64) (*domain.EducationalBackground, error)
	Delete(ctx context.Context, id int64) error
}

// Ref is the minimal view of a referenced aggregate exposed by the read model.
type Ref struct {
	ID   int64
	Name string
}

// ReferenceReader verifies referenced aggregates exist before a write.
// It is a read-only collaborator; the rows it reads are owned elsewhere.
type ReferenceReader interface {
	FindEventMaster(ctx context.Context, id int64) (*Ref, error)
	FindLocation(ctx context.Context, id int64) (*Ref, error)
}
