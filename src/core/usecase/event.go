package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/ports"
)

// defaultBulkConcurrency bounds how many event creates run at once during a
// bulk request.
const defaultBulkConcurrency = 8

// EventService handles event write workflows, including the bulk-create
// coordinator. Bulk items are validated and persisted independently: one
// item's failure never rolls back or aborts the others.
type EventService struct {
	repo      ports.EventRepository
	refs      ports.ReferenceReader
	log       *slog.Logger
	bulkLimit int64
}

func NewEventService(repo ports.EventRepository, refs ports.ReferenceReader, log *slog.Logger) *EventService {
	return &EventService{
		repo:      repo,
		refs:      refs,
		log:       log,
		bulkLimit: defaultBulkConcurrency,
	}
}

// EventCreateInput carries the caller-supplied fields for one event create.
type EventCreateInput struct {
	EventMasterID  int64
	LocationID     int64
	StartsAt       time.Time
	EndsAt         time.Time
	Capacity       int
	InterviewerIDs []int64
}

// Create verifies the referenced event master and location exist, denormalizes
// their display names, and persists the event with its interviewer join rows.
func (s *EventService) Create(ctx context.Context, input EventCreateInput, actor string) (*domain.Event, error) {
	master, err := s.refs.FindEventMaster(ctx, input.EventMasterID)
	if err != nil {
		return nil, err
	}
	if master == nil {
		return nil, domain.NewNotFoundError("event master")
	}
	location, err := s.refs.FindLocation(ctx, input.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.NewNotFoundError("location")
	}
	event, err := domain.NewEvent(domain.EventParams{
		EventMasterID:   input.EventMasterID,
		LocationID:      input.LocationID,
		EventMasterName: master.Name,
		LocationName:    location.Name,
		StartsAt:        input.StartsAt,
		EndsAt:          input.EndsAt,
		Capacity:        input.Capacity,
		InterviewerIDs:  input.InterviewerIDs,
		Actor:           actor,
	})
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	if err := created.EnsureID(); err != nil {
		return nil, err
	}
	return created, nil
}

// BulkCreate runs N independent creates concurrently, bounded by a weighted
// semaphore, and returns the hydrated rows for the items that succeeded.
// Failed items are logged and dropped from the result; zero successes yield
// an empty slice, not an error. Results are paired with their originating
// request by index, never by completion order.
func (s *EventService) BulkCreate(ctx context.Context, inputs []EventCreateInput, actor string) ([]*domain.Event, error) {
	if len(inputs) == 0 {
		return []*domain.Event{}, nil
	}

	type outcome struct {
		id  int64
		err error
	}
	outcomes := make([]outcome, len(inputs))

	sem := semaphore.NewWeighted(s.bulkLimit)
	var wg sync.WaitGroup
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				outcomes[i] = outcome{err: err}
				return
			}
			defer sem.Release(1)

			created, err := s.Create(ctx, inputs[i], actor)
			if err != nil {
				outcomes[i] = outcome{err: err}
				return
			}
			outcomes[i] = outcome{id: created.ID}
		}(i)
	}
	wg.Wait()

	ids := make([]int64, 0, len(inputs))
	for i := range outcomes {
		if outcomes[i].err != nil {
			s.log.Warn("bulk event create item failed",
				"index", i,
				"event_master_id", inputs[i].EventMasterID,
				"error", outcomes[i].err,
			)
			continue
		}
		ids = append(ids, outcomes[i].id)
	}
	if len(ids) == 0 {
		return []*domain.Event{}, nil
	}

	// One batch fetch instead of N sequential reads.
	created, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(created) != len(ids) {
		s.log.Warn("created events missing on read-back",
			"missing_ids", missingIDs(ids, created),
		)
	}
	return created, nil
}

// Reschedule replaces the time window of an existing event.
func (s *EventService) Reschedule(ctx context.Context, id int64, startsAt, endsAt time.Time, actor string) (*domain.Event, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFoundError("event")
	}
	changed, err := existing.Reschedule(startsAt, endsAt, actor)
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

// AssignInterviewers replaces the interviewer set of an existing event.
func (s *EventService) AssignInterviewers(ctx context.Context, id int64, interviewerIDs []int64, actor string) (*domain.Event, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFoundError("event")
	}
	changed, err := existing.AssignInterviewers(interviewerIDs, actor)
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

// Get returns an event by id.
func (s *EventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.NewNotFoundError("event")
	}
	return event, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func missingIDs(wanted []int64, got []*domain.Event) []int64 {
	found := make(map[int64]struct{}, len(got))
	for _, e := range got {
		found[e.ID] = struct{}{}
	}
	var missing []int64
	for _, id := range wanted {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
