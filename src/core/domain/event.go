package domain

import "time"

// Event is a scheduled occurrence of an EventMaster at a location.
// The master and location display names are denormalized at write time so the
// event row stays readable after the referenced rows change.
type Event struct {
	ID              int64
	EventMasterID   int64
	LocationID      int64
	EventMasterName string
	LocationName    string
	StartsAt        time.Time
	EndsAt          time.Time
	Capacity        int
	InterviewerIDs  []int64
	Audit
}

// EventParams holds the inputs for NewEvent.
type EventParams struct {
	EventMasterID   int64
	LocationID      int64
	EventMasterName string
	LocationName    string
	StartsAt        time.Time
	EndsAt          time.Time
	Capacity        int
	InterviewerIDs  []int64
	Actor           string
}

// NewEvent validates all fields and builds an unpersisted event.
func NewEvent(p EventParams) (*Event, error) {
	if err := requireActor(p.Actor); err != nil {
		return nil, err
	}
	if err := requireRef("event_master_id", p.EventMasterID); err != nil {
		return nil, err
	}
	if err := requireRef("location_id", p.LocationID); err != nil {
		return nil, err
	}
	masterName, err := requireText("event_master_name", p.EventMasterName)
	if err != nil {
		return nil, err
	}
	locationName, err := requireText("location_name", p.LocationName)
	if err != nil {
		return nil, err
	}
	if err := validateSchedule(p.StartsAt, p.EndsAt); err != nil {
		return nil, err
	}
	if p.Capacity < 1 {
		return nil, NewValidationError("capacity", "must be at least 1")
	}
	interviewerIDs, err := dedupeInterviewerIDs(p.InterviewerIDs)
	if err != nil {
		return nil, err
	}
	return &Event{
		EventMasterID:   p.EventMasterID,
		LocationID:      p.LocationID,
		EventMasterName: masterName,
		LocationName:    locationName,
		StartsAt:        p.StartsAt,
		EndsAt:          p.EndsAt,
		Capacity:        p.Capacity,
		InterviewerIDs:  interviewerIDs,
		Audit:           newAudit(p.Actor, time.Now().UTC()),
	}, nil
}

// Reschedule returns a copy with the time window replaced.
func (e Event) Reschedule(startsAt, endsAt time.Time, actor string) (*Event, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateSchedule(startsAt, endsAt); err != nil {
		return nil, err
	}
	e.StartsAt = startsAt
	e.EndsAt = endsAt
	e.Audit = e.Audit.stamped(actor, time.Now().UTC())
	return &e, nil
}

// AssignInterviewers returns a copy with the interviewer set replaced.
func (e Event) AssignInterviewers(ids []int64, actor string) (*Event, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	deduped, err := dedupeInterviewerIDs(ids)
	if err != nil {
		return nil, err
	}
	e.InterviewerIDs = deduped
	e.Audit = e.Audit.stamped(actor, time.Now().UTC())
	return &e, nil
}

// EnsureID guards against continuing with an unpersisted aggregate.
func (e *Event) EnsureID() error {
	if e.ID == 0 {
		return NewValidationError("id", "event has no persisted identity")
	}
	return nil
}

// Equals compares by identity only. Unpersisted entities compare unequal.
func (e *Event) Equals(other *Event) bool {
	if other == nil || e.ID == 0 || other.ID == 0 {
		return false
	}
	return e.ID == other.ID
}

func validateSchedule(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() || endsAt.IsZero() {
		return NewValidationError("starts_at", "start and end times are required")
	}
	if !startsAt.Before(endsAt) {
		return NewValidationError("starts_at", "must be before the end time")
	}
	return nil
}

// dedupeInterviewerIDs rejects non-positive ids and drops duplicates while
// preserving the caller's ordering.
func dedupeInterviewerIDs(ids []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, NewValidationError("interviewer_ids", "must contain positive ids")
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
