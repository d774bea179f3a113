package domain

import (
	"encoding/json"
	"time"
)

// OutboxStatus is the processing state of an outbox row. This subsystem only
// ever writes pending rows; the downstream relay owns the other states.
type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "pending"
)

// OutboxEventType is the closed set of integration events this core emits.
type OutboxEventType string

const (
	EventTypeRecruitYearCreated OutboxEventType = "RecruitYearCreated"
	EventTypeRecruitYearUpdated OutboxEventType = "RecruitYearUpdated"
)

// OutboxEvent is a to-be-published record written in the same transaction as
// the aggregate change it describes.
type OutboxEvent struct {
	ID        int64
	EventType OutboxEventType
	Payload   []byte
	Status    OutboxStatus
	CreatedAt time.Time
}

// recruitYearSnapshot is the public state captured in a recruit year event
// payload. It reflects the aggregate as committed, not the request.
type recruitYearSnapshot struct {
	ID          int64     `json:"id"`
	Year        int       `json:"year"`
	DisplayName string    `json:"display_name"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   string    `json:"updated_by"`
}

// NewRecruitYearEvent builds a pending outbox event carrying a snapshot of the
// recruit year's post-write state.
func NewRecruitYearEvent(eventType OutboxEventType, r *RecruitYear) (*OutboxEvent, error) {
	payload, err := json.Marshal(recruitYearSnapshot{
		ID:          r.ID,
		Year:        r.Year,
		DisplayName: r.DisplayName,
		UpdatedAt:   r.UpdatedAt,
		UpdatedBy:   r.UpdatedBy,
	})
	if err != nil {
		return nil, err
	}
	return &OutboxEvent{
		EventType: eventType,
		Payload:   payload,
		Status:    OutboxStatusPending,
		CreatedAt: time.Now().UTC(),
	}, nil
}
