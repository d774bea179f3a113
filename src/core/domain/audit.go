package domain

import (
	"strings"
	"time"
)

// Audit is the write trail stamped on every aggregate.
type Audit struct {
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
}

func newAudit(actor string, now time.Time) Audit {
	return Audit{
		CreatedAt: now,
		CreatedBy: actor,
		UpdatedAt: now,
		UpdatedBy: actor,
	}
}

// stamped returns a copy with the update trail advanced to the given actor.
func (a Audit) stamped(actor string, now time.Time) Audit {
	a.UpdatedAt = now
	a.UpdatedBy = actor
	return a
}

func requireActor(actor string) error {
	if strings.TrimSpace(actor) == "" {
		return NewBadRequestError("actor is required")
	}
	return nil
}

func requireRef(field string, id int64) error {
	if id <= 0 {
		return NewValidationError(field, "is required")
	}
	return nil
}

// requireText trims the input and rejects blank values.
func requireText(field, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", NewValidationError(field, "must not be blank")
	}
	return trimmed, nil
}
