package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecruitYearEvent(t *testing.T) {
	updatedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	year := &RecruitYear{
		ID:          42,
		Year:        2027,
		DisplayName: "2027 New Graduates",
		Audit: Audit{
			CreatedAt: updatedAt,
			CreatedBy: "alice",
			UpdatedAt: updatedAt,
			UpdatedBy: "bob",
		},
	}

	evt, err := NewRecruitYearEvent(EventTypeRecruitYearCreated, year)
	require.NoError(t, err)
	assert.Equal(t, EventTypeRecruitYearCreated, evt.EventType)
	assert.Equal(t, OutboxStatusPending, evt.Status)
	assert.False(t, evt.CreatedAt.IsZero())

	var payload map[string]any
	require.NoError(t, json.Unmarshal(evt.Payload, &payload))
	assert.Equal(t, float64(42), payload["id"])
	assert.Equal(t, float64(2027), payload["year"])
	assert.Equal(t, "2027 New Graduates", payload["display_name"])
	assert.Equal(t, "bob", payload["updated_by"])
}

func TestDomainErrorWrapping(t *testing.T) {
	err := NewValidationError("year", "must be between 2000 and 2100")
	assert.True(t, IsValidationError(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "year")

	nf := NewNotFoundError("recruit year")
	assert.True(t, IsNotFound(nf))
	assert.Contains(t, nf.Error(), "recruit year")

	br := NewBadRequestError("actor is required")
	assert.True(t, IsBadRequest(br))
	assert.False(t, IsValidationError(br))
}
