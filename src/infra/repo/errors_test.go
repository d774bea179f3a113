package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, isUniqueViolation(pgError("23505", "recruit_years_year_key")))
	assert.False(t, isUniqueViolation(pgError("23503", "")))
	assert.False(t, isUniqueViolation(errors.New("plain error")))
	assert.False(t, isUniqueViolation(nil))

	assert.True(t, isForeignKeyViolation(pgError("23503", "companies_recruit_year_id_fkey")))
	assert.False(t, isForeignKeyViolation(pgError("23505", "")))
}

func TestErrorClassificationWrapped(t *testing.T) {
	wrapped := fmt.Errorf("insert company: %w", pgError("23505", "companies_name_key"))
	assert.True(t, isUniqueViolation(wrapped))
	assert.Equal(t, "companies_name_key", pgConstraintName(wrapped))
}

func TestPgConstraintName(t *testing.T) {
	assert.Equal(t, "events_location_id_fkey", pgConstraintName(pgError("23503", "events_location_id_fkey")))
	assert.Equal(t, "", pgConstraintName(errors.New("plain error")))
}

func TestEventFKTarget(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"events_event_master_id_fkey", "event master"},
		{"events_location_id_fkey", "location"},
		{"event_interviewers_interviewer_id_fkey", "interviewer"},
		{"something_else_fkey", "referenced record"},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			assert.Equal(t, tt.want, eventFKTarget(pgError("23503", tt.constraint)))
		})
	}
}

func TestEducationFKTarget(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"educational_backgrounds_student_id_fkey", "student"},
		{"educational_backgrounds_university_id_fkey", "university"},
		{"educational_backgrounds_faculty_id_fkey", "faculty"},
		{"unknown_fkey", "referenced record"},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			assert.Equal(t, tt.want, educationFKTarget(pgError("23503", tt.constraint)))
		})
	}
}
