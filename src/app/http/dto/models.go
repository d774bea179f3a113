package dto

import "time"

// UpsertRecruitYearRequest is the payload for creating-or-updating a recruit
// year by its natural key.
type UpsertRecruitYearRequest struct {
	Year        int    `json:"year" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
}

// UpdateRecruitYearRequest replaces the display name of a recruit year.
type UpdateRecruitYearRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

// CreateCompanyRequest is the payload for creating a company.
type CreateCompanyRequest struct {
	RecruitYearID int64  `json:"recruit_year_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	ContactName   string `json:"contact_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	WebsiteURL    string `json:"website_url"`
}

// UpdateCompanyRequest replaces the contact fields of a company.
type UpdateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	WebsiteURL  string `json:"website_url"`
}

// CreateEventMasterRequest is the payload for creating an event master.
type CreateEventMasterRequest struct {
	RecruitYearID int64  `json:"recruit_year_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
}

// UpdateEventMasterRequest replaces name and description of an event master.
type UpdateEventMasterRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// EventItem is one event in a bulk create request.
type EventItem struct {
	EventMasterID  int64     `json:"event_master_id" binding:"required"`
	LocationID     int64     `json:"location_id" binding:"required"`
	StartsAt       time.Time `json:"starts_at" binding:"required"`
	EndsAt         time.Time `json:"ends_at" binding:"required"`
	Capacity       int       `json:"capacity" binding:"required"`
	InterviewerIDs []int64   `json:"interviewer_ids"`
}

// BulkCreateEventsRequest is the payload for the bulk event create endpoint.
type BulkCreateEventsRequest struct {
	Events []EventItem `json:"events" binding:"required"`
}

// RescheduleEventRequest replaces the time window of an event.
type RescheduleEventRequest struct {
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
}

// AssignInterviewersRequest replaces the interviewer set of an event.
type AssignInterviewersRequest struct {
	InterviewerIDs []int64 `json:"interviewer_ids" binding:"required"`
}

// CreateEducationalBackgroundRequest is the payload for creating an
// educational background entry.
type CreateEducationalBackgroundRequest struct {
	StudentID       int64    `json:"student_id" binding:"required"`
	EducationType   string   `json:"education_type" binding:"required"`
	UniversityID    *int64   `json:"university_id"`
	FacultyID       *int64   `json:"faculty_id"`
	GraduationYear  int      `json:"graduation_year" binding:"required"`
	GraduationMonth *int     `json:"graduation_month"`
	DeviationScore  *float64 `json:"deviation_score"`
}

// UpdateEducationalBackgroundRequest replaces the profile fields of an
// educational background entry.
type UpdateEducationalBackgroundRequest struct {
	EducationType   string   `json:"education_type" binding:"required"`
	UniversityID    *int64   `json:"university_id"`
	FacultyID       *int64   `json:"faculty_id"`
	GraduationYear  int      `json:"graduation_year" binding:"required"`
	GraduationMonth *int     `json:"graduation_month"`
	DeviationScore  *float64 `json:"deviation_score"`
}
