package domain

import "time"

// Recruit year bounds. Years outside this window are assumed to be typos.
const (
	minRecruitYear = 2000
	maxRecruitYear = 2100
)

// RecruitYear is the aggregate every other recruiting record hangs off.
// Year is the natural key; state changes emit outbox events.
type RecruitYear struct {
	ID          int64
	Year        int
	DisplayName string
	Audit
}

// RecruitYearParams holds the inputs for NewRecruitYear.
type RecruitYearParams struct {
	Year        int
	DisplayName string
	Actor       string
}

// NewRecruitYear validates all fields and builds an unpersisted recruit year.
func NewRecruitYear(p RecruitYearParams) (*RecruitYear, error) {
	if err := requireActor(p.Actor); err != nil {
		return nil, err
	}
	if p.Year < minRecruitYear || p.Year > maxRecruitYear {
		return nil, NewValidationError("year", "must be between 2000 and 2100")
	}
	displayName, err := requireText("display_name", p.DisplayName)
	if err != nil {
		return nil, err
	}
	return &RecruitYear{
		Year:        p.Year,
		DisplayName: displayName,
		Audit:       newAudit(p.Actor, time.Now().UTC()),
	}, nil
}

// ChangeDisplayName returns a copy with the display name replaced.
// The receiver is never mutated; validation runs before any field is assigned.
func (r RecruitYear) ChangeDisplayName(displayName, actor string) (*RecruitYear, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	trimmed, err := requireText("display_name", displayName)
	if err != nil {
		return nil, err
	}
	r.DisplayName = trimmed
	r.Audit = r.Audit.stamped(actor, time.Now().UTC())
	return &r, nil
}

// EnsureID guards against continuing with an unpersisted aggregate after a
// create/update round trip.
func (r *RecruitYear) EnsureID() error {
	if r.ID == 0 {
		return NewValidationError("id", "recruit year has no persisted identity")
	}
	return nil
}

// Equals compares by identity only. Unpersisted entities compare unequal.
func (r *RecruitYear) Equals(other *RecruitYear) bool {
	if other == nil || r.ID == 0 || other.ID == 0 {
		return false
	}
	return r.ID == other.ID
}
