package domain

import (
	"strings"
	"time"
)

// EventMaster is the template a concrete Event is scheduled from.
type EventMaster struct {
	ID            int64
	RecruitYearID int64
	Name          string
	Description   string
	Audit
}

// EventMasterParams holds the inputs for NewEventMaster.
type EventMasterParams struct {
	RecruitYearID int64
	Name          string
	Description   string
	Actor         string
}

// NewEventMaster validates all fields and builds an unpersisted event master.
func NewEventMaster(p EventMasterParams) (*EventMaster, error) {
	if err := requireActor(p.Actor); err != nil {
		return nil, err
	}
	if err := requireRef("recruit_year_id", p.RecruitYearID); err != nil {
		return nil, err
	}
	name, err := requireText("name", p.Name)
	if err != nil {
		return nil, err
	}
	return &EventMaster{
		RecruitYearID: p.RecruitYearID,
		Name:          name,
		Description:   strings.TrimSpace(p.Description),
		Audit:         newAudit(p.Actor, time.Now().UTC()),
	}, nil
}

// EventMasterChange holds the replacement values for ChangeInfo.
type EventMasterChange struct {
	Name        string
	Description string
}

// ChangeInfo returns a copy with name and description replaced.
func (m EventMaster) ChangeInfo(ch EventMasterChange, actor string) (*EventMaster, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	name, err := requireText("name", ch.Name)
	if err != nil {
		return nil, err
	}
	m.Name = name
	m.Description = strings.TrimSpace(ch.Description)
	m.Audit = m.Audit.stamped(actor, time.Now().UTC())
	return &m, nil
}

// EnsureID guards against continuing with an unpersisted aggregate.
func (m *EventMaster) EnsureID() error {
	if m.ID == 0 {
		return NewValidationError("id", "event master has no persisted identity")
	}
	return nil
}

// Equals compares by identity only. Unpersisted entities compare unequal.
func (m *EventMaster) Equals(other *EventMaster) bool {
	if other == nil || m.ID == 0 || other.ID == 0 {
		return false
	}
	return m.ID == other.ID
}
