package domain

import "time"

// Company is a hiring company registered for a recruit year.
type Company struct {
	ID            int64
	RecruitYearID int64
	Name          string
	ContactName   *PersonName
	Email         *Email
	Phone         *PhoneNumber
	WebsiteURL    *WebURL
	Audit
}

// CompanyParams holds the inputs for NewCompany. Optional fields may be blank.
type CompanyParams struct {
	RecruitYearID int64
	Name          string
	ContactName   string
	Email         string
	Phone         string
	WebsiteURL    string
	Actor         string
}

// NewCompany validates all fields and builds an unpersisted company.
func NewCompany(p CompanyParams) (*Company, error) {
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
	contactName, err := NewOptionalPersonName(p.ContactName)
	if err != nil {
		return nil, err
	}
	email, err := NewOptionalEmail(p.Email)
	if err != nil {
		return nil, err
	}
	phone, err := NewOptionalPhoneNumber(p.Phone)
	if err != nil {
		return nil, err
	}
	websiteURL, err := NewOptionalWebURL(p.WebsiteURL)
	if err != nil {
		return nil, err
	}
	return &Company{
		RecruitYearID: p.RecruitYearID,
		Name:          name,
		ContactName:   contactName,
		Email:         email,
		Phone:         phone,
		WebsiteURL:    websiteURL,
		Audit:         newAudit(p.Actor, time.Now().UTC()),
	}, nil
}

// CompanyChange holds the replacement values for ChangeInfo.
type CompanyChange struct {
	Name        string
	ContactName string
	Email       string
	Phone       string
	WebsiteURL  string
}

// ChangeInfo returns a copy with the contact fields replaced. All incoming
// values are validated before any field is assigned.
func (c Company) ChangeInfo(ch CompanyChange, actor string) (*Company, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	name, err := requireText("name", ch.Name)
	if err != nil {
		return nil, err
	}
	contactName, err := NewOptionalPersonName(ch.ContactName)
	if err != nil {
		return nil, err
	}
	email, err := NewOptionalEmail(ch.Email)
	if err != nil {
		return nil, err
	}
	phone, err := NewOptionalPhoneNumber(ch.Phone)
	if err != nil {
		return nil, err
	}
	websiteURL, err := NewOptionalWebURL(ch.WebsiteURL)
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.ContactName = contactName
	c.Email = email
	c.Phone = phone
	c.WebsiteURL = websiteURL
	c.Audit = c.Audit.stamped(actor, time.Now().UTC())
	return &c, nil
}

// EnsureID guards against continuing with an unpersisted aggregate.
func (c *Company) EnsureID() error {
	if c.ID == 0 {
		return NewValidationError("id", "company has no persisted identity")
	}
	return nil
}

// Equals compares by identity only. Unpersisted entities compare unequal.
func (c *Company) Equals(other *Company) bool {
	if other == nil || c.ID == 0 || other.ID == 0 {
		return false
	}
	return c.ID == other.ID
}
