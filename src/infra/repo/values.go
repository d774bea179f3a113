package repo

import "recruitadmin/src/core/domain"

// Helpers mapping optional value objects to nullable columns and back.

func personNameValue(n *domain.PersonName) *string {
	if n == nil {
		return nil
	}
	v := n.Value()
	return &v
}

func emailValue(e *domain.Email) *string {
	if e == nil {
		return nil
	}
	v := e.Value()
	return &v
}

func phoneValue(p *domain.PhoneNumber) *string {
	if p == nil {
		return nil
	}
	v := p.Value()
	return &v
}

func urlValue(u *domain.WebURL) *string {
	if u == nil {
		return nil
	}
	v := u.Value()
	return &v
}

func monthValue(m *domain.Month) *int {
	if m == nil {
		return nil
	}
	v := m.Value()
	return &v
}

func deviationScoreValue(s *domain.DeviationScore) *float64 {
	if s == nil {
		return nil
	}
	v := s.Value()
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
