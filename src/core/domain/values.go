package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9()\-]+$`)
)

// maxPersonNameLength bounds person names in runes, not bytes.
const maxPersonNameLength = 100

// Email is a validated email address.
type Email struct {
	value string
}

// NewEmail validates a required email address.
func NewEmail(raw string) (Email, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Email{}, NewValidationError("email", "is required")
	}
	if !emailPattern.MatchString(raw) {
		return Email{}, NewValidationError("email", "is not a valid email address")
	}
	return Email{value: raw}, nil
}

// NewOptionalEmail returns nil for blank input and an error for invalid input.
func NewOptionalEmail(raw string) (*Email, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	e, err := NewEmail(raw)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (e Email) Value() string { return e.value }

// Equals reports value equality. An absent value never equals a present one.
func (e Email) Equals(other *Email) bool {
	return other != nil && e.value == other.value
}

// PhoneNumber is a validated phone number. The raw form may contain digits,
// parentheses, and hyphens; the digit count (separators stripped) must be 7-15.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates a required phone number.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PhoneNumber{}, NewValidationError("phone_number", "is required")
	}
	if !phonePattern.MatchString(raw) {
		return PhoneNumber{}, NewValidationError("phone_number", "contains invalid characters")
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if len(digits) < 7 || len(digits) > 15 {
		return PhoneNumber{}, NewValidationError("phone_number", "must contain 7 to 15 digits")
	}
	return PhoneNumber{value: raw}, nil
}

// NewOptionalPhoneNumber returns nil for blank input and an error for invalid input.
func NewOptionalPhoneNumber(raw string) (*PhoneNumber, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	p, err := NewPhoneNumber(raw)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (p PhoneNumber) Value() string { return p.value }

// Equals reports value equality. An absent value never equals a present one.
func (p PhoneNumber) Equals(other *PhoneNumber) bool {
	return other != nil && p.value == other.value
}

// WebURL is a validated http(s) URL.
type WebURL struct {
	value string
}

// NewWebURL validates a required URL. Only http and https schemes are accepted.
func NewWebURL(raw string) (WebURL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return WebURL{}, NewValidationError("url", "is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return WebURL{}, NewValidationError("url", "is not a valid URL")
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return WebURL{}, NewValidationError("url", "must be an http or https URL")
	}
	return WebURL{value: raw}, nil
}

// NewOptionalWebURL returns nil for blank input and an error for invalid input.
func NewOptionalWebURL(raw string) (*WebURL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	u, err := NewWebURL(raw)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (u WebURL) Value() string { return u.value }

// Equals reports value equality. An absent value never equals a present one.
func (u WebURL) Equals(other *WebURL) bool {
	return other != nil && u.value == other.value
}

// Month is a calendar month in [1, 12].
type Month struct {
	value int
}

// NewMonth validates a required month.
func NewMonth(raw int) (Month, error) {
	if raw < 1 || raw > 12 {
		return Month{}, NewValidationError("month", "must be between 1 and 12")
	}
	return Month{value: raw}, nil
}

// NewOptionalMonth returns nil for absent input and an error for invalid input.
func NewOptionalMonth(raw *int) (*Month, error) {
	if raw == nil {
		return nil, nil
	}
	m, err := NewMonth(*raw)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (m Month) Value() int { return m.value }

// Equals reports value equality. An absent value never equals a present one.
func (m Month) Equals(other *Month) bool {
	return other != nil && m.value == other.value
}

// DeviationScore is a standardized academic score in [0, 100].
type DeviationScore struct {
	value float64
}

// NewDeviationScore validates a required deviation score.
func NewDeviationScore(raw float64) (DeviationScore, error) {
	if raw < 0 || raw > 100 {
		return DeviationScore{}, NewValidationError("deviation_score", "must be between 0 and 100")
	}
	return DeviationScore{value: raw}, nil
}

// NewOptionalDeviationScore returns nil for absent input and an error for invalid input.
func NewOptionalDeviationScore(raw *float64) (*DeviationScore, error) {
	if raw == nil {
		return nil, nil
	}
	s, err := NewDeviationScore(*raw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s DeviationScore) Value() float64 { return s.value }

// Equals reports value equality. An absent value never equals a present one.
func (s DeviationScore) Equals(other *DeviationScore) bool {
	return other != nil && s.value == other.value
}

// PersonName is a non-blank display name of at most 100 runes.
type PersonName struct {
	value string
}

// NewPersonName validates a required person name.
func NewPersonName(raw string) (PersonName, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PersonName{}, NewValidationError("name", "is required")
	}
	if utf8.RuneCountInString(raw) > maxPersonNameLength {
		return PersonName{}, NewValidationError("name", fmt.Sprintf("must be at most %d characters", maxPersonNameLength))
	}
	return PersonName{value: raw}, nil
}

// NewOptionalPersonName returns nil for blank input and an error for invalid input.
func NewOptionalPersonName(raw string) (*PersonName, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	n, err := NewPersonName(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (n PersonName) Value() string { return n.value }

// Equals reports value equality. An absent value never equals a present one.
func (n PersonName) Equals(other *PersonName) bool {
	return other != nil && n.value == other.value
}
