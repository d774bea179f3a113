package domain

import "time"

// EducationType classifies an educational background entry.
type EducationType string

const (
	EducationUniversity     EducationType = "university"
	EducationGraduateSchool EducationType = "graduate_school"
	EducationJuniorCollege  EducationType = "junior_college"
	EducationHighSchool     EducationType = "high_school"
	EducationVocational     EducationType = "vocational"
	EducationOther          EducationType = "other"
)

// RequiresUniversity reports whether this education type must carry
// university and faculty references. The remaining types must not.
func (t EducationType) RequiresUniversity() bool {
	switch t {
	case EducationUniversity, EducationGraduateSchool, EducationJuniorCollege:
		return true
	}
	return false
}

func (t EducationType) valid() bool {
	switch t {
	case EducationUniversity, EducationGraduateSchool, EducationJuniorCollege,
		EducationHighSchool, EducationVocational, EducationOther:
		return true
	}
	return false
}

// Graduation year bounds.
const (
	minGraduationYear = 1900
	maxGraduationYear = 2100
)

// EducationalBackground records one education entry of a student.
type EducationalBackground struct {
	ID              int64
	StudentID       int64
	EducationType   EducationType
	UniversityID    *int64
	FacultyID       *int64
	GraduationYear  int
	GraduationMonth *Month
	DeviationScore  *DeviationScore
	Audit
}

// EducationalBackgroundParams holds the inputs for NewEducationalBackground.
type EducationalBackgroundParams struct {
	StudentID       int64
	EducationType   string
	UniversityID    *int64
	FacultyID       *int64
	GraduationYear  int
	GraduationMonth *int
	DeviationScore  *float64
	Actor           string
}

// NewEducationalBackground validates all fields, including the cross-field
// education-type/university consistency rule, and builds an unpersisted entry.
func NewEducationalBackground(p EducationalBackgroundParams) (*EducationalBackground, error) {
	if err := requireActor(p.Actor); err != nil {
		return nil, err
	}
	if err := requireRef("student_id", p.StudentID); err != nil {
		return nil, err
	}
	educationType := EducationType(p.EducationType)
	if err := validateEducationRefs(educationType, p.UniversityID, p.FacultyID); err != nil {
		return nil, err
	}
	if p.GraduationYear < minGraduationYear || p.GraduationYear > maxGraduationYear {
		return nil, NewValidationError("graduation_year", "must be between 1900 and 2100")
	}
	graduationMonth, err := NewOptionalMonth(p.GraduationMonth)
	if err != nil {
		return nil, err
	}
	deviationScore, err := NewOptionalDeviationScore(p.DeviationScore)
	if err != nil {
		return nil, err
	}
	return &EducationalBackground{
		StudentID:       p.StudentID,
		EducationType:   educationType,
		UniversityID:    p.UniversityID,
		FacultyID:       p.FacultyID,
		GraduationYear:  p.GraduationYear,
		GraduationMonth: graduationMonth,
		DeviationScore:  deviationScore,
		Audit:           newAudit(p.Actor, time.Now().UTC()),
	}, nil
}

// EducationalBackgroundChange holds the replacement values for UpdateProfile.
type EducationalBackgroundChange struct {
	EducationType   string
	UniversityID    *int64
	FacultyID       *int64
	GraduationYear  int
	GraduationMonth *int
	DeviationScore  *float64
}

// UpdateProfile returns a copy with the profile fields replaced. The
// education-type consistency rule is re-checked on every update.
func (b EducationalBackground) UpdateProfile(ch EducationalBackgroundChange, actor string) (*EducationalBackground, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	educationType := EducationType(ch.EducationType)
	if err := validateEducationRefs(educationType, ch.UniversityID, ch.FacultyID); err != nil {
		return nil, err
	}
	if ch.GraduationYear < minGraduationYear || ch.GraduationYear > maxGraduationYear {
		return nil, NewValidationError("graduation_year", "must be between 1900 and 2100")
	}
	graduationMonth, err := NewOptionalMonth(ch.GraduationMonth)
	if err != nil {
		return nil, err
	}
	deviationScore, err := NewOptionalDeviationScore(ch.DeviationScore)
	if err != nil {
		return nil, err
	}
	b.EducationType = educationType
	b.UniversityID = ch.UniversityID
	b.FacultyID = ch.FacultyID
	b.GraduationYear = ch.GraduationYear
	b.GraduationMonth = graduationMonth
	b.DeviationScore = deviationScore
	b.Audit = b.Audit.stamped(actor, time.Now().UTC())
	return &b, nil
}

// EnsureID guards against continuing with an unpersisted aggregate.
func (b *EducationalBackground) EnsureID() error {
	if b.ID == 0 {
		return NewValidationError("id", "educational background has no persisted identity")
	}
	return nil
}

// Equals compares by identity only. Unpersisted entities compare unequal.
func (b *EducationalBackground) Equals(other *EducationalBackground) bool {
	if other == nil || b.ID == 0 || other.ID == 0 {
		return false
	}
	return b.ID == other.ID
}

func validateEducationRefs(t EducationType, universityID, facultyID *int64) error {
	if !t.valid() {
		return NewValidationError("education_type", "is not a recognized education type")
	}
	if t.RequiresUniversity() {
		if universityID == nil || *universityID <= 0 {
			return NewValidationError("university_id", "is required for this education type")
		}
		if facultyID == nil || *facultyID <= 0 {
			return NewValidationError("faculty_id", "is required for this education type")
		}
		return nil
	}
	if universityID != nil {
		return NewValidationError("university_id", "must not be set for this education type")
	}
	if facultyID != nil {
		return NewValidationError("faculty_id", "must not be set for this education type")
	}
	return nil
}
