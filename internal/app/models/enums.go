package models

// CourseCategory classifies a course as a short professional course or an
// academic programme.
type CourseCategory string

const (
	CategoryShortProfessional CourseCategory = "short_professional"
	CategoryAcademic          CourseCategory = "academic"
)

// IsValid reports whether the category is one of the known values.
func (c CourseCategory) IsValid() bool {
	return c == CategoryShortProfessional || c == CategoryAcademic
}

// ModeOfStudy is how the applicant intends to take the course.
type ModeOfStudy string

const (
	ModeOnline   ModeOfStudy = "online"
	ModeBlended  ModeOfStudy = "blended"
	ModePhysical ModeOfStudy = "physical"
)

// IsValid reports whether the mode is one of the known values.
func (m ModeOfStudy) IsValid() bool {
	return m == ModeOnline || m == ModeBlended || m == ModePhysical
}
