package model

import "time"

// Section is one offering of a course in a semester, taught by an instructor.
type Section struct {
	ID           int       `json:"id"`
	Name         string    `json:"section_name"`
	SemesterID   int       `json:"semester_id"`
	CourseID     int       `json:"course_id"`
	InstructorID int       `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Resolved on read.
	Semester     Ref    `json:"semester"`
	Course       Ref    `json:"course"`
	Instructor   Ref    `json:"instructor"`
	CourseNumber string `json:"-"`
}

func (s Section) Kind() Kind { return KindSection }
func (s Section) PK() int    { return s.ID }
func (s Section) String() string {
	return SectionLabel(s.CourseNumber, s.Name, s.Semester.Label)
}
func (s Section) AbsoluteURL() string { return KindSection.DetailPath(s.ID) }

// SectionRequest is the admin payload for creating or updating a section.
type SectionRequest struct {
	Name         string `json:"section_name" binding:"required,max=10"`
	SemesterID   int    `json:"semester_id" binding:"required,min=1"`
	CourseID     int    `json:"course_id" binding:"required,min=1"`
	InstructorID int    `json:"instructor_id" binding:"required,min=1"`
}

// SectionDetail is a section with its registrations.
type SectionDetail struct {
	Section
	Registrations []Registration `json:"registrations"`
}
