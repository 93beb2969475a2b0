package model

import "time"

// Registration enrolls a student in a section.
type Registration struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id"`
	SectionID int       `json:"section_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Resolved on read.
	Student Ref `json:"student"`
	Section Ref `json:"section"`
}

func (r Registration) Kind() Kind { return KindRegistration }
func (r Registration) PK() int    { return r.ID }
func (r Registration) String() string {
	return RegistrationLabel(r.Section.Label, r.Student.Label)
}
func (r Registration) AbsoluteURL() string { return KindRegistration.DetailPath(r.ID) }

// RegistrationRequest is the admin payload for creating or updating a registration.
type RegistrationRequest struct {
	StudentID int `json:"student_id" binding:"required,min=1"`
	SectionID int `json:"section_id" binding:"required,min=1"`
}
