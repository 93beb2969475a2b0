package model

import "time"

// Instructor teaches sections. First and last name together are unique.
type Instructor struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i Instructor) Kind() Kind          { return KindInstructor }
func (i Instructor) PK() int             { return i.ID }
func (i Instructor) String() string      { return PersonLabel(i.FirstName, i.LastName) }
func (i Instructor) AbsoluteURL() string { return KindInstructor.DetailPath(i.ID) }

// InstructorDetail is an instructor with the sections they teach.
type InstructorDetail struct {
	Instructor
	Sections []Section `json:"sections"`
}

// Student registers for sections. First and last name together are unique.
type Student struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Student) Kind() Kind          { return KindStudent }
func (s Student) PK() int             { return s.ID }
func (s Student) String() string      { return PersonLabel(s.FirstName, s.LastName) }
func (s Student) AbsoluteURL() string { return KindStudent.DetailPath(s.ID) }

// StudentDetail is a student with their registrations.
type StudentDetail struct {
	Student
	Registrations []Registration `json:"registrations"`
}

// PersonRequest is the admin payload shared by instructors and students.
type PersonRequest struct {
	FirstName string `json:"first_name" binding:"required,max=45"`
	LastName  string `json:"last_name" binding:"required,max=45"`
}
