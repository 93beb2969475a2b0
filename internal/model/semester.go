package model

import "time"

// Semester pairs a Year with a Period. The pair is unique.
type Semester struct {
	ID        int       `json:"id"`
	YearID    int       `json:"year_id"`
	PeriodID  int       `json:"period_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Resolved on read.
	Year   Ref `json:"year"`
	Period Ref `json:"period"`
}

func (s Semester) Kind() Kind          { return KindSemester }
func (s Semester) PK() int             { return s.ID }
func (s Semester) String() string      { return SemesterLabel(s.Year.Label, s.Period.Label) }
func (s Semester) AbsoluteURL() string { return KindSemester.DetailPath(s.ID) }

// SemesterRequest is the admin payload for creating or updating a semester.
type SemesterRequest struct {
	YearID   int `json:"year_id" binding:"required,min=1"`
	PeriodID int `json:"period_id" binding:"required,min=1"`
}

// SemesterDetail is a semester with the sections offered in it.
type SemesterDetail struct {
	Semester
	Sections []Section `json:"sections"`
}
