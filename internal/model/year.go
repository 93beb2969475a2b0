package model

import "time"

// Year is a calendar year in which semesters run.
type Year struct {
	ID        int       `json:"id"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (y Year) Kind() Kind          { return KindYear }
func (y Year) PK() int             { return y.ID }
func (y Year) String() string      { return YearLabel(y.Year) }
func (y Year) AbsoluteURL() string { return KindYear.DetailPath(y.ID) }

// YearRequest is the admin payload for creating or updating a year.
type YearRequest struct {
	Year *int `json:"year" binding:"required"`
}
