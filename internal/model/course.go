package model

import "time"

// Course is a catalog course. Number and name together are unique.
type Course struct {
	ID        int       `json:"id"`
	Number    string    `json:"course_number"`
	Name      string    `json:"course_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Course) Kind() Kind          { return KindCourse }
func (c Course) PK() int             { return c.ID }
func (c Course) String() string      { return CourseLabel(c.Number, c.Name) }
func (c Course) AbsoluteURL() string { return KindCourse.DetailPath(c.ID) }

// CourseRequest is the admin payload for creating or updating a course.
type CourseRequest struct {
	Number string `json:"course_number" binding:"required,max=20"`
	Name   string `json:"course_name" binding:"required,max=255"`
}

// CourseDetail is a course with all of its sections.
type CourseDetail struct {
	Course
	Sections []Section `json:"sections"`
}
