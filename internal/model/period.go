package model

import "time"

// Period is a named part of an academic year (Winter, Spring, ...).
type Period struct {
	ID        int       `json:"id"`
	Sequence  int       `json:"period_sequence"`
	Name      string    `json:"period_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Period) Kind() Kind          { return KindPeriod }
func (p Period) PK() int             { return p.ID }
func (p Period) String() string      { return PeriodLabel(p.Name) }
func (p Period) AbsoluteURL() string { return KindPeriod.DetailPath(p.ID) }

// PeriodRequest is the admin payload for creating or updating a period.
type PeriodRequest struct {
	// Sequence is a pointer so that a present 0 passes the required check.
	Sequence *int   `json:"period_sequence" binding:"required"`
	Name     string `json:"period_name" binding:"required,max=45"`
}
