package model

import (
	"fmt"
	"strconv"
)

// Kind identifies an entity type. Its value doubles as the URL segment.
type Kind string

const (
	KindPeriod       Kind = "period"
	KindYear         Kind = "year"
	KindSemester     Kind = "semester"
	KindCourse       Kind = "course"
	KindInstructor   Kind = "instructor"
	KindStudent      Kind = "student"
	KindSection      Kind = "section"
	KindRegistration Kind = "registration"
)

// AllKinds lists every entity kind in admin registration order.
var AllKinds = []Kind{
	KindPeriod,
	KindYear,
	KindSemester,
	KindSection,
	KindCourse,
	KindInstructor,
	KindStudent,
	KindRegistration,
}

// ParseKind converts a URL segment into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

// Path returns the list path, e.g. "/course/".
func (k Kind) Path() string {
	return "/" + string(k) + "/"
}

// DetailPath returns the canonical detail path, e.g. "/course/3/".
func (k Kind) DetailPath(id int) string {
	return "/" + string(k) + "/" + strconv.Itoa(id) + "/"
}

// Record is implemented by every persisted entity.
type Record interface {
	Kind() Kind
	PK() int
	String() string
	AbsoluteURL() string
}

// Ref is a resolved foreign key: the referenced id plus its display label.
type Ref struct {
	Kind  Kind   `json:"kind"`
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// URL returns the canonical detail path of the referenced record.
func (r Ref) URL() string {
	return r.Kind.DetailPath(r.ID)
}

func (r Ref) String() string {
	return r.Label
}

// RefOf builds a Ref from a loaded record.
func RefOf(rec Record) Ref {
	return Ref{Kind: rec.Kind(), ID: rec.PK(), Label: rec.String()}
}
