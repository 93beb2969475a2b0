package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringForms(t *testing.T) {
	winter := Period{ID: 1, Sequence: 1, Name: "Winter"}
	y2023 := Year{ID: 1, Year: 2023}
	semester := Semester{ID: 1, YearID: 1, PeriodID: 1, Year: RefOf(y2023), Period: RefOf(winter)}
	course := Course{ID: 1, Number: "IS507", Name: "Data Stat Info"}
	instructor := Instructor{ID: 1, FirstName: "Qiaoyue", LastName: "Sun"}
	student := Student{ID: 1, FirstName: "Joy", LastName: "Sun"}
	section := Section{
		ID:           1,
		Name:         "01",
		Semester:     RefOf(semester),
		Course:       RefOf(course),
		Instructor:   RefOf(instructor),
		CourseNumber: course.Number,
	}
	registration := Registration{ID: 1, Student: RefOf(student), Section: RefOf(section)}

	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"period", winter, "Winter"},
		{"year", y2023, "2023"},
		{"semester", semester, "2023 - Winter"},
		{"course", course, "IS507 - Data Stat Info"},
		{"instructor", instructor, "Sun, Qiaoyue"},
		{"student", student, "Sun, Joy"},
		{"section", section, "IS507 - 01 (2023 - Winter)"},
		{"registration", registration, "IS507 - 01 (2023 - Winter) / Sun, Joy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.String())
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	recs := []Record{
		Period{ID: 4},
		Year{ID: 5},
		Semester{ID: 6},
		Course{ID: 7},
		Instructor{ID: 8},
		Student{ID: 9},
		Section{ID: 10},
		Registration{ID: 11},
	}
	want := []string{
		"/period/4/",
		"/year/5/",
		"/semester/6/",
		"/course/7/",
		"/instructor/8/",
		"/student/9/",
		"/section/10/",
		"/registration/11/",
	}
	for i, rec := range recs {
		assert.Equal(t, want[i], rec.AbsoluteURL())
		assert.Equal(t, want[i], rec.Kind().DetailPath(rec.PK()))
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range AllKinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.Equal(t, "/"+string(k)+"/", k.Path())
	}

	_, err := ParseKind("classroom")
	assert.Error(t, err)
}

func TestRefURL(t *testing.T) {
	ref := RefOf(Course{ID: 3, Number: "IS515", Name: "Information Modeling"})
	assert.Equal(t, "/course/3/", ref.URL())
	assert.Equal(t, "IS515 - Information Modeling", ref.String())
}
