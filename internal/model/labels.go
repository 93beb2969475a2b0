package model

import (
	"fmt"
	"strconv"
)

// PeriodLabel renders a period as its name.
func PeriodLabel(name string) string {
	return name
}

// YearLabel renders a year as decimal text.
func YearLabel(year int) string {
	return strconv.Itoa(year)
}

// SemesterLabel renders "{year} - {period}" from the rendered year and period.
func SemesterLabel(year, period string) string {
	return year + " - " + period
}

// CourseLabel renders "{number} - {name}".
func CourseLabel(number, name string) string {
	return fmt.Sprintf("%s - %s", number, name)
}

// PersonLabel renders instructors and students as "{last}, {first}".
func PersonLabel(firstName, lastName string) string {
	return fmt.Sprintf("%s, %s", lastName, firstName)
}

// SectionLabel renders "{course number} - {section name} ({semester})".
func SectionLabel(courseNumber, sectionName, semester string) string {
	return fmt.Sprintf("%s - %s (%s)", courseNumber, sectionName, semester)
}

// RegistrationLabel renders "{section} / {student}".
func RegistrationLabel(section, student string) string {
	return fmt.Sprintf("%s / %s", section, student)
}
