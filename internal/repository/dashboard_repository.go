package repository

import (
	"context"
	"database/sql"

	"github.com/ischool/courseinfo-backend/internal/model"
)

// DashboardRepository handles admin index data access.
type DashboardRepository struct {
	db *sql.DB
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// GetSummaryCounts returns the row count of every entity table in one round trip.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context) (map[model.Kind]int, error) {
	var period, year, semester, course, instructor, student, section, registration int
	err := r.db.QueryRowContext(ctx,
		`SELECT
			(SELECT COUNT(*) FROM periods),
			(SELECT COUNT(*) FROM years),
			(SELECT COUNT(*) FROM semesters),
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM instructors),
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM sections),
			(SELECT COUNT(*) FROM registrations)`,
	).Scan(&period, &year, &semester, &course, &instructor, &student, &section, &registration)
	if err != nil {
		return nil, err
	}

	return map[model.Kind]int{
		model.KindPeriod:       period,
		model.KindYear:         year,
		model.KindSemester:     semester,
		model.KindCourse:       course,
		model.KindInstructor:   instructor,
		model.KindStudent:      student,
		model.KindSection:      section,
		model.KindRegistration: registration,
	}, nil
}

// RecentRegistrations returns the newest registrations, newest first.
func (r *DashboardRepository) RecentRegistrations(ctx context.Context, limit int) ([]model.Registration, error) {
	return queryAll(ctx, r.db, scanRegistration,
		registrationSelect+` ORDER BY r.created_at DESC, r.id DESC LIMIT $1`, limit)
}
