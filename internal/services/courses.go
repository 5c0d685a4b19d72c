package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type EnrollmentResult struct {
	EnrollmentID string    `json:"enrollmentId"`
	CourseID     string    `json:"courseId"`
	UserID       string    `json:"userId"`
	EnrolledAt   time.Time `json:"enrolledAt"`
}

// EnrollUser writes the enrollment row and bumps the course counter in one
// transaction.
func EnrollUser(db *sqlx.DB, courseID, userID string) (EnrollmentResult, error) {
	var exists bool
	if err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, courseID); err != nil {
		return EnrollmentResult{}, err
	}
	if !exists {
		return EnrollmentResult{}, ErrBadRequest("Course not found")
	}
	var enrolled bool
	if err := db.Get(&enrolled, `SELECT EXISTS(SELECT 1 FROM course_enrollments WHERE course_id = $1 AND user_id = $2)`, courseID, userID); err != nil {
		return EnrollmentResult{}, err
	}
	if enrolled {
		return EnrollmentResult{}, ErrBadRequest("User is already enrolled in this course")
	}

	result := EnrollmentResult{
		EnrollmentID: uuid.NewString(),
		CourseID:     courseID,
		UserID:       userID,
		EnrolledAt:   time.Now().UTC(),
	}
	tx, err := db.Beginx()
	if err != nil {
		return EnrollmentResult{}, err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.Exec(`
INSERT INTO course_enrollments (id, course_id, user_id, enrolled_at)
VALUES ($1,$2,$3,$4)
`, result.EnrollmentID, courseID, userID, result.EnrolledAt); err != nil {
		return EnrollmentResult{}, err
	}
	if _, err := tx.Exec(`UPDATE courses SET enrolled_count = enrolled_count + 1, updated_at = $2 WHERE id = $1`,
		courseID, result.EnrolledAt); err != nil {
		return EnrollmentResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return EnrollmentResult{}, err
	}
	return result, nil
}

// courseColumns maps patchable request fields to their columns. Anything
// outside this set is rejected.
var courseColumns = map[string]string{
	"title":           "title",
	"summary":         "summary",
	"description":     "description",
	"level":           "level",
	"status":          "status",
	"durationMinutes": "duration_minutes",
	"points":          "points",
	"categoryId":      "category_id",
}

type CoursePatch struct {
	Title           *string `json:"title"`
	Summary         *string `json:"summary"`
	Description     *string `json:"description"`
	Level           *string `json:"level"`
	Status          *string `json:"status"`
	DurationMinutes *int    `json:"durationMinutes"`
	Points          *int    `json:"points"`
	CategoryID      *string `json:"categoryId"`
}

// ValidatePatchKeys rejects any key outside the allow-list before the patch
// payload is decoded into CoursePatch.
func ValidatePatchKeys(raw map[string]interface{}) error {
	if len(raw) == 0 {
		return ErrBadRequest("No fields to update")
	}
	for key := range raw {
		if _, ok := courseColumns[key]; !ok {
			return ErrBadRequest("Unknown field: " + key)
		}
	}
	return nil
}

func PatchCourse(db *sqlx.DB, courseID string, patch CoursePatch) (CourseDetail, error) {
	now := time.Now().UTC()
	_, err := db.Exec(`
UPDATE courses SET
  title = COALESCE($2, title),
  summary = COALESCE($3, summary),
  description = COALESCE($4, description),
  level = COALESCE($5, level),
  status = COALESCE($6, status),
  duration_minutes = COALESCE($7, duration_minutes),
  points = COALESCE($8, points),
  category_id = COALESCE($9, category_id),
  updated_at = $10
WHERE id = $1
`, courseID, patch.Title, patch.Summary, patch.Description, patch.Level, patch.Status,
		patch.DurationMinutes, patch.Points, patch.CategoryID, now)
	if err != nil {
		return CourseDetail{}, err
	}
	return FetchCourse(db, courseID)
}

func DeleteCourse(db *sqlx.DB, courseID string) error {
	result, err := db.Exec(`DELETE FROM courses WHERE id = $1`, courseID)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrBadRequest("Course not found")
	}
	return nil
}

type CourseDetail struct {
	ID              string    `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Slug            string    `db:"slug" json:"slug"`
	Summary         string    `db:"summary" json:"summary"`
	Description     string    `db:"description" json:"description"`
	Level           string    `db:"level" json:"level"`
	Status          string    `db:"status" json:"status"`
	DurationMinutes int       `db:"duration_minutes" json:"durationMinutes"`
	Points          int       `db:"points" json:"points"`
	CategoryID      *string   `db:"category_id" json:"categoryId"`
	EnrolledCount   int       `db:"enrolled_count" json:"enrolledCount"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

func FetchCourse(db *sqlx.DB, courseID string) (CourseDetail, error) {
	detail := CourseDetail{}
	err := db.Get(&detail, `
SELECT id, title, slug, summary, description, level, status, duration_minutes,
       points, category_id, enrolled_count, created_at, updated_at
FROM courses
WHERE id = $1
`, courseID)
	if err != nil {
		return CourseDetail{}, ErrBadRequest("Course not found")
	}
	return detail, nil
}

func FetchCourseBySlug(db *sqlx.DB, slug string) (CourseDetail, error) {
	detail := CourseDetail{}
	err := db.Get(&detail, `
SELECT id, title, slug, summary, description, level, status, duration_minutes,
       points, category_id, enrolled_count, created_at, updated_at
FROM courses
WHERE slug = $1 AND status = 'PUBLISHED'
`, slug)
	if err != nil {
		return CourseDetail{}, ErrNotFound("Course not found")
	}
	return detail, nil
}
