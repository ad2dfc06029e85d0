package models

import "time"

// Enrollment is a read view of a student's registration in a course. Live
// state is carried on the student (enrolled set + grade map); this shape is
// assembled on demand for listings and exports.
type Enrollment struct {
	StudentID  string    `json:"student_id"`
	CourseCode string    `json:"course_code"`
	EnrolledAt time.Time `json:"enrolled_at"`
	Grade      *Grade    `json:"grade,omitempty"`
	Active     bool      `json:"active"`
}

// Pagination carries list metadata for API responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
