package dto

// TopStudentRow ranks a student by GPA for reporting.
type TopStudentRow struct {
	Rank     int     `json:"rank"`
	ID       string  `json:"id"`
	RegNo    string  `json:"reg_no"`
	FullName string  `json:"full_name"`
	GPA      float64 `json:"gpa"`
}

// GPADistribution buckets students by GPA band.
type GPADistribution struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Average   int `json:"average"`
	Poor      int `json:"poor"`
}

// TranscriptLine is one graded course on a transcript.
type TranscriptLine struct {
	CourseCode  string  `json:"course_code"`
	Title       string  `json:"title"`
	Credits     int     `json:"credits"`
	Grade       string  `json:"grade"`
	GradePoints float64 `json:"grade_points"`
}

// Transcript is the official record of a student's graded courses.
type Transcript struct {
	StudentID string           `json:"student_id"`
	RegNo     string           `json:"reg_no"`
	FullName  string           `json:"full_name"`
	Email     string           `json:"email"`
	Lines     []TranscriptLine `json:"lines"`
	GPA       float64          `json:"gpa"`
}

// DepartmentCount is one row of the courses-by-department report.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// BackupResult describes a completed backup run.
type BackupResult struct {
	ID        string   `json:"id"`
	Path      string   `json:"path"`
	SizeBytes int64    `json:"size_bytes"`
	Listing   []string `json:"listing"`
}

// ExportResult names the snapshot files written by a CSV export.
type ExportResult struct {
	StudentsFile string `json:"students_file"`
	CoursesFile  string `json:"courses_file"`
	StudentRows  int    `json:"student_rows"`
	CourseRows   int    `json:"course_rows"`
}
