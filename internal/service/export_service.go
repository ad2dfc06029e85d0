package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/opencampus/ccrm-api/internal/dto"
	"github.com/opencampus/ccrm-api/internal/models"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
	"github.com/opencampus/ccrm-api/pkg/export"
	"github.com/opencampus/ccrm-api/pkg/storage"
)

// Snapshot file names written into the data directory.
const (
	studentsExportFile = "students.csv"
	coursesExportFile  = "courses.csv"
)

const backupTimestampLayout = "20060102_150405"

type exportStudentStore interface {
	FindAll() []*models.Student
}

type exportCourseStore interface {
	FindAll() []*models.Course
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	BaseDir() string
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string, intro []string) ([]byte, error)
}

type transcriptSource interface {
	Transcript(ctx context.Context, studentID string) (*dto.Transcript, error)
}

// ExportService serializes store snapshots to CSV, renders transcripts to
// PDF and creates timestamped backups of the data directory.
type ExportService struct {
	students    exportStudentStore
	courses     exportCourseStore
	storage     fileStorage
	transcripts transcriptSource
	csv         csvRenderer
	pdf         pdfRenderer
	backupDir   string
	logger      *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(students exportStudentStore, courses exportCourseStore, store fileStorage, transcripts transcriptSource, backupDir string, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if backupDir == "" {
		backupDir = "./backups"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		students:    students,
		courses:     courses,
		storage:     store,
		transcripts: transcripts,
		csv:         csv,
		pdf:         pdf,
		backupDir:   backupDir,
		logger:      logger,
	}
}

// StudentsDataset builds the student snapshot table. GPA is rendered with
// two decimal digits.
func StudentsDataset(students []*models.Student) export.Dataset {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			s.ID,
			s.RegNo,
			s.Name.FullName(),
			s.Email,
			fmt.Sprintf("%.2f", s.GPA()),
		})
	}
	return export.Dataset{
		Headers: []string{"ID", "RegNo", "Name", "Email", "GPA"},
		Rows:    rows,
	}
}

// CoursesDataset builds the course snapshot table.
func CoursesDataset(courses []*models.Course) export.Dataset {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			c.Code,
			c.Title,
			fmt.Sprintf("%d", c.Credits),
			c.Department,
			string(c.Semester),
			c.InstructorID,
		})
	}
	return export.Dataset{
		Headers: []string{"Code", "Title", "Credits", "Department", "Semester", "InstructorId"},
		Rows:    rows,
	}
}

// ExportCSV writes the student and course snapshots into the data directory.
func (s *ExportService) ExportCSV(ctx context.Context) (*dto.ExportResult, error) {
	students := s.students.FindAll()
	courses := s.courses.FindAll()

	studentBytes, err := s.csv.Render(StudentsDataset(students))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render students csv")
	}
	courseBytes, err := s.csv.Render(CoursesDataset(courses))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render courses csv")
	}

	studentsFile, err := s.storage.Save(studentsExportFile, studentBytes)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to write students csv")
	}
	coursesFile, err := s.storage.Save(coursesExportFile, courseBytes)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to write courses csv")
	}

	s.logger.Info("snapshot exported",
		zap.Int("students", len(students)),
		zap.Int("courses", len(courses)),
	)
	return &dto.ExportResult{
		StudentsFile: studentsFile,
		CoursesFile:  coursesFile,
		StudentRows:  len(students),
		CourseRows:   len(courses),
	}, nil
}

// TranscriptPDF renders a student's transcript as a PDF document.
func (s *ExportService) TranscriptPDF(ctx context.Context, studentID string) ([]byte, error) {
	transcript, err := s.transcripts.Transcript(ctx, studentID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(transcript.Lines))
	for _, line := range transcript.Lines {
		rows = append(rows, []string{
			line.CourseCode,
			line.Title,
			fmt.Sprintf("%d", line.Credits),
			line.Grade,
			fmt.Sprintf("%.1f", line.GradePoints),
		})
	}
	dataset := export.Dataset{
		Headers: []string{"Course", "Title", "Credits", "Grade", "Points"},
		Rows:    rows,
	}
	intro := []string{
		fmt.Sprintf("Student: %s (%s)", transcript.FullName, transcript.RegNo),
		fmt.Sprintf("Email: %s", transcript.Email),
		fmt.Sprintf("Overall GPA: %.2f", transcript.GPA),
	}
	payload, err := s.pdf.Render(dataset, "Official Transcript", intro)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render transcript pdf")
	}
	return payload, nil
}

// CreateBackup copies the data directory into a timestamped directory under
// the backup root and reports its size and a depth-limited listing.
func (s *ExportService) CreateBackup(ctx context.Context) (*dto.BackupResult, error) {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create backup directory")
	}

	timestamp := time.Now().Format(backupTimestampLayout)
	target := filepath.Join(s.backupDir, "backup_"+timestamp)

	dataDir := s.storage.BaseDir()
	if _, err := os.Stat(dataDir); err == nil {
		if err := storage.CopyDir(dataDir, target); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to copy data directory")
		}
	} else if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create backup target")
	}

	size, err := storage.DirSize(target)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to measure backup size")
	}
	listing, err := storage.ListByDepth(target, 2)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list backup directory")
	}

	result := &dto.BackupResult{
		ID:        uuid.NewString(),
		Path:      target,
		SizeBytes: size,
		Listing:   listing,
	}
	s.logger.Info("backup created",
		zap.String("backup_id", result.ID),
		zap.String("path", target),
		zap.Int64("size_bytes", size),
	)
	return result, nil
}
