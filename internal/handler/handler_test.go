package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/opencampus/ccrm-api/internal/repository"
	"github.com/opencampus/ccrm-api/internal/service"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
	"github.com/opencampus/ccrm-api/pkg/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors the response contract for decoding in assertions.
type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *appErrors.Error `json:"error"`
}

// newTestRouter wires the full route table against fresh in-memory stores,
// matching the gateway's registration.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	students := repository.NewStudentRepository()
	courses := repository.NewCourseRepository()
	instructors := repository.NewInstructorRepository()

	store, err := storage.NewLocalStorage(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	studentSvc := service.NewStudentService(students, nil, nil)
	courseSvc := service.NewCourseService(courses, nil, nil)
	instructorSvc := service.NewInstructorService(instructors, nil, nil)
	enrollmentSvc := service.NewEnrollmentService(students, courses, 20, nil, nil)
	reportSvc := service.NewReportService(students, courses, studentSvc, nil)
	exportSvc := service.NewExportService(students, courses, store, reportSvc, filepath.Join(t.TempDir(), "backups"), nil, nil, nil)

	studentHandler := NewStudentHandler(studentSvc, nil)
	courseHandler := NewCourseHandler(courseSvc, nil)
	instructorHandler := NewInstructorHandler(instructorSvc, nil)
	enrollmentHandler := NewEnrollmentHandler(enrollmentSvc)
	gradeHandler := NewGradeHandler(studentSvc)
	reportHandler := NewReportHandler(reportSvc)
	exportHandler := NewExportHandler(exportSvc, nil)

	r := gin.New()
	api := r.Group("/api/v1")
	{
		studentRoutes := api.Group("/students")
		{
			studentRoutes.GET("", studentHandler.List)
			studentRoutes.POST("", studentHandler.Create)
			studentRoutes.GET("/:id", studentHandler.Get)
			studentRoutes.PUT("/:id", studentHandler.Update)
			studentRoutes.DELETE("/:id", studentHandler.Delete)
			studentRoutes.GET("/:id/profile", studentHandler.Profile)
			studentRoutes.GET("/:id/enrollments", enrollmentHandler.ListForStudent)
			studentRoutes.DELETE("/:id/enrollments/:code", enrollmentHandler.Unenroll)
			studentRoutes.GET("/:id/grades", gradeHandler.ListForStudent)
		}
		courseRoutes := api.Group("/courses")
		{
			courseRoutes.GET("", courseHandler.List)
			courseRoutes.POST("", courseHandler.Create)
			courseRoutes.GET("/by-department", courseHandler.ByDepartment)
			courseRoutes.GET("/:code", courseHandler.Get)
			courseRoutes.PUT("/:code", courseHandler.Update)
			courseRoutes.DELETE("/:code", courseHandler.Delete)
		}
		instructorRoutes := api.Group("/instructors")
		{
			instructorRoutes.GET("", instructorHandler.List)
			instructorRoutes.POST("", instructorHandler.Create)
			instructorRoutes.GET("/:id", instructorHandler.Get)
			instructorRoutes.DELETE("/:id", instructorHandler.Delete)
			instructorRoutes.POST("/:id/courses/:code", instructorHandler.AssignCourse)
			instructorRoutes.DELETE("/:id/courses/:code", instructorHandler.UnassignCourse)
		}
		api.POST("/enrollments", enrollmentHandler.Enroll)
		api.POST("/grades", gradeHandler.Assign)
		reportRoutes := api.Group("/reports")
		{
			reportRoutes.GET("/top-students", reportHandler.TopStudents)
			reportRoutes.GET("/courses-by-department", reportHandler.CoursesByDepartment)
			reportRoutes.GET("/gpa-distribution", reportHandler.GPADistribution)
			reportRoutes.GET("/transcript/:id", reportHandler.Transcript)
		}
		exportRoutes := api.Group("/exports")
		{
			exportRoutes.POST("/csv", exportHandler.ExportCSV)
			exportRoutes.GET("/transcript/:id", exportHandler.TranscriptPDF)
		}
		api.POST("/backups", exportHandler.Backup)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func createTestStudent(t *testing.T, r *gin.Engine, id string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/students", gin.H{
		"id": id, "reg_no": "REG" + id, "first_name": "Test", "last_name": id, "email": id + "@campus.edu",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func createTestCourse(t *testing.T, r *gin.Engine, code string, credits int) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/courses", gin.H{
		"code": code, "title": "Course " + code, "credits": credits, "department": "Computer Science", "semester": "FALL",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}
