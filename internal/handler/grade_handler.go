package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/ccrm-api/internal/service"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
	"github.com/opencampus/ccrm-api/pkg/response"
)

// GradeHandler exposes grading endpoints.
type GradeHandler struct {
	students *service.StudentService
}

// NewGradeHandler constructs GradeHandler.
func NewGradeHandler(students *service.StudentService) *GradeHandler {
	return &GradeHandler{students: students}
}

// Assign converts marks to a letter grade and records it for an enrolled
// course. Grading an unenrolled course is accepted but leaves no record.
func (h *GradeHandler) Assign(c *gin.Context) {
	var req service.AssignGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	grade, err := h.students.AssignGrade(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"student_id":   req.StudentID,
		"course_code":  req.CourseCode,
		"grade":        grade,
		"grade_points": grade.Points(),
	}, nil)
}

// ListForStudent returns a student's grade map with overall GPA.
func (h *GradeHandler) ListForStudent(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"student_id": student.ID,
		"grades":     student.CourseGrades,
		"gpa":        student.GPA(),
	}, nil)
}
