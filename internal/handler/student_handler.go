package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/ccrm-api/internal/dto"
	"github.com/opencampus/ccrm-api/internal/models"
	"github.com/opencampus/ccrm-api/internal/service"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
	"github.com/opencampus/ccrm-api/pkg/response"
)

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students *service.StudentService
	metrics  *service.MetricsService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService, metrics *service.MetricsService) *StudentHandler {
	return &StudentHandler{students: students, metrics: metrics}
}

// List returns all students, optionally filtered by ?field=&value= or a
// free-text ?search= over name and email.
func (h *StudentHandler) List(c *gin.Context) {
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		needle := strings.ToLower(search)
		students := h.students.Search(c.Request.Context(), func(s *models.Student) bool {
			return strings.Contains(strings.ToLower(s.Name.FullName()), needle) ||
				strings.Contains(strings.ToLower(s.Email), needle)
		})
		response.JSON(c, http.StatusOK, dto.NewStudentResponses(students), nil)
		return
	}
	students := h.students.List(c.Request.Context(), c.Query("field"), c.Query("value"))
	response.JSON(c, http.StatusOK, dto.NewStudentResponses(students), nil)
}

// Get returns one student by ID.
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.NewStudentResponse(student), nil)
}

// Profile returns the rendered profile text for a student.
func (h *StudentHandler) Profile(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"role": student.Role(), "profile": student.Profile()}, nil)
}

// Create registers a student.
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncEntitySave("student")
	}
	response.Created(c, dto.NewStudentResponse(student))
}

// Update rewrites a student's email.
func (h *StudentHandler) Update(c *gin.Context) {
	var req service.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.NewStudentResponse(student), nil)
}

// Delete deactivates a student. The record stays retrievable.
func (h *StudentHandler) Delete(c *gin.Context) {
	h.students.Delete(c.Request.Context(), c.Param("id"))
	response.NoContent(c)
}
