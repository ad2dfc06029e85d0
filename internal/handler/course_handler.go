package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/ccrm-api/internal/service"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
	"github.com/opencampus/ccrm-api/pkg/response"
)

// CourseHandler exposes course endpoints.
type CourseHandler struct {
	courses *service.CourseService
	metrics *service.MetricsService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses *service.CourseService, metrics *service.MetricsService) *CourseHandler {
	return &CourseHandler{courses: courses, metrics: metrics}
}

// List returns all courses, optionally filtered by ?field=&value=
// (department, instructor or semester).
func (h *CourseHandler) List(c *gin.Context) {
	courses := h.courses.List(c.Request.Context(), c.Query("field"), c.Query("value"))
	response.JSON(c, http.StatusOK, courses, nil)
}

// Get returns one course by code.
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courses.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}

// Create registers a course.
func (h *CourseHandler) Create(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncEntitySave("course")
	}
	response.Created(c, course)
}

// Update patches the mutable fields of a course.
func (h *CourseHandler) Update(c *gin.Context) {
	var req service.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.courses.Update(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}

// Delete deactivates a course. The record stays retrievable.
func (h *CourseHandler) Delete(c *gin.Context) {
	h.courses.Delete(c.Request.Context(), c.Param("code"))
	response.NoContent(c)
}

// ByDepartment counts courses per department.
func (h *CourseHandler) ByDepartment(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.courses.ByDepartment(c.Request.Context()), nil)
}
