package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/ccrm-api/internal/dto"
	"github.com/opencampus/ccrm-api/internal/service"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
	"github.com/opencampus/ccrm-api/pkg/response"
)

// InstructorHandler exposes instructor endpoints.
type InstructorHandler struct {
	instructors *service.InstructorService
	metrics     *service.MetricsService
}

// NewInstructorHandler constructs InstructorHandler.
func NewInstructorHandler(instructors *service.InstructorService, metrics *service.MetricsService) *InstructorHandler {
	return &InstructorHandler{instructors: instructors, metrics: metrics}
}

// List returns all instructors, optionally filtered by ?field=&value=.
func (h *InstructorHandler) List(c *gin.Context) {
	instructors := h.instructors.List(c.Request.Context(), c.Query("field"), c.Query("value"))
	response.JSON(c, http.StatusOK, dto.NewInstructorResponses(instructors), nil)
}

// Get returns one instructor by ID.
func (h *InstructorHandler) Get(c *gin.Context) {
	instructor, err := h.instructors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.NewInstructorResponse(instructor), nil)
}

// Create registers an instructor.
func (h *InstructorHandler) Create(c *gin.Context) {
	var req service.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	instructor, err := h.instructors.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncEntitySave("instructor")
	}
	response.Created(c, dto.NewInstructorResponse(instructor))
}

// Delete deactivates an instructor.
func (h *InstructorHandler) Delete(c *gin.Context) {
	h.instructors.Delete(c.Request.Context(), c.Param("id"))
	response.NoContent(c)
}

// AssignCourse adds a course code to the instructor's teaching load.
func (h *InstructorHandler) AssignCourse(c *gin.Context) {
	if err := h.instructors.AssignCourse(c.Request.Context(), c.Param("id"), c.Param("code")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UnassignCourse removes a course code from the instructor's teaching load.
func (h *InstructorHandler) UnassignCourse(c *gin.Context) {
	if err := h.instructors.UnassignCourse(c.Request.Context(), c.Param("id"), c.Param("code")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
