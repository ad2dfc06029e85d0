package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/ccrm-api/internal/service"
	appErrors "github.com/opencampus/ccrm-api/pkg/errors"
	"github.com/opencampus/ccrm-api/pkg/response"
)

// EnrollmentHandler exposes the enrollment flow.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// Enroll registers a student in a course, enforcing the credit limit.
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req service.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	enrollment, err := h.enrollments.Enroll(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrollment)
}

// Unenroll removes a student from a course. Absent enrollments are a no-op.
func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	h.enrollments.Unenroll(c.Request.Context(), c.Param("id"), c.Param("code"))
	response.NoContent(c)
}

// ListForStudent returns a student's enrollments.
func (h *EnrollmentHandler) ListForStudent(c *gin.Context) {
	enrollments, err := h.enrollments.ListForStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollments, nil)
}
