package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/ccrm-api/internal/service"
	"github.com/opencampus/ccrm-api/pkg/response"
)

// ReportHandler exposes read-only reports.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// TopStudents ranks students by GPA; ?limit= defaults to 10.
func (h *ReportHandler) TopStudents(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	response.JSON(c, http.StatusOK, h.reports.TopStudents(c.Request.Context(), limit), nil)
}

// CoursesByDepartment reports course counts per department.
func (h *ReportHandler) CoursesByDepartment(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.reports.CoursesByDepartment(c.Request.Context()), nil)
}

// GPADistribution buckets all students into GPA bands.
func (h *ReportHandler) GPADistribution(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.reports.GPADistribution(c.Request.Context()), nil)
}

// Transcript returns the official transcript for a student.
func (h *ReportHandler) Transcript(c *gin.Context) {
	transcript, err := h.reports.Transcript(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, transcript, nil)
}
