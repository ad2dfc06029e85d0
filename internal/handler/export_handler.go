package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/ccrm-api/internal/service"
	"github.com/opencampus/ccrm-api/pkg/response"
)

// ExportHandler exposes snapshot export and backup endpoints.
type ExportHandler struct {
	exports *service.ExportService
	metrics *service.MetricsService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService, metrics *service.MetricsService) *ExportHandler {
	return &ExportHandler{exports: exports, metrics: metrics}
}

// ExportCSV writes student and course snapshots into the data directory.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	result, err := h.exports.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncExport("csv")
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// TranscriptPDF streams a student's transcript as a PDF document.
func (h *ExportHandler) TranscriptPDF(c *gin.Context) {
	studentID := c.Param("id")
	payload, err := h.exports.TranscriptPDF(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncExport("pdf")
	}
	filename := fmt.Sprintf("transcript_%s.pdf", studentID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", payload)
}

// Backup copies the data directory into a timestamped backup directory.
func (h *ExportHandler) Backup(c *gin.Context) {
	result, err := h.exports.CreateBackup(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncBackup()
	}
	response.Created(c, result)
}
