package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saraswaticlasses/institute-api/internal/service"
	"github.com/saraswaticlasses/institute-api/pkg/response"
)

// ExportHandler serves downloadable enrollment reports.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// EnrollmentReport godoc
// @Summary Download the enrollment register
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "Report format: csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /admin/exports/enrollments [get]
func (h *ExportHandler) EnrollmentReport(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	report, err := h.service.EnrollmentReport(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", report.Name))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, report.ContentType, report.Content)
}
