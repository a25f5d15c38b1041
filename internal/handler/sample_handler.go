package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"datawarden/internal/service"
)

// SampleHandler handles sample file extraction endpoints.
type SampleHandler struct {
	sampleService service.SampleService
}

// NewSampleHandler creates a new SampleHandler.
func NewSampleHandler(sampleService service.SampleService) *SampleHandler {
	return &SampleHandler{sampleService: sampleService}
}

// Extract handles POST /api/v1/samples/extract
// @Summary Extract a sample preview from an uploaded file
// @Description Parses an uploaded CSV/TSV/XLSX file and returns a placeholder schema plus a bounded row preview
// @Tags samples
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Tabular file (CSV, TSV, or XLSX)"
// @Success 200 {object} Response{data=domain.Extraction} "Extracted schema and sample preview"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "File could not be parsed"
// @Router /samples/extract [post]
func (h *SampleHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	extraction, err := h.sampleService.Extract(c.Request.Context(), service.SampleUploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, extraction)
}
