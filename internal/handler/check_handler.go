package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"datawarden/internal/service"
	"datawarden/internal/stream"
)

// CheckHandler handles the two model-backed check endpoints.
type CheckHandler struct {
	checkService service.CheckService
	renderer     *stream.Renderer
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(checkService service.CheckService, renderer *stream.Renderer) *CheckHandler {
	return &CheckHandler{checkService: checkService, renderer: renderer}
}

// Compliance handles POST /api/v1/compliance/stream
// @Summary Check SQL query compliance
// @Description Streams the model's compliance verdict for a SQL query against a schema-derived policy as server-sent events
// @Tags checks
// @Accept json
// @Produce text/event-stream
// @Param request body ComplianceCheckRequest true "Schema and query text"
// @Success 200 {string} string "SSE stream of loading/fragment/done/error events carrying rendered HTML"
// @Failure 400 {object} ErrorResponseBody "Empty schema or query"
// @Router /compliance/stream [post]
func (h *CheckHandler) Compliance(c *gin.Context) {
	var req ComplianceCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON with schema and query")
		return
	}

	promptText, err := h.checkService.CompliancePrompt(req.Schema, req.Query)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.streamResponse(c, promptText)
}

// Classification handles POST /api/v1/classifier/stream
// @Summary Classify field sensitivity
// @Description Streams the model's per-field sensitivity classification for a data sample as server-sent events
// @Tags checks
// @Accept json
// @Produce text/event-stream
// @Param request body ClassificationRequest true "Schema and sample text"
// @Success 200 {string} string "SSE stream of loading/fragment/done/error events carrying rendered HTML"
// @Failure 400 {object} ErrorResponseBody "Empty schema or sample"
// @Router /classifier/stream [post]
func (h *CheckHandler) Classification(c *gin.Context) {
	var req ClassificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON with schema and sample")
		return
	}

	promptText, err := h.checkService.ClassificationPrompt(req.Schema, req.Sample)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.streamResponse(c, promptText)
}

// streamResponse switches the response to SSE and drives the renderer until
// the stream ends. Run blocks, so the handler returns only after the
// terminal event is written or the client disconnects.
func (h *CheckHandler) streamResponse(c *gin.Context, promptText string) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.Flush()

	h.renderer.Run(c.Request.Context(), promptText, &sseSurface{c: c})
}
