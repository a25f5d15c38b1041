package handler

import (
	"github.com/gin-gonic/gin"

	"datawarden/internal/stream"
)

// SSE event names used by the streaming endpoints. Every stream ends with
// exactly one terminal event (done or error).
const (
	SSEEventLoading  = "loading"
	SSEEventFragment = "fragment"
	SSEEventDone     = "done"
	SSEEventError    = "error"
)

// sseSurface adapts one SSE response stream to the stream.Surface contract.
// Each HTTP request owns its own surface, so two in-flight checks can never
// interleave into the same one.
type sseSurface struct {
	c *gin.Context
}

var _ stream.Surface = (*sseSurface)(nil)

func (s *sseSurface) Loading() error             { return s.send(SSEEventLoading, "Analyzing...") }
func (s *sseSurface) Fragment(html string) error { return s.send(SSEEventFragment, html) }
func (s *sseSurface) Done(html string) error     { return s.send(SSEEventDone, html) }
func (s *sseSurface) Fail(msg string) error      { return s.send(SSEEventError, msg) }

func (s *sseSurface) send(event, data string) error {
	// A cancelled request context means the client is gone; stop writing.
	if err := s.c.Request.Context().Err(); err != nil {
		return err
	}
	s.c.SSEvent(event, data)
	s.c.Writer.Flush()
	return nil
}
