// Package stream owns the streaming response pipeline: it accumulates model
// fragments, re-renders the accumulated markdown, and drives the result
// surface through its loading/fragment/terminal lifecycle.
package stream

import (
	"context"

	"datawarden/internal/port"
	"datawarden/internal/render"
)

// Surface is the result surface a streaming response is rendered into.
// Implementations receive the markdown-rendered form of the entire
// accumulated response, not individual deltas. A write error means the
// surface is gone (client disconnected) and the stream stops.
type Surface interface {
	// Loading marks the surface busy before the first fragment arrives.
	Loading() error
	// Fragment replaces the surface content with the rendered accumulator.
	Fragment(html string) error
	// Done delivers the final rendered content.
	Done(html string) error
	// Fail replaces the surface content with an error description.
	Fail(msg string) error
}

// Renderer streams one model response into a surface.
type Renderer struct {
	streamer port.ContentStreamer
}

// NewRenderer creates a Renderer backed by the given content streamer.
func NewRenderer(streamer port.ContentStreamer) *Renderer {
	return &Renderer{streamer: streamer}
}

// Run sends the prompt to the model service and renders the response into
// surface as fragments arrive. Each fragment is appended to a local
// accumulator and the whole accumulator is re-rendered, so partial markdown
// at fragment boundaries may display transiently wrong but the final render
// is always complete.
//
// Exactly one terminal call (Done or Fail) is made on every exit path except
// when the surface itself rejects a write, in which case nobody is left to
// notify. Run blocks until the stream ends; cancelling ctx aborts the
// upstream call.
func (r *Renderer) Run(ctx context.Context, prompt string, surface Surface) {
	if err := surface.Loading(); err != nil {
		return
	}

	fragments, errs := r.streamer.StreamGenerate(ctx, prompt)

	var acc []byte
	for {
		select {
		case frag, ok := <-fragments:
			if !ok {
				// Natural end of stream. The error channel is closed by
				// the producer before the fragment channel, so a buffered
				// failure is still readable here.
				if errs != nil {
					if err, pending := <-errs; pending && err != nil {
						_ = surface.Fail(err.Error())
						return
					}
				}
				r.finish(acc, surface)
				return
			}
			acc = append(acc, frag...)
			html, err := render.ToHTML(string(acc))
			if err != nil {
				_ = surface.Fail(err.Error())
				return
			}
			if err := surface.Fragment(html); err != nil {
				return
			}
		case err, ok := <-errs:
			if ok && err != nil {
				_ = surface.Fail(err.Error())
				return
			}
			// Error channel closed without a failure; keep draining fragments.
			errs = nil
		}
	}
}

func (r *Renderer) finish(acc []byte, surface Surface) {
	html, err := render.ToHTML(string(acc))
	if err != nil {
		_ = surface.Fail(err.Error())
		return
	}
	_ = surface.Done(html)
}
