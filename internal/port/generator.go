package port

import "context"

// ContentStreamer abstracts streaming text generation against an LLM service.
//
// StreamGenerate opens one generation request for the given prompt and
// returns two channels owned by the implementation. Text fragments arrive on
// the first channel in strict order; the channel is closed on natural
// completion. At most one error is delivered on the second channel, after
// which no further fragments follow. Both channels are closed when the call
// finishes, and cancelling ctx aborts the in-flight request.
type ContentStreamer interface {
	StreamGenerate(ctx context.Context, prompt string) (<-chan string, <-chan error)
}
