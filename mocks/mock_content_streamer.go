package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockContentStreamer is a mock implementation of port.ContentStreamer.
type MockContentStreamer struct {
	mock.Mock
}

func (m *MockContentStreamer) StreamGenerate(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	args := m.Called(ctx, prompt)
	return args.Get(0).(<-chan string), args.Get(1).(<-chan error)
}

// ScriptedStream builds a pre-recorded fragment stream for mock returns:
// fragments are buffered in order, failure (if non-nil) is buffered on the
// error channel, and both channels arrive closed.
func ScriptedStream(fragments []string, failure error) (<-chan string, <-chan error) {
	frags := make(chan string, len(fragments))
	for _, f := range fragments {
		frags <- f
	}
	close(frags)

	errs := make(chan error, 1)
	if failure != nil {
		errs <- failure
	}
	close(errs)

	return frags, errs
}
