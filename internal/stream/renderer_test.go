package stream_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"datawarden/internal/render"
	"datawarden/internal/stream"
	"datawarden/mocks"
)

// recordingSurface captures the lifecycle calls made by the renderer.
type recordingSurface struct {
	calls      []string
	fragments  []string
	doneHTML   string
	failMsg    string
	loadingErr error
}

func (s *recordingSurface) Loading() error {
	s.calls = append(s.calls, "loading")
	return s.loadingErr
}

func (s *recordingSurface) Fragment(html string) error {
	s.calls = append(s.calls, "fragment")
	s.fragments = append(s.fragments, html)
	return nil
}

func (s *recordingSurface) Done(html string) error {
	s.calls = append(s.calls, "done")
	s.doneHTML = html
	return nil
}

func (s *recordingSurface) Fail(msg string) error {
	s.calls = append(s.calls, "fail")
	s.failMsg = msg
	return nil
}

func (s *recordingSurface) terminalCount() int {
	n := 0
	for _, c := range s.calls {
		if c == "done" || c == "fail" {
			n++
		}
	}
	return n
}

func TestRenderer_Run_AccumulatesFragmentsInOrder(t *testing.T) {
	streamer := new(mocks.MockContentStreamer)
	frags, errs := mocks.ScriptedStream([]string{"Hel", "lo"}, nil)
	streamer.On("StreamGenerate", mock.Anything, "the prompt").Return(frags, errs)

	surface := &recordingSurface{}
	stream.NewRenderer(streamer).Run(context.Background(), "the prompt", surface)

	wantHello, err := render.ToHTML("Hello")
	require.NoError(t, err)
	wantHel, err := render.ToHTML("Hel")
	require.NoError(t, err)

	assert.Equal(t, []string{wantHel, wantHello}, surface.fragments)
	assert.Equal(t, wantHello, surface.doneHTML)
	assert.Equal(t, "loading", surface.calls[0])
	assert.Equal(t, 1, surface.terminalCount())
	streamer.AssertExpectations(t)
}

func TestRenderer_Run_FailureBeforeFirstFragment(t *testing.T) {
	streamer := new(mocks.MockContentStreamer)
	frags, errs := mocks.ScriptedStream(nil, errors.New("gemini API error (status 500): boom"))
	streamer.On("StreamGenerate", mock.Anything, mock.Anything).Return(frags, errs)

	surface := &recordingSurface{}
	stream.NewRenderer(streamer).Run(context.Background(), "p", surface)

	assert.Contains(t, surface.failMsg, "boom")
	assert.Empty(t, surface.doneHTML)
	assert.Equal(t, 1, surface.terminalCount())
}

func TestRenderer_Run_FailureMidStream(t *testing.T) {
	streamer := new(mocks.MockContentStreamer)
	frags, errs := mocks.ScriptedStream([]string{"partial"}, errors.New("stream cut"))
	streamer.On("StreamGenerate", mock.Anything, mock.Anything).Return(frags, errs)

	surface := &recordingSurface{}
	stream.NewRenderer(streamer).Run(context.Background(), "p", surface)

	assert.Contains(t, surface.failMsg, "stream cut")
	assert.Equal(t, 1, surface.terminalCount())
}

func TestRenderer_Run_EmptyCompletion(t *testing.T) {
	streamer := new(mocks.MockContentStreamer)
	frags, errs := mocks.ScriptedStream(nil, nil)
	streamer.On("StreamGenerate", mock.Anything, mock.Anything).Return(frags, errs)

	surface := &recordingSurface{}
	stream.NewRenderer(streamer).Run(context.Background(), "p", surface)

	assert.Equal(t, []string{"loading", "done"}, surface.calls)
}

func TestRenderer_Run_SurfaceGoneBeforeStart(t *testing.T) {
	streamer := new(mocks.MockContentStreamer)

	surface := &recordingSurface{loadingErr: errors.New("client disconnected")}
	stream.NewRenderer(streamer).Run(context.Background(), "p", surface)

	// Nothing was streamed and no terminal event was attempted.
	streamer.AssertNotCalled(t, "StreamGenerate", mock.Anything, mock.Anything)
	assert.Equal(t, []string{"loading"}, surface.calls)
}
