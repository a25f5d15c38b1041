package gemini

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"datawarden/internal/config"
)

const (
	apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
)

// Streamer implements port.ContentStreamer using Google's Gemini API in
// server-sent-events mode.
type Streamer struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewStreamer creates a Gemini-based content streamer.
func NewStreamer(cfg *config.GeminiConfig) *Streamer {
	return newStreamer(cfg, "")
}

// NewStreamerWithEndpoint creates a streamer pointing at a custom API endpoint (for testing).
func NewStreamerWithEndpoint(cfg *config.GeminiConfig, endpoint string) *Streamer {
	return newStreamer(cfg, endpoint)
}

func newStreamer(cfg *config.GeminiConfig, endpoint string) *Streamer {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:streamGenerateContent?alt=sse", apiBaseURL, model)
	}
	return &Streamer{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Model returns the model identifier requests are sent to.
func (s *Streamer) Model() string {
	return s.model
}

// StreamGenerate opens a streaming generation request for the prompt.
// Fragments are delivered in arrival order; the fragment channel is closed
// on completion and at most one error is sent before the channels close.
// There is no retry: any failure terminates the stream.
func (s *Streamer) StreamGenerate(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	fragments := make(chan string, 16)
	errs := make(chan error, 1)

	go func() {
		defer close(fragments)
		defer close(errs)

		reqBody := request{
			Contents: []content{
				{
					Role:  "user",
					Parts: []part{{Text: prompt}},
				},
			},
		}

		bodyBytes, err := json.Marshal(reqBody)
		if err != nil {
			errs <- fmt.Errorf("marshaling request: %w", err)
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(bodyBytes))
		if err != nil {
			errs <- fmt.Errorf("creating request: %w", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "text/event-stream")
		req.Header.Set("x-goog-api-key", s.apiKey)

		resp, err := s.client.Do(req)
		if err != nil {
			errs <- fmt.Errorf("calling gemini API: %w", err)
			return
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			errs <- fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
			return
		}

		if err := s.scanStream(ctx, resp.Body, fragments); err != nil {
			errs <- err
		}
	}()

	return fragments, errs
}

// scanStream reads SSE data lines from the response body and forwards text
// fragments until the stream ends or ctx is cancelled.
func (s *Streamer) scanStream(ctx context.Context, body io.Reader, fragments chan<- string) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" || data == "[DONE]" {
			continue
		}

		var chunk response
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			// Malformed keep-alive or partial frame; skip it.
			continue
		}
		if chunk.Error != nil {
			return fmt.Errorf("gemini API error: %s", chunk.Error.Message)
		}
		if len(chunk.Candidates) == 0 {
			continue
		}
		for _, p := range chunk.Candidates[0].Content.Parts {
			if p.Text == "" {
				continue
			}
			select {
			case fragments <- p.Text:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("reading stream: %w", err)
	}
	return nil
}

// Wire types for the streamGenerateContent request and response chunks.

type request struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type response struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error,omitempty"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
