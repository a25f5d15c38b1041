// Package render is the markdown rendering boundary: one pure, synchronous
// operation turning markdown text into HTML markup.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// ToHTML renders markdown text to HTML. Rendering is deterministic: the same
// input always yields identical markup, so re-rendering a growing accumulator
// on every fragment is safe.
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
