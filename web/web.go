// Package web holds the embedded single-page UI.
package web

import _ "embed"

// IndexHTML is the single-page UI served at the root path.
//
//go:embed index.html
var IndexHTML []byte
