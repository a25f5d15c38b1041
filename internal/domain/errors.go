package domain

import "errors"

var (
	ErrEmptySchema         = errors.New("schema text is required")
	ErrEmptyQuery          = errors.New("query text is required")
	ErrEmptySample         = errors.New("sample text is required")
	ErrMissingAPIKey       = errors.New("model service API key is not configured")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyFile           = errors.New("file contains no rows")
	ErrSampleParse         = errors.New("failed to parse sample file")
)
