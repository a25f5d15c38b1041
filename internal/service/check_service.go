package service

import (
	"strings"

	"datawarden/internal/domain"
	"datawarden/internal/prompt"
)

// CheckService defines input validation and prompt construction for the two
// model-backed checks. Validation happens here so that empty input never
// reaches the streaming pipeline.
type CheckService interface {
	CompliancePrompt(schema, query string) (string, error)
	ClassificationPrompt(schema, sample string) (string, error)
}

type checkService struct{}

// NewCheckService creates a new CheckService implementation.
func NewCheckService() CheckService {
	return &checkService{}
}

func (s *checkService) CompliancePrompt(schema, query string) (string, error) {
	if strings.TrimSpace(schema) == "" {
		return "", domain.ErrEmptySchema
	}
	if strings.TrimSpace(query) == "" {
		return "", domain.ErrEmptyQuery
	}
	return prompt.BuildCompliancePrompt(schema, query), nil
}

func (s *checkService) ClassificationPrompt(schema, sample string) (string, error) {
	if strings.TrimSpace(schema) == "" {
		return "", domain.ErrEmptySchema
	}
	if strings.TrimSpace(sample) == "" {
		return "", domain.ErrEmptySample
	}
	return prompt.BuildClassificationPrompt(schema, sample), nil
}
