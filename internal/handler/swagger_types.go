package handler

import "datawarden/internal/domain"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ComplianceCheckRequest represents the compliance check request body.
// Emptiness is validated by the service so that the caller gets the
// specific validation message rather than a generic binding error.
type ComplianceCheckRequest struct {
	Schema string `json:"schema" example:"{\"fields\":[{\"name\":\"email\",\"type\":\"string\",\"pii\":true}]}"`
	Query  string `json:"query" example:"SELECT email FROM users"`
}

// ClassificationRequest represents the sensitivity classification request body.
type ClassificationRequest struct {
	Schema string `json:"schema" example:"{\"name\":\"users.csv\",\"fields\":[{\"name\":\"email\",\"type\":\"unknown\"}]}"`
	Sample string `json:"sample" example:"email\nalice@example.com"`
}

// --- Response Types ---

// Response is the generic success envelope for swagger docs.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody is the error envelope for swagger docs.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Error   APIError `json:"error"`
}

// ExtractionResponse documents the sample extraction payload.
type ExtractionResponse struct {
	Success bool              `json:"success" example:"true"`
	Data    domain.Extraction `json:"data"`
}
