package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"datawarden/internal/config"
	"datawarden/internal/domain"
	"datawarden/internal/sample"
)

// SampleUploadInput is the DTO for sample upload requests.
type SampleUploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// SampleService defines the sample extraction contract.
type SampleService interface {
	Extract(ctx context.Context, input SampleUploadInput) (*domain.Extraction, error)
}

type sampleService struct {
	cfg *config.UploadConfig
}

// NewSampleService creates a new SampleService implementation.
func NewSampleService(cfg *config.UploadConfig) SampleService {
	return &sampleService{cfg: cfg}
}

func (s *sampleService) Extract(ctx context.Context, input SampleUploadInput) (*domain.Extraction, error) {
	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	format, ok := domain.AllowedSampleExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(input.File, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	return sample.Extract(input.Header.Filename, format, data, s.cfg.PreviewRows)
}
