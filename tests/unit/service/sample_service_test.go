package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datawarden/internal/config"
	"datawarden/internal/domain"
	"datawarden/internal/service"
)

// uploadInput builds a real multipart.File/FileHeader pair the way the
// handler receives them.
func uploadInput(t *testing.T, fileName, contents string) service.SampleUploadInput {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	file, header, err := req.FormFile("file")
	require.NoError(t, err)

	return service.SampleUploadInput{File: file, Header: header}
}

func newSampleService() service.SampleService {
	return service.NewSampleService(&config.UploadConfig{MaxFileSizeMB: 1, PreviewRows: 5})
}

func TestSampleService_Extract_CSV(t *testing.T) {
	svc := newSampleService()

	ext, err := svc.Extract(context.Background(), uploadInput(t, "users.csv", "a,b\n1,2\n"))

	require.NoError(t, err)
	assert.Len(t, ext.Fields, 2)
	assert.True(t, strings.HasPrefix(ext.SampleText, "a,b\n"))
}

func TestSampleService_Extract_TSVByExtension(t *testing.T) {
	svc := newSampleService()

	ext, err := svc.Extract(context.Background(), uploadInput(t, "data.tsv", "a\tb\n1\t2\n"))

	require.NoError(t, err)
	assert.Len(t, ext.Fields, 2)
}

func TestSampleService_Extract_UnsupportedExtension(t *testing.T) {
	svc := newSampleService()

	_, err := svc.Extract(context.Background(), uploadInput(t, "data.json", `{"a":1}`))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestSampleService_Extract_FileTooLarge(t *testing.T) {
	svc := service.NewSampleService(&config.UploadConfig{MaxFileSizeMB: 0, PreviewRows: 5})

	_, err := svc.Extract(context.Background(), uploadInput(t, "big.csv", "a,b\n1,2\n"))

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}
