// Package extraction talks to the external text extraction service.
package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"studyhall/internal/domain/study"
	sharedconfig "studyhall/internal/shared/config"
)

type extractResponse struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

// Client extracts plain text from uploaded files (PDF parsing, OCR, audio
// transcription) via the extraction service's multipart endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *sharedconfig.ExtractionConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

func (c *Client) Extract(ctx context.Context, kind study.DocumentKind, content []byte) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("kind", string(kind)); err != nil {
		return "", fmt.Errorf("failed to build extraction request: %w", err)
	}
	part, err := w.CreateFormFile("file", "upload")
	if err != nil {
		return "", fmt.Errorf("failed to build extraction request: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return "", fmt.Errorf("failed to build extraction request: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to build extraction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("extraction request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read extraction response: %w", err)
	}

	var parsed extractResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode extraction response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != "" {
			return "", fmt.Errorf("extraction failed (status %d): %s", resp.StatusCode, parsed.Error)
		}
		return "", fmt.Errorf("extraction failed with status %d", resp.StatusCode)
	}

	return parsed.Text, nil
}
