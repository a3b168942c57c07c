package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/dhrupad777/paperbrain/internal/config"
)

// Client talks to the external analyzer. Implementations must return the
// documented result shape or an error; degradation is the service's job.
type Client interface {
	Analyze(ctx context.Context, filename string, file io.Reader) (Result, error)
}

// HTTPClient forwards the uploaded file to the analyzer's /analyze
// endpoint as multipart form data.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(cfg config.Config) *HTTPClient {
	return &HTTPClient{
		baseURL: cfg.AnalyzerBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) Analyze(ctx context.Context, filename string, file io.Reader) (Result, error) {
	if c.baseURL == "" {
		return Result{}, fmt.Errorf("analyzer not configured")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return Result{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return Result{}, err
	}
	if err := writer.Close(); err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", &body)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Result{}, fmt.Errorf("analyzer returned %d: %s", resp.StatusCode, payload)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decode analyzer response: %w", err)
	}
	return result, nil
}
