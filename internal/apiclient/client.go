// Package apiclient talks to the remote import service. In the hand-off mode
// the raw roster file is forwarded as-is and the service performs its own
// validation, returning counts and errors this client maps into the same
// report shape the local pipeline produces.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/camm-health/stayload/internal/model"
)

const defaultTimeout = 30 * time.Second

// Client reaches the remote import endpoints under a base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client. A non-positive timeout falls back to 30s; the timeout
// covers the whole upload round trip.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// PushResult is the remote service's response to a raw-file upload.
type PushResult struct {
	Status    string   `json:"status"`
	Message   string   `json:"message,omitempty"`
	Processed int      `json:"processed_count"`
	Errors    []string `json:"errors"`
}

// Report maps the remote response into the shared import report shape.
func (r *PushResult) Report() model.ImportReport {
	return model.ImportReport{Imported: r.Processed, Errors: r.Errors}
}

// PushFile uploads the file at path as multipart form data to the patient
// import endpoint. The file is sent unparsed; server-side validation applies.
func (c *Client) PushFile(ctx context.Context, path string) (*PushResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("copy roster file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	url := c.baseURL + "/excel/upload-patients"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload roster file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("import service returned %s: %s", resp.Status, errorDetail(resp.Body))
	}

	var result PushResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode import response: %w", err)
	}
	return &result, nil
}

// errorDetail extracts the service's error message, which arrives either as
// a {"detail": "..."} object or as plain text.
func errorDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return "no error detail"
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(data))
}
