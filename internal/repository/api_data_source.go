package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/officerfeedback/officer-feedback/internal/models"
	apperrors "github.com/officerfeedback/officer-feedback/pkg/errors"
	"github.com/officerfeedback/officer-feedback/pkg/httpclient"
)

const (
	officersPath = "/api/officers"
	feedbackPath = "/api/feedback"

	// maxErrorBody bounds how much of a failed response is kept for logs
	maxErrorBody = 1024
)

// APIDataSource talks to the officer API over HTTP
type APIDataSource struct {
	baseURL    string
	httpClient httpclient.Client
}

// NewAPIDataSource creates a data source rooted at baseURL (scheme://host[:port])
func NewAPIDataSource(baseURL string, httpClient httpclient.Client) *APIDataSource {
	return &APIDataSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListOfficers handles GET /api/officers
func (s *APIDataSource) ListOfficers(ctx context.Context) ([]*models.Officer, error) {
	var officers []*models.Officer
	if err := s.getJSON(ctx, "listOfficers", officersPath, &officers); err != nil {
		return nil, err
	}
	if officers == nil {
		officers = []*models.Officer{}
	}
	return officers, nil
}

// ListFeedback handles GET /api/officers/{id}/feedback
func (s *APIDataSource) ListFeedback(ctx context.Context, officerID int) ([]*models.FeedbackEntry, error) {
	var entries []*models.FeedbackEntry
	path := fmt.Sprintf("%s/%d/feedback", officersPath, officerID)
	if err := s.getJSON(ctx, "listFeedback", path, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.FeedbackEntry{}
	}
	return entries, nil
}

// CreateFeedback handles POST /api/feedback. Any 2xx is success; the body is ignored.
func (s *APIDataSource) CreateFeedback(ctx context.Context, req *models.CreateFeedbackRequest) error {
	const operation = "createFeedback"

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%s: failed to encode request: %w", operation, err)
	}

	httpReq, err := s.newRequest(ctx, http.MethodPost, feedbackPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return apperrors.TransportError(operation, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(operation, resp); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse
	return nil
}

func (s *APIDataSource) getJSON(ctx context.Context, operation, path string, out any) error {
	req, err := s.newRequest(ctx, http.MethodGet, path, http.NoBody)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperrors.TransportError(operation, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(operation, resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.DecodeError(operation, err)
	}
	return nil
}

func (s *APIDataSource) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func checkStatus(operation string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck
	return &apperrors.APIError{
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(snippet)),
	}
}
