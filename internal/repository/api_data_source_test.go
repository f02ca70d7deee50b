package repository_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/officerfeedback/officer-feedback/internal/apitest"
	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/repository"
	apperrors "github.com/officerfeedback/officer-feedback/pkg/errors"
	"github.com/officerfeedback/officer-feedback/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHTTPClient mocks the HTTP client
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func janeDoe() models.Officer {
	return models.Officer{ID: 1, FirstName: "Jane", LastName: "Doe", JobTitle: "Sergeant", AverageRating: 4.2}
}

func TestAPIDataSource_ListOfficers(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.SetOfficers(janeDoe(), models.Officer{ID: 2, FirstName: "John", LastName: "Smith", JobTitle: "Detective", AverageRating: 3.5})

	ds := repository.NewAPIDataSource(srv.URL, httpclient.NewStandardClient(5*time.Second))
	officers, err := ds.ListOfficers(context.Background())

	require.NoError(t, err)
	require.Len(t, officers, 2)
	assert.Equal(t, "Jane", officers[0].FirstName)
	assert.Equal(t, "Sergeant", officers[0].JobTitle)
	assert.InDelta(t, 4.2, officers[0].AverageRating, 0.0001)
	assert.Equal(t, 2, officers[1].ID)
	assert.Equal(t, 1, srv.Calls(apitest.RouteListOfficers))
}

func TestAPIDataSource_ListOfficers_EmptyRoster(t *testing.T) {
	srv := apitest.NewServer(t)

	ds := repository.NewAPIDataSource(srv.URL+"/", httpclient.NewStandardClient(5*time.Second))
	officers, err := ds.ListOfficers(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, officers)
	assert.Empty(t, officers)
}

func TestAPIDataSource_ListFeedback(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	srv := apitest.NewServer(t)
	srv.SetOfficers(janeDoe())
	srv.SetFeedback(1, models.FeedbackEntry{ID: 7, Rating: 4, FeedbackText: "Helpful", IsAnonymous: false, CreatedAt: created})

	ds := repository.NewAPIDataSource(srv.URL, httpclient.NewStandardClient(5*time.Second))
	entries, err := ds.ListFeedback(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 4, entries[0].Rating)
	assert.Equal(t, "Helpful", entries[0].FeedbackText)
	assert.True(t, created.Equal(entries[0].CreatedAt))
	assert.Equal(t, 1, srv.Calls(apitest.RouteListFeedback))
}

func TestAPIDataSource_ListFeedback_UnknownOfficer(t *testing.T) {
	srv := apitest.NewServer(t)

	ds := repository.NewAPIDataSource(srv.URL, httpclient.NewStandardClient(5*time.Second))
	entries, err := ds.ListFeedback(context.Background(), 42)

	assert.Nil(t, entries)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))

	var apiErr *apperrors.APIError
	require.True(t, apperrors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "listFeedback", apiErr.Operation)
}

func TestAPIDataSource_CreateFeedback_WireBody(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.SetOfficers(janeDoe())

	ds := repository.NewAPIDataSource(srv.URL, httpclient.NewStandardClient(5*time.Second))
	err := ds.CreateFeedback(context.Background(), &models.CreateFeedbackRequest{
		OfficerID:    1,
		Rating:       5,
		FeedbackText: "",
		IsAnonymous:  true,
	})

	require.NoError(t, err)
	bodies := srv.Bodies()
	require.Len(t, bodies, 1)
	assert.JSONEq(t, `{"officer_id":1,"rating":5,"feedback_text":"","is_anonymous":true}`, string(bodies[0]))
}

func TestAPIDataSource_CreateFeedback_ServerError(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.SetOfficers(janeDoe())
	srv.FailWith(apitest.RouteCreateFeedback, http.StatusInternalServerError)

	ds := repository.NewAPIDataSource(srv.URL, httpclient.NewStandardClient(5*time.Second))
	err := ds.CreateFeedback(context.Background(), &models.CreateFeedbackRequest{OfficerID: 1, Rating: 3})

	require.Error(t, err)
	var apiErr *apperrors.APIError
	require.True(t, apperrors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.False(t, apiErr.IsClientError())
}

func TestAPIDataSource_CreateFeedback_RejectedBody(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.SetOfficers(janeDoe())

	ds := repository.NewAPIDataSource(srv.URL, httpclient.NewStandardClient(5*time.Second))
	err := ds.CreateFeedback(context.Background(), &models.CreateFeedbackRequest{OfficerID: 1, Rating: 9})

	require.Error(t, err)
	var apiErr *apperrors.APIError
	require.True(t, apperrors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.True(t, apiErr.IsClientError())
	assert.Contains(t, apiErr.Body, "Validation failed")
}

func TestAPIDataSource_TransportError(t *testing.T) {
	mockClient := new(MockHTTPClient)
	mockClient.On("Do", mock.Anything).Return(nil, assert.AnError)

	ds := repository.NewAPIDataSource("https://api.example.com", mockClient)
	officers, err := ds.ListOfficers(context.Background())

	assert.Nil(t, officers)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrTransport))
	assert.ErrorIs(t, err, assert.AnError)
	mockClient.AssertExpectations(t)
}

func TestAPIDataSource_MalformedBody(t *testing.T) {
	mockClient := new(MockHTTPClient)
	mockClient.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, `{"not":"an array"`), nil)

	ds := repository.NewAPIDataSource("https://api.example.com", mockClient)
	officers, err := ds.ListOfficers(context.Background())

	assert.Nil(t, officers)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrDecode))
}

func TestAPIDataSource_RequestHeaders(t *testing.T) {
	mockClient := new(MockHTTPClient)
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodGet &&
			req.URL.String() == "https://api.example.com/api/officers/3/feedback" &&
			req.Header.Get("Accept") == "application/json" &&
			req.Header.Get("X-Request-ID") != ""
	})).Return(jsonResponse(http.StatusOK, `[]`), nil).Once()

	ds := repository.NewAPIDataSource("https://api.example.com/", mockClient)
	entries, err := ds.ListFeedback(context.Background(), 3)

	require.NoError(t, err)
	assert.Empty(t, entries)
	mockClient.AssertExpectations(t)
}

func TestAPIDataSource_ListFeedback_MixedTimestamps(t *testing.T) {
	mockClient := new(MockHTTPClient)
	mockClient.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, `[
		{"id":1,"rating":5,"feedback_text":"","is_anonymous":true,"created_at":"2024-03-01T12:00:00.000Z"},
		{"id":2,"rating":4,"feedback_text":"","is_anonymous":true,"created_at":"2024-03-01 12:00:00"},
		{"id":3,"rating":3,"feedback_text":"","is_anonymous":true,"created_at":"2024-03-01T12:00:00"},
		{"id":4,"rating":2,"feedback_text":"","is_anonymous":true,"created_at":"yesterday"},
		{"id":5,"rating":1,"feedback_text":"","is_anonymous":true}
	]`), nil)

	ds := repository.NewAPIDataSource("https://api.example.com", mockClient)
	entries, err := ds.ListFeedback(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, entries, 5)
	want := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, e := range entries[:3] {
		assert.True(t, want.Equal(e.CreatedAt), "entry %d: %v", e.ID, e.CreatedAt)
	}
	assert.True(t, entries[3].CreatedAt.IsZero())
	assert.True(t, entries[4].CreatedAt.IsZero())
	assert.Equal(t, 1, entries[4].Rating)
}
