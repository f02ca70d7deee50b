package views_test

import (
	"context"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockOfficerService is a mock implementation of OfficerServiceInterface
type MockOfficerService struct {
	mock.Mock
}

func (m *MockOfficerService) ListOfficers(ctx context.Context) ([]*models.Officer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Officer), args.Error(1)
}

func (m *MockOfficerService) ListFeedback(ctx context.Context, officerID int) ([]*models.FeedbackEntry, error) {
	args := m.Called(ctx, officerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FeedbackEntry), args.Error(1)
}

// MockFeedbackService is a mock implementation of FeedbackServiceInterface
type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Submit(ctx context.Context, officerID int, draft models.FeedbackDraft) error {
	args := m.Called(ctx, officerID, draft)
	return args.Error(0)
}

func jane() *models.Officer {
	return &models.Officer{ID: 1, FirstName: "Jane", LastName: "Doe", JobTitle: "Sergeant", AverageRating: 4.2}
}

func john() *models.Officer {
	return &models.Officer{ID: 2, FirstName: "John", LastName: "Smith", JobTitle: "Detective", AverageRating: 3.0}
}
