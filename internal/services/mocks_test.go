package services_test

import (
	"context"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockOfficerRepository is a mock implementation of OfficerRepositoryInterface
type MockOfficerRepository struct {
	mock.Mock
}

func (m *MockOfficerRepository) GetAll(ctx context.Context) ([]*models.Officer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Officer), args.Error(1)
}

func (m *MockOfficerRepository) GetFeedback(ctx context.Context, officerID int) ([]*models.FeedbackEntry, error) {
	args := m.Called(ctx, officerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FeedbackEntry), args.Error(1)
}

func (m *MockOfficerRepository) CreateFeedback(ctx context.Context, req *models.CreateFeedbackRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
