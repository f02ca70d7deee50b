package repository

import (
	"context"

	"github.com/officerfeedback/officer-feedback/internal/models"
)

// OfficerDataSource is the raw transport to the officer API
type OfficerDataSource interface {
	// ListOfficers fetches the whole roster
	ListOfficers(ctx context.Context) ([]*models.Officer, error)

	// ListFeedback fetches the feedback history of one officer
	ListFeedback(ctx context.Context, officerID int) ([]*models.FeedbackEntry, error)

	// CreateFeedback posts a new feedback entry
	CreateFeedback(ctx context.Context, req *models.CreateFeedbackRequest) error
}

// OfficerRepositoryInterface is what the services layer depends on
type OfficerRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*models.Officer, error)
	GetFeedback(ctx context.Context, officerID int) ([]*models.FeedbackEntry, error)
	CreateFeedback(ctx context.Context, req *models.CreateFeedbackRequest) error
}

var _ OfficerDataSource = (*APIDataSource)(nil)
var _ OfficerRepositoryInterface = (*OfficerRepository)(nil)
