package services

import (
	"context"

	"github.com/officerfeedback/officer-feedback/internal/models"
)

// OfficerServiceInterface defines the read operations the views depend on
type OfficerServiceInterface interface {
	ListOfficers(ctx context.Context) ([]*models.Officer, error)
	ListFeedback(ctx context.Context, officerID int) ([]*models.FeedbackEntry, error)
}

// FeedbackServiceInterface defines the submission operation of the detail screen
type FeedbackServiceInterface interface {
	Submit(ctx context.Context, officerID int, draft models.FeedbackDraft) error
}

// Ensure services implement their interfaces
var _ OfficerServiceInterface = (*OfficerService)(nil)
var _ FeedbackServiceInterface = (*FeedbackService)(nil)
