package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/repository"
	apperrors "github.com/officerfeedback/officer-feedback/pkg/errors"
	"github.com/officerfeedback/officer-feedback/pkg/logger"
	"github.com/officerfeedback/officer-feedback/pkg/metrics"
	"go.uber.org/zap"
)

var (
	// ErrRatingRequired is returned before any request is made when no star is picked
	ErrRatingRequired = fmt.Errorf("rating is required: %w", apperrors.ErrInvalidInput)
)

// FeedbackService validates drafts and submits them
type FeedbackService struct {
	repo     repository.OfficerRepositoryInterface
	validate *validator.Validate
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(repo repository.OfficerRepositoryInterface) *FeedbackService {
	return &FeedbackService{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Submit sends draft as feedback for officerID.
// An unset rating or an invalid body never reaches the network.
func (s *FeedbackService) Submit(ctx context.Context, officerID int, draft models.FeedbackDraft) error {
	if !draft.HasRating() {
		metrics.FeedbackSubmissions.WithLabelValues("missing_rating").Inc()
		return ErrRatingRequired
	}

	req := draft.ToRequest(officerID)
	if err := s.validate.Struct(req); err != nil {
		metrics.FeedbackSubmissions.WithLabelValues("invalid").Inc()
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return apperrors.InvalidInputError(fe.Field(), validationMessage(fe))
		}
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
	}

	if err := s.repo.CreateFeedback(ctx, req); err != nil {
		metrics.FeedbackSubmissions.WithLabelValues("error").Inc()
		logger.Warn("Feedback submission failed",
			zap.Int("officer_id", officerID),
			zap.Error(err))
		return fmt.Errorf("failed to submit feedback: %w", err)
	}

	metrics.FeedbackSubmissions.WithLabelValues("success").Inc()
	logger.Info("Feedback submitted",
		zap.Int("officer_id", officerID),
		zap.Int("rating", req.Rating),
		zap.Bool("anonymous", req.IsAnonymous))
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must not exceed " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}
