package services

import (
	"context"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/repository"
)

type OfficerService struct {
	repo repository.OfficerRepositoryInterface
}

func NewOfficerService(repo repository.OfficerRepositoryInterface) *OfficerService {
	return &OfficerService{repo: repo}
}

func (s *OfficerService) ListOfficers(ctx context.Context) ([]*models.Officer, error) {
	return s.repo.GetAll(ctx)
}

func (s *OfficerService) ListFeedback(ctx context.Context, officerID int) ([]*models.FeedbackEntry, error) {
	return s.repo.GetFeedback(ctx, officerID)
}
