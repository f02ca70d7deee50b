package repository

import (
	"context"
	"time"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/pkg/circuitbreaker"
	"github.com/officerfeedback/officer-feedback/pkg/logger"
	"github.com/officerfeedback/officer-feedback/pkg/metrics"
	"github.com/officerfeedback/officer-feedback/pkg/tracing"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const serviceName = "officer-api"

// OfficerRepository wraps a data source with a circuit breaker and instrumentation.
// It never retries; a failed call is reported to the caller as-is.
type OfficerRepository struct {
	dataSource     OfficerDataSource
	circuitBreaker *gobreaker.CircuitBreaker
}

// NewOfficerRepository creates a repository using the default breaker settings
func NewOfficerRepository(dataSource OfficerDataSource) *OfficerRepository {
	return NewOfficerRepositoryWithBreaker(dataSource, circuitbreaker.DefaultConfig(serviceName))
}

// NewOfficerRepositoryWithBreaker creates a repository with explicit breaker settings
func NewOfficerRepositoryWithBreaker(dataSource OfficerDataSource, cbConfig circuitbreaker.Config) *OfficerRepository {
	return &OfficerRepository{
		dataSource:     dataSource,
		circuitBreaker: circuitbreaker.NewCircuitBreaker(cbConfig),
	}
}

// GetAll returns the officer roster
func (r *OfficerRepository) GetAll(ctx context.Context) ([]*models.Officer, error) {
	ctx, span := tracing.StartSpan(ctx, "OfficerRepository.GetAll")
	defer span.End()

	officers, err := observe("listOfficers", func() ([]*models.Officer, error) {
		return circuitbreaker.Execute(r.circuitBreaker, func() ([]*models.Officer, error) {
			return r.dataSource.ListOfficers(ctx)
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list officers failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("officers.count", len(officers)))
	return officers, nil
}

// GetFeedback returns the feedback history for one officer
func (r *OfficerRepository) GetFeedback(ctx context.Context, officerID int) ([]*models.FeedbackEntry, error) {
	ctx, span := tracing.StartSpan(ctx, "OfficerRepository.GetFeedback",
		attribute.Int("officer.id", officerID))
	defer span.End()

	entries, err := observe("listFeedback", func() ([]*models.FeedbackEntry, error) {
		return circuitbreaker.Execute(r.circuitBreaker, func() ([]*models.FeedbackEntry, error) {
			return r.dataSource.ListFeedback(ctx, officerID)
		})
	}, zap.Int("officer_id", officerID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list feedback failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("feedback.count", len(entries)))
	return entries, nil
}

// CreateFeedback submits a feedback entry
func (r *OfficerRepository) CreateFeedback(ctx context.Context, req *models.CreateFeedbackRequest) error {
	ctx, span := tracing.StartSpan(ctx, "OfficerRepository.CreateFeedback",
		attribute.Int("officer.id", req.OfficerID),
		attribute.Int("feedback.rating", req.Rating),
		attribute.Bool("feedback.anonymous", req.IsAnonymous))
	defer span.End()

	_, err := observe("createFeedback", func() (struct{}, error) {
		return circuitbreaker.Execute(r.circuitBreaker, func() (struct{}, error) {
			return struct{}{}, r.dataSource.CreateFeedback(ctx, req)
		})
	}, zap.Int("officer_id", req.OfficerID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create feedback failed")
		return err
	}
	return nil
}

// observe records duration, outcome and a log line for one API operation
func observe[T any](operation string, fn func() (T, error), fields ...zap.Field) (T, error) {
	start := time.Now()
	result, err := fn()
	duration := metrics.MeasureDuration(start)

	status := "success"
	if err != nil {
		status = "error"
		fields = append(fields, zap.Error(err))
	}

	metrics.APIRequestDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.APIRequestTotal.WithLabelValues(operation, status).Inc()
	logger.LogAPICall(serviceName, operation, status, duration, fields...)

	return result, err
}
