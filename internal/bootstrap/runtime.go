// Package bootstrap wires configuration, observability and the API client stack
// shared by the command-line and desktop front ends.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/officerfeedback/officer-feedback/config"
	"github.com/officerfeedback/officer-feedback/internal/repository"
	"github.com/officerfeedback/officer-feedback/internal/services"
	"github.com/officerfeedback/officer-feedback/internal/views"
	"github.com/officerfeedback/officer-feedback/pkg/httpclient"
	"github.com/officerfeedback/officer-feedback/pkg/logger"
	"github.com/officerfeedback/officer-feedback/pkg/tracing"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Runtime holds the initialized services for one process
type Runtime struct {
	Config   *config.Config
	Officers *services.OfficerService
	Feedback *services.FeedbackService

	closers []func(context.Context) error
}

// New initializes logging, tracing, the optional metrics endpoint and the API client
func New(cfg *config.Config) (*Runtime, error) {
	err := logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Development: cfg.IsDevelopment(),
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	rt := &Runtime{Config: cfg}

	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceVersion,
		cfg.App.Env,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracer: %w", err)
	}
	rt.closers = append(rt.closers, tracerShutdown)

	if cfg.Observability.MetricsAddr != "" {
		srv, err := StartMetricsServer(cfg.Observability.MetricsAddr)
		if err != nil {
			_ = rt.Close(context.Background()) //nolint:errcheck // reporting the startup error instead
			return nil, err
		}
		rt.closers = append(rt.closers, srv.Shutdown)
	}

	client := httpclient.NewRateLimitedClient(
		httpclient.NewStandardClient(cfg.Timeout()),
		rate.Limit(cfg.API.RateLimitRPS),
		cfg.API.RateLimitBurst,
	)
	repo := repository.NewOfficerRepository(repository.NewAPIDataSource(cfg.API.BaseURL, client))
	rt.Officers = services.NewOfficerService(repo)
	rt.Feedback = services.NewFeedbackService(repo)

	logger.Info("Officer feedback client initialized",
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", cfg.Timeout()),
	)

	return rt, nil
}

// NewNavigator creates the screen navigation reporting to notifier
func (r *Runtime) NewNavigator(notifier views.Notifier) *views.Navigator {
	return views.NewNavigator(r.Officers, r.Feedback, notifier)
}

// Close flushes traces, stops the metrics endpoint and syncs the logger
func (r *Runtime) Close(ctx context.Context) error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	logger.Sync()
	return errors.Join(errs...)
}
