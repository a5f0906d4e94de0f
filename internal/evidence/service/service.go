// Package service implements the evidence engine: fee determination from
// the rule table, income evidence requirement checks, the date validation
// state machine, and the update orchestration that ties them together. All
// operations are pure over their inputs apart from the narrow collaborator
// reads and the single means assessment write.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"crime-evidence/internal/audit"
	"crime-evidence/internal/evidence/metrics"
	"crime-evidence/internal/evidence/models"
	"crime-evidence/internal/evidence/store/requirements"
)

// CourtDataAPI is the rep order capital lookup this engine reads from.
type CourtDataAPI interface {
	CapitalAssetCount(ctx context.Context, repID int) (int64, error)
}

// MeansAssessmentAPI supplies the persisted evidence summary before an
// update and receives the mutated summary afterwards.
type MeansAssessmentAPI interface {
	Find(ctx context.Context, financialAssessmentID int) (*models.MeansAssessment, error)
	Update(ctx context.Context, assessment models.MeansAssessment) (*models.MeansAssessment, error)
}

// Service composes the evidence operations. It holds no per-request state;
// every invocation works on its own inputs.
type Service struct {
	requirements    requirements.Store
	courtData       CourtDataAPI
	meansAssessment MeansAssessmentAPI
	logger          *slog.Logger
	metrics         *metrics.Metrics
	auditor         *audit.Publisher
}

// Option configures optional service dependencies.
type Option func(*Service)

// WithMetrics attaches domain metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAuditor attaches the audit publisher.
func WithAuditor(a *audit.Publisher) Option {
	return func(s *Service) {
		s.auditor = a
	}
}

func New(
	reqStore requirements.Store,
	courtData CourtDataAPI,
	meansAssessment MeansAssessmentAPI,
	logger *slog.Logger,
	opts ...Option,
) (*Service, error) {
	if reqStore == nil {
		return nil, fmt.Errorf("requirements store is required")
	}
	if courtData == nil {
		return nil, fmt.Errorf("court data client is required")
	}
	if meansAssessment == nil {
		return nil, fmt.Errorf("means assessment client is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	svc := &Service{
		requirements:    reqStore,
		courtData:       courtData,
		meansAssessment: meansAssessment,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *Service) recordValidationFailure(rule string) {
	if s.metrics != nil {
		s.metrics.ValidationFailures.WithLabelValues(rule).Inc()
	}
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor != nil {
		s.auditor.Emit(ctx, event)
	}
}
