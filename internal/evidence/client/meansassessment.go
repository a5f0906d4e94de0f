package client

import (
	"context"
	"fmt"
	"log/slog"

	"crime-evidence/internal/evidence/metrics"
	"crime-evidence/internal/evidence/models"
)

// MeansAssessmentClient reads and writes the income evidence summary held
// by the means assessment service.
type MeansAssessmentClient struct {
	api    apiClient
	logger *slog.Logger
}

func NewMeansAssessment(baseURL string, logger *slog.Logger, m *metrics.Metrics) *MeansAssessmentClient {
	return &MeansAssessmentClient{
		api:    newAPIClient("means-assessment-api", baseURL, m),
		logger: logger,
	}
}

// Find loads the current assessment state, including the evidence summary
// this service mutates.
func (c *MeansAssessmentClient) Find(ctx context.Context, financialAssessmentID int) (*models.MeansAssessment, error) {
	c.logger.DebugContext(ctx, "finding means assessment", "financial_assessment_id", financialAssessmentID)

	var assessment models.MeansAssessment
	path := fmt.Sprintf("/api/internal/v1/assessment/means/%d", financialAssessmentID)
	if err := c.api.doJSON(ctx, "GET", path, nil, &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

// Update pushes the mutated evidence summary and the merged evidence item
// lists back, returning the stored state (items with IDs assigned).
func (c *MeansAssessmentClient) Update(ctx context.Context, assessment models.MeansAssessment) (*models.MeansAssessment, error) {
	c.logger.DebugContext(ctx, "updating means assessment", "financial_assessment_id", assessment.FinancialAssessmentID)

	var updated models.MeansAssessment
	if err := c.api.doJSON(ctx, "PUT", "/api/internal/v1/assessment/means", assessment, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
