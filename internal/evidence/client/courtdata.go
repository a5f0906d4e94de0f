package client

import (
	"context"
	"fmt"
	"log/slog"

	"crime-evidence/internal/evidence/metrics"
)

// CourtDataClient reads from the MAAT court data API. The only call this
// engine makes is the authoritative capital asset count for a rep order.
type CourtDataClient struct {
	api    apiClient
	logger *slog.Logger
}

func NewCourtData(baseURL string, logger *slog.Logger, m *metrics.Metrics) *CourtDataClient {
	return &CourtDataClient{
		api:    newAPIClient("maat-court-data-api", baseURL, m),
		logger: logger,
	}
}

// CapitalAssetCount returns the outstanding capital evidence item count for
// a rep order.
func (c *CourtDataClient) CapitalAssetCount(ctx context.Context, repID int) (int64, error) {
	c.logger.DebugContext(ctx, "requesting capital asset count", "rep_id", repID)

	var count int64
	path := fmt.Sprintf("/api/internal/v1/assessment/rep-orders/%d/capital-assets/count", repID)
	if err := c.api.doJSON(ctx, "GET", path, nil, &count); err != nil {
		return 0, err
	}

	c.logger.DebugContext(ctx, "capital asset count received", "rep_id", repID, "count", count)
	return count, nil
}
