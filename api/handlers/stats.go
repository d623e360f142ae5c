// ABOUTME: Stats handler for the Huma API
// ABOUTME: Provides the HTTP endpoint for aggregate catalog statistics

package handlers

import (
	"context"
	"net/http"

	"catalog-app-api/api/dto/mappers"
	"catalog-app-api/api/dto/responses"
	"catalog-app-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// StatsService interface defines the methods needed from the stats service
type StatsService interface {
	GetStats(ctx context.Context) (domain.Stats, error)
}

// StatsHandler handles stats-related HTTP requests
type StatsHandler struct {
	statsService StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// RegisterRoutes registers all stats-related routes
func (h *StatsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getStats",
		Method:      http.MethodGet,
		Path:        "/stats",
		Summary:     "Get catalog statistics",
		Description: "Returns aggregate statistics over the full catalog",
		Tags:        []string{"Stats"},
	}, h.GetStats)
}

// GetStatsInput defines the input for the GetStats operation
type GetStatsInput struct{}

// GetStatsOutput defines the output for the GetStats operation
type GetStatsOutput struct {
	Body responses.StatsResponse
}

// GetStats handles the GET /stats endpoint
func (h *StatsHandler) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	stats, err := h.statsService.GetStats(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetStatsOutput{
		Body: mappers.ToStatsResponse(stats),
	}, nil
}
