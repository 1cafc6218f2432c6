package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"finpredictor/internal/ai"
	"finpredictor/internal/logger"
	"finpredictor/internal/models"
)

const insightNote = "Demo insights; connect Llama/Cerebras later."

// insightService merges the recommendations of several AI providers.
type insightService struct {
	providers []ai.Provider
	log       *zap.SugaredLogger
}

// NewInsightService creates a new InsightServicer. Recommendations are
// returned in provider order.
func NewInsightService(providers ...ai.Provider) InsightServicer {
	return &insightService{providers: providers, log: logger.Named("ai")}
}

// Predict asks every provider concurrently. A failing provider is logged and
// left out of the response.
func (s *insightService) Predict(ctx context.Context, req models.PredictionRequest) (*models.InsightResponse, error) {
	results := make([][]models.Insight, len(s.providers))

	var g errgroup.Group
	for i, p := range s.providers {
		g.Go(func() error {
			insights, err := p.Insights(ctx, req)
			if err != nil {
				s.log.Warnw("ai provider failed",
					"provider", p.Name(),
					"user_id", req.UserID,
					"error", err,
				)
				return nil
			}
			results[i] = insights
			return nil
		})
	}
	_ = g.Wait()

	resp := &models.InsightResponse{Recommendations: []models.Insight{}, Note: insightNote}
	for _, insights := range results {
		resp.Recommendations = append(resp.Recommendations, insights...)
	}
	return resp, nil
}
