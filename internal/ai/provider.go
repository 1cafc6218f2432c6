// Package ai defines the insight providers behind the AI service. The
// providers are offline stand-ins for hosted language models: they are
// configured like real API clients but derive their insights locally.
package ai

import (
	"context"
	"errors"

	"finpredictor/internal/models"
)

// ErrMissingAPIKey is returned by providers configured without an API key.
var ErrMissingAPIKey = errors.New("ai: missing API key")

// Provider produces investment insights for a user.
type Provider interface {
	// Name returns the provider's display name (e.g., "Llama", "Cerebras").
	Name() string

	// Insights returns the provider's recommendations for the request. The
	// portfolio and goals on the request are optional.
	Insights(ctx context.Context, req models.PredictionRequest) ([]models.Insight, error)
}
