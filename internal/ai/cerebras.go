package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"finpredictor/internal/models"
)

// concentrationLimit is the share of portfolio value above which a single
// asset type is flagged.
var concentrationLimit = decimal.NewFromFloat(0.6)

// CerebrasClient analyses risk alignment and allocation.
type CerebrasClient struct {
	baseURL string
	apiKey  string
}

// NewCerebrasClient creates a new Cerebras analyser.
func NewCerebrasClient(baseURL, apiKey string) *CerebrasClient {
	return &CerebrasClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Endpoint returns the configured API base URL.
func (c *CerebrasClient) Endpoint() string { return c.baseURL }

// Name returns the provider's display name.
func (c *CerebrasClient) Name() string { return "Cerebras" }

// Insights returns the allocation advice and, when the portfolio is given
// and one asset type holds most of its value, a concentration warning.
func (c *CerebrasClient) Insights(ctx context.Context, req models.PredictionRequest) ([]models.Insight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	insights := []models.Insight{
		{Title: "Risk Alignment", Detail: "Current allocation is moderate; consider 60/30/10 equity/debt/cash."},
		{Title: "Optimization", Detail: "Rebalance from underperforming small-cap to large-cap index."},
	}
	if req.Portfolio == nil {
		return insights, nil
	}

	assetType, share, ok := largestAllocation(req.Portfolio.Assets)
	if ok && share.GreaterThan(concentrationLimit) {
		insights = append(insights, models.Insight{
			Title:  "Concentration",
			Detail: fmt.Sprintf("%s%% of portfolio value is in %s; consider diversifying.", share.Mul(decimal.NewFromInt(100)).Round(0).String(), assetType),
		})
	}
	return insights, nil
}

// largestAllocation returns the asset type holding the largest share of
// market value. ok is false for an empty or valueless portfolio.
func largestAllocation(assets []models.Asset) (models.AssetType, decimal.Decimal, bool) {
	byType := make(map[models.AssetType]decimal.Decimal)
	var order []models.AssetType
	total := decimal.Zero
	for _, a := range assets {
		v := decimal.NewFromFloat(a.Units).Mul(decimal.NewFromFloat(a.CurrentPrice))
		if _, seen := byType[a.Type]; !seen {
			order = append(order, a.Type)
		}
		byType[a.Type] = byType[a.Type].Add(v)
		total = total.Add(v)
	}
	if !total.IsPositive() {
		return "", decimal.Zero, false
	}

	var best models.AssetType
	bestValue := decimal.Zero
	for _, t := range order {
		if byType[t].GreaterThan(bestValue) {
			best, bestValue = t, byType[t]
		}
	}
	return best, bestValue.Div(total), true
}
