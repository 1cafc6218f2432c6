package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finpredictor/internal/models"
	"finpredictor/internal/store"
	"finpredictor/internal/uuid"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestAsset returns a stock asset priced at currentPrice.
func NewTestAsset(currentPrice float64) models.Asset {
	n := nextID()
	return models.Asset{
		ID:           uuid.New(),
		Type:         models.AssetTypeStock,
		Symbol:       fmt.Sprintf("SYM%d", n),
		Name:         fmt.Sprintf("Test Asset %d", n),
		Units:        1,
		BuyPrice:     currentPrice,
		CurrentPrice: currentPrice,
		LastUpdated:  time.Now().UTC(),
		Details:      models.StockDetails{Exchange: "NSE"},
	}
}

// SeedAssets stores one asset per price for the user and returns them in order.
func SeedAssets(t *testing.T, s store.Store[models.Asset], userID string, prices ...float64) []models.Asset {
	t.Helper()

	assets := make([]models.Asset, 0, len(prices))
	for _, p := range prices {
		a := NewTestAsset(p)
		if err := s.Put(context.Background(), userID, a.ID, a); err != nil {
			t.Fatalf("failed to seed test asset: %v", err)
		}
		assets = append(assets, a)
	}
	return assets
}

// NewTestGoal returns a goal for the user with the given target ten years out.
func NewTestGoal(userID string, targetAmount float64) models.Goal {
	target := time.Now().UTC().AddDate(10, 0, 0)
	return models.Goal{
		Base:               models.NewBase(),
		UserID:             userID,
		Title:              fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:       targetAmount,
		TargetDate:         models.NewDate(target.Year(), target.Month(), target.Day()),
		ExpectedReturnRate: 0.12,
		InflationRate:      0.05,
		RiskProfile:        models.RiskModerate,
		LinkedAssets:       []string{},
	}
}

// NewTestUserID returns a fresh user id.
func NewTestUserID() string {
	return uuid.New()
}
