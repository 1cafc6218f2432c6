package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"finpredictor/internal/client"
)

// PortfolioFetcher loads a user's holdings from the portfolio service.
type PortfolioFetcher interface {
	GetAssets(ctx context.Context, userID string) ([]client.AssetPrice, error)
}

// ValuationError reports that linked assets could not be valued.
type ValuationError struct {
	UserID string
	Err    error
}

// Error implements the error interface.
func (e *ValuationError) Error() string {
	return fmt.Sprintf("valuing linked assets for user %s: %v", e.UserID, e.Err)
}

// Unwrap returns the underlying fetch error.
func (e *ValuationError) Unwrap() error { return e.Err }

// portfolioValuer values linked assets from the user's current portfolio.
type portfolioValuer struct {
	fetcher PortfolioFetcher
}

// NewAssetValuer creates an AssetValuer backed by the portfolio service.
func NewAssetValuer(fetcher PortfolioFetcher) AssetValuer {
	return &portfolioValuer{fetcher: fetcher}
}

// LinkedValue implements AssetValuer. The portfolio is fetched once; IDs not
// held contribute nothing and repeated IDs are counted each time. The lookup
// is not cancelled when the caller goes away, only by the client timeout.
func (v *portfolioValuer) LinkedValue(ctx context.Context, userID string, assetIDs []string) (float64, error) {
	if len(assetIDs) == 0 {
		return 0, nil
	}

	assets, err := v.fetcher.GetAssets(context.WithoutCancel(ctx), userID)
	if err != nil {
		return 0, &ValuationError{UserID: userID, Err: err}
	}

	prices := make(map[string]decimal.Decimal, len(assets))
	for _, a := range assets {
		prices[a.ID] = decimal.NewFromFloat(a.CurrentPrice)
	}

	total := decimal.Zero
	for _, id := range assetIDs {
		if p, ok := prices[id]; ok {
			total = total.Add(p)
		}
	}
	return total.InexactFloat64(), nil
}
