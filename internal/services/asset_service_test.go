package services

import (
	"context"
	"testing"
	"time"

	"finpredictor/internal/models"
	"finpredictor/internal/store"
	"finpredictor/internal/testutil"
)

func TestAddAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("current_price_starts_at_buy_price", func(t *testing.T) {
		svc := NewAssetService(store.NewMemoryStore[models.Asset]())

		asset, err := svc.AddAsset(ctx, "u1", AssetInput{
			Type:     models.AssetTypeMutualFund,
			Symbol:   "NIFTYBEES",
			Units:    10,
			BuyPrice: 245.5,
			Details:  models.MutualFundDetails{SchemeCode: "120503", ExpenseRatio: 0.005},
		})
		testutil.AssertNoError(t, err)

		if asset.ID == "" {
			t.Fatal("expected an asset ID")
		}
		if asset.CurrentPrice != 245.5 {
			t.Errorf("expected current price 245.5, got %v", asset.CurrentPrice)
		}
		if asset.LastUpdated.IsZero() {
			t.Error("expected last_updated to be set")
		}
	})

	t.Run("missing_details_use_empty_variant", func(t *testing.T) {
		svc := NewAssetService(store.NewMemoryStore[models.Asset]())

		asset, err := svc.AddAsset(ctx, "u1", AssetInput{Type: models.AssetTypeCash, BuyPrice: 1})
		testutil.AssertNoError(t, err)
		if _, ok := asset.Details.(models.CashDetails); !ok {
			t.Errorf("expected CashDetails, got %T", asset.Details)
		}
	})

	t.Run("mismatched_details", func(t *testing.T) {
		svc := NewAssetService(store.NewMemoryStore[models.Asset]())

		_, err := svc.AddAsset(ctx, "u1", AssetInput{Type: models.AssetTypeStock, Details: models.BondDetails{}})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_type", func(t *testing.T) {
		svc := NewAssetService(store.NewMemoryStore[models.Asset]())

		_, err := svc.AddAsset(ctx, "u1", AssetInput{Type: "nft"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetPortfolio(t *testing.T) {
	ctx := context.Background()
	assets := store.NewMemoryStore[models.Asset]()
	svc := NewAssetService(assets)

	empty, err := svc.GetPortfolio(ctx, "nobody")
	testutil.AssertNoError(t, err)
	if empty.UserID != "nobody" || empty.Assets == nil || len(empty.Assets) != 0 {
		t.Errorf("expected empty portfolio, got %+v", empty)
	}

	seeded := testutil.SeedAssets(t, assets, "u1", 10, 20, 30)
	portfolio, err := svc.GetPortfolio(ctx, "u1")
	testutil.AssertNoError(t, err)
	if len(portfolio.Assets) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(portfolio.Assets))
	}
	for i := range seeded {
		if portfolio.Assets[i].ID != seeded[i].ID {
			t.Errorf("asset %d out of order", i)
		}
	}
}

func TestUpdateAssetPrice(t *testing.T) {
	ctx := context.Background()
	assets := store.NewMemoryStore[models.Asset]()
	svc := NewAssetService(assets).(*assetService)
	later := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return later }

	seeded := testutil.SeedAssets(t, assets, "u1", 100)

	asset, err := svc.UpdateAssetPrice(ctx, "u1", seeded[0].ID, 130.25)
	testutil.AssertNoError(t, err)
	if asset.CurrentPrice != 130.25 || asset.BuyPrice != 100 {
		t.Errorf("unexpected prices: %+v", asset)
	}
	if !asset.LastUpdated.Equal(later) {
		t.Errorf("expected last_updated %v, got %v", later, asset.LastUpdated)
	}

	_, err = svc.UpdateAssetPrice(ctx, "u2", seeded[0].ID, 1)
	testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
}

func TestDeleteAsset(t *testing.T) {
	ctx := context.Background()
	assets := store.NewMemoryStore[models.Asset]()
	svc := NewAssetService(assets)
	seeded := testutil.SeedAssets(t, assets, "u1", 5)

	testutil.AssertNoError(t, svc.DeleteAsset(ctx, "u1", seeded[0].ID))
	testutil.AssertAppError(t, svc.DeleteAsset(ctx, "u1", seeded[0].ID), "ASSET_NOT_FOUND")
}
