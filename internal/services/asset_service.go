package services

import (
	"context"
	"errors"
	"time"

	apperrors "finpredictor/internal/errors"
	"finpredictor/internal/models"
	"finpredictor/internal/store"
	"finpredictor/internal/uuid"
)

// AssetInput holds the fields of a new holding. A nil Details is replaced
// by the empty variant for the type.
type AssetInput struct {
	Type     models.AssetType
	Symbol   string
	Name     string
	Units    float64
	BuyPrice float64
	GoalID   string
	Details  models.AssetDetails
}

// assetService handles portfolio holdings.
type assetService struct {
	assets store.Store[models.Asset]
	now    func() time.Time
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(assets store.Store[models.Asset]) AssetServicer {
	return &assetService{assets: assets, now: time.Now}
}

// GetPortfolio returns the user's holdings in the order they were added. A
// user without holdings has an empty portfolio.
func (s *assetService) GetPortfolio(ctx context.Context, userID string) (*models.Portfolio, error) {
	assets, err := s.assets.List(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &models.Portfolio{UserID: userID, Assets: assets}, nil
}

// AddAsset records a new holding priced at its buy price.
func (s *assetService) AddAsset(ctx context.Context, userID string, in AssetInput) (*models.Asset, error) {
	details := in.Details
	if details == nil {
		var err error
		if details, err = models.DecodeAssetDetails(in.Type, nil); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
	}
	if details.AssetType() != in.Type {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "details do not match asset type "+string(in.Type))
	}

	asset := models.Asset{
		ID:           uuid.New(),
		Type:         in.Type,
		Symbol:       in.Symbol,
		Name:         in.Name,
		Units:        in.Units,
		BuyPrice:     in.BuyPrice,
		CurrentPrice: in.BuyPrice,
		LastUpdated:  s.now().UTC(),
		GoalID:       in.GoalID,
		Details:      details,
	}

	if err := s.assets.Put(ctx, userID, asset.ID, asset); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// UpdateAssetPrice sets the current market price of a holding.
func (s *assetService) UpdateAssetPrice(ctx context.Context, userID, assetID string, price float64) (*models.Asset, error) {
	asset, err := s.assets.Get(ctx, userID, assetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	asset.CurrentPrice = price
	asset.LastUpdated = s.now().UTC()

	if err := s.assets.Put(ctx, userID, asset.ID, asset); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// DeleteAsset removes a holding.
func (s *assetService) DeleteAsset(ctx context.Context, userID, assetID string) error {
	if err := s.assets.Delete(ctx, userID, assetID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.ErrAssetNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
