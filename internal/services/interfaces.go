package services

import (
	"context"

	"finpredictor/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Signup(ctx context.Context, in SignupInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// AssetServicer defines the contract for portfolio holdings.
type AssetServicer interface {
	GetPortfolio(ctx context.Context, userID string) (*models.Portfolio, error)
	AddAsset(ctx context.Context, userID string, in AssetInput) (*models.Asset, error)
	UpdateAssetPrice(ctx context.Context, userID, assetID string, price float64) (*models.Asset, error)
	DeleteAsset(ctx context.Context, userID, assetID string) error
}

// GoalServicer defines the contract for savings goals.
type GoalServicer interface {
	CreateGoal(ctx context.Context, userID string, in GoalInput) (*models.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]models.Goal, error)
	GetGoal(ctx context.Context, userID, goalID string) (*models.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
}

// InsightServicer defines the contract for AI insights.
type InsightServicer interface {
	Predict(ctx context.Context, req models.PredictionRequest) (*models.InsightResponse, error)
}

// AssetValuer values the assets a goal is linked to.
type AssetValuer interface {
	// LinkedValue returns the summed current price of the listed assets in
	// the user's portfolio. An empty list is worth 0 without a lookup.
	LinkedValue(ctx context.Context, userID string, assetIDs []string) (float64, error)
}
