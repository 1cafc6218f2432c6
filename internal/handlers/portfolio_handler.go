package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finpredictor/internal/errors"
	"finpredictor/internal/finance"
	"finpredictor/internal/models"
	"finpredictor/internal/services"
)

// PortfolioHandler handles holdings and portfolio projections.
type PortfolioHandler struct {
	assetService services.AssetServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(assetService services.AssetServicer) *PortfolioHandler {
	return &PortfolioHandler{assetService: assetService}
}

// AddAssetRequest represents the request payload for adding a holding. The
// shape of details depends on type.
type AddAssetRequest struct {
	Type     models.AssetType `json:"type" binding:"required,asset_type"`
	Symbol   string           `json:"symbol" binding:"required,max=32"`
	Name     string           `json:"name" binding:"max=200"`
	Units    float64          `json:"units" binding:"gte=0"`
	BuyPrice float64          `json:"buy_price" binding:"gte=0"`
	GoalID   string           `json:"goal_id"`
	Details  json.RawMessage  `json:"details" swaggertype:"object"`
}

// UpdatePriceRequest represents the request payload for repricing a holding.
type UpdatePriceRequest struct {
	CurrentPrice *float64 `json:"current_price" binding:"required,gte=0"`
}

// ProjectionRequest represents the request payload for a portfolio projection.
type ProjectionRequest struct {
	StartingAmount float64  `json:"starting_amount" binding:"gte=0"`
	MonthlySIP     float64  `json:"monthly_sip" binding:"gte=0"`
	Years          *float64 `json:"years" binding:"omitempty,lte=100"`
	ExpectedReturn float64  `json:"expected_return"`
	ExpenseRatio   float64  `json:"expense_ratio" binding:"gte=0"`
}

// GetPortfolio returns the user's holdings.
// @Summary     Get a portfolio
// @Tags        portfolio
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} models.Portfolio
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /{user_id} [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	portfolio, err := h.assetService.GetPortfolio(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// AddAsset adds a holding to the user's portfolio.
// @Summary     Add an asset
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Param       user_id path string          true "User ID"
// @Param       request body AddAssetRequest true "Asset details"
// @Success     200 {object} models.Asset
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /{user_id}/assets [post]
func (h *PortfolioHandler) AddAsset(c *gin.Context) {
	var req AddAssetRequest
	if !bindJSON(c, &req) {
		return
	}

	details, err := models.DecodeAssetDetails(req.Type, req.Details)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.AddAsset(c.Request.Context(), c.Param("user_id"), services.AssetInput{
		Type:     req.Type,
		Symbol:   req.Symbol,
		Name:     req.Name,
		Units:    req.Units,
		BuyPrice: req.BuyPrice,
		GoalID:   req.GoalID,
		Details:  details,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// UpdateAssetPrice sets a holding's current price.
// @Summary     Update an asset price
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Param       user_id  path string             true "User ID"
// @Param       asset_id path string             true "Asset ID"
// @Param       request  body UpdatePriceRequest true "New price"
// @Success     200 {object} models.Asset
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /{user_id}/assets/{asset_id}/price [put]
func (h *PortfolioHandler) UpdateAssetPrice(c *gin.Context) {
	var req UpdatePriceRequest
	if !bindJSON(c, &req) {
		return
	}

	asset, err := h.assetService.UpdateAssetPrice(c.Request.Context(), c.Param("user_id"), c.Param("asset_id"), *req.CurrentPrice)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// DeleteAsset removes a holding.
// @Summary     Delete an asset
// @Tags        portfolio
// @Produce     json
// @Param       user_id  path string true "User ID"
// @Param       asset_id path string true "Asset ID"
// @Success     200 {object} OKResponse
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /{user_id}/assets/{asset_id} [delete]
func (h *PortfolioHandler) DeleteAsset(c *gin.Context) {
	if err := h.assetService.DeleteAsset(c.Request.Context(), c.Param("user_id"), c.Param("asset_id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// Project compounds a lump sum and a monthly contribution month by month.
// @Summary     Project a portfolio
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Param       request body ProjectionRequest true "Projection inputs"
// @Success     200 {array}  models.ProjectionPoint
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /projection [post]
func (h *PortfolioHandler) Project(c *gin.Context) {
	var req ProjectionRequest
	if !bindJSON(c, &req) {
		return
	}

	points := finance.ProjectPortfolio(req.StartingAmount, req.MonthlySIP, orDefault(req.Years, 1), req.ExpectedReturn, req.ExpenseRatio)

	out := make([]models.ProjectionPoint, 0, len(points))
	for _, p := range points {
		out = append(out, models.ProjectionPoint{Month: p.Month, Value: p.Value})
	}
	c.JSON(http.StatusOK, out)
}
