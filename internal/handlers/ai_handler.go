package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finpredictor/internal/models"
	"finpredictor/internal/services"
)

// AIHandler serves insight predictions.
type AIHandler struct {
	insightService services.InsightServicer
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(insightService services.InsightServicer) *AIHandler {
	return &AIHandler{insightService: insightService}
}

// Predict returns insights for a user's portfolio and goals.
// @Summary     Predict insights
// @Tags        ai
// @Accept      json
// @Produce     json
// @Param       request body models.PredictionRequest true "User, portfolio and goals"
// @Success     200 {object} models.InsightResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /predict [post]
func (h *AIHandler) Predict(c *gin.Context) {
	var req models.PredictionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.insightService.Predict(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
