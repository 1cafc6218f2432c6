package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finpredictor/internal/models"
	"finpredictor/internal/services"
)

// Defaults applied to omitted goal fields.
const (
	defaultExpectedReturnRate = 0.12
	defaultInflationRate      = 0.05
	defaultSalaryGrowthRate   = 0.05
)

// GoalHandler handles goal-related requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for creating a goal.
// Omitted rates take their documented defaults.
type CreateGoalRequest struct {
	Title                 string               `json:"title" binding:"required,min=1,max=200"`
	TargetAmount          float64              `json:"target_amount" binding:"required,gt=0"`
	TargetDate            *models.Date         `json:"target_date" binding:"required" swaggertype:"string" example:"2036-01-15"`
	StartingAmount        float64              `json:"starting_amount" binding:"gte=0"`
	CurrentSIP            float64              `json:"current_sip" binding:"gte=0"`
	ExpectedReturnRate    *float64             `json:"expected_return_rate"`
	InflationRate         *float64             `json:"inflation_rate"`
	ExpectedInflationRate *float64             `json:"expected_inflation_rate"`
	SalaryGrowthRate      *float64             `json:"salary_growth_rate"`
	RiskProfile           models.RiskProfile   `json:"risk_profile" binding:"omitempty,risk_profile"`
	GoalCategory          string               `json:"goal_category" binding:"max=100"`
	LinkedAssets          []string             `json:"linked_assets"`
	PriorityLevel         models.PriorityLevel `json:"priority_level" binding:"omitempty,priority_level"`
}

func (r CreateGoalRequest) input() services.GoalInput {
	risk := r.RiskProfile
	if risk == "" {
		risk = models.RiskModerate
	}
	return services.GoalInput{
		Title:                 r.Title,
		TargetAmount:          r.TargetAmount,
		TargetDate:            *r.TargetDate,
		StartingAmount:        r.StartingAmount,
		CurrentSIP:            r.CurrentSIP,
		ExpectedReturnRate:    orDefault(r.ExpectedReturnRate, defaultExpectedReturnRate),
		InflationRate:         orDefault(r.InflationRate, defaultInflationRate),
		ExpectedInflationRate: orDefault(r.ExpectedInflationRate, defaultInflationRate),
		SalaryGrowthRate:      orDefault(r.SalaryGrowthRate, defaultSalaryGrowthRate),
		RiskProfile:           risk,
		GoalCategory:          r.GoalCategory,
		LinkedAssets:          r.LinkedAssets,
		PriorityLevel:         r.PriorityLevel,
	}
}

// CreateGoal handles the creation of a new goal.
// @Summary     Create a goal
// @Description Plans a savings goal: the recommended monthly SIP, one projection per strategy and the current progress from linked assets
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       user_id path string            true "User ID"
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     200 {object} models.Goal
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /{user_id} [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if !bindJSON(c, &req) {
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), c.Param("user_id"), req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// ListGoals handles listing a user's goals.
// @Summary     List goals
// @Tags        goals
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {array}  models.Goal
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /{user_id} [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	goals, err := h.goalService.ListGoals(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// GetGoal handles fetching a single goal.
// @Summary     Get a goal
// @Tags        goals
// @Produce     json
// @Param       user_id path string true "User ID"
// @Param       goal_id path string true "Goal ID"
// @Success     200 {object} models.Goal
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /{user_id}/{goal_id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	goal, err := h.goalService.GetGoal(c.Request.Context(), c.Param("user_id"), c.Param("goal_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal handles deleting a goal.
// @Summary     Delete a goal
// @Tags        goals
// @Produce     json
// @Param       user_id path string true "User ID"
// @Param       goal_id path string true "Goal ID"
// @Success     200 {object} OKResponse
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /{user_id}/{goal_id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	if err := h.goalService.DeleteGoal(c.Request.Context(), c.Param("user_id"), c.Param("goal_id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, OKResponse{OK: true})
}
