package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finpredictor/internal/models"
	"finpredictor/internal/services"
)

// UserHandler handles user-related requests.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// SignupRequest represents the request payload for registering a user.
type SignupRequest struct {
	Name            string       `json:"name" binding:"required,min=1,max=100"`
	Age             int          `json:"age" binding:"gte=0,lte=150"`
	DOB             *models.Date `json:"dob" binding:"required"`
	Email           string       `json:"email" binding:"required,email"`
	Password        string       `json:"password" binding:"required"`
	ProfilePhotoURL *string      `json:"profile_photo_url" binding:"omitempty,url"`
	RiskProfile     *string      `json:"risk_profile"`
	MonthlyIncome   *float64     `json:"monthly_income" binding:"omitempty,gte=0"`
}

// LoginRequest represents the request payload for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup handles user registration.
// @Summary     Register a user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body SignupRequest true "User details"
// @Success     200 {object} models.User
// @Failure     400 {object} ErrorResponse "Invalid input or email already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Signup(c.Request.Context(), services.SignupInput{
		Name:            req.Name,
		Age:             req.Age,
		DOB:             *req.DOB,
		Email:           req.Email,
		Password:        req.Password,
		ProfilePhotoURL: req.ProfilePhotoURL,
		RiskProfile:     req.RiskProfile,
		MonthlyIncome:   req.MonthlyIncome,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login checks a user's credentials.
// @Summary     Log in
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Credentials"
// @Success     200 {object} models.User
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Router      /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser returns a single user.
// @Summary     Get a user
// @Tags        users
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} models.User
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /{user_id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
