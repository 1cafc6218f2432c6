package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finpredictor/internal/errors"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// OKResponse acknowledges a request that returns no resource.
type OKResponse struct {
	OK bool `json:"ok"`
}

// HealthResponse reports a live service.
type HealthResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

// Health returns a handler reporting the named service as up.
func Health(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{Service: service, Status: "ok"})
	}
}

// respondWithError hands the error to middleware.ErrorHandler, which renders
// the envelope once the handler chain returns.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
}

// bindJSON binds the request body, reporting failures as invalid input.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return false
	}
	return true
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
