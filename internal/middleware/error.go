package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "finpredictor/internal/errors"
	"finpredictor/internal/logger"
	"finpredictor/internal/store"
)

// ErrorHandler renders the last error recorded on the context as
// {"error":{"code","message"}}. Nothing is written when the handler already
// responded.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr := resolve(err)
		if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"code", appErr.Code,
				"error", appErr.Internal.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", RequestID(c),
			)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}

// resolve maps err onto the error envelope. A store miss that no service
// translated becomes NOT_FOUND; any other foreign error is an internal error
// whose text stays in the log.
func resolve(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, store.ErrNotFound):
		return apperrors.ErrNotFound
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}
