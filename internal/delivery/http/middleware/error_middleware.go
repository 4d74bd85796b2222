package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-registry/internal/delivery/http/response"
	"go-resume-registry/pkg/apperror"
	"go-resume-registry/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					// Wrapped cause stays server-side only.
					logger.Log.Error("Request failed", "message", appErr.Message, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients.
				logger.Log.Error("Unhandled error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
