package httpx

import (
	"net/http"

	"github.com/Dishalex/PhotoShare/internal/logging"
	"github.com/Dishalex/PhotoShare/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
// Internal and upstream failures are logged with their cause and answered generically.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := service.AsServiceError(err); ok {
		status := serviceErrorStatus(serviceErr.Code)
		if status >= http.StatusInternalServerError {
			logging.Ctx(c.Request.Context()).Error().
				Err(err).
				Str("route", c.FullPath()).
				Str("code", string(serviceErr.Code)).
				Msg("request failed")
			c.JSON(status, gin.H{"error": fallbackMessage})
			return
		}
		c.JSON(status, gin.H{"error": serviceErr.Message})
		return
	}
	logging.Ctx(c.Request.Context()).Error().Err(err).Str("route", c.FullPath()).Msg("unexpected error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
}

func serviceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation:
		return http.StatusBadRequest
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeForbidden:
		return http.StatusForbidden
	case service.ErrorCodeConflict:
		return http.StatusConflict
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
