package middleware

import (
	"ImageTagger/services"
	"ImageTagger/utils"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware turns the last error attached to the context into the
// JSON error envelope. The cause is logged, only CustomError.Message reaches the client.
func ErrorHandlerMiddleware(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status, message := http.StatusInternalServerError, "Internal Server Error"
		var customErr *utils.CustomError
		if errors.As(err, &customErr) {
			status, message = customErr.StatusCode, customErr.Message
		}

		attrs := []any{
			"request_id", GetRequestID(c),
			"path", c.FullPath(),
			"status", status,
			"error", err.Error(),
		}
		if status < http.StatusInternalServerError {
			log.Warn("Request rejected", append(attrs, "kind", "validation")...)
		} else {
			log.Error("Request failed", append(attrs, "kind", services.ErrorKind(err))...)
		}

		utils.ErrorResponse(c, status, message)
	}
}
