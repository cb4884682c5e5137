package utils

import (
	"ImageTagger/models"

	"github.com/gin-gonic/gin"
)

// ErrorResponse aborts the request with {"error": message}
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, models.ErrorBody{Error: message})
}

// SuccessResponse writes data as the JSON body
func SuccessResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}
