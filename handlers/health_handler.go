package handlers

import (
	"ImageTagger/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.RouterGroup, healthController *controllers.HealthController) {
	router.GET("/", healthController.Status)
}
