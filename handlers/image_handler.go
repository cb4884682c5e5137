package handlers

import (
	"ImageTagger/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterImageRoutes(router *gin.RouterGroup, imageController *controllers.ImageController) {
	router.POST("/generate", imageController.Generate)
}
