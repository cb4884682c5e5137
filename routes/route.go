package routes

import (
	"ImageTagger/config/environment"
	"ImageTagger/controllers"
	"ImageTagger/handlers"
	"ImageTagger/middleware"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with its middleware stack and every route registered
func NewRouter(log *slog.Logger, cfg environment.Config, describer controllers.ImageDescriber) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	r.Use(middleware.ErrorHandlerMiddleware(log))

	RegisterRoutes(r, controllers.NewHealthController(), controllers.NewImageController(describer, cfg.MaxUploadBytes))
	return r
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, healthController *controllers.HealthController, imageController *controllers.ImageController) {
	root := router.Group("")
	{
		handlers.RegisterHealthRoutes(root, healthController)
		handlers.RegisterImageRoutes(root, imageController)
	}
}
