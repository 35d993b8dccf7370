package app

import (
	"wallpost/internal/app/middleware"
	"wallpost/pkg/schema"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (a *appServer) RegisterHandlers() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	handler := gin.New()

	// cors middleware
	corsConfig := cors.Config{
		AllowOrigins: a.config.CORS.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}
	handler.Use(cors.New(corsConfig))
	handler.Use(middleware.RequestID())
	handler.Use(gin.Recovery())

	// health check
	handler.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// token issuance and renewal (no authentication required)
	handler.POST("/login", middleware.ValidateJSON(schema.Login), a.controller.Login)
	handler.POST("/token", middleware.ValidateJSON(schema.RefreshToken), a.controller.RefreshToken)

	// the wall, gated on a valid token
	authMiddleware := middleware.TokenAuth(a.authService)
	wall := handler.Group("/wall")
	wall.Use(authMiddleware)
	{
		wall.GET("", a.stickerController.List)
		wall.GET("/:id", a.stickerController.Get)
		wall.POST("", middleware.ValidateJSON(schema.StickerCreate), a.stickerController.Create)
		wall.PUT("/:id", middleware.ValidateJSON(schema.StickerCreate), a.stickerController.Update)
		wall.DELETE("/:id", a.stickerController.Delete)
	}

	return handler
}
