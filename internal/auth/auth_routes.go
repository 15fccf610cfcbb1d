package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/Vectus-Drive/backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.1, 2), handler.Register)
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/token/refresh", handler.Refresh)
		auth.POST("/logout", handler.Logout)
		auth.DELETE("/delete/:id", middleware.AuthMiddleware(), middleware.RateLimitByUser(0.05, 1), handler.Delete)
		auth.PUT("/update/:id", middleware.AuthMiddleware(), middleware.RateLimitByUser(0.5, 2), handler.Update)
	}
}
