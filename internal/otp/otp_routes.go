package otp

import (
	"github.com/gin-gonic/gin"

	"github.com/Vectus-Drive/backend/internal/middleware"
)

// RegisterRoutes hangs the verification endpoints off the /auth group so
// the frontend reaches them alongside register and login.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.GET("/generate-otp", middleware.RateLimitByIP(0.05, 2), handler.Generate)
		auth.GET("/validate-otp", middleware.RateLimitByIP(0.2, 5), handler.Validate)
	}
}
