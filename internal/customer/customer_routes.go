package customer

import (
	"github.com/gin-gonic/gin"

	"github.com/Vectus-Drive/backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	customers := r.Group("/customers")
	customers.Use(middleware.AuthMiddleware())
	{
		customers.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		customers.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)
		customers.PUT("/:id", middleware.RateLimitByUser(0.5, 2), handler.Update)
		customers.DELETE("/:id", middleware.RateLimitByUser(0.05, 1), handler.Delete)
	}
}
