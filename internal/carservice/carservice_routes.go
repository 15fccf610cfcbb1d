package carservice

import (
	"github.com/gin-gonic/gin"

	"github.com/Vectus-Drive/backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	services := r.Group("/services")
	services.Use(middleware.AuthMiddleware())
	{
		services.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		services.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)

		services.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "services", "create"),
			handler.Create,
		)

		services.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "services", "update"),
			handler.Update,
		)

		services.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "services", "delete"),
			handler.Delete,
		)
	}
}
