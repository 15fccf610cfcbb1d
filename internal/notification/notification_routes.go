package notification

import (
	"github.com/gin-gonic/gin"

	"github.com/Vectus-Drive/backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		notifications.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)

		notifications.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "notifications", "create"),
			handler.Create,
		)

		notifications.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "notifications", "update"),
			handler.Update,
		)

		notifications.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "notifications", "delete"),
			handler.Delete,
		)
	}
}
