package review

import (
	"github.com/gin-gonic/gin"

	"github.com/Vectus-Drive/backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	reviews := r.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware())
	{
		reviews.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		reviews.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)

		reviews.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "reviews", "create"),
			handler.Create,
		)

		reviews.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "reviews", "update"),
			handler.Update,
		)

		reviews.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "reviews", "delete"),
			handler.Delete,
		)
	}
}
