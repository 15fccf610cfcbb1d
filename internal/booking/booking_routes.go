package booking

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Vectus-Drive/backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		bookings.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)

		bookings.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "bookings", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		bookings.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "bookings", "update"),
			handler.Update,
		)

		bookings.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "bookings", "delete"),
			handler.Delete,
		)
	}
}
