package transaction

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Vectus-Drive/backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	transactions := r.Group("/transactions")
	transactions.Use(middleware.AuthMiddleware())
	{
		transactions.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		transactions.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)

		transactions.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "transactions", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		transactions.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "transactions", "update"),
			handler.Update,
		)

		transactions.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "transactions", "delete"),
			handler.Delete,
		)
	}
}
