package car

import (
	"github.com/gin-gonic/gin"

	"github.com/Vectus-Drive/backend/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	cars := r.Group("/cars")
	cars.Use(middleware.AuthMiddleware())
	{
		cars.GET("", middleware.RateLimitByUser(5, 15), handler.GetAll)
		cars.GET("/options", middleware.RateLimitByUser(5, 15), handler.GetOptions)
		cars.GET("/:id", middleware.RateLimitByUser(5, 15), handler.GetByID)

		cars.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "cars", "create"),
			handler.Create,
		)

		cars.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "cars", "update"),
			handler.Update,
		)

		cars.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "cars", "delete"),
			handler.Delete,
		)
	}
}
