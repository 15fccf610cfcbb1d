package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vectus-Drive/backend/internal/domain"
	"github.com/Vectus-Drive/backend/internal/shared/response"
)

// RBACService is a local interface: anything with Enforce fits.
type RBACService interface {
	Enforce(role domain.Role, resource, action string) (bool, error)
}

// RBACAuthorize gates a route on the caller's role, taken from the claims
// placed in the context by AuthMiddleware.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr, ok := c.Get("role")
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Missing auth context", nil)
			c.Abort()
			return
		}

		role, err := domain.ParseRole(roleStr.(string))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unknown role", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
