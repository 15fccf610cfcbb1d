package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Vectus-Drive/backend/internal/domain"
	"github.com/Vectus-Drive/backend/internal/shared/response"
)

// AccessTokenCookie and RefreshTokenCookie are the HttpOnly cookies carrying
// the signed tokens.
const (
	AccessTokenCookie  = "access_token_cookie"
	RefreshTokenCookie = "refresh_token_cookie"
)

// AuthMiddleware authenticates a request from its access token, read from
// the access cookie or a bearer header. On success user_id, role and jti are
// stored in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Access token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			msg := "Invalid access token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				msg = "Access token expired"
			}
			response.Error(c, http.StatusUnauthorized, msg, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid token claims", nil)
			c.Abort()
			return
		}

		if typ, _ := claims["typ"].(string); typ != "access" {
			response.Error(c, http.StatusUnauthorized, "Not an access token", nil)
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			response.Error(c, http.StatusUnauthorized, "Subject not found in token", nil)
			c.Abort()
			return
		}

		roleStr, _ := claims["role"].(string)
		role, err := domain.ParseRole(roleStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Role not found in token", nil)
			c.Abort()
			return
		}

		jti, _ := claims["jti"].(string)

		c.Set("user_id", sub)
		c.Set("role", role.String())
		c.Set("jti", jti)

		c.Next()
	}
}
