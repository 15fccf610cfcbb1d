package auth

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Vectus-Drive/backend/internal/middleware"
	"github.com/Vectus-Drive/backend/internal/shared/apperror"
	"github.com/Vectus-Drive/backend/internal/shared/response"
)

type Handler struct {
	service Service
	tokens  *TokenManager
	logger  *zap.Logger
}

func NewHandler(service Service, tokens *TokenManager, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, tokens: tokens, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) setTokenCookies(c *gin.Context, pair TokenPair) {
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		MaxAge:   int(h.tokens.AccessTTL().Seconds()),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.RefreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   int(h.tokens.RefreshTTL().Seconds()),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearTokenCookies(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"

	for _, name := range []string{middleware.AccessTokenCookie, middleware.RefreshTokenCookie} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   isProd,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// refreshTokenFrom reads the refresh token from its cookie, falling back to
// a JSON body for non-browser clients.
func refreshTokenFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(middleware.RefreshTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&body); err == nil {
		return body.RefreshToken
	}
	return ""
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, "Invalid input", appErr.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Validated(c, http.StatusCreated, "User registered successfully", resp, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, "Invalid input", appErr.Error())
		return
	}

	pair, account, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setTokenCookies(c, pair)
	response.Validated(c, http.StatusOK, "Login successful", account, nil)
}

// Me answers from the verified token claims alone; no database lookup.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")
	if userID == "" || role == "" {
		response.Error(c, http.StatusUnauthorized, "Authentication is required", nil)
		return
	}

	response.Success(c, http.StatusOK, "Identity resolved", gin.H{
		"u_id": userID,
		"role": role,
	}, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	refreshToken := refreshTokenFrom(c)
	if refreshToken == "" {
		response.Error(c, http.StatusUnauthorized, "Missing refresh token", nil)
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setTokenCookies(c, pair)
	response.Success(c, http.StatusOK, "Tokens rotated successfully", nil, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	refreshToken := refreshTokenFrom(c)
	if refreshToken == "" {
		response.Error(c, http.StatusUnauthorized, "Missing refresh token", nil)
		return
	}

	if err := h.service.Logout(c.Request.Context(), refreshToken); err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.clearTokenCookies(c)
	response.Success(c, http.StatusOK, "Logout successful", nil, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, "Invalid input", appErr.Error())
		return
	}

	resp, err := h.service.UpdateAccount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Validated(c, http.StatusOK, "Account updated successfully", resp, nil)
}
