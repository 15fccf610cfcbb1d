package otp

import (
	"net/http"
	"net/mail"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
	"github.com/Vectus-Drive/backend/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("otp.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("otp.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("otp request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) Generate(c *gin.Context) {
	email := c.Query("email")
	if _, err := mail.ParseAddress(email); err != nil {
		response.Error(c, http.StatusBadRequest, "A valid email query parameter is required", nil)
		return
	}

	if err := h.service.GenerateAndSend(c.Request.Context(), email); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Verification code sent", nil, nil)
}

func (h *Handler) Validate(c *gin.Context) {
	email := c.Query("email")
	code := c.Query("otp")
	if email == "" || code == "" {
		response.Error(c, http.StatusBadRequest, "email and otp query parameters are required", nil)
		return
	}

	ok, err := h.service.Validate(c.Request.Context(), email, code)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Verification code does not match", nil)
		return
	}

	response.Success(c, http.StatusOK, "Verification successful", nil, nil)
}
