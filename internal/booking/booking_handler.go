package booking

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Vectus-Drive/backend/internal/middleware"
	"github.com/Vectus-Drive/backend/internal/shared/apperror"
	"github.com/Vectus-Drive/backend/internal/shared/response"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("booking.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("booking.handler")
	}
	return &Handler{service: service, logger: l}
}

// NewHandlerWithRedis also wires the idempotency cache so Create can store
// its response for replay.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("booking request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	lockKey := c.GetString(middleware.IdempotencyLockKey)
	cacheKey := c.GetString(middleware.IdempotencyCacheKey)
	if h.rdb != nil && lockKey != "" {
		defer h.rdb.Del(c.Request.Context(), lockKey)
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, "Invalid input", appErr.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil && cacheKey != "" {
		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			_ = h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour).Err()
		}
	}

	response.Validated(c, http.StatusCreated, "Booking created successfully", resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Validated(c, http.StatusOK, fmt.Sprintf("%d bookings found", len(resp)), resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Validated(c, http.StatusOK, "Booking retrieved successfully", resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, "Invalid input", appErr.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Validated(c, http.StatusOK, "Booking updated successfully", resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.NoContent(c)
}
