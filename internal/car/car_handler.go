package car

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

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
	l := zap.L().Named("car.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("car.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("car request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCarRequest
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

	response.Validated(c, http.StatusCreated, "Car created successfully", resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	q := strings.TrimSpace(strings.ToLower(c.Query("q")))
	if q != "" {
		filtered := make([]CarResponse, 0, len(resp))
		for _, car := range resp {
			if strings.Contains(strings.ToLower(car.Make), q) ||
				strings.Contains(strings.ToLower(car.Model), q) ||
				strings.Contains(strings.ToLower(car.LicenseNo), q) {
				filtered = append(filtered, car)
			}
		}
		resp = filtered
	}

	sortBy := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "make")))
	sortDir := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "asc")))
	if sortDir != "desc" {
		sortDir = "asc"
	}
	sort.Slice(resp, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "price":
			less = resp[i].PricePerDay < resp[j].PricePerDay
		case "model":
			less = strings.ToLower(resp[i].Model) < strings.ToLower(resp[j].Model)
		default:
			less = strings.ToLower(resp[i].Make) < strings.ToLower(resp[j].Make)
		}
		if sortDir == "desc" {
			return !less
		}
		return less
	})

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Validated(c, http.StatusOK, fmt.Sprintf("%d cars found", total), resp[start:end], &meta)
}

func (h *Handler) GetOptions(c *gin.Context) {
	resp, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Validated(c, http.StatusOK, "Car options retrieved successfully", resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Validated(c, http.StatusOK, "Car retrieved successfully", resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCarRequest
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

	response.Validated(c, http.StatusOK, "Car updated successfully", resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.NoContent(c)
}
