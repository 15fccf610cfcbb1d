package response

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

// Envelope is the uniform wire shape for every endpoint:
// {"status": "success"|"error", "message": string, "data": payload|null}.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    any             `json:"data"`
	Meta    *PaginationMeta `json:"meta,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any, meta *PaginationMeta) {
	c.JSON(status, Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func Error(c *gin.Context, status int, message string, details any) {
	c.JSON(status, Envelope{
		Status:  "error",
		Message: message,
		Data:    details,
	})
}

// NoContent writes 204 with an empty body, bypassing the envelope.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// outValidator checks response payloads against their declared struct tags.
var outValidator = validator.New(validator.WithRequiredStructEnabled())

// Validated checks the payload against its own schema before serialization.
// A payload that violates its declared shape never reaches the client: the
// handler's result is discarded and a 500 envelope is written instead.
func Validated(c *gin.Context, status int, message string, payload any, meta *PaginationMeta) {
	if err := validatePayload(payload); err != nil {
		Error(c, http.StatusInternalServerError, "Response failed schema validation", err.Error())
		return
	}
	Success(c, status, message, payload, meta)
}

func validatePayload(payload any) error {
	if payload == nil {
		return nil
	}

	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		for i := 0; i < v.Len(); i++ {
			if err := validatePayload(v.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}

	err := outValidator.Struct(payload)
	// Struct() also errors on non-struct kinds; only tag violations count.
	if _, ok := err.(validator.ValidationErrors); ok {
		return err
	}
	return nil
}
