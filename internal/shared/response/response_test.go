package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Vectus-Drive/backend/internal/shared/response"
)

type payload struct {
	ID    string `json:"id" validate:"required,uuid"`
	Stars int    `json:"stars" validate:"min=1,max=5"`
}

func TestValidated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid payload passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Validated(c, http.StatusOK, "ok", payload{
			ID:    "11111111-2222-3333-4444-555555555555",
			Stars: 4,
		}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "\"status\":\"success\"")
	})

	t.Run("invalid payload is replaced with a 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Validated(c, http.StatusOK, "ok", payload{ID: "not-a-uuid", Stars: 9}, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Response failed schema validation")
		assert.NotContains(t, w.Body.String(), "not-a-uuid")
	})

	t.Run("invalid slice element is caught", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		items := []payload{
			{ID: "11111111-2222-3333-4444-555555555555", Stars: 5},
			{ID: "11111111-2222-3333-4444-555555555555", Stars: 0},
		}
		response.Validated(c, http.StatusOK, "ok", items, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("nil payload is allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Validated(c, http.StatusNoContent, "", nil, nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(11, 2, 5)
	assert.Equal(t, int64(11), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 5, meta.PageSize)

	empty := response.NewPaginationMeta(0, 1, 0)
	assert.Zero(t, empty.TotalPages)
}
