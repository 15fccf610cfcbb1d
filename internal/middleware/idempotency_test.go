package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/Vectus-Drive/backend/internal/middleware"
)

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const (
		route    = "/bookings"
		userID   = "cus-1"
		idempKey = "key-123"
	)
	cacheKey := "idemp:" + route + ":" + userID + ":" + idempKey
	lockKey := cacheKey + ":lock"

	setup := func(rdb *redismock.ClientMock) (*gin.Engine, *int) {
		client, mock := redismock.NewClientMock()
		*rdb = mock

		handled := 0
		router := gin.New()
		router.POST(route, func(c *gin.Context) {
			c.Set("user_id", userID)
		}, middleware.Idempotency(client), func(c *gin.Context) {
			handled++
			assert.Equal(t, cacheKey, c.GetString(middleware.IdempotencyCacheKey))
			assert.Equal(t, lockKey, c.GetString(middleware.IdempotencyLockKey))
			c.JSON(http.StatusCreated, gin.H{"status": "success"})
		})
		return router, &handled
	}

	t.Run("cached response replays without reaching the handler", func(t *testing.T) {
		var mock redismock.ClientMock
		router, handled := setup(&mock)

		cached, _ := json.Marshal(map[string]any{"id": "bkg-1"})
		mock.ExpectGet(cacheKey).SetVal(string(cached))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, route, strings.NewReader("{}"))
		req.Header.Set("Idempotency-Key", idempKey)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, *handled)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Request already processed", body["message"])
		data, _ := body["data"].(map[string]any)
		assert.Equal(t, "bkg-1", data["id"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("held lock rejects the duplicate with a conflict", func(t *testing.T) {
		var mock redismock.ClientMock
		router, handled := setup(&mock)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, route, strings.NewReader("{}"))
		req.Header.Set("Idempotency-Key", idempKey)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, *handled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request acquires the lock and stashes the cache keys", func(t *testing.T) {
		var mock redismock.ClientMock
		router, handled := setup(&mock)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, route, strings.NewReader("{}"))
		req.Header.Set("Idempotency-Key", idempKey)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *handled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing header passes straight through", func(t *testing.T) {
		var mock redismock.ClientMock
		router, handled := setup(&mock)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, route, strings.NewReader("{}"))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *handled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
