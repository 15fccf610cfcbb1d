package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Vectus-Drive/backend/internal/shared/response"
)

// Context keys the handler uses to finish the idempotency protocol: it
// deletes the lock when done and fills the cache on success.
const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"
)

// Idempotency guards POST routes carrying an Idempotency-Key header. A
// repeated key replays the cached response of the first completed request;
// a concurrent duplicate is rejected while the short-lived lock is held.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached any
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				response.Success(c, http.StatusOK, "Request already processed", cached, nil)
				c.Abort()
				return
			}
		}

		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			response.Error(c, http.StatusConflict, "A request with this idempotency key is already in progress", nil)
			c.Abort()
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}
