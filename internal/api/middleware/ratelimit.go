package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// LoginLimiter caps login attempts per client IP within a fixed window,
// backed by a Redis counter. Key format: login_attempts:<ip>. The limiter
// fails open: a Redis error never blocks a login.
func LoginLimiter(rdb *redis.Client, limit int, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rdb == nil || limit <= 0 {
				return next(c)
			}

			ctx := c.Request().Context()
			key := fmt.Sprintf("login_attempts:%s", c.RealIP())

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				log.Warn().Err(err).Msg("login limiter unavailable, allowing request")
				return next(c)
			}
			if count == 1 {
				if err := rdb.Expire(ctx, key, window).Err(); err != nil {
					log.Warn().Err(err).Msg("failed to set login limiter window")
				}
			}

			if count > int64(limit) {
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many login attempts"})
			}

			return next(c)
		}
	}
}
