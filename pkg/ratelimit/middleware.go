package ratelimit

import (
	"math"
	"strconv"
	"time"

	"github.com/Abraxas-365/headhunter/pkg/logx"
	"github.com/Abraxas-365/headhunter/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const (
	headerLimit     = "X-RateLimit-Limit"
	headerRemaining = "X-RateLimit-Remaining"
)

// Middleware limits requests per client address for one named endpoint,
// counting in the given shared Limiter. It runs before any other check on the route.
func Middleware(l Limiter, endpoint string, rule Rule, rec *metrics.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := l.Allow(c.UserContext(), clientKey(c, endpoint), rule)
		if err != nil {
			// fail open: a counter outage must not take the API down
			logx.Warnf("rate limiter unavailable for %s: %v", endpoint, err)
			return c.Next()
		}

		c.Set(headerLimit, strconv.Itoa(rule.Limit))
		c.Set(headerRemaining, strconv.Itoa(res.Remaining))

		if !res.Allowed {
			seconds := int(math.Ceil(res.RetryAfter.Seconds()))
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(seconds))
			return reject(c, endpoint, seconds, rec)
		}

		return c.Next()
	}
}

// MemoryMiddleware limits requests per client address with fiber's fixed window
// limiter. Counters live in this process only and expired ones are collected
// in the background. Used when no Redis is configured.
func MemoryMiddleware(endpoint string, rule Rule, rec *metrics.Recorder) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        rule.Limit,
		Expiration: rule.Window.Truncate(time.Second),
		KeyGenerator: func(c *fiber.Ctx) string {
			return clientKey(c, endpoint)
		},
		LimitReached: func(c *fiber.Ctx) error {
			// the limiter has already set Retry-After
			seconds, _ := strconv.Atoi(c.GetRespHeader(fiber.HeaderRetryAfter))
			c.Set(headerLimit, strconv.Itoa(rule.Limit))
			c.Set(headerRemaining, "0")
			return reject(c, endpoint, seconds, rec)
		},
	})
}

func clientKey(c *fiber.Ctx, endpoint string) string {
	return endpoint + ":" + c.IP()
}

func reject(c *fiber.Ctx, endpoint string, retryAfter int, rec *metrics.Recorder) error {
	rec.RateLimited(endpoint)
	logx.Debugf("rate limited %s on %s", c.IP(), endpoint)
	return ErrTooManyRequests().
		WithDetail("endpoint", endpoint).
		WithDetail("retry_after_seconds", retryAfter)
}
