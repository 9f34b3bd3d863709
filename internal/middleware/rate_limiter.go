package middleware

import (
	"log/slog"
	"sync"
	"time"

	"labquote/internal/errors"
	"labquote/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// The API fronts a walk-in reception flow, so legitimate per-client traffic
// is small. The limiter keeps a misconfigured kiosk or integration from
// starving the desk: each client IP gets its own token bucket, and idle
// entries are evicted in the background.

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.RWMutex

	requestsPerSecond = 5
	burstSize         = 10
)

// RateLimiter enforces the per-IP request budget using the current settings.
func RateLimiter() echo.MiddlewareFunc {
	go evictIdleVisitors()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := clientIP(c)

			if !limiterFor(ip).Allow() {
				slog.Warn("rate limit exceeded",
					slog.String("event_type", "rate_limit_exceeded"),
					slog.String("client_ip", ip),
					slog.String("path", c.Request().URL.Path),
				)
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// RateLimiterWithConfig overrides the per-IP rate and burst before starting
// the limiter. New visitors pick up the overridden settings.
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	requestsPerSecond = rps
	burstSize = burst

	return RateLimiter()
}

// limiterFor returns the bucket for an IP, creating it on first sight and
// refreshing its activity stamp otherwise.
func limiterFor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)
		visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// clientIP prefers proxy-set headers over the socket address, matching the
// reverse-proxy deployment in front of the API.
func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}

func evictIdleVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, ip)
			}
		}
		mu.Unlock()
	}
}
