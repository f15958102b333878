package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"requestsmonitor/internal/config"
)

type ReportMatcher interface {
	IsReportRequest(path string) bool
}

type rateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

const (
	retryAfterHeader = "1"
	bypassHeader     = "X-Rate-Limit-Bypass"
)

var (
	rateLimitExceededResp = rateLimitResponse{
		Error:      "rate limit exceeded",
		RetryAfter: 1,
	}
	rateLimiterInternalErr = map[string]string{
		"error": "internal server error",
	}
)

// RateLimit limits requests per client IP. Status report requests are never
// limited so the monitor stays reachable while the server is under load.
func RateLimit(cfg *config.RateLimitConfig, reports ReportMatcher, logger *slog.Logger) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		},
	)

	secret := []byte(cfg.BypassSecret)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if reports.IsReportRequest(c.Request().URL.Path) {
				return true
			}
			if cfg.BypassSecret == "" {
				return false
			}
			provided := c.Request().Header.Get(bypassHeader)
			return subtle.ConstantTimeCompare([]byte(provided), secret) == 1
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("rate limit exceeded",
				slog.String("ip", identifier),
				slog.String("path", c.Request().URL.Path),
			)
			c.Response().Header().Set("Retry-After", retryAfterHeader)
			return c.JSON(http.StatusTooManyRequests, rateLimitExceededResp)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("rate limiter error", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, rateLimiterInternalErr)
		},
	})
}
