package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
)

var (
	errInvalidDelay  = map[string]string{"error": "delay must be a non-negative integer"}
	errDelayTooLong  = map[string]string{"error": "delay exceeds maximum"}
	errDelayCanceled = map[string]string{"error": "request canceled"}
	respHealthOK     = map[string]string{"status": "ok"}
)

type delayResponse struct {
	DelayMs int64 `json:"delay_ms"`
}

// Handler serves endpoints with controllable latency, used to exercise the
// request monitor.
type Handler struct {
	logger   *slog.Logger
	clock    clockwork.Clock
	maxDelay time.Duration
}

func New(logger *slog.Logger, clock clockwork.Clock, maxDelay time.Duration) *Handler {
	return &Handler{
		logger:   logger,
		clock:    clock,
		maxDelay: maxDelay,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.GET("/delay/:ms", h.Delay)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

// Delay waits for the requested number of milliseconds, then answers.
// With ?fail=true it returns a server error after waiting.
func (h *Handler) Delay(c echo.Context) error {
	ms, err := strconv.ParseInt(c.Param("ms"), 10, 64)
	if err != nil || ms < 0 {
		return c.JSON(http.StatusBadRequest, errInvalidDelay)
	}

	delay := time.Duration(ms) * time.Millisecond
	if delay > h.maxDelay {
		return c.JSON(http.StatusBadRequest, errDelayTooLong)
	}

	select {
	case <-h.clock.After(delay):
	case <-c.Request().Context().Done():
		h.logger.Warn("delay interrupted", slog.Int64("delay_ms", ms))
		return c.JSON(http.StatusServiceUnavailable, errDelayCanceled)
	}

	if c.QueryParam("fail") == "true" {
		return echo.NewHTTPError(http.StatusInternalServerError, "simulated failure")
	}

	return c.JSON(http.StatusOK, delayResponse{DelayMs: ms})
}
