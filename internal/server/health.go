package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

type StorePinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker struct {
	store   StorePinger
	driver  string
	timeout time.Duration
	log     *slog.Logger
}

func NewHealthChecker(store StorePinger, driver string, log *slog.Logger) *HealthChecker {
	pingTO := 2
	return &HealthChecker{
		store:   store,
		driver:  driver,
		timeout: time.Duration(pingTO) * time.Second,
		log:     log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	status := map[string]string{"driver": h.driver}
	overallStatus := http.StatusOK

	ctx, cancel := context.WithTimeout(req.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		status["store"] = "unavailable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: store ping", "error", err)
	} else {
		status["store"] = "ok"
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err := json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", "error", err)
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}
