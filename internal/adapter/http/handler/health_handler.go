package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"pennyledger/internal/infrastructure/postgres"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	gateway     *postgres.Gateway
	redisClient *redis.Client
}

// NewHealthHandler creates a new HealthHandler. The redis client may be
// nil when idempotency support is disabled.
func NewHealthHandler(gateway *postgres.Gateway, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		gateway:     gateway,
		redisClient: redisClient,
	}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the service is ready to accept traffic.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.gateway.Ping(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "postgres unhealthy")
		return
	}

	status := map[string]string{
		"status":   "ready",
		"postgres": "ok",
	}

	if h.redisClient != nil {
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			writeError(w, http.StatusServiceUnavailable, "redis unhealthy")
			return
		}
		status["redis"] = "ok"
	}

	writeSuccess(w, http.StatusOK, status)
}
