package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"
	"workforce-server/internal/infra/httpserver"
	"workforce-server/internal/infra/sql"
)

const _readinessTimeout = 2 * time.Second

// HealthController reports readiness. Liveness lives on the server itself;
// readiness additionally requires a reachable database.
type HealthController struct {
	pool *sql.Pool
}

func NewHealthController(pool *sql.Pool) *HealthController {
	return &HealthController{
		pool: pool,
	}
}

var _ httpserver.Controller = &HealthController{}

func (c *HealthController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /readyz", c.getReadyz())
}

func (c *HealthController) getReadyz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), _readinessTimeout)
		defer cancel()

		if err := c.pool.Ping(ctx); err != nil {
			slog.Warn("readiness probe failed", slog.String("error", err.Error()))
			httpserver.ReplyJSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
