package handler

import (
	"context"
	"database/sql"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db     *sql.DB
	search domain.SearchService
}

// NewHealthHandler creates the health check handler.
func NewHealthHandler(db *sql.DB, search domain.SearchService) *HealthHandler {
	return &HealthHandler{
		db:     db,
		search: search,
	}
}

// Ping is the basic health check.
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status":  "ok",
		"message": "pong",
	})
}

// Readiness reports whether the service can serve traffic. The database is
// the only hard dependency; search is reported informationally.
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(503, utils.H{
			"status":   "not_ready",
			"database": "unhealthy",
			"error":    err.Error(),
		})
		return
	}

	c.JSON(200, utils.H{
		"status":           "ready",
		"database":         "healthy",
		"search_available": h.search.IsAvailable(),
	})
}

// Liveness reports that the process is alive.
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status": "alive",
	})
}
