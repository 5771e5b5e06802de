package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthHandler responde o health check da API.
type HealthHandler struct {
	pool *pgxpool.Pool
}

// NewHealthHandler constrói o handler. pool pode ser nil em testes.
func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{pool: pool}
}

// Health GET /api/health — sempre responde 200; falha de banco aparece
// no campo database_status, nunca como erro HTTP.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	dbStatus := "connected"
	if h.pool == nil {
		dbStatus = "disconnected"
	} else if err := h.pool.Ping(c.Context()); err != nil {
		dbStatus = "error: " + err.Error()
	}
	return c.JSON(fiber.Map{
		"status":          "ok",
		"database_status": dbStatus,
	})
}
