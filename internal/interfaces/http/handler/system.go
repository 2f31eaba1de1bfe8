package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stylesphere/storefront/internal/infrastructure/persistence"
)

// SystemHandler handles health and readiness requests
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	startedAt time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startedAt: time.Now(),
	}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health reports service liveness and database connectivity
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status = "degraded"
			dbStatus = "unreachable"
		}
	}

	h.Success(c, gin.H{
		"status":   status,
		"database": dbStatus,
		"uptime":   time.Since(h.startedAt).String(),
	})
}
