package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tendersuite/tenderd/pkg/database"
	"github.com/tendersuite/tenderd/pkg/registry"
	"github.com/tendersuite/tenderd/pkg/version"
)

// healthHandler handles GET /api/health.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"version":       version.Full(),
		"database":      dbHealth,
		"active_agents": s.registry.ActiveCount(),
	})
}

// listAgentsHandler handles GET /api/agents: registry observability.
func (s *Server) listAgentsHandler(c *gin.Context) {
	running := s.registry.ListRunning(c.Query("chat_id"))
	if running == nil {
		running = []registry.TaskInfo{}
	}
	c.JSON(http.StatusOK, gin.H{
		"active_count": s.registry.ActiveCount(),
		"running":      running,
	})
}
