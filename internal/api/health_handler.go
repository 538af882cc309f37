package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is a dependency the health check probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	components map[string]Pinger
}

// NewHealthHandler creates a health handler. Nil pingers are reported as
// not configured.
func NewHealthHandler(components map[string]Pinger) *HealthHandler {
	return &HealthHandler{components: components}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /healthz
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string, len(h.components))
	healthy := true
	for name, p := range h.components {
		if p == nil {
			components[name] = "not configured"
			continue
		}
		if err := p.Ping(ctx); err != nil {
			components[name] = "error: " + err.Error()
			healthy = false
			continue
		}
		components[name] = "ok"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, HealthStatus{Status: status, Components: components})
}
