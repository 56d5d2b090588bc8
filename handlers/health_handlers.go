package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/campaign_url_api/models"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by the link store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports the configured provider and whether the link store answers.
type HealthHandler struct {
	provider string
	store    Pinger
}

// NewHealthHandler accepts a nil store when no link store is wired.
func NewHealthHandler(provider string, store Pinger) *HealthHandler {
	return &HealthHandler{provider: provider, store: store}
}

// HealthCheckHandler godoc
// @Summary      Health Check
// @Description  Reports the configured completion provider and pings the link store. Answers 503 when the store is unreachable.
// @Tags         Monitoring
// @Produce      json
// @Success      200  {object}  models.HealthResponse
// @Failure      503  {object}  models.HealthResponse "Link store unreachable"
// @Router       /health [get]
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	resp := models.HealthResponse{Status: "UP", Provider: h.provider}
	if h.store == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		_ = c.Error(err)
		resp.Status, resp.LinkStore = "DEGRADED", "unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	resp.LinkStore = "ok"
	c.JSON(http.StatusOK, resp)
}
