package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shopping/middleware"
)

// Pinger is satisfied by *database.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	store   Pinger
	timeout time.Duration
}

func NewHealthController(store Pinger, timeout time.Duration) *HealthController {
	return &HealthController{store: store, timeout: timeout}
}

func (hc *HealthController) CheckHealth(c *gin.Context) {
	ctx, cancel := storeContext(c, hc.timeout)
	defer cancel()

	start := time.Now()
	if err := hc.store.Ping(ctx); err != nil {
		middleware.GetLogger(c).Error().
			Err(err).
			Dur("response_time", time.Since(start)).
			Msg("database health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"response_time": time.Since(start).String(),
	})
}
