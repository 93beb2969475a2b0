package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/rs/zerolog"
)

const keepAliveInterval = 30 * time.Second

// MonitorHandler streams admin changes as server-sent events for clients
// that cannot hold a WebSocket.
type MonitorHandler struct {
	broker events.Broker
	log    zerolog.Logger
}

// NewMonitorHandler creates a new MonitorHandler.
func NewMonitorHandler(broker events.Broker, log zerolog.Logger) *MonitorHandler {
	return &MonitorHandler{
		broker: broker,
		log:    log.With().Str("component", "monitor_handler").Logger(),
	}
}

// ChangeStreamSSE godoc
// GET /admin/changes/stream
func (h *MonitorHandler) ChangeStreamSSE(c *gin.Context) {
	reqCtx := c.Request.Context()

	changes, cancel := h.broker.Subscribe(reqCtx)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.SSEvent("ready", gin.H{"type": "ready"})
	c.Writer.Flush()

	keepAliveTicker := time.NewTicker(keepAliveInterval)
	defer keepAliveTicker.Stop()

	h.log.Info().Str("remote", c.ClientIP()).Msg("Admin attached to change stream")

	for {
		select {
		case <-reqCtx.Done():
			h.log.Info().Msg("Admin detached from change stream")
			return

		case change, ok := <-changes:
			if !ok {
				return
			}
			c.SSEvent("change", change)
			c.Writer.Flush()

		case <-keepAliveTicker.C:
			c.SSEvent("ping", gin.H{"type": "ping"})
			c.Writer.Flush()
		}
	}
}
