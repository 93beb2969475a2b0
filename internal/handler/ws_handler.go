package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ischool/courseinfo-backend/internal/events"
	ws "github.com/ischool/courseinfo-backend/internal/websocket"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler pushes admin changes to connected consoles over WebSocket.
type WSHandler struct {
	broker   events.Broker
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(broker events.Broker, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		broker:   broker,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// ChangeStream godoc
// WS /admin/changes
// Sends {"event":"ready"} once subscribed, then one {"event":"change"}
// message per committed admin write. Clients may send {"action":"ping"}.
func (h *WSHandler) ChangeStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	changes, cancel := h.broker.Subscribe(c.Request.Context())
	defer cancel()

	wsLog := h.log.With().Str("remote", c.ClientIP()).Logger()
	wsLog.Info().Msg("Admin console connected")

	// gorilla allows one concurrent reader and one concurrent writer, so
	// only this goroutine writes; the reader hands replies over.
	replies := make(chan reply, 4)
	closed := make(chan struct{})
	go h.readLoop(conn, wsLog, replies, closed)

	if err := ws.WriteTyped(conn, ws.ReadyResponse{Event: ws.EventReady}); err != nil {
		return
	}

	for {
		select {
		case <-closed:
			wsLog.Debug().Msg("Connection closed")
			return
		case r := <-replies:
			if err := r.write(conn); err != nil {
				return
			}
		case change, ok := <-changes:
			if !ok {
				return
			}
			if err := ws.WriteTyped(conn, ws.ChangeResponse{Event: ws.EventChange, Change: change}); err != nil {
				wsLog.Debug().Err(err).Msg("Write failed")
				return
			}
		}
	}
}

// reply is a server answer to one client message. An empty errMsg is a pong.
type reply struct {
	errMsg string
}

func (r reply) write(conn *websocket.Conn) error {
	if r.errMsg != "" {
		return ws.WriteError(conn, r.errMsg)
	}
	return ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
}

func (h *WSHandler) readLoop(conn *websocket.Conn, log zerolog.Logger, replies chan<- reply, closed chan<- struct{}) {
	defer close(closed)
	for {
		var raw json.RawMessage
		if err := ws.ReadJSON(conn, &raw); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("Unexpected close")
			}
			return
		}

		var r reply
		var env ws.RequestEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			r.errMsg = "message must be a JSON object"
		} else if env.Action != ws.ActionPing {
			r.errMsg = fmt.Sprintf("unknown action %q", env.Action)
		}
		if r.errMsg != "" {
			log.Debug().Str("action", string(env.Action)).Msg("Rejected client message")
		}

		// A client flooding the socket loses replies rather than stalling reads.
		select {
		case replies <- r:
		default:
		}
	}
}
