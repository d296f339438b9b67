package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/config"
	"github.com/stemsi/asts-console/internal/response"
	ws "github.com/stemsi/asts-console/internal/websocket"
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

// WSHandler pushes timetable events to console clients.
type WSHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler. rdb may be nil when Redis is not
// configured; the endpoint then answers 503.
func NewWSHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// TimetableEvents godoc
// WS /ws/v1/timetable/events
// Forwards timetable.generated events; {"action":"ping"} is answered with
// {"event":"pong"}.
func (h *WSHandler) TimetableEvents(c *gin.Context) {
	if h.rdb == nil {
		response.Fail(c, http.StatusServiceUnavailable, response.ErrFeatureDisabled)
		return
	}

	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	conn := ws.Wrap(raw)
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub := h.rdb.Subscribe(ctx, config.CacheKey.TimetableEventsChannel())
	defer pubsub.Close()
	events := pubsub.Channel()

	wsLog := h.log.With().Str("remote", c.ClientIP()).Logger()
	wsLog.Info().Msg("Console connected to timetable events")

	go h.readLoop(conn, cancel, wsLog)

	ticker := time.NewTicker(ws.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			wsLog.Debug().Msg("Connection closed")
			return
		case msg, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteRaw([]byte(msg.Payload)); err != nil {
				wsLog.Debug().Err(err).Msg("Event write failed")
				return
			}
		case <-ticker.C:
			if err := conn.Ping(); err != nil {
				return
			}
		}
	}
}

// readLoop answers client pings and cancels the stream when the client goes away.
func (h *WSHandler) readLoop(conn *ws.Conn, cancel context.CancelFunc, log zerolog.Logger) {
	defer cancel()
	for {
		var msg ws.RequestPayload
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("Unexpected close")
			}
			return
		}

		switch msg.Action {
		case ws.ActionPing:
			_ = conn.WriteTyped(ws.PongResponse{Event: ws.EventPong})
		default:
			log.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			_ = conn.WriteError("unknown action: " + string(msg.Action))
		}
	}
}
