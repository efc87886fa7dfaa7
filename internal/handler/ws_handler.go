package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/temitayo1239/student-information-portal-main/internal/logger"
	"github.com/temitayo1239/student-information-portal-main/internal/middleware"
	"github.com/temitayo1239/student-information-portal-main/internal/portal"
	"github.com/temitayo1239/student-information-portal-main/internal/response"
	"github.com/temitayo1239/student-information-portal-main/internal/service"
	ws "github.com/temitayo1239/student-information-portal-main/internal/websocket"
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

// WSHandler streams the notification inbox over a WebSocket.
type WSHandler struct {
	portal   *service.PortalService
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(portal *service.PortalService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		portal:   portal,
		log:      logger.Component(log, "ws_handler"),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// NotificationStream godoc
// WS /ws/v1/student/notifications/stream?token=...
// Sends the unread inbox on connect, then applies mark_read and
// mark_all_read actions and answers each with the updated unread inbox.
func (h *WSHandler) NotificationStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}
	sessionID := claims.SessionID()

	// Reject dead sessions before the upgrade so the client gets a status.
	view, err := h.portal.Notifications(c.Request.Context(), sessionID, portal.FilterUnread)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(ws.MaxMessage)

	wsLog := h.log.With().Str("session_id", sessionID).Logger()
	wsLog.Info().Msg("Student connected")

	if err := ws.WriteTyped(conn, ws.NewInboxEvent(ws.EventSnapshot, view, 0)); err != nil {
		return
	}

	// The request context ends with the upgrade; session work gets its own.
	ctx := context.WithoutCancel(c.Request.Context())
	for {
		var msg ws.Request
		if err := ws.ReadJSON(conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			return
		}

		if err := h.handle(ctx, conn, wsLog, sessionID, msg); err != nil {
			wsLog.Debug().Err(err).Msg("Write failed, closing")
			return
		}
	}
}

// handle applies one client action. It returns an error only when the
// connection can no longer be written to.
func (h *WSHandler) handle(ctx context.Context, conn *websocket.Conn, log zerolog.Logger, sessionID string, msg ws.Request) error {
	var (
		changed int
		err     error
	)

	switch msg.Action {
	case ws.ActionPing:
		return ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})

	case ws.ActionMarkRead:
		v, ok, markErr := h.portal.MarkRead(ctx, sessionID, msg.ID)
		if markErr == nil {
			if ok {
				changed = 1
			}
			return ws.WriteTyped(conn, ws.NewInboxEvent(ws.EventUpdated, v, changed))
		}
		err = markErr

	case ws.ActionMarkAllRead:
		v, n, markErr := h.portal.MarkAllRead(ctx, sessionID)
		if markErr == nil {
			return ws.WriteTyped(conn, ws.NewInboxEvent(ws.EventUpdated, v, n))
		}
		err = markErr

	default:
		log.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
		return ws.WriteError(conn, string(response.ErrInvalidPayload), "unknown action: "+string(msg.Action))
	}

	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("action", string(msg.Action)).Msg("Action failed")
	}
	return ws.WriteError(conn, string(code), response.GetMessage(code))
}
