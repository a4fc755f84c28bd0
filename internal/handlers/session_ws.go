package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/AnshRaj112/mindjournal-backend/internal/logger"
	"github.com/AnshRaj112/mindjournal-backend/internal/models"
)

const (
	wsPongWait   = 90 * time.Second
	wsPingPeriod = 30 * time.Second
	wsWriteWait  = 10 * time.Second
)

var sessionUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS for WebSocket is handled at the HTTP layer already.
		return true
	},
}

// SessionWebSocket streams the caller's session events (login elsewhere,
// logout, profile changes, account deletion). Browsers cannot set headers on
// a WebSocket handshake, so the token may also come from the query string.
func (h *Handler) SessionWebSocket(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		token = r.URL.Query().Get("token")
	}

	ctx, cancel := withTimeout(r)
	user, ok := h.svc.Users.Current(ctx, token)
	cancel()
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Message: "Authentication required", Redirect: "/login"})
		return
	}

	log := logger.FromRequest(r)
	events := make(chan models.SessionEvent, 16)
	unsubscribe := h.svc.Sessions.Subscribe(func(e models.SessionEvent) {
		if e.UserID != user.ID {
			return
		}
		select {
		case events <- e:
		default:
			log.Warn().Str("user_id", user.ID).Msg("dropping session event for slow client")
		}
	})
	defer unsubscribe()

	// Subscribed before the handshake completes so no event slips past a fresh client.
	conn, err := sessionUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	done := make(chan struct{})

	// Writer goroutine: the only writer on conn.
	go func() {
		ticker := time.NewTicker(wsPingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case e := <-events:
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteJSON(e); err != nil {
					conn.Close()
					return
				}
				if e.Type == models.SessionEventAccountDeleted {
					conn.Close()
					return
				}
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
					conn.Close()
					return
				}
			}
		}
	}()
	defer close(done)

	conn.SetReadLimit(4 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	// Client messages carry nothing; reading only drives pongs and close detection.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
