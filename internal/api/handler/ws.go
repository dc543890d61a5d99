package handler

import (
	"net/http"

	"roomchha/backend/internal/api/middleware"
	"roomchha/backend/internal/chathub"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and registers the caller with the
// chat hub so new messages addressed to them are pushed live.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
		return
	}

	client := &chathub.Client{
		Hub:    h.Hub,
		UserID: middleware.MustUserID(c),
		Conn:   conn,
		Send:   make(chan chathub.Event, 16),
	}
	h.Hub.RegisterCh <- client
	client.Run()
}
