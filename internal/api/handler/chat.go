package handler

import (
	"net/http"

	"roomchha/backend/internal/api/middleware"
	"roomchha/backend/internal/chathub"
	"roomchha/backend/internal/rental"

	"github.com/gin-gonic/gin"
)

func caller(c *gin.Context) rental.Caller {
	return rental.Caller{ID: middleware.MustUserID(c), Role: middleware.MustRole(c)}
}

// OpenChat marks the caller's unread messages in the room as read and
// returns the full history with the counterpart's display data.
func (h *Handler) OpenChat(c *gin.Context) {
	roomID, ok := idParam(c, "id")
	if !ok {
		return
	}
	view, err := h.Chat.Open(roomID, caller(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type sendMessageReq struct {
	Text string `json:"text" binding:"required"`
}

// SendMessage appends a message to the room's channel and pushes it to the
// receiver's websocket when connected.
func (h *Handler) SendMessage(c *gin.Context) {
	roomID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.Chat.Send(roomID, caller(c), req.Text)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.Hub.Notify(msg.ReceiverID, chathub.Event{Type: "message:new", Data: msg})

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
