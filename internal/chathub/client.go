package chathub

import (
	"github.com/gorilla/websocket"
)

// Client is one user's websocket connection. The socket is push-only:
// inbound frames are discarded, a read error unregisters the client.
type Client struct {
	Hub    *Manager
	UserID uint
	Conn   *websocket.Conn
	Send   chan Event
}

// Run starts the client's pumps and blocks until the connection dies.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	for ev := range c.Send {
		if err := c.Conn.WriteJSON(ev); err != nil {
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
