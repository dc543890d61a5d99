// Package chathub pushes chat events to connected websocket clients. It is
// a best-effort notification channel on top of the durable message store:
// a user who is not connected simply fetches history over HTTP.
package chathub

import "log"

// Event is the JSON frame written to a client's socket.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Notification addresses an event to a single user.
type Notification struct {
	UserID uint
	Event  Event
}

// Manager owns the registry of connected clients. All registry access
// happens on the Run goroutine; other goroutines talk to it via channels.
type Manager struct {
	Clients map[uint]*Client

	RegisterCh   chan *Client
	UnregisterCh chan *Client
	NotifyCh     chan Notification
}

func NewManager() *Manager {
	return &Manager{
		Clients:      make(map[uint]*Client),
		RegisterCh:   make(chan *Client),
		UnregisterCh: make(chan *Client),
		NotifyCh:     make(chan Notification, 64),
	}
}

// Run is the dispatcher loop. One connection per user: a new registration
// replaces the previous one.
func (m *Manager) Run() {
	log.Println("Chat hub started.")
	for {
		select {
		case client := <-m.RegisterCh:
			if old, ok := m.Clients[client.UserID]; ok {
				close(old.Send)
			}
			m.Clients[client.UserID] = client

		case client := <-m.UnregisterCh:
			if current, ok := m.Clients[client.UserID]; ok && current == client {
				delete(m.Clients, client.UserID)
				close(client.Send)
			}

		case n := <-m.NotifyCh:
			client, ok := m.Clients[n.UserID]
			if !ok {
				continue
			}
			select {
			case client.Send <- n.Event:
			default:
				// Slow consumer; the event is dropped, history stays in the store.
			}
		}
	}
}

// Notify queues an event for the user, if connected.
func (m *Manager) Notify(userID uint, ev Event) {
	m.NotifyCh <- Notification{UserID: userID, Event: ev}
}
