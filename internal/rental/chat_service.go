package rental

import (
	"errors"

	"roomchha/backend/internal/models"
	"roomchha/backend/internal/storage"
)

// Caller is the per-request identity resolved by the access gate. It is
// passed explicitly into every workflow operation; there is no ambient
// session state.
type Caller struct {
	ID   uint
	Role string
}

// ChatStore is the slice of storage the chat workflow needs.
type ChatStore interface {
	GetRoomByID(id uint) (*models.Room, error)
	GetUserByID(id uint) (*models.User, error)
	GetAcceptedApplicationForRoom(roomID uint) (*models.Application, error)
	HasAcceptedApplication(roomID, renterID uint) (bool, error)
	CreateMessage(msg *models.Message) error
	MarkMessagesRead(roomID, receiverID uint) error
	ListMessagesByRoom(roomID uint) ([]models.MessageWithSender, error)
	CountUnreadMessages(userID uint) (int64, error)
}

// ChatView is what opening a chat returns: the room, the counterpart's
// display data and the full history in insertion order.
type ChatView struct {
	Room     *models.Room               `json:"room"`
	Partner  *models.User               `json:"partner"`
	Messages []models.MessageWithSender `json:"messages"`
}

// ChatService guards the per-room chat channel. A room's channel exists
// only once an application on it is accepted: the renter side is the
// accepted applicant, the owner side is the room's owner.
type ChatService struct {
	store ChatStore
}

func NewChatService(store ChatStore) *ChatService {
	return &ChatService{store: store}
}

// Open resolves the caller's counterpart, marks every unread message
// addressed to the caller in the room as read, and returns the history.
func (s *ChatService) Open(roomID uint, caller Caller) (*ChatView, error) {
	room, err := s.store.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}
	partnerID, err := s.resolvePartner(room, caller)
	if err != nil {
		return nil, err
	}

	if err := s.store.MarkMessagesRead(roomID, caller.ID); err != nil {
		return nil, err
	}
	messages, err := s.store.ListMessagesByRoom(roomID)
	if err != nil {
		return nil, err
	}
	partner, err := s.store.GetUserByID(partnerID)
	if err != nil {
		return nil, err
	}

	return &ChatView{Room: room, Partner: partner, Messages: messages}, nil
}

// Send appends a message from the caller to their counterpart, unread.
func (s *ChatService) Send(roomID uint, caller Caller, text string) (*models.Message, error) {
	room, err := s.store.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}
	partnerID, err := s.resolvePartner(room, caller)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		RoomID:     roomID,
		SenderID:   caller.ID,
		ReceiverID: partnerID,
		Text:       text,
		IsRead:     false,
	}
	if err := s.store.CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// UnreadCount is the caller's notification badge across all rooms.
func (s *ChatService) UnreadCount(userID uint) (int64, error) {
	return s.store.CountUnreadMessages(userID)
}

// resolvePartner decides who sits on the other side of the channel, or why
// the caller may not enter. A renter needs their own accepted application;
// an owner needs to own the room and have accepted someone.
func (s *ChatService) resolvePartner(room *models.Room, caller Caller) (uint, error) {
	switch caller.Role {
	case models.RoleRenter:
		ok, err := s.store.HasAcceptedApplication(room.ID, caller.ID)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrChatLocked
		}
		return room.OwnerID, nil

	case models.RoleOwner:
		if room.OwnerID != caller.ID {
			return 0, ErrUnauthorized
		}
		app, err := s.store.GetAcceptedApplicationForRoom(room.ID)
		if errors.Is(err, storage.ErrNotFound) {
			return 0, ErrChatLocked
		}
		if err != nil {
			return 0, err
		}
		return app.RenterID, nil

	default:
		return 0, ErrUnauthorized
	}
}
