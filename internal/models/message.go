package models

import "time"

// Message is a chat message inside a room's channel. IsRead transitions
// false to true exactly once, when the receiver opens the chat; messages
// are never edited or deleted.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RoomID     uint      `gorm:"not null;index:idx_room_receiver" json:"room_id"`
	SenderID   uint      `gorm:"not null" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index:idx_room_receiver" json:"receiver_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
}
