package storage

import "roomchha/backend/internal/models"

func (s *Service) CreateMessage(msg *models.Message) error {
	return s.DB.Create(msg).Error
}

// ListMessagesByRoom returns the room's full history in insertion order,
// joined with each sender's display data. No pagination.
func (s *Service) ListMessagesByRoom(roomID uint) ([]models.MessageWithSender, error) {
	rows := []models.MessageWithSender{}
	err := s.DB.Model(&models.Message{}).
		Select("messages.*, users.name AS sender_name, users.profile_image AS sender_image").
		Joins("JOIN users ON users.id = messages.sender_id").
		Where("messages.room_id = ?", roomID).
		Order("messages.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkMessagesRead flips every unread message addressed to the receiver in
// the room to read. The flag never reverts.
func (s *Service) MarkMessagesRead(roomID, receiverID uint) error {
	return s.DB.Model(&models.Message{}).
		Where("room_id = ? AND receiver_id = ? AND is_read = ?", roomID, receiverID, false).
		Update("is_read", true).Error
}

// CountUnreadMessages is the notification badge: unread messages addressed
// to the user across all rooms.
func (s *Service) CountUnreadMessages(userID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
