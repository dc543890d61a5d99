package storage

import (
	"errors"

	"roomchha/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Service) CreateRoom(room *models.Room) error {
	return s.DB.Create(room).Error
}

func (s *Service) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// ListRoomsByCity returns the public listing for a city: approved rooms only.
func (s *Service) ListRoomsByCity(city string) ([]models.Room, error) {
	rooms := []models.Room{}
	err := s.DB.Where("city = ? AND approved = ?", city, true).Order("id").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// ListPendingRooms returns rooms awaiting admin approval, with owner data.
func (s *Service) ListPendingRooms() ([]models.RoomWithOwner, error) {
	rows := []models.RoomWithOwner{}
	err := s.DB.Model(&models.Room{}).
		Select("rooms.*, users.name AS owner_name, users.email AS owner_email").
		Joins("JOIN users ON users.id = rooms.owner_id").
		Where("rooms.approved = ?", false).
		Order("rooms.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FilterRooms is the admin view over every room. city narrows to one city
// when non-empty; status is "approved", "pending" or empty for all rows.
func (s *Service) FilterRooms(city, status string) ([]models.RoomWithOwner, error) {
	q := s.DB.Model(&models.Room{}).
		Select("rooms.*, users.name AS owner_name, users.email AS owner_email").
		Joins("JOIN users ON users.id = rooms.owner_id")

	if city != "" {
		q = q.Where("rooms.city = ?", city)
	}
	switch status {
	case "approved":
		q = q.Where("rooms.approved = ?", true)
	case "pending":
		q = q.Where("rooms.approved = ?", false)
	}

	rows := []models.RoomWithOwner{}
	if err := q.Order("rooms.id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) ListCities() ([]string, error) {
	var cities []string
	err := s.DB.Model(&models.Room{}).Distinct().Order("city").Pluck("city", &cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (s *Service) ApproveRoom(id uint) error {
	res := s.DB.Model(&models.Room{}).Where("id = ?", id).Update("approved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRoom removes the listing outright. Admin rejection is a hard delete,
// not a status flag.
func (s *Service) DeleteRoom(id uint) error {
	res := s.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) CountPendingRooms() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Room{}).Where("approved = ?", false).Count(&count).Error
	return count, err
}
