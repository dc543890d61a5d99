package storage

import (
	"errors"

	"roomchha/backend/internal/models"

	"gorm.io/gorm"
)

const applicationDetailSelect = "applications.*, rooms.city AS room_city, rooms.area AS room_area, " +
	"rooms.rent AS room_rent, users.name AS renter_name, users.email AS renter_email"

func (s *Service) CreateApplication(app *models.Application) error {
	return s.DB.Create(app).Error
}

func (s *Service) GetApplicationByID(id uint) (*models.Application, error) {
	var app models.Application
	if err := s.DB.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (s *Service) UpdateApplicationStatus(id uint, status string) error {
	res := s.DB.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAcceptedApplicationForRoom returns the room's single accepted
// application, the one that anchors its chat channel.
func (s *Service) GetAcceptedApplicationForRoom(roomID uint) (*models.Application, error) {
	var app models.Application
	err := s.DB.Where("room_id = ? AND status = ?", roomID, models.ApplicationAccepted).
		Order("id").First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetApplicationForRoomAndRenter returns the renter's earliest application
// for the room, used to show the status on the room detail page.
func (s *Service) GetApplicationForRoomAndRenter(roomID, renterID uint) (*models.Application, error) {
	var app models.Application
	err := s.DB.Where("room_id = ? AND renter_id = ?", roomID, renterID).
		Order("id").First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *Service) HasAcceptedApplication(roomID, renterID uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Application{}).
		Where("room_id = ? AND renter_id = ? AND status = ?", roomID, renterID, models.ApplicationAccepted).
		Count(&count).Error
	return count > 0, err
}

func (s *Service) ListApplications() ([]models.ApplicationDetail, error) {
	return s.listApplicationDetails(s.DB)
}

// ListApplicationsByOwner returns applications for every room the owner holds.
func (s *Service) ListApplicationsByOwner(ownerID uint) ([]models.ApplicationDetail, error) {
	return s.listApplicationDetails(s.DB.Where("rooms.owner_id = ?", ownerID))
}

func (s *Service) ListApplicationsByRenter(renterID uint) ([]models.ApplicationDetail, error) {
	return s.listApplicationDetails(s.DB.Where("applications.renter_id = ?", renterID))
}

func (s *Service) listApplicationDetails(tx *gorm.DB) ([]models.ApplicationDetail, error) {
	rows := []models.ApplicationDetail{}
	err := tx.Model(&models.Application{}).
		Select(applicationDetailSelect).
		Joins("JOIN rooms ON rooms.id = applications.room_id").
		Joins("JOIN users ON users.id = applications.renter_id").
		Order("applications.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) CountPendingApplications() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Application{}).
		Where("status = ?", models.ApplicationPending).Count(&count).Error
	return count, err
}
