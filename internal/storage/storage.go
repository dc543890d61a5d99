package storage

import (
	"context"
	"errors"
	"time"

	"roomchha/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Sentinel errors translated from the underlying stores. Handlers map
// ErrNotFound to 404 and ErrDuplicateEmail to a validation failure; every
// other storage error is fatal to the current request.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type Storage interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUserProfileImage(id uint, filename string) error
	EnsureAdmin(name, email, password string) error

	CreateRoom(room *models.Room) error
	GetRoomByID(id uint) (*models.Room, error)
	ListRoomsByCity(city string) ([]models.Room, error)
	ListPendingRooms() ([]models.RoomWithOwner, error)
	FilterRooms(city, status string) ([]models.RoomWithOwner, error)
	ListCities() ([]string, error)
	ApproveRoom(id uint) error
	DeleteRoom(id uint) error
	CountPendingRooms() (int64, error)

	CreateApplication(app *models.Application) error
	GetApplicationByID(id uint) (*models.Application, error)
	UpdateApplicationStatus(id uint, status string) error
	GetAcceptedApplicationForRoom(roomID uint) (*models.Application, error)
	GetApplicationForRoomAndRenter(roomID, renterID uint) (*models.Application, error)
	HasAcceptedApplication(roomID, renterID uint) (bool, error)
	ListApplications() ([]models.ApplicationDetail, error)
	ListApplicationsByOwner(ownerID uint) ([]models.ApplicationDetail, error)
	ListApplicationsByRenter(renterID uint) ([]models.ApplicationDetail, error)
	CountPendingApplications() (int64, error)

	CreateMessage(msg *models.Message) error
	ListMessagesByRoom(roomID uint) ([]models.MessageWithSender, error)
	MarkMessagesRead(roomID, receiverID uint) error
	CountUnreadMessages(userID uint) (int64, error)

	SaveSession(tokenID string, userID uint, ttl time.Duration) error
	SessionAlive(tokenID string) (bool, error)
	DeleteSession(tokenID string) error
}

// Service is the durable-store facade: records live in PostgreSQL, login
// sessions in Redis.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

func (s *Service) CreateUser(user *models.User) error {
	err := s.DB.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) UpdateUserProfileImage(id uint, filename string) error {
	res := s.DB.Model(&models.User{}).Where("id = ?", id).Update("profile_image", filename)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureAdmin seeds the administrator account. Idempotent: it does nothing
// when any user with the admin role already exists.
func (s *Service) EnsureAdmin(name, email, password string) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	admin := models.User{
		Name:         name,
		Email:        email,
		Role:         models.RoleAdmin,
		ProfileImage: models.DefaultProfileImage,
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	return s.CreateUser(&admin)
}
