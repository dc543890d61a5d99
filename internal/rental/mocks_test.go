package rental_test

import (
	"roomchha/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock covering both ApplicationStore and ChatStore,
// so one fake backs every workflow test.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetRoomByID(id uint) (*models.Room, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockStore) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) CreateApplication(app *models.Application) error {
	args := m.Called(app)
	return args.Error(0)
}

func (m *MockStore) GetApplicationByID(id uint) (*models.Application, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockStore) UpdateApplicationStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockStore) GetAcceptedApplicationForRoom(roomID uint) (*models.Application, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockStore) HasAcceptedApplication(roomID, renterID uint) (bool, error) {
	args := m.Called(roomID, renterID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) CreateMessage(msg *models.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStore) MarkMessagesRead(roomID, receiverID uint) error {
	args := m.Called(roomID, receiverID)
	return args.Error(0)
}

func (m *MockStore) ListMessagesByRoom(roomID uint) ([]models.MessageWithSender, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MessageWithSender), args.Error(1)
}

func (m *MockStore) CountUnreadMessages(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}
