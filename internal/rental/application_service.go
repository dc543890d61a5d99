// Package rental holds the workflow core: the application state machine and
// the per-room chat rules that an accepted application unlocks.
package rental

import (
	"errors"

	"roomchha/backend/internal/models"
	"roomchha/backend/internal/storage"
)

var (
	// ErrUnauthorized means the caller's identity or role does not permit
	// the operation. Handlers turn it into the login redirect, never a
	// hard error.
	ErrUnauthorized = errors.New("caller may not perform this operation")
	// ErrChatLocked means the room has no accepted application unlocking
	// a chat channel for the caller.
	ErrChatLocked = errors.New("chat requires an accepted application")
	// ErrRoomTaken means the room already has a different accepted
	// application; a room carries at most one active chat channel.
	ErrRoomTaken = errors.New("room already has an accepted application")
)

// ApplicationStore is the slice of storage the application workflow needs.
type ApplicationStore interface {
	GetRoomByID(id uint) (*models.Room, error)
	CreateApplication(app *models.Application) error
	GetApplicationByID(id uint) (*models.Application, error)
	UpdateApplicationStatus(id uint, status string) error
	GetAcceptedApplicationForRoom(roomID uint) (*models.Application, error)
}

// ApplicationService drives an application through
// pending -> accepted | rejected. Transitions are permissive about the
// current status (re-accepting a rejected row is allowed, as in the original
// workflow) but always verify that the acting owner owns the room.
type ApplicationService struct {
	store ApplicationStore
}

func NewApplicationService(store ApplicationStore) *ApplicationService {
	return &ApplicationService{store: store}
}

// Submit files a new pending application by the renter for the room.
// Duplicates are intentional: a renter may hold several applications for
// the same room and each persists as its own row.
func (s *ApplicationService) Submit(roomID, renterID uint) (*models.Application, error) {
	if _, err := s.store.GetRoomByID(roomID); err != nil {
		return nil, err
	}
	app := &models.Application{
		RoomID:   roomID,
		RenterID: renterID,
		Status:   models.ApplicationPending,
	}
	if err := s.store.CreateApplication(app); err != nil {
		return nil, err
	}
	return app, nil
}

// Accept moves the application to accepted. Fails with ErrRoomTaken when a
// different application on the same room is already accepted, keeping the
// room's chat channel unambiguous.
func (s *ApplicationService) Accept(appID, ownerID uint) error {
	app, err := s.loadOwned(appID, ownerID)
	if err != nil {
		return err
	}

	accepted, err := s.store.GetAcceptedApplicationForRoom(app.RoomID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if accepted != nil && accepted.ID != app.ID {
		return ErrRoomTaken
	}

	return s.store.UpdateApplicationStatus(app.ID, models.ApplicationAccepted)
}

// Reject moves the application to rejected.
func (s *ApplicationService) Reject(appID, ownerID uint) error {
	app, err := s.loadOwned(appID, ownerID)
	if err != nil {
		return err
	}
	return s.store.UpdateApplicationStatus(app.ID, models.ApplicationRejected)
}

// loadOwned fetches the application and verifies the acting owner owns its
// room; ErrUnauthorized otherwise.
func (s *ApplicationService) loadOwned(appID, ownerID uint) (*models.Application, error) {
	app, err := s.store.GetApplicationByID(appID)
	if err != nil {
		return nil, err
	}
	room, err := s.store.GetRoomByID(app.RoomID)
	if err != nil {
		return nil, err
	}
	if room.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}
	return app, nil
}
