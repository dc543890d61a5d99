package rental_test

import (
	"testing"

	"roomchha/backend/internal/models"
	"roomchha/backend/internal/rental"
	"roomchha/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	ownerID  = uint(10)
	renterID = uint(20)
	roomID   = uint(7)
)

func room() *models.Room {
	return &models.Room{ID: roomID, OwnerID: ownerID, City: "Kathmandu"}
}

func TestSubmit_CreatesPendingApplication(t *testing.T) {
	store := new(MockStore)
	svc := rental.NewApplicationService(store)

	store.On("GetRoomByID", roomID).Return(room(), nil)
	store.On("CreateApplication", mock.MatchedBy(func(app *models.Application) bool {
		return app.RoomID == roomID && app.RenterID == renterID && app.Status == models.ApplicationPending
	})).Return(nil)

	app, err := svc.Submit(roomID, renterID)

	assert.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, app.Status)
	store.AssertExpectations(t)
}

func TestSubmit_MissingRoom(t *testing.T) {
	store := new(MockStore)
	svc := rental.NewApplicationService(store)

	store.On("GetRoomByID", roomID).Return(nil, storage.ErrNotFound)

	_, err := svc.Submit(roomID, renterID)

	assert.ErrorIs(t, err, storage.ErrNotFound)
	store.AssertNotCalled(t, "CreateApplication", mock.Anything)
}

func TestSubmit_DuplicatesPersistAsSeparateRows(t *testing.T) {
	store := new(MockStore)
	svc := rental.NewApplicationService(store)

	store.On("GetRoomByID", roomID).Return(room(), nil)
	store.On("CreateApplication", mock.AnythingOfType("*models.Application")).Return(nil)

	_, err1 := svc.Submit(roomID, renterID)
	_, err2 := svc.Submit(roomID, renterID)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	store.AssertNumberOfCalls(t, "CreateApplication", 2)
}

func TestAccept_SetsAccepted(t *testing.T) {
	store := new(MockStore)
	svc := rental.NewApplicationService(store)

	app := &models.Application{ID: 1, RoomID: roomID, RenterID: renterID, Status: models.ApplicationPending}
	store.On("GetApplicationByID", uint(1)).Return(app, nil)
	store.On("GetRoomByID", roomID).Return(room(), nil)
	store.On("GetAcceptedApplicationForRoom", roomID).Return(nil, storage.ErrNotFound)
	store.On("UpdateApplicationStatus", uint(1), models.ApplicationAccepted).Return(nil)

	err := svc.Accept(1, ownerID)

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestAccept_ByNonOwner(t *testing.T) {
	store := new(MockStore)
	svc := rental.NewApplicationService(store)

	app := &models.Application{ID: 1, RoomID: roomID, RenterID: renterID, Status: models.ApplicationPending}
	store.On("GetApplicationByID", uint(1)).Return(app, nil)
	store.On("GetRoomByID", roomID).Return(room(), nil)

	err := svc.Accept(1, uint(99))

	assert.ErrorIs(t, err, rental.ErrUnauthorized)
	store.AssertNotCalled(t, "UpdateApplicationStatus", mock.Anything, mock.Anything)
}

func TestAccept_RoomAlreadyTaken(t *testing.T) {
	store := new(MockStore)
	svc := rental.NewApplicationService(store)

	app := &models.Application{ID: 2, RoomID: roomID, RenterID: renterID, Status: models.ApplicationPending}
	other := &models.Application{ID: 1, RoomID: roomID, RenterID: uint(33), Status: models.ApplicationAccepted}
	store.On("GetApplicationByID", uint(2)).Return(app, nil)
	store.On("GetRoomByID", roomID).Return(room(), nil)
	store.On("GetAcceptedApplicationForRoom", roomID).Return(other, nil)

	err := svc.Accept(2, ownerID)

	assert.ErrorIs(t, err, rental.ErrRoomTaken)
	store.AssertNotCalled(t, "UpdateApplicationStatus", mock.Anything, mock.Anything)
}

// Transitions are permissive about the current status: a rejected row can
// be accepted later, matching the original workflow.
func TestAccept_AfterReject(t *testing.T) {
	store := new(MockStore)
	svc := rental.NewApplicationService(store)

	app := &models.Application{ID: 1, RoomID: roomID, RenterID: renterID, Status: models.ApplicationRejected}
	store.On("GetApplicationByID", uint(1)).Return(app, nil)
	store.On("GetRoomByID", roomID).Return(room(), nil)
	store.On("GetAcceptedApplicationForRoom", roomID).Return(nil, storage.ErrNotFound)
	store.On("UpdateApplicationStatus", uint(1), models.ApplicationAccepted).Return(nil)

	err := svc.Accept(1, ownerID)

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestAccept_IdempotentOnOwnRow(t *testing.T) {
	store := new(MockStore)
	svc := rental.NewApplicationService(store)

	app := &models.Application{ID: 1, RoomID: roomID, RenterID: renterID, Status: models.ApplicationAccepted}
	store.On("GetApplicationByID", uint(1)).Return(app, nil)
	store.On("GetRoomByID", roomID).Return(room(), nil)
	store.On("GetAcceptedApplicationForRoom", roomID).Return(app, nil)
	store.On("UpdateApplicationStatus", uint(1), models.ApplicationAccepted).Return(nil)

	err := svc.Accept(1, ownerID)

	assert.NoError(t, err)
}

func TestReject_SetsRejected(t *testing.T) {
	store := new(MockStore)
	svc := rental.NewApplicationService(store)

	app := &models.Application{ID: 1, RoomID: roomID, RenterID: renterID, Status: models.ApplicationPending}
	store.On("GetApplicationByID", uint(1)).Return(app, nil)
	store.On("GetRoomByID", roomID).Return(room(), nil)
	store.On("UpdateApplicationStatus", uint(1), models.ApplicationRejected).Return(nil)

	err := svc.Reject(1, ownerID)

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestReject_ByNonOwner(t *testing.T) {
	store := new(MockStore)
	svc := rental.NewApplicationService(store)

	app := &models.Application{ID: 1, RoomID: roomID, RenterID: renterID, Status: models.ApplicationPending}
	store.On("GetApplicationByID", uint(1)).Return(app, nil)
	store.On("GetRoomByID", roomID).Return(room(), nil)

	err := svc.Reject(1, uint(99))

	assert.ErrorIs(t, err, rental.ErrUnauthorized)
	store.AssertNotCalled(t, "UpdateApplicationStatus", mock.Anything, mock.Anything)
}

func TestAccept_MissingApplication(t *testing.T) {
	store := new(MockStore)
	svc := rental.NewApplicationService(store)

	store.On("GetApplicationByID", uint(404)).Return(nil, storage.ErrNotFound)

	err := svc.Accept(404, ownerID)

	assert.ErrorIs(t, err, storage.ErrNotFound)
}
