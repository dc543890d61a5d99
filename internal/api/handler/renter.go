package handler

import (
	"errors"
	"net/http"

	"roomchha/backend/internal/api/middleware"
	"roomchha/backend/internal/models"
	"roomchha/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// RoomsByCity is the public city listing: approved rooms only.
func (h *Handler) RoomsByCity(c *gin.Context) {
	rooms, err := h.Storage.ListRoomsByCity(c.Param("city"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"city": c.Param("city"), "rooms": rooms})
}

// RoomDetail shows a room regardless of approval state to any caller. A
// renter additionally sees the status of their own application, if any.
func (h *Handler) RoomDetail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	room, err := h.Storage.GetRoomByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	owner, err := h.Storage.GetUserByID(room.OwnerID)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := gin.H{"room": room, "owner": owner}
	if callerID, role, authed := middleware.Caller(c); authed && role == models.RoleRenter {
		app, err := h.Storage.GetApplicationForRoomAndRenter(id, callerID)
		switch {
		case err == nil:
			resp["application_status"] = app.Status
		case !errors.Is(err, storage.ErrNotFound):
			h.fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Apply files a pending application by the calling renter. Duplicate
// applications for the same room are accepted as separate rows.
func (h *Handler) Apply(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	app, err := h.Apps.Submit(id, middleware.MustUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": app, "redirect": "/renter/applications"})
}

// RenterApplications lists the caller's applications with their rooms.
func (h *Handler) RenterApplications(c *gin.Context) {
	apps, err := h.Storage.ListApplicationsByRenter(middleware.MustUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
