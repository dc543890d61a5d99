package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PendingRooms lists rooms awaiting approval, with their owners.
func (h *Handler) PendingRooms(c *gin.Context) {
	rooms, err := h.Storage.ListPendingRooms()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// ApproveRoom flips the room's approval gate; it becomes publicly listable.
func (h *Handler) ApproveRoom(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Storage.ApproveRoom(id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/admin/rooms"})
}

// RejectRoom deletes the listing outright; rejection is not a status flag.
func (h *Handler) RejectRoom(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Storage.DeleteRoom(id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/admin/rooms"})
}

// AllRooms is the admin room browser: every room joined with its owner,
// optionally narrowed by ?city= and ?status=approved|pending.
func (h *Handler) AllRooms(c *gin.Context) {
	city := c.Query("city")
	status := c.Query("status")

	rooms, err := h.Storage.FilterRooms(city, status)
	if err != nil {
		h.fail(c, err)
		return
	}
	cities, err := h.Storage.ListCities()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rooms":           rooms,
		"cities":          cities,
		"selected_city":   city,
		"selected_status": status,
	})
}

// AllApplications lists every application across all rooms.
func (h *Handler) AllApplications(c *gin.Context) {
	apps, err := h.Storage.ListApplications()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
