package handler

import (
	"net/http"

	"roomchha/backend/internal/api/middleware"
	"roomchha/backend/internal/models"
	"roomchha/backend/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type addRoomReq struct {
	City        string `form:"city" binding:"required"`
	Area        string `form:"area" binding:"required"`
	Rent        int    `form:"rent" binding:"required"`
	RoomType    string `form:"room_type" binding:"required"`
	Facilities  string `form:"facilities"`
	Description string `form:"description"`
}

// AddRoom creates a listing for the calling owner, always unapproved, with
// zero or more uploaded images. Empty file entries are skipped; the stored
// filenames are recorded on the room in upload order.
func (h *Handler) AddRoom(c *gin.Context) {
	var req addRoomReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var names []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		names, err = h.Uploads.SaveAll(upload.RoomArea, form.File["images"])
		if err != nil {
			h.fail(c, err)
			return
		}
	}

	room := models.Room{
		OwnerID:     middleware.MustUserID(c),
		City:        req.City,
		Area:        req.Area,
		Rent:        req.Rent,
		RoomType:    req.RoomType,
		Facilities:  req.Facilities,
		Description: req.Description,
		Approved:    false,
		Images:      pq.StringArray(names),
	}
	if err := h.Storage.CreateRoom(&room); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"room": room, "redirect": "/dashboard"})
}

// OwnerApplications lists applications on every room the caller owns.
func (h *Handler) OwnerApplications(c *gin.Context) {
	apps, err := h.Storage.ListApplicationsByOwner(middleware.MustUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// AcceptApplication accepts the application after verifying the caller owns
// its room and the room has no other accepted application.
func (h *Handler) AcceptApplication(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Apps.Accept(id, middleware.MustUserID(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/owner/applications"})
}

// RejectApplication rejects the application after the same ownership check.
func (h *Handler) RejectApplication(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Apps.Reject(id, middleware.MustUserID(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/owner/applications"})
}
