package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"roomchha/backend/internal/api/middleware"
	"roomchha/backend/internal/chathub"
	"roomchha/backend/internal/rental"
	"roomchha/backend/internal/storage"
	"roomchha/backend/internal/upload"

	"github.com/gin-gonic/gin"
)

// Handler wires the HTTP surface to storage, the workflow services, the
// chat hub and the upload saver.
type Handler struct {
	Storage    storage.Storage
	Apps       *rental.ApplicationService
	Chat       *rental.ChatService
	Hub        *chathub.Manager
	Uploads    *upload.Saver
	JWTSecret  string
	SessionTTL time.Duration
}

func NewHandler(s storage.Storage, apps *rental.ApplicationService, chat *rental.ChatService,
	hub *chathub.Manager, uploads *upload.Saver, jwtSecret string, sessionTTL time.Duration) *Handler {
	return &Handler{
		Storage:    s,
		Apps:       apps,
		Chat:       chat,
		Hub:        hub,
		Uploads:    uploads,
		JWTSecret:  jwtSecret,
		SessionTTL: sessionTTL,
	}
}

// fail maps workflow and storage errors onto the HTTP taxonomy: NotFound is
// a distinct client error, authorization failures degrade to the login
// redirect, everything else is fatal to this request only.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, rental.ErrUnauthorized):
		middleware.Deny(c)
	case errors.Is(err, rental.ErrChatLocked):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":    "chat available only after approval",
			"redirect": "/login",
		})
	case errors.Is(err, rental.ErrRoomTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "room already has an accepted application"})
	case errors.Is(err, storage.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	default:
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// idParam parses the numeric :id path segment.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
