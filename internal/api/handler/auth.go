package handler

import (
	"net/http"
	"time"

	"roomchha/backend/internal/api/middleware"
	"roomchha/backend/internal/models"
	"roomchha/backend/internal/upload"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,oneof=admin owner renter"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register creates a new account. The store's uniqueness constraint on
// email is the only duplicate guard; a violation surfaces as a conflict.
func (h *Handler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		ProfileImage: models.DefaultProfileImage,
	}
	if err := user.SetPassword(req.Password); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.Storage.CreateUser(&user); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and establishes a session. Wrong email and
// wrong password are indistinguishable to the caller.
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Storage.GetUserByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, tokenID, err := h.issueToken(user)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.Storage.SaveSession(tokenID, user.ID, h.SessionTTL); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Logout deletes the session unconditionally; the token dies with it.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Storage.DeleteSession(middleware.SessionID(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

// Dashboard returns the caller's badge data: the unread-message count and,
// for admins, the alert count of pending rooms plus pending applications.
func (h *Handler) Dashboard(c *gin.Context) {
	userID := middleware.MustUserID(c)
	role := middleware.MustRole(c)

	unread, err := h.Chat.UnreadCount(userID)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := gin.H{"role": role, "unread_count": unread}
	if role == models.RoleAdmin {
		pendingRooms, err := h.Storage.CountPendingRooms()
		if err != nil {
			h.fail(c, err)
			return
		}
		pendingApps, err := h.Storage.CountPendingApplications()
		if err != nil {
			h.fail(c, err)
			return
		}
		resp["admin_alerts"] = pendingRooms + pendingApps
	}
	c.JSON(http.StatusOK, resp)
}

// Profile returns the caller's own record.
func (h *Handler) Profile(c *gin.Context) {
	user, err := h.Storage.GetUserByID(middleware.MustUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfileImage replaces the caller's profile photo. A request without
// a usable file entry is silently a no-op, as in the original form flow.
func (h *Handler) UpdateProfileImage(c *gin.Context) {
	userID := middleware.MustUserID(c)

	fh, err := c.FormFile("photo")
	if err == nil && fh.Filename != "" {
		name, err := h.Uploads.Save(upload.ProfileArea, fh)
		if err != nil {
			h.fail(c, err)
			return
		}
		if name != "" {
			if err := h.Storage.UpdateUserProfileImage(userID, name); err != nil {
				h.fail(c, err)
				return
			}
		}
	}

	user, err := h.Storage.GetUserByID(userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// issueToken mints the login JWT. The jti names the Redis session so logout
// can invalidate the token server-side.
func (h *Handler) issueToken(user *models.User) (string, string, error) {
	tokenID := uuid.NewString()
	claims := middleware.AuthClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    "roomchha-backend",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.SessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.JWTSecret))
	return signed, tokenID, err
}
