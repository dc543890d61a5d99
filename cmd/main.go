package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"roomchha/backend/internal/api/handler"
	"roomchha/backend/internal/api/middleware"
	"roomchha/backend/internal/chathub"
	"roomchha/backend/internal/config"
	"roomchha/backend/internal/models"
	"roomchha/backend/internal/rental"
	"roomchha/backend/internal/storage"
	"roomchha/backend/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Application{},
		&models.Message{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Roomchha Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	// Explicit one-shot admin seeding, not a request-time branch.
	if err := s.EnsureAdmin(cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	uploads, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directories: %v", err)
	}

	hub := chathub.NewManager()
	go hub.Run()

	apps := rental.NewApplicationService(s)
	chat := rental.NewChatService(s)
	h := handler.NewHandler(s, apps, chat, hub, uploads, cfg.JWTSecret, cfg.SessionTTL)

	r := gin.Default()

	// Public surface.
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/rooms/:city", h.RoomsByCity)
	r.GET("/room/:id", middleware.OptionalAuth(cfg.JWTSecret, s), h.RoomDetail)

	// Any authenticated user.
	authed := r.Group("/", middleware.Auth(cfg.JWTSecret, s))
	authed.POST("/logout", h.Logout)
	authed.GET("/dashboard", h.Dashboard)
	authed.GET("/profile", h.Profile)
	authed.POST("/profile", h.UpdateProfileImage)
	authed.GET("/chat/:id", h.OpenChat)
	authed.POST("/chat/:id", h.SendMessage)
	authed.GET("/ws", h.ServeWebSocket)

	admin := authed.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.GET("/rooms", h.PendingRooms)
	admin.POST("/rooms/:id/approve", h.ApproveRoom)
	admin.POST("/rooms/:id/reject", h.RejectRoom)
	admin.GET("/all-rooms", h.AllRooms)
	admin.GET("/applications", h.AllApplications)

	owner := authed.Group("/owner", middleware.RequireRole(models.RoleOwner))
	owner.POST("/rooms", h.AddRoom)
	owner.GET("/applications", h.OwnerApplications)
	owner.POST("/applications/:id/accept", h.AcceptApplication)
	owner.POST("/applications/:id/reject", h.RejectApplication)

	renter := authed.Group("/", middleware.RequireRole(models.RoleRenter))
	renter.POST("/apply/:id", h.Apply)
	renter.GET("/renter/applications", h.RenterApplications)

	server := &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
