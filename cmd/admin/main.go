// Ops CLI for the listing approval workflow: seed the admin account,
// inspect the approval queue, approve or reject a room without going
// through the HTTP surface.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"roomchha/backend/internal/config"
	"roomchha/backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	s := storage.NewStorageService(db, nil) // No redis needed for the CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <seed-admin|list-pending|approve-room|reject-room> [args]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed-admin":
		if err := s.EnsureAdmin(cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("Error seeding admin: %v", err)
		}
		fmt.Println("Admin account present.")
	case "list-pending":
		rooms, err := s.ListPendingRooms()
		if err != nil {
			log.Fatalf("Error listing pending rooms: %v", err)
		}
		for _, r := range rooms {
			fmt.Printf("#%d  %s / %s  rent=%d  owner=%s <%s>\n",
				r.ID, r.City, r.Area, r.Rent, r.OwnerName, r.OwnerEmail)
		}
		if len(rooms) == 0 {
			fmt.Println("No rooms awaiting approval.")
		}
	case "approve-room":
		id := roomIDArg()
		if err := s.ApproveRoom(id); err != nil {
			log.Fatalf("Error approving room: %v", err)
		}
		fmt.Printf("Room %d approved.\n", id)
	case "reject-room":
		id := roomIDArg()
		if err := s.DeleteRoom(id); err != nil {
			log.Fatalf("Error rejecting room: %v", err)
		}
		fmt.Printf("Room %d rejected and removed.\n", id)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func roomIDArg() uint {
	if len(os.Args) != 3 {
		fmt.Println("Usage: admin <approve-room|reject-room> <room_id>")
		os.Exit(1)
	}
	id, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		fmt.Println("Invalid room ID. Please provide an integer.")
		os.Exit(1)
	}
	return uint(id)
}
