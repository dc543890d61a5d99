package models

// Application statuses. An application starts pending; the room's owner
// moves it to accepted or rejected.
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Application is a renter's request to rent a specific room. A renter may
// hold several applications for the same room; rows are never deleted.
type Application struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RoomID   uint   `gorm:"not null;index" json:"room_id"`
	RenterID uint   `gorm:"not null;index" json:"renter_id"`
	Status   string `gorm:"size:20;default:pending" json:"status"`
}
