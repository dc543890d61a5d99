package models

// Read-side row shapes produced by the storage layer's join queries.
// They carry the display attributes the API returns next to each record.

// RoomWithOwner is a room joined with its owner's display data.
type RoomWithOwner struct {
	Room       `gorm:"embedded"`
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
}

// ApplicationDetail is an application joined with its room and renter.
type ApplicationDetail struct {
	Application `gorm:"embedded"`
	RoomCity    string `json:"room_city"`
	RoomArea    string `json:"room_area"`
	RoomRent    int    `json:"room_rent"`
	RenterName  string `json:"renter_name"`
	RenterEmail string `json:"renter_email"`
}

// MessageWithSender is a message joined with the sender's display data.
type MessageWithSender struct {
	Message     `gorm:"embedded"`
	SenderName  string `json:"sender_name"`
	SenderImage string `json:"sender_image"`
}
