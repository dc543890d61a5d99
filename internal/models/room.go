package models

import "github.com/lib/pq"

// Room is a rental listing owned by exactly one user with the owner role.
// A room is created unapproved and becomes publicly listable only after an
// admin approves it; admin rejection deletes the record outright.
type Room struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OwnerID     uint           `gorm:"not null;index" json:"owner_id"`
	City        string         `gorm:"size:50;index" json:"city"`
	Area        string         `gorm:"size:100" json:"area"`
	Rent        int            `json:"rent"`
	RoomType    string         `gorm:"size:50" json:"room_type"`
	Facilities  string         `gorm:"size:255" json:"facilities"`
	Description string         `gorm:"type:text" json:"description"`
	Approved    bool           `gorm:"default:false" json:"approved"`
	// Images keeps the stored filenames in upload order. A text[] column
	// so filenames may contain any character.
	Images pq.StringArray `gorm:"type:text[]" json:"images"`
}
