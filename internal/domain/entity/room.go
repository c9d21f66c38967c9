package entity

import "time"

// Room status constants
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// Room represents a hospital room. Rooms are read-only through the console
// CRUD surface; they are maintained by facility imports.
type Room struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Number    string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"number"`
	Ward      string    `gorm:"type:varchar(100);index" json:"ward,omitempty"`
	Type      string    `gorm:"type:varchar(50)" json:"type,omitempty"`
	Capacity  int       `gorm:"default:1" json:"capacity"`
	Status    string    `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}
