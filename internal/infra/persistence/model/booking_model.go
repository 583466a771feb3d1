package model

import (
	"time"
)

// BookingModel mirrors the 'bookings' table. Status stores the raw lifecycle
// integer (0 Pending, 1 Confirmed, 2 Cancelled). Referential integrity against
// users and hostels lives in the schema, not in this service.
type BookingModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	HostelID  int64  `gorm:"not null;index"`
	UserID    int64  `gorm:"not null;index"`
	RoomType  string `gorm:"type:varchar(50);not null"`
	CheckIn   time.Time
	CheckOut  time.Time
	CreatedAt time.Time
	Status    int `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
