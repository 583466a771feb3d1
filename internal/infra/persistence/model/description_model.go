package model

import (
	"time"
)

// HostelDescriptionModel mirrors the 'hostel_descriptions' table.
type HostelDescriptionModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	HostelID    int64  `gorm:"not null;index"`
	Location    string `gorm:"type:varchar(500);not null"`
	Description string `gorm:"type:text;not null"`
	CreatedAt   time.Time

	RoomCounts []RoomTypeCountModel `gorm:"foreignKey:DescriptionID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (HostelDescriptionModel) TableName() string {
	return "hostel_descriptions"
}

// RoomTypeCountModel mirrors the 'room_type_counts' table, one row per
// room-availability figure attached to a description.
type RoomTypeCountModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	DescriptionID int64  `gorm:"not null;index"`
	RoomType      string `gorm:"type:varchar(50);not null"`
	Count         int    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoomTypeCountModel) TableName() string {
	return "room_type_counts"
}
