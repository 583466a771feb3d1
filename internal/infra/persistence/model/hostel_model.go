package model

import (
	"time"
)

// HostelModel mirrors the 'hostels' table. Status is the admin approval flag;
// every hostel row starts with it false.
type HostelModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(100);not null"`
	Address        string `gorm:"type:varchar(255);not null"`
	Email          string `gorm:"type:varchar(100);unique;not null"`
	PasswordHash   string `gorm:"type:varchar(255);not null"`
	DocumentNumber string `gorm:"type:varchar(50);not null"`
	Status         bool   `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Rooms []RoomRateModel `gorm:"foreignKey:HostelID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (HostelModel) TableName() string {
	return "hostels"
}

// RoomRateModel mirrors the 'room_rates' table, one row per room category.
type RoomRateModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	HostelID    int64   `gorm:"not null;index"`
	RoomType    string  `gorm:"type:varchar(50);not null"`
	NightlyRate float64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoomRateModel) TableName() string {
	return "room_rates"
}
