package model

import (
	"time"
)

// AdminModel mirrors the 'admins' table. Rows are seeded out of band.
type AdminModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
