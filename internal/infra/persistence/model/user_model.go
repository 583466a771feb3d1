// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are bigserial integers.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100);not null"`
	Address      string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
