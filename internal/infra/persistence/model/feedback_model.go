package model

import (
	"time"
)

// FeedbackModel mirrors the 'feedbacks' table. Rows are append-only.
type FeedbackModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	HostelID  int64  `gorm:"not null;index"`
	UserID    int64  `gorm:"not null;index"`
	Rating    int    `gorm:"not null"`
	Comments  string `gorm:"type:varchar(1000)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedbacks"
}
