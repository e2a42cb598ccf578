package models

import "time"

type User struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Email       string `gorm:"size:320;not null;uniqueIndex"`
	DisplayName string `gorm:"size:255;not null"`
	IsAdmin     bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (User) TableName() string {
	return "users"
}
