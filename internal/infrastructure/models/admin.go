package models

import "time"

type Admin struct {
	ID           string `gorm:"type:varchar(24);primaryKey"`
	Username     string `gorm:"type:varchar(120);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Admin) TableName() string {
	return "admins"
}
