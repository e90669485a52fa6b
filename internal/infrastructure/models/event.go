package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type Event struct {
	ID               string      `gorm:"type:varchar(24);primaryKey"`
	Title            string      `gorm:"type:varchar(200);not null"`
	Description      string      `gorm:"type:text;not null"`
	Date             time.Time   `gorm:"not null;index"`
	Time             string      `gorm:"type:varchar(16);not null"`
	Venue            string      `gorm:"type:varchar(200);not null"`
	Category         string      `gorm:"type:varchar(20);not null;index"`
	Status           string      `gorm:"type:varchar(20);not null;index"`
	MaxParticipants  null.Int    `gorm:"type:integer"`
	RegistrationLink null.String `gorm:"type:text"`
	Requirements     []string    `gorm:"type:text;serializer:json"`
	Image            string      `gorm:"type:text;not null"`
	Featured         bool        `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Event) TableName() string {
	return "events"
}
