package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type Member struct {
	ID         string      `gorm:"type:varchar(24);primaryKey"`
	Name       string      `gorm:"type:varchar(120);not null"`
	Role       string      `gorm:"type:varchar(120);not null"`
	Department string      `gorm:"type:varchar(120);not null;index"`
	Year       string      `gorm:"type:varchar(20);not null;index"`
	Skills     []string    `gorm:"type:text;serializer:json"`
	Image      string      `gorm:"type:text;not null"`
	Github     null.String `gorm:"type:text"`
	Linkedin   null.String `gorm:"column:linkedin;type:text"`
	Featured   bool        `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Member) TableName() string {
	return "members"
}
