package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type Project struct {
	ID           string      `gorm:"type:varchar(24);primaryKey"`
	Title        string      `gorm:"type:varchar(200);not null"`
	Description  string      `gorm:"type:text;not null"`
	Category     string      `gorm:"type:varchar(40);not null;index"`
	Technologies []string    `gorm:"type:text;serializer:json"`
	Github       string      `gorm:"type:text;not null"`
	Image        string      `gorm:"type:text;not null"`
	Demo         null.String `gorm:"type:text"`
	Featured     bool        `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Project) TableName() string {
	return "projects"
}
