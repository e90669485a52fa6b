package models

import "time"

type ContactSubmission struct {
	ID        string    `gorm:"type:varchar(24);primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(320);not null"`
	Subject   string    `gorm:"type:varchar(300);not null"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'new';index"`
	CreatedAt time.Time `gorm:"index"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// All lists every model for auto-migration.
func All() []interface{} {
	return []interface{}{
		&Admin{},
		&Event{},
		&Member{},
		&Project{},
		&ContactSubmission{},
	}
}
