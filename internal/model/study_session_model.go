package model

import (
	"time"

	"github.com/google/uuid"
)

type StudySession struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject     string    `gorm:"type:varchar(100);not null"`
	SessionDate time.Time `gorm:"type:date;not null"`
	SessionTime string    `gorm:"type:varchar(5);not null"` // "HH:MM"
	Duration    int
	Goals       string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);default:scheduled"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	// Relationships
	User User `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
