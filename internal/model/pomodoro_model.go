package model

import (
	"time"

	"github.com/google/uuid"
)

type PomodoroStats struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pomodoro_user_date"`
	Date              time.Time `gorm:"type:date;not null;uniqueIndex:idx_pomodoro_user_date"`
	SessionsCompleted int       `gorm:"default:0"`
	TotalFocusTime    int       `gorm:"default:0"` // seconds

	// Relationships
	User User `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (PomodoroStats) TableName() string {
	return "pomodoro_stats"
}
