package entity

import (
	"time"

	"github.com/google/uuid"
)

// PomodoroStats holds one row per user per calendar day.
type PomodoroStats struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	Date              time.Time
	SessionsCompleted int
	TotalFocusTime    int // seconds
}
