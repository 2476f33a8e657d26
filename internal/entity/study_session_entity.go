package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusScheduled, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}

type StudySession struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Subject     string
	SessionDate time.Time // date component only
	SessionTime string    // "HH:MM"
	Duration    int       // minutes
	Goals       string
	Status      SessionStatus
	CreatedAt   time.Time
}
