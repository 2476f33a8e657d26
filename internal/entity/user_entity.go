package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
	LastLogin    *time.Time
}
