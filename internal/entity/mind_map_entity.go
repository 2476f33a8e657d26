package entity

import (
	"time"

	"github.com/google/uuid"
)

type MindMap struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Description string
	MapData     map[string]interface{} // nodes + connections, opaque to the backend
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
