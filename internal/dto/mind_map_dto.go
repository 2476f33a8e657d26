package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMindMapRequest struct {
	Title       string                 `json:"title" validate:"required,max=200"`
	Description string                 `json:"description"`
	MapData     map[string]interface{} `json:"map_data"`
}

type UpdateMindMapRequest struct {
	Id          uuid.UUID
	Title       *string                 `json:"title"`
	Description *string                 `json:"description"`
	MapData     *map[string]interface{} `json:"map_data"`
}

type MindMapResponse struct {
	Id          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	MapData     map[string]interface{} `json:"map_data"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
