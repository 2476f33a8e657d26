package dto

import (
	"time"

	"edufocus-be/internal/entity"

	"github.com/google/uuid"
)

type CreateQuizRequest struct {
	Title      string                `json:"title" validate:"required,max=200"`
	Topic      string                `json:"topic" validate:"max=100"`
	Difficulty string                `json:"difficulty" validate:"max=20"`
	Questions  []entity.QuizQuestion `json:"questions"`
}

type CompleteQuizRequest struct {
	Id    uuid.UUID
	Score int `json:"score" validate:"gte=0"`
}

type QuizResponse struct {
	Id         uuid.UUID             `json:"id"`
	Title      string                `json:"title"`
	Topic      string                `json:"topic"`
	Difficulty string                `json:"difficulty"`
	Questions  []entity.QuizQuestion `json:"questions"`
	Score      *int                  `json:"score"`
	MaxScore   int                   `json:"max_score"`
	Completed  bool                  `json:"completed"`
	CreatedAt  time.Time             `json:"created_at"`
}
