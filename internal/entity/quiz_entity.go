package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuizQuestion is stored verbatim as part of the quiz's question blob.
// The backend never interprets individual questions beyond counting them.
type QuizQuestion map[string]interface{}

type Quiz struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Title      string
	Topic      string
	Difficulty string
	Questions  []QuizQuestion
	Score      *int
	MaxScore   int
	Completed  bool
	CreatedAt  time.Time
}
