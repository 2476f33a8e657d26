package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDeckRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type CreateCardRequest struct {
	DeckId     uuid.UUID
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Difficulty string `json:"difficulty"`
}

type ReviewCardRequest struct {
	Id      uuid.UUID
	Correct bool `json:"correct"`
}

type FlashcardResponse struct {
	Id           uuid.UUID  `json:"id"`
	Question     string     `json:"question"`
	Answer       string     `json:"answer"`
	Difficulty   string     `json:"difficulty"`
	LastReviewed *time.Time `json:"last_reviewed"`
	NextReview   *time.Time `json:"next_review"`
	ReviewCount  int        `json:"review_count"`
	CorrectCount int        `json:"correct_count"`
}

type DeckResponse struct {
	Id          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	CardCount   int                 `json:"card_count"`
	CreatedAt   time.Time           `json:"created_at"`
	Cards       []FlashcardResponse `json:"cards"`
}
