package entity

import (
	"time"

	"github.com/google/uuid"
)

type CardDifficulty string

const (
	CardDifficultyEasy   CardDifficulty = "easy"
	CardDifficultyMedium CardDifficulty = "medium"
	CardDifficultyHard   CardDifficulty = "hard"
)

func (d CardDifficulty) Valid() bool {
	switch d {
	case CardDifficultyEasy, CardDifficultyMedium, CardDifficultyHard:
		return true
	}
	return false
}

type FlashcardDeck struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	Cards       []*Flashcard
}

type Flashcard struct {
	Id           uuid.UUID
	DeckId       uuid.UUID
	Question     string
	Answer       string
	Difficulty   CardDifficulty
	LastReviewed *time.Time
	NextReview   *time.Time
	ReviewCount  int
	CorrectCount int
	CreatedAt    time.Time
}
