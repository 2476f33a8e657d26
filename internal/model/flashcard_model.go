package model

import (
	"time"

	"github.com/google/uuid"
)

type FlashcardDeck struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	// Relationships
	User User `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (FlashcardDeck) TableName() string {
	return "flashcard_decks"
}

type Flashcard struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeckId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Question     string    `gorm:"type:text;not null"`
	Answer       string    `gorm:"type:text;not null"`
	Difficulty   string    `gorm:"type:varchar(20);default:medium"`
	LastReviewed *time.Time
	NextReview   *time.Time
	ReviewCount  int       `gorm:"default:0"`
	CorrectCount int       `gorm:"default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	// Relationships
	Deck FlashcardDeck `gorm:"foreignKey:DeckId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}
