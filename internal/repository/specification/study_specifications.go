package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByDeck filters flashcards by their owning deck.
type ByDeck struct {
	DeckID uuid.UUID
}

func (s ByDeck) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deck_id = ?", s.DeckID)
}

// CardOwnedBy scopes a flashcard lookup through its deck's owner. Cards carry
// no user_id column, so ownership resolves via the join.
type CardOwnedBy struct {
	UserID uuid.UUID
}

func (s CardOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN flashcard_decks ON flashcard_decks.id = flashcards.deck_id").
		Where("flashcard_decks.user_id = ?", s.UserID)
}

// OnDate filters stat rows by calendar day.
type OnDate struct {
	Date time.Time
}

func (s OnDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", s.Date)
}

// ByUsername filters users by their unique username.
type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

// ByEmail filters users by their unique email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
