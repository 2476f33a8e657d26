package contract

import (
	"context"

	"edufocus-be/internal/entity"
	"edufocus-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FlashcardDeckRepository interface {
	Create(ctx context.Context, deck *entity.FlashcardDeck) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FlashcardDeck, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FlashcardDeck, error)
}

type FlashcardRepository interface {
	Create(ctx context.Context, card *entity.Flashcard) error
	Update(ctx context.Context, card *entity.Flashcard) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByDeckId(ctx context.Context, deckId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Flashcard, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Flashcard, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
