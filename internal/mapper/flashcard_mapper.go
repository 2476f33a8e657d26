package mapper

import (
	"edufocus-be/internal/entity"
	"edufocus-be/internal/model"
)

type FlashcardMapper struct{}

func NewFlashcardMapper() *FlashcardMapper {
	return &FlashcardMapper{}
}

func (m *FlashcardMapper) DeckToEntity(d *model.FlashcardDeck) *entity.FlashcardDeck {
	if d == nil {
		return nil
	}
	return &entity.FlashcardDeck{
		Id:          d.Id,
		UserId:      d.UserId,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *FlashcardMapper) DeckToModel(d *entity.FlashcardDeck) *model.FlashcardDeck {
	if d == nil {
		return nil
	}
	return &model.FlashcardDeck{
		Id:          d.Id,
		UserId:      d.UserId,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *FlashcardMapper) DecksToEntities(decks []*model.FlashcardDeck) []*entity.FlashcardDeck {
	entities := make([]*entity.FlashcardDeck, len(decks))
	for i, d := range decks {
		entities[i] = m.DeckToEntity(d)
	}
	return entities
}

func (m *FlashcardMapper) CardToEntity(c *model.Flashcard) *entity.Flashcard {
	if c == nil {
		return nil
	}
	return &entity.Flashcard{
		Id:           c.Id,
		DeckId:       c.DeckId,
		Question:     c.Question,
		Answer:       c.Answer,
		Difficulty:   entity.CardDifficulty(c.Difficulty),
		LastReviewed: c.LastReviewed,
		NextReview:   c.NextReview,
		ReviewCount:  c.ReviewCount,
		CorrectCount: c.CorrectCount,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *FlashcardMapper) CardToModel(c *entity.Flashcard) *model.Flashcard {
	if c == nil {
		return nil
	}
	return &model.Flashcard{
		Id:           c.Id,
		DeckId:       c.DeckId,
		Question:     c.Question,
		Answer:       c.Answer,
		Difficulty:   string(c.Difficulty),
		LastReviewed: c.LastReviewed,
		NextReview:   c.NextReview,
		ReviewCount:  c.ReviewCount,
		CorrectCount: c.CorrectCount,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *FlashcardMapper) CardsToEntities(cards []*model.Flashcard) []*entity.Flashcard {
	entities := make([]*entity.Flashcard, len(cards))
	for i, c := range cards {
		entities[i] = m.CardToEntity(c)
	}
	return entities
}
