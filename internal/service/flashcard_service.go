package service

import (
	"context"
	"time"

	"edufocus-be/internal/dto"
	"edufocus-be/internal/entity"
	"edufocus-be/internal/pkg/apperror"
	"edufocus-be/internal/repository/specification"
	"edufocus-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFlashcardService interface {
	ListDecks(ctx context.Context, userId uuid.UUID) ([]*dto.DeckResponse, error)
	CreateDeck(ctx context.Context, userId uuid.UUID, req *dto.CreateDeckRequest) (*dto.DeckResponse, error)
	DeleteDeck(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	CreateCard(ctx context.Context, userId uuid.UUID, req *dto.CreateCardRequest) (*dto.FlashcardResponse, error)
	ReviewCard(ctx context.Context, userId uuid.UUID, req *dto.ReviewCardRequest) (*dto.FlashcardResponse, error)
	DeleteCard(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type flashcardService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFlashcardService(uowFactory unitofwork.RepositoryFactory) IFlashcardService {
	return &flashcardService{
		uowFactory: uowFactory,
	}
}

// reviewInterval schedules the next review based on how the card is rated.
// Harder cards come back sooner.
func reviewInterval(difficulty entity.CardDifficulty) time.Duration {
	switch difficulty {
	case entity.CardDifficultyEasy:
		return 72 * time.Hour
	case entity.CardDifficultyHard:
		return 8 * time.Hour
	default:
		return 24 * time.Hour
	}
}

func toCardResponse(c *entity.Flashcard) *dto.FlashcardResponse {
	return &dto.FlashcardResponse{
		Id:           c.Id,
		Question:     c.Question,
		Answer:       c.Answer,
		Difficulty:   string(c.Difficulty),
		LastReviewed: c.LastReviewed,
		NextReview:   c.NextReview,
		ReviewCount:  c.ReviewCount,
		CorrectCount: c.CorrectCount,
	}
}

func toDeckResponse(d *entity.FlashcardDeck, cards []*entity.Flashcard) *dto.DeckResponse {
	cardResponses := make([]dto.FlashcardResponse, len(cards))
	for i, c := range cards {
		cardResponses[i] = *toCardResponse(c)
	}
	return &dto.DeckResponse{
		Id:          d.Id,
		Name:        d.Name,
		Description: d.Description,
		CardCount:   len(cards),
		CreatedAt:   d.CreatedAt,
		Cards:       cardResponses,
	}
}

func (s *flashcardService) ListDecks(ctx context.Context, userId uuid.UUID) ([]*dto.DeckResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	decks, err := uow.FlashcardDeckRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.DeckResponse, len(decks))
	for i, deck := range decks {
		cards, err := uow.FlashcardRepository().FindAll(ctx,
			specification.ByDeck{DeckID: deck.Id},
			specification.OrderBy{Field: "created_at", Desc: false},
		)
		if err != nil {
			return nil, err
		}
		response[i] = toDeckResponse(deck, cards)
	}
	return response, nil
}

func (s *flashcardService) CreateDeck(ctx context.Context, userId uuid.UUID, req *dto.CreateDeckRequest) (*dto.DeckResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deck := entity.FlashcardDeck{
		Id:          uuid.New(),
		UserId:      userId,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := uow.FlashcardDeckRepository().Create(ctx, &deck); err != nil {
		return nil, err
	}

	return toDeckResponse(&deck, nil), nil
}

// DeleteDeck removes the deck and every card in it as one transaction so a
// failure cannot strand orphaned cards.
func (s *flashcardService) DeleteDeck(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deck, err := uow.FlashcardDeckRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if deck == nil {
		return apperror.NotFound("deck not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.FlashcardRepository().DeleteAllByDeckId(ctx, id); err != nil {
		return err
	}
	if err := uow.FlashcardDeckRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *flashcardService) CreateCard(ctx context.Context, userId uuid.UUID, req *dto.CreateCardRequest) (*dto.FlashcardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deck, err := uow.FlashcardDeckRepository().FindOne(ctx,
		specification.ByID{ID: req.DeckId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, apperror.NotFound("deck not found")
	}

	difficulty := entity.CardDifficulty(req.Difficulty)
	if req.Difficulty == "" {
		difficulty = entity.CardDifficultyMedium
	}
	if !difficulty.Valid() {
		return nil, apperror.Validation("difficulty must be easy, medium or hard")
	}

	card := entity.Flashcard{
		Id:         uuid.New(),
		DeckId:     deck.Id,
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: difficulty,
		CreatedAt:  time.Now(),
	}

	if err := uow.FlashcardRepository().Create(ctx, &card); err != nil {
		return nil, err
	}

	return toCardResponse(&card), nil
}

func (s *flashcardService) ReviewCard(ctx context.Context, userId uuid.UUID, req *dto.ReviewCardRequest) (*dto.FlashcardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Cards have no user_id column; ownership resolves through the deck.
	card, err := uow.FlashcardRepository().FindOne(ctx,
		specification.FilterBy{Field: "flashcards.id", Value: req.Id},
		specification.CardOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperror.NotFound("card not found")
	}

	now := time.Now()
	next := now.Add(reviewInterval(card.Difficulty))

	card.ReviewCount++
	if req.Correct {
		card.CorrectCount++
	}
	card.LastReviewed = &now
	card.NextReview = &next

	if err := uow.FlashcardRepository().Update(ctx, card); err != nil {
		return nil, err
	}

	return toCardResponse(card), nil
}

func (s *flashcardService) DeleteCard(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	card, err := uow.FlashcardRepository().FindOne(ctx,
		specification.FilterBy{Field: "flashcards.id", Value: id},
		specification.CardOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if card == nil {
		return apperror.NotFound("card not found")
	}

	return uow.FlashcardRepository().Delete(ctx, id)
}
