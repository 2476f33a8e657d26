package implementation

import (
	"context"
	"errors"

	"edufocus-be/internal/entity"
	"edufocus-be/internal/mapper"
	"edufocus-be/internal/model"
	"edufocus-be/internal/repository/contract"
	"edufocus-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlashcardDeckRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FlashcardMapper
}

func NewFlashcardDeckRepository(db *gorm.DB) contract.FlashcardDeckRepository {
	return &FlashcardDeckRepositoryImpl{
		db:     db,
		mapper: mapper.NewFlashcardMapper(),
	}
}

func (r *FlashcardDeckRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FlashcardDeckRepositoryImpl) Create(ctx context.Context, deck *entity.FlashcardDeck) error {
	m := r.mapper.DeckToModel(deck)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*deck = *r.mapper.DeckToEntity(m)
	return nil
}

func (r *FlashcardDeckRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FlashcardDeck{}, id).Error
}

func (r *FlashcardDeckRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FlashcardDeck, error) {
	var m model.FlashcardDeck
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DeckToEntity(&m), nil
}

func (r *FlashcardDeckRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FlashcardDeck, error) {
	var models []*model.FlashcardDeck
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.DecksToEntities(models), nil
}

type FlashcardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FlashcardMapper
}

func NewFlashcardRepository(db *gorm.DB) contract.FlashcardRepository {
	return &FlashcardRepositoryImpl{
		db:     db,
		mapper: mapper.NewFlashcardMapper(),
	}
}

func (r *FlashcardRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FlashcardRepositoryImpl) Create(ctx context.Context, card *entity.Flashcard) error {
	m := r.mapper.CardToModel(card)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*card = *r.mapper.CardToEntity(m)
	return nil
}

func (r *FlashcardRepositoryImpl) Update(ctx context.Context, card *entity.Flashcard) error {
	m := r.mapper.CardToModel(card)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*card = *r.mapper.CardToEntity(m)
	return nil
}

func (r *FlashcardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Flashcard{}, id).Error
}

func (r *FlashcardRepositoryImpl) DeleteAllByDeckId(ctx context.Context, deckId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("deck_id = ?", deckId).Delete(&model.Flashcard{}).Error
}

func (r *FlashcardRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Flashcard, error) {
	var m model.Flashcard
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Flashcard{}), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CardToEntity(&m), nil
}

func (r *FlashcardRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Flashcard, error) {
	var models []*model.Flashcard
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Flashcard{}), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CardsToEntities(models), nil
}

func (r *FlashcardRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Flashcard{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
