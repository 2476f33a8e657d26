package implementation

import (
	"context"
	"errors"

	"edufocus-be/internal/entity"
	"edufocus-be/internal/mapper"
	"edufocus-be/internal/model"
	"edufocus-be/internal/repository/contract"
	"edufocus-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PomodoroRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PomodoroMapper
}

func NewPomodoroRepository(db *gorm.DB) contract.PomodoroRepository {
	return &PomodoroRepositoryImpl{
		db:     db,
		mapper: mapper.NewPomodoroMapper(),
	}
}

func (r *PomodoroRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PomodoroRepositoryImpl) Create(ctx context.Context, stats *entity.PomodoroStats) error {
	m := r.mapper.ToModel(stats)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*stats = *r.mapper.ToEntity(m)
	return nil
}

func (r *PomodoroRepositoryImpl) Update(ctx context.Context, stats *entity.PomodoroStats) error {
	m := r.mapper.ToModel(stats)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*stats = *r.mapper.ToEntity(m)
	return nil
}

func (r *PomodoroRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PomodoroStats, error) {
	var m model.PomodoroStats
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PomodoroRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PomodoroStats, error) {
	var models []*model.PomodoroStats
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PomodoroStats, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
