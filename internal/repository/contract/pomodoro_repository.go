package contract

import (
	"context"

	"edufocus-be/internal/entity"
	"edufocus-be/internal/repository/specification"
)

type PomodoroRepository interface {
	Create(ctx context.Context, stats *entity.PomodoroStats) error
	Update(ctx context.Context, stats *entity.PomodoroStats) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PomodoroStats, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PomodoroStats, error)
}
