package contract

import (
	"context"

	"edufocus-be/internal/entity"
	"edufocus-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MindMapRepository interface {
	Create(ctx context.Context, mindMap *entity.MindMap) error
	Update(ctx context.Context, mindMap *entity.MindMap) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MindMap, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MindMap, error)
}
