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

type IMindMapService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.MindMapResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMindMapRequest) (*dto.MindMapResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateMindMapRequest) (*dto.MindMapResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type mindMapService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMindMapService(uowFactory unitofwork.RepositoryFactory) IMindMapService {
	return &mindMapService{
		uowFactory: uowFactory,
	}
}

func toMindMapResponse(m *entity.MindMap) *dto.MindMapResponse {
	return &dto.MindMapResponse{
		Id:          m.Id,
		Title:       m.Title,
		Description: m.Description,
		MapData:     m.MapData,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (s *mindMapService) List(ctx context.Context, userId uuid.UUID) ([]*dto.MindMapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	maps, err := uow.MindMapRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.MindMapResponse, len(maps))
	for i, m := range maps {
		response[i] = toMindMapResponse(m)
	}
	return response, nil
}

func (s *mindMapService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMindMapRequest) (*dto.MindMapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	mapData := req.MapData
	if mapData == nil {
		mapData = map[string]interface{}{}
	}

	now := time.Now()
	mindMap := entity.MindMap{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		MapData:     mapData,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.MindMapRepository().Create(ctx, &mindMap); err != nil {
		return nil, err
	}

	return toMindMapResponse(&mindMap), nil
}

func (s *mindMapService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateMindMapRequest) (*dto.MindMapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	mindMap, err := uow.MindMapRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if mindMap == nil {
		return nil, apperror.NotFound("mind map not found")
	}

	if req.Title != nil {
		mindMap.Title = *req.Title
	}
	if req.Description != nil {
		mindMap.Description = *req.Description
	}
	if req.MapData != nil {
		mindMap.MapData = *req.MapData
	}
	mindMap.UpdatedAt = time.Now()

	if err := uow.MindMapRepository().Update(ctx, mindMap); err != nil {
		return nil, err
	}

	return toMindMapResponse(mindMap), nil
}

func (s *mindMapService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	mindMap, err := uow.MindMapRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if mindMap == nil {
		return apperror.NotFound("mind map not found")
	}

	return uow.MindMapRepository().Delete(ctx, id)
}
