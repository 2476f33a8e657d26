package service

import (
	"context"
	"time"

	"edufocus-be/internal/dto"
	"edufocus-be/internal/entity"
	"edufocus-be/internal/repository/specification"
	"edufocus-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPomodoroService interface {
	TodayStats(ctx context.Context, userId uuid.UUID) (*dto.PomodoroStatsResponse, error)
	UpdateStats(ctx context.Context, userId uuid.UUID, req *dto.UpdatePomodoroRequest) (*dto.PomodoroStatsResponse, error)
}

type pomodoroService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPomodoroService(uowFactory unitofwork.RepositoryFactory) IPomodoroService {
	return &pomodoroService{
		uowFactory: uowFactory,
	}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func toPomodoroResponse(s *entity.PomodoroStats) *dto.PomodoroStatsResponse {
	return &dto.PomodoroStatsResponse{
		Date:              s.Date.Format(dateLayout),
		SessionsCompleted: s.SessionsCompleted,
		TotalFocusTime:    s.TotalFocusTime,
	}
}

func (s *pomodoroService) TodayStats(ctx context.Context, userId uuid.UUID) (*dto.PomodoroStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stats, err := uow.PomodoroRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OnDate{Date: today()},
	)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		// No row yet today; report zeros without creating one.
		return &dto.PomodoroStatsResponse{
			Date:              today().Format(dateLayout),
			SessionsCompleted: 0,
			TotalFocusTime:    0,
		}, nil
	}

	return toPomodoroResponse(stats), nil
}

// UpdateStats finds or creates today's row and overwrites the supplied
// counters. The find-or-create runs in one transaction so two concurrent
// updates for the same day cannot produce two rows; the unique
// (user_id, date) index backs this up.
func (s *pomodoroService) UpdateStats(ctx context.Context, userId uuid.UUID, req *dto.UpdatePomodoroRequest) (*dto.PomodoroStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	stats, err := uow.PomodoroRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OnDate{Date: today()},
	)
	if err != nil {
		return nil, err
	}

	if stats == nil {
		stats = &entity.PomodoroStats{
			Id:     uuid.New(),
			UserId: userId,
			Date:   today(),
		}
		if err := uow.PomodoroRepository().Create(ctx, stats); err != nil {
			return nil, err
		}
	}

	if req.SessionsCompleted != nil {
		stats.SessionsCompleted = *req.SessionsCompleted
	}
	if req.TotalFocusTime != nil {
		stats.TotalFocusTime = *req.TotalFocusTime
	}

	if err := uow.PomodoroRepository().Update(ctx, stats); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toPomodoroResponse(stats), nil
}
