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

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type IStudySessionService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.StudySessionResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStudySessionRequest) (*dto.StudySessionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateStudySessionRequest) (*dto.StudySessionResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type studySessionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStudySessionService(uowFactory unitofwork.RepositoryFactory) IStudySessionService {
	return &studySessionService{
		uowFactory: uowFactory,
	}
}

func parseSessionDate(value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperror.Validation("date must be formatted YYYY-MM-DD")
	}
	return d, nil
}

func parseSessionTime(value string) (string, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return "", apperror.Validation("time must be formatted HH:MM")
	}
	// time.Parse accepts "9:30"; re-render so stored values are always HH:MM.
	return t.Format(timeLayout), nil
}

func toSessionResponse(s *entity.StudySession) *dto.StudySessionResponse {
	return &dto.StudySessionResponse{
		Id:        s.Id,
		Subject:   s.Subject,
		Date:      s.SessionDate.Format(dateLayout),
		Time:      s.SessionTime,
		Duration:  s.Duration,
		Goals:     s.Goals,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
}

func (s *studySessionService) List(ctx context.Context, userId uuid.UUID) ([]*dto.StudySessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.StudySessionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "session_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.StudySessionResponse, len(sessions))
	for i, session := range sessions {
		response[i] = toSessionResponse(session)
	}
	return response, nil
}

func (s *studySessionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStudySessionRequest) (*dto.StudySessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessionDate, err := parseSessionDate(req.Date)
	if err != nil {
		return nil, err
	}
	sessionTime, err := parseSessionTime(req.Time)
	if err != nil {
		return nil, err
	}

	status := entity.SessionStatus(req.Status)
	if req.Status == "" {
		status = entity.SessionStatusScheduled
	}
	if !status.Valid() {
		return nil, apperror.Validation("status must be scheduled, completed or cancelled")
	}

	session := entity.StudySession{
		Id:          uuid.New(),
		UserId:      userId,
		Subject:     req.Subject,
		SessionDate: sessionDate,
		SessionTime: sessionTime,
		Duration:    req.Duration,
		Goals:       req.Goals,
		Status:      status,
		CreatedAt:   time.Now(),
	}

	if err := uow.StudySessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return toSessionResponse(&session), nil
}

func (s *studySessionService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateStudySessionRequest) (*dto.StudySessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.StudySessionRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("session not found")
	}

	if req.Subject != nil {
		session.Subject = *req.Subject
	}
	if req.Date != nil {
		sessionDate, err := parseSessionDate(*req.Date)
		if err != nil {
			return nil, err
		}
		session.SessionDate = sessionDate
	}
	if req.Time != nil {
		sessionTime, err := parseSessionTime(*req.Time)
		if err != nil {
			return nil, err
		}
		session.SessionTime = sessionTime
	}
	if req.Duration != nil {
		if *req.Duration < 0 {
			return nil, apperror.Validation("duration must not be negative")
		}
		session.Duration = *req.Duration
	}
	if req.Goals != nil {
		session.Goals = *req.Goals
	}
	if req.Status != nil {
		status := entity.SessionStatus(*req.Status)
		if !status.Valid() {
			return nil, apperror.Validation("status must be scheduled, completed or cancelled")
		}
		session.Status = status
	}

	if err := uow.StudySessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

func (s *studySessionService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.StudySessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return apperror.NotFound("session not found")
	}

	return uow.StudySessionRepository().Delete(ctx, id)
}
