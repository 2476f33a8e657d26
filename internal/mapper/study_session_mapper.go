package mapper

import (
	"edufocus-be/internal/entity"
	"edufocus-be/internal/model"
)

type StudySessionMapper struct{}

func NewStudySessionMapper() *StudySessionMapper {
	return &StudySessionMapper{}
}

func (m *StudySessionMapper) ToEntity(s *model.StudySession) *entity.StudySession {
	if s == nil {
		return nil
	}
	return &entity.StudySession{
		Id:          s.Id,
		UserId:      s.UserId,
		Subject:     s.Subject,
		SessionDate: s.SessionDate,
		SessionTime: s.SessionTime,
		Duration:    s.Duration,
		Goals:       s.Goals,
		Status:      entity.SessionStatus(s.Status),
		CreatedAt:   s.CreatedAt,
	}
}

func (m *StudySessionMapper) ToModel(s *entity.StudySession) *model.StudySession {
	if s == nil {
		return nil
	}
	return &model.StudySession{
		Id:          s.Id,
		UserId:      s.UserId,
		Subject:     s.Subject,
		SessionDate: s.SessionDate,
		SessionTime: s.SessionTime,
		Duration:    s.Duration,
		Goals:       s.Goals,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
	}
}

func (m *StudySessionMapper) ToEntities(sessions []*model.StudySession) []*entity.StudySession {
	entities := make([]*entity.StudySession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
