package mapper

import (
	"edufocus-be/internal/entity"
	"edufocus-be/internal/model"
)

type PomodoroMapper struct{}

func NewPomodoroMapper() *PomodoroMapper {
	return &PomodoroMapper{}
}

func (m *PomodoroMapper) ToEntity(s *model.PomodoroStats) *entity.PomodoroStats {
	if s == nil {
		return nil
	}
	return &entity.PomodoroStats{
		Id:                s.Id,
		UserId:            s.UserId,
		Date:              s.Date,
		SessionsCompleted: s.SessionsCompleted,
		TotalFocusTime:    s.TotalFocusTime,
	}
}

func (m *PomodoroMapper) ToModel(s *entity.PomodoroStats) *model.PomodoroStats {
	if s == nil {
		return nil
	}
	return &model.PomodoroStats{
		Id:                s.Id,
		UserId:            s.UserId,
		Date:              s.Date,
		SessionsCompleted: s.SessionsCompleted,
		TotalFocusTime:    s.TotalFocusTime,
	}
}
