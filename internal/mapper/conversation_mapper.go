package mapper

import (
	"edufocus-be/internal/entity"
	"edufocus-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.ConversationMessage) *entity.ConversationMessage {
	if c == nil {
		return nil
	}
	return &entity.ConversationMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		Role:      entity.ConversationRole(c.Role),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ConversationMapper) ToModel(c *entity.ConversationMessage) *model.ConversationMessage {
	if c == nil {
		return nil
	}
	return &model.ConversationMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		Role:      string(c.Role),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ConversationMapper) ToEntities(messages []*model.ConversationMessage) []*entity.ConversationMessage {
	entities := make([]*entity.ConversationMessage, len(messages))
	for i, c := range messages {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
