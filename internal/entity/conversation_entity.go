package entity

import (
	"time"

	"github.com/google/uuid"
)

type ConversationRole string

const (
	ConversationRoleUser      ConversationRole = "user"
	ConversationRoleAssistant ConversationRole = "assistant"
)

// ConversationMessage is one turn in the append-only assistant chat log.
type ConversationMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Role      ConversationRole
	Content   string
	CreatedAt time.Time
}
