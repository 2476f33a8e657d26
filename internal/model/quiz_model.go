package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Topic         string    `gorm:"type:varchar(100)"`
	Difficulty    string    `gorm:"type:varchar(20)"`
	QuestionsData datatypes.JSON
	Score         *int
	MaxScore      int
	Completed     bool      `gorm:"default:false"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`

	// Relationships
	User User `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
